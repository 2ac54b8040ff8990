package constants

// Status keanggotaan relawan & koordinator
const (
	StatusAktif      = "AKTIF"
	StatusTidakAktif = "TIDAK_AKTIF"
	StatusPending    = "PENDING"
)

var Statuses = []string{StatusAktif, StatusTidakAktif, StatusPending}

const (
	GenderLakiLaki  = "LAKI_LAKI"
	GenderPerempuan = "PEREMPUAN"
)

// Prefix kode otomatis
const (
	KodePrefixKoordinator = "KOR"
	KodePrefixRelawan     = "REL"
)

// Pesan umum
const (
	MsgNoToken                 = "No token provided"
	MsgInvalidToken            = "Invalid token"
	MsgUserInactive            = "User account is inactive"
	MsgInsufficientPermissions = "Insufficient permissions"
	MsgInternalError           = "Internal server error"
	MsgNotFound                = "Not found"
	MsgInvalidBody             = "Invalid request body"
)

func IsValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}
