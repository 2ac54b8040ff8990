package helper

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Validate dipakai bersama oleh semua DTO (aman untuk concurrent use).
var Validate *validator.Validate

var (
	nikRe   = regexp.MustCompile(`^[0-9]{16}$`)
	phoneRe = regexp.MustCompile(`^(\+62|62|0)[0-9]{9,13}$`)
)

func init() {
	Validate = validator.New()
	Validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	_ = Validate.RegisterValidation("nik", func(fl validator.FieldLevel) bool {
		return nikRe.MatchString(fl.Field().String())
	})
	_ = Validate.RegisterValidation("phoneid", func(fl validator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String())
	})
	_ = Validate.RegisterValidation("koordinat", func(fl validator.FieldLevel) bool {
		s := strings.TrimSpace(fl.Field().String())
		return s == "" || IsValidKoordinat(s)
	})
	_ = Validate.RegisterValidation("datestr", func(fl validator.FieldLevel) bool {
		s := strings.TrimSpace(fl.Field().String())
		if s == "" {
			return true
		}
		_, err := ParseDate(s)
		return err == nil
	})
	_ = Validate.RegisterValidation("email_or_empty", func(fl validator.FieldLevel) bool {
		s := strings.TrimSpace(fl.Field().String())
		return s == "" || Validate.Var(s, "email") == nil
	})
	_ = Validate.RegisterValidation("uuid_or_empty", func(fl validator.FieldLevel) bool {
		s := strings.TrimSpace(fl.Field().String())
		return s == "" || Validate.Var(s, "uuid") == nil
	})
}

// ValidationMessages dapat diimplementasikan DTO untuk pesan kustom per "field.tag".
type ValidationMessages interface {
	ValidationMessages() map[string]string
}

// ValidateStruct menjalankan validasi dan mengembalikan *AppError 400 berisi pesan pelanggaran pertama.
func ValidateStruct(s any) error {
	_, err := ValidateStructField(s)
	return err
}

// ValidateStructField sama dengan ValidateStruct, ditambah nama field (json) yang gagal.
// Dipakai import CSV untuk melaporkan error per kolom.
func ValidateStructField(s any) (string, error) {
	err := Validate.Struct(s)
	if err == nil {
		return "", nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "", BadRequest("Invalid input")
	}
	fe := verrs[0]
	field := fieldKey(fe)
	if m, ok := s.(ValidationMessages); ok {
		msgs := m.ValidationMessages()
		if msg, ok := msgs[field+"."+fe.Tag()]; ok {
			return field, BadRequest(msg)
		}
		if msg, ok := msgs[field]; ok {
			return field, BadRequest(msg)
		}
	}
	return field, BadRequest(FormatFieldError(fe))
}

// fieldKey: "kecamatan[0]" → "kecamatan"
func fieldKey(fe validator.FieldError) string {
	f := fe.Field()
	if i := strings.IndexByte(f, '['); i > 0 {
		return f[:i]
	}
	return f
}

func FormatFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " wajib diisi"
	case "email", "email_or_empty":
		return "Format email tidak valid"
	case "min":
		if fe.Kind() == reflect.Slice {
			return field + " minimal " + fe.Param() + " item"
		}
		if isNumberKind(fe.Kind()) {
			return field + " tidak boleh kurang dari " + fe.Param()
		}
		return field + " minimal " + fe.Param() + " karakter"
	case "max":
		if isNumberKind(fe.Kind()) {
			return field + " tidak boleh lebih dari " + fe.Param()
		}
		return field + " maksimal " + fe.Param() + " karakter"
	case "len":
		return field + " harus " + fe.Param() + " karakter"
	case "oneof":
		return field + " harus salah satu dari " + fe.Param()
	case "uuid", "uuid4", "uuid_or_empty":
		return field + " tidak valid"
	case "nik":
		return "NIK harus 16 digit"
	case "phoneid":
		return "Format nomor HP tidak valid"
	case "koordinat":
		return "Format koordinat tidak valid (lat,lng)"
	case "datestr":
		return field + " harus berformat YYYY-MM-DD"
	default:
		return field + " tidak valid"
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

var phoneCleaner = strings.NewReplacer(" ", "", "-", "")

// NormalizePhone membuang spasi dan tanda hubung.
func NormalizePhone(phone string) string {
	return phoneCleaner.Replace(strings.TrimSpace(phone))
}

// IsValidPhone: nomor Indonesia, awalan +62 / 62 / 0.
func IsValidPhone(phone string) bool {
	return phoneRe.MatchString(NormalizePhone(phone))
}

// IsValidKoordinat: "lat,lng" dengan lat ∈ [-90,90] dan lng ∈ [-180,180].
func IsValidKoordinat(s string) bool {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return false
	}
	lat, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// ParseDate menerima YYYY-MM-DD atau RFC3339.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
