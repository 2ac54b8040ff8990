package helper

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"gorm.io/gorm"
)

// KodeMaxAttempts: batas regenerasi bila insert bentrok di unique index kode.
const KodeMaxAttempts = 10

var ErrKodeExhausted = errors.New("gagal membuat kode unik")

// kodeLocks menserialkan generate+insert per tabel/prefix di dalam satu proses.
// Antar-proses, unique index pada kolom kode tetap jadi penentu akhir (lihat CreateWithKode).
var kodeLocks sync.Map

func kodeLock(key string) *sync.Mutex {
	v, _ := kodeLocks.LoadOrStore(key, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// FormatKode → PREFIX + nomor 4 digit, mis. REL0007.
func FormatKode(prefix string, seq int) string {
	return fmt.Sprintf("%s%04d", prefix, seq)
}

// ParseKodeSeq mengambil nomor urut dari kode ber-prefix; 0 bila tidak cocok.
func ParseKodeSeq(prefix, kode string) int {
	if !strings.HasPrefix(kode, prefix) {
		return 0
	}
	n, err := strconv.Atoi(kode[len(prefix):])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// NextKode = nomor terbesar yang ada + 1.
// Sama dengan count+1 selama tidak ada penghapusan, dan tidak pernah memakai ulang kode lama.
func NextKode(db *gorm.DB, table, prefix string) (string, error) {
	var kodes []string
	err := db.Table(table).
		Where("kode LIKE ?", prefix+"%").
		Order("LENGTH(kode) DESC").
		Order("kode DESC").
		Limit(1).
		Pluck("kode", &kodes).Error
	if err != nil {
		return "", err
	}
	seq := 0
	if len(kodes) > 0 {
		seq = ParseKodeSeq(prefix, kodes[0])
	}
	return FormatKode(prefix, seq+1), nil
}

// CreateWithKode men-generate kode lalu memanggil insert.
// Bila insert gagal karena kode sudah dipakai (proses lain menang duluan),
// kode dibuat ulang sampai KodeMaxAttempts. Error lain dikembalikan apa adanya.
func CreateWithKode(db *gorm.DB, table, prefix string, insert func(kode string) error) (string, error) {
	mu := kodeLock(table + ":" + prefix)
	mu.Lock()
	defer mu.Unlock()

	for attempt := 0; attempt < KodeMaxAttempts; attempt++ {
		kode, err := NextKode(db, table, prefix)
		if err != nil {
			return "", err
		}
		err = insert(kode)
		if err == nil {
			return kode, nil
		}
		if !IsUniqueViolationOn(err, "kode") {
			return "", err
		}
	}
	return "", ErrKodeExhausted
}
