package helper

import (
	"context"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	"manrelbdg_backend/internals/constants"
)

// batas ukuran upload foto
const MaxPhotoSize = int64(5 * 1024 * 1024)

func IsMultipart(c *fiber.Ctx) bool {
	ct := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
	return strings.HasPrefix(ct, "multipart/form-data")
}

// Nama-nama field umum untuk upload gambar
var defaultImageFields = []string{"foto", "photo", "image", "file"}

// GetImageFile mencari file dari beberapa kemungkinan field form.
func GetImageFile(c *fiber.Ctx, fieldNames ...string) (*multipart.FileHeader, error) {
	if !IsMultipart(c) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Gunakan multipart/form-data")
	}
	names := fieldNames
	if len(names) == 0 {
		names = defaultImageFields
	}
	for _, fn := range names {
		if fh, err := c.FormFile(fn); err == nil && fh != nil {
			return fh, nil
		}
	}
	return nil, fiber.NewError(fiber.StatusBadRequest, "File foto wajib diunggah")
}

// UploadPhotoAsWebP memvalidasi, mengonversi ke WebP, lalu menyimpan ke storage.
func UploadPhotoAsWebP(ctx context.Context, store Storage, fh *multipart.FileHeader, dir, name string, opt WebPOptions) (string, error) {
	if fh.Size > MaxPhotoSize {
		return "", fiber.NewError(fiber.StatusBadRequest, "Ukuran foto maksimal 5MB")
	}
	if constants.DetectFileTypeFromExt(fh.Filename) != constants.FileTypeImage {
		return "", fiber.NewError(fiber.StatusBadRequest, "Format foto harus jpg, png, atau webp")
	}
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	raw, err := io.ReadAll(io.LimitReader(src, MaxPhotoSize+1))
	if err != nil {
		return "", err
	}
	out, err := ConvertToWebP(raw, fh.Filename, opt)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "File bukan gambar yang valid")
	}
	return store.Put(ctx, BuildObjectKey(dir, name, ".webp"), out, "image/webp")
}
