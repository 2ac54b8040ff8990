package csvutil

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"manrelbdg_backend/internals/constants"
)

// ReadUpload membaca file CSV dari field form "file".
// Semua kegagalan dikembalikan sebagai *fiber.Error 400.
func ReadUpload(c *fiber.Ctx, required []string, maxRows int) ([]Row, error) {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "File CSV wajib diunggah")
	}
	if fh.Size > MaxUploadSize {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Ukuran file maksimal 5MB")
	}
	if constants.DetectFileTypeFromExt(fh.Filename) != constants.FileTypeCSV {
		return nil, fiber.NewError(fiber.StatusBadRequest, "File harus berformat .csv")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "File tidak dapat dibaca")
	}
	defer f.Close()

	rows, err := ParseWithHeader(f, required, maxRows)
	if err != nil {
		var mc *MissingColumnsError
		switch {
		case errors.Is(err, ErrEmptyFile), errors.Is(err, ErrTooManyRows), errors.As(err, &mc):
			return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
		default:
			return nil, fiber.NewError(fiber.StatusBadRequest, "Format CSV tidak valid")
		}
	}
	if len(rows) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, ErrEmptyFile.Error())
	}
	return rows, nil
}

// SendCSV menulis CSV sebagai attachment.
func SendCSV(c *fiber.Ctx, kind string, header []string, rows [][]string) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+ExportFilename(kind, "csv", time.Now())+`"`)
	return Write(c, header, rows)
}
