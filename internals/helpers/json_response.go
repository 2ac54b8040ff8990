// file: internals/helpers/json_response.go
package helper

import (
	"math"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Envelope
=================================*/

// Response adalah bentuk seragam semua jawaban API.
type Response struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Error      string      `json:"error,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// BuildPagination: totalPages = ceil(total/limit), 0 bila total 0.
func BuildPagination(total int64, page, limit int) Pagination {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if page <= 0 {
		page = DefaultPage
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
}

/* ===============================
   Error helpers
=================================*/

var defaultErrorMessages = map[int]string{
	fiber.StatusBadRequest:          "Bad request",
	fiber.StatusUnauthorized:        "Unauthorized",
	fiber.StatusForbidden:           "Forbidden",
	fiber.StatusNotFound:            "Not found",
	fiber.StatusConflict:            "Conflict",
	fiber.StatusTooManyRequests:     "Too many requests",
	fiber.StatusInternalServerError: "Internal server error",
}

// JsonError: error generic dengan field "error" berisi pesan.
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = defaultErrorMessages[status]
		if message == "" {
			message = "Error"
		}
	}
	return c.Status(status).JSON(Response{Success: false, Error: message})
}

/* ===============================
   JSON responses (standard success)
=================================*/

// JsonOK: response sukses generic (GET detail, dsb)
func JsonOK(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(Response{Success: true, Message: message, Data: data})
}

// JsonCreated: response sukses create (POST)
func JsonCreated(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusCreated).JSON(Response{Success: true, Message: message, Data: data})
}

// JsonUpdated: response sukses update (PATCH/PUT)
func JsonUpdated(c *fiber.Ctx, message string, data any) error {
	return JsonOK(c, message, data)
}

// JsonDeleted: response sukses delete (DELETE)
func JsonDeleted(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(Response{Success: true, Message: message})
}

// JsonList: list dengan pagination
func JsonList(c *fiber.Ctx, data any, p Pagination) error {
	return c.Status(fiber.StatusOK).JSON(Response{Success: true, Data: data, Pagination: &p})
}
