package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"pricelist/internal/domain"
)

// APIResponse is the envelope for successful read responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *ListMeta   `json:"meta,omitempty"`
}

// ListMeta holds list metadata.
type ListMeta struct {
	Total int    `json:"total"`
	Query string `json:"query,omitempty"`
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error string `json:"error" example:"Only .docx files are supported"`
}

// UploadResponse is the body of a successful price list upload.
type UploadResponse struct {
	Success bool   `json:"success" example:"true"`
	Count   int    `json:"count" example:"412"`
	Message string `json:"message" example:"Successfully loaded 412 products."`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondList sends a 200 success response with list metadata.
func RespondList(c *gin.Context, data interface{}, meta ListMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorResponse{Error: msg})
}

// MapDomainError translates domain errors to HTTP status codes and messages.
// Unmapped errors are 500s whose message carries the error text.
func MapDomainError(err error) (status int, msg string) {
	switch {
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusBadRequest, "File too large"
	case errors.Is(err, domain.ErrUnsupportedContentType):
		return http.StatusBadRequest, "Expected multipart/form-data"
	case errors.Is(err, domain.ErrMissingFile):
		return http.StatusBadRequest, "No file field found"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "Only .docx files are supported"
	case errors.Is(err, domain.ErrNoProducts):
		return http.StatusBadRequest, "No products found in the file"
	case errors.Is(err, domain.ErrInvalidDocument):
		return http.StatusBadRequest, "Invalid .docx file"
	case errors.Is(err, domain.ErrPriceListNotFound):
		return http.StatusNotFound, "No price list loaded"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, domain.ErrEmptyQuote):
		return http.StatusBadRequest, "Select at least one product"
	case errors.Is(err, domain.ErrQuoteTooLarge),
		errors.Is(err, domain.ErrUnknownProduct),
		errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrUnsupportedExportFormat):
		return http.StatusBadRequest, "Unsupported export format; allowed: csv, xlsx"
	default:
		return http.StatusInternalServerError, "Server error: " + err.Error()
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, msg)
}
