package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pricelist/internal/domain"
	"pricelist/internal/service"
)

// UploadHandler handles price list uploads.
type UploadHandler struct {
	priceListService service.PriceListService
	maxBytes         int64
	maxMB            int64
}

// NewUploadHandler creates a new UploadHandler. Requests larger than
// maxMB mebibytes are rejected before the body is read.
func NewUploadHandler(priceListService service.PriceListService, maxMB int64) *UploadHandler {
	return &UploadHandler{
		priceListService: priceListService,
		maxBytes:         maxMB << 20,
		maxMB:            maxMB,
	}
}

// Upload handles POST /upload and POST /api/v1/pricelist/upload
// @Summary Upload a price list
// @Description Extract products from a .docx price list and replace the published list
// @Tags pricelist
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Price list (.docx)"
// @Success 200 {object} UploadResponse "Products loaded"
// @Failure 400 {object} ErrorResponse "Rejected upload"
// @Failure 500 {object} ErrorResponse "Server error"
// @Router /pricelist/upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	if c.Request.ContentLength > h.maxBytes {
		h.tooLarge(c)
		return
	}

	if !strings.Contains(c.GetHeader("Content-Type"), "multipart/form-data") {
		HandleError(c, domain.ErrUnsupportedContentType)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes)
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.tooLarge(c)
			return
		}
		HandleError(c, domain.ErrMissingFile)
		return
	}
	defer func() { _ = file.Close() }()

	result, err := h.priceListService.Upload(c.Request.Context(), service.PriceListUploadInput{
		Filename: header.Filename,
		Size:     header.Size,
		File:     file,
	})
	if err != nil {
		if errors.Is(err, domain.ErrFileTooLarge) {
			h.tooLarge(c)
			return
		}
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, UploadResponse{
		Success: true,
		Count:   result.ProductCount,
		Message: fmt.Sprintf("Successfully loaded %d products.", result.ProductCount),
	})
}

func (h *UploadHandler) tooLarge(c *gin.Context) {
	RespondError(c, http.StatusBadRequest, fmt.Sprintf("File too large (max %d MB)", h.maxMB))
}
