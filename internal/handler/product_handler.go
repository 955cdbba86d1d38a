package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pricelist/internal/artifact"
	"pricelist/internal/export"
	"pricelist/internal/service"
)

// ProductHandler serves the published price list.
type ProductHandler struct {
	priceListService service.PriceListService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(priceListService service.PriceListService) *ProductHandler {
	return &ProductHandler{priceListService: priceListService}
}

// Artifact handles GET /data.json
// @Summary Current price list artifact
// @Tags pricelist
// @Produce json
// @Success 200 {array} domain.ProductRecord
// @Failure 404 {object} ErrorResponse "No price list loaded"
// @Router /data.json [get]
func (h *ProductHandler) Artifact(c *gin.Context) {
	data, err := h.priceListService.RawArtifact(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, artifact.ContentType, data)
}

// List handles GET /api/v1/products
// @Summary List or search products
// @Tags products
// @Produce json
// @Param q query string false "Search term (code or description)"
// @Success 200 {object} APIResponse{data=[]domain.ProductRecord}
// @Failure 404 {object} ErrorResponse "No price list loaded"
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	term := c.Query("q")
	products, err := h.priceListService.Search(c.Request.Context(), term)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondList(c, products, ListMeta{Total: len(products), Query: term})
}

// Export handles GET /api/v1/products/export
// @Summary Export the price list
// @Tags products
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "csv (default) or xlsx"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse "Unsupported format"
// @Failure 404 {object} ErrorResponse "No price list loaded"
// @Router /products/export [get]
func (h *ProductHandler) Export(c *gin.Context) {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		HandleError(c, err)
		return
	}

	products, err := h.priceListService.Products(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, products); err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename("price_list", format, time.Now())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
