package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pricelist/internal/quote"
	"pricelist/internal/service"
)

// QuoteRequest is the body of POST /api/v1/quotes.
type QuoteRequest struct {
	Company    string            `json:"company" binding:"required" example:"Acme Lighting"`
	Selections []quote.Selection `json:"selections" binding:"dive"`
}

// QuoteHandler handles quote building.
type QuoteHandler struct {
	quoteService service.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(quoteService service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// Create handles POST /api/v1/quotes
// @Summary Build a dealer quote
// @Tags quotes
// @Accept json
// @Produce json
// @Param body body QuoteRequest true "Company and selected products"
// @Success 200 {object} APIResponse{data=quote.Quote}
// @Failure 400 {object} ErrorResponse "Invalid selection"
// @Failure 404 {object} ErrorResponse "No price list loaded"
// @Router /quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	q, err := h.quoteService.Build(c.Request.Context(), service.QuoteInput{
		Company:    req.Company,
		Selections: req.Selections,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, q)
}
