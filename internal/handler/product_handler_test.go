package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"pricelist/internal/domain"
	"pricelist/internal/handler"
	"pricelist/mocks"
)

func getContext(target string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, target, nil)
	return c, w
}

var handlerProducts = []domain.ProductRecord{
	{Code: "SKU1", Description: "Widget A", DealerPrice: "150.00"},
	{Code: "SKU2", Description: "Widget B", DealerPrice: "1,250"},
}

func TestProductHandler_Artifact(t *testing.T) {
	svc := new(mocks.MockPriceListService)
	h := handler.NewProductHandler(svc)
	raw := []byte(`[{"code":"SKU1","description":"Widget A","dealerPrice":"150.00"}]`)
	svc.On("RawArtifact", mock.Anything).Return(raw, nil)

	c, w := getContext("/data.json")
	h.Artifact(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, raw, w.Body.Bytes())
}

func TestProductHandler_Artifact_NotLoaded(t *testing.T) {
	svc := new(mocks.MockPriceListService)
	h := handler.NewProductHandler(svc)
	svc.On("RawArtifact", mock.Anything).Return(nil, domain.ErrPriceListNotFound)

	c, w := getContext("/data.json")
	h.Artifact(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"No price list loaded"}`, w.Body.String())
}

func TestProductHandler_List(t *testing.T) {
	svc := new(mocks.MockPriceListService)
	h := handler.NewProductHandler(svc)
	svc.On("Search", mock.Anything, "widget").Return(handlerProducts, nil)

	c, w := getContext("/api/v1/products?q=widget")
	h.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool                   `json:"success"`
		Data    []domain.ProductRecord `json:"data"`
		Meta    handler.ListMeta       `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, handlerProducts, resp.Data)
	assert.Equal(t, 2, resp.Meta.Total)
	assert.Equal(t, "widget", resp.Meta.Query)
}

func TestProductHandler_List_NotLoaded(t *testing.T) {
	svc := new(mocks.MockPriceListService)
	h := handler.NewProductHandler(svc)
	svc.On("Search", mock.Anything, "").Return(nil, domain.ErrPriceListNotFound)

	c, w := getContext("/api/v1/products")
	h.List(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"No price list loaded"}`, w.Body.String())
}

func TestProductHandler_Export_CSV(t *testing.T) {
	svc := new(mocks.MockPriceListService)
	h := handler.NewProductHandler(svc)
	svc.On("Products", mock.Anything).Return(handlerProducts, nil)

	c, w := getContext("/api/v1/products/export")
	h.Export(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Regexp(t, `attachment; filename="price_list_\d{4}-\d{2}-\d{2}\.csv"`, w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Body.String(), "code,description,dealerPrice\n")
	assert.Contains(t, w.Body.String(), `SKU2,Widget B,"1,250"`)
}

func TestProductHandler_Export_XLSX(t *testing.T) {
	svc := new(mocks.MockPriceListService)
	h := handler.NewProductHandler(svc)
	svc.On("Products", mock.Anything).Return(handlerProducts, nil)

	c, w := getContext("/api/v1/products/export?format=xlsx")
	h.Export(c)

	require.Equal(t, http.StatusOK, w.Code)
	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Price List")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestProductHandler_Export_UnsupportedFormat(t *testing.T) {
	svc := new(mocks.MockPriceListService)
	h := handler.NewProductHandler(svc)

	c, w := getContext("/api/v1/products/export?format=pdf")
	h.Export(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Products", mock.Anything)
}
