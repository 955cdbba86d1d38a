// Package artifact encodes the product list consumed by the price list app.
package artifact

import (
	"bytes"
	"encoding/json"
	"fmt"

	"pricelist/internal/domain"
)

// ContentType of an encoded artifact.
const ContentType = "application/json"

// Encode renders products as a JSON array of {code, description,
// dealerPrice} objects. HTML characters are left unescaped. When indent is
// true, the array is indented with two spaces.
func Encode(products []domain.ProductRecord, indent bool) ([]byte, error) {
	if products == nil {
		products = []domain.ProductRecord{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(products); err != nil {
		return nil, fmt.Errorf("encoding artifact: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Decode parses an artifact written by Encode.
func Decode(data []byte) ([]domain.ProductRecord, error) {
	var products []domain.ProductRecord
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decoding artifact: %w", err)
	}
	if products == nil {
		products = []domain.ProductRecord{}
	}
	return products, nil
}
