package parser

import (
	"fmt"
	"iter"

	"pricelist/internal/docx"
	"pricelist/internal/domain"
)

// Assemble turns priced rows into product records, keeping the first record
// for each code. The seen-set lives only for this call.
func Assemble(rows iter.Seq[PricedRow], stats *Stats) []domain.ProductRecord {
	products := []domain.ProductRecord{}
	seen := make(map[string]struct{})

	for row := range rows {
		code, description, ok := ParseProductCell(row.ProductText)
		switch {
		case !ok || code == "":
			stats.skip(SkipEmptyCode)
			continue
		case IsHeaderCode(code):
			stats.skip(SkipHeaderRow)
			continue
		}
		if _, dup := seen[code]; dup {
			stats.skip(SkipDuplicateCode)
			continue
		}
		seen[code] = struct{}{}
		products = append(products, domain.ProductRecord{
			Code:        code,
			Description: description,
			DealerPrice: row.Price,
		})
	}

	if stats != nil {
		stats.Products = len(products)
	}
	return products
}

// ExtractDocument runs the extraction pipeline over an already parsed document.
func ExtractDocument(doc *domain.Document) ([]domain.ProductRecord, *Stats) {
	stats := NewStats()
	return Assemble(Rows(doc, stats), stats), stats
}

// ExtractProducts parses .docx bytes and returns the unique product records
// in order of first appearance.
//
// Unparseable input yields an error wrapping domain.ErrInvalidDocument. A
// document that parses but yields no product returns domain.ErrNoProducts
// together with the stats of the run.
func ExtractProducts(data []byte) ([]domain.ProductRecord, *Stats, error) {
	doc, err := docx.Parse(data)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing document: %w", err)
	}

	products, stats := ExtractDocument(doc)
	if len(products) == 0 {
		return nil, stats, domain.ErrNoProducts
	}
	return products, stats, nil
}
