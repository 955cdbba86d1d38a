package parser

import (
	"iter"
	"strings"
	"unicode"

	"pricelist/internal/domain"
)

// PricedRow is a table row that passed the extractor's filters.
type PricedRow struct {
	Table       int
	Row         int
	ProductText string
	Price       string
}

// Rows yields the priced rows of doc in table and row order. The first table
// is a legend and is always skipped, as are tables whose layout has no known
// dealer-price column. stats may be nil.
func Rows(doc *domain.Document, stats *Stats) iter.Seq[PricedRow] {
	return func(yield func(PricedRow) bool) {
		if doc == nil {
			return
		}
		for ti, table := range doc.Tables {
			if stats != nil {
				stats.Tables++
			}
			if ti == 0 {
				stats.skip(SkipLegendTable)
				continue
			}
			priceCol, ok := domain.LayoutForColumns(table.Columns).PriceColumn()
			if !ok {
				stats.skip(SkipUnsupportedTable)
				continue
			}
			for ri, row := range table.Rows {
				if stats != nil {
					stats.Rows++
				}
				pr, reason, ok := pricedRow(row, priceCol)
				if !ok {
					stats.skip(reason)
					continue
				}
				pr.Table, pr.Row = ti, ri
				if !yield(pr) {
					return
				}
			}
		}
	}
}

func pricedRow(row domain.Row, priceCol int) (PricedRow, SkipReason, bool) {
	cells := make([]string, len(row.Cells))
	for i, c := range row.Cells {
		cells[i] = strings.TrimSpace(c)
	}

	if len(cells) == 0 || cells[0] == "" {
		return PricedRow{}, SkipEmptyProductCell, false
	}
	code, _, ok := ParseProductCell(cells[0])
	if !ok || code == "" {
		return PricedRow{}, SkipEmptyCode, false
	}
	if IsHeaderCode(code) {
		return PricedRow{}, SkipHeaderRow, false
	}

	var price string
	if priceCol < len(cells) {
		price = strings.TrimSpace(firstLine(cells[priceCol]))
	}
	if !hasDigit(price) {
		return PricedRow{}, SkipMissingPrice, false
	}
	return PricedRow{ProductText: cells[0], Price: price}, "", true
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func hasDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}
