package parser

// SkipReason names why a table or row contributed no product.
type SkipReason string

const (
	SkipLegendTable      SkipReason = "legend_table"
	SkipUnsupportedTable SkipReason = "unsupported_table"
	SkipEmptyProductCell SkipReason = "empty_product_cell"
	SkipEmptyCode        SkipReason = "empty_code"
	SkipHeaderRow        SkipReason = "header_row"
	SkipMissingPrice     SkipReason = "missing_price"
	SkipDuplicateCode    SkipReason = "duplicate_code"
)

// Stats counts what an extraction run looked at and what it dropped.
// Skips are diagnostics only; they never fail an extraction.
type Stats struct {
	Tables   int
	Rows     int
	Products int
	Skipped  map[SkipReason]int
}

// NewStats returns zeroed Stats.
func NewStats() *Stats {
	return &Stats{Skipped: make(map[SkipReason]int)}
}

func (s *Stats) skip(reason SkipReason) {
	if s == nil {
		return
	}
	s.Skipped[reason]++
}

// TotalSkipped returns the number of skipped rows, excluding whole tables.
func (s *Stats) TotalSkipped() int {
	if s == nil {
		return 0
	}
	n := 0
	for reason, count := range s.Skipped {
		if reason == SkipLegendTable || reason == SkipUnsupportedTable {
			continue
		}
		n += count
	}
	return n
}
