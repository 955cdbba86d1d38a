package domain

// DocxContentType is the MIME type of an Office Open XML word-processing document.
const DocxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// AllowedExtensions maps accepted upload extensions (without dot) to their content type.
var AllowedExtensions = map[string]string{
	"docx": DocxContentType,
}

// TableLayout identifies the shape of a pricing table.
type TableLayout string

const (
	LayoutSixColumn   TableLayout = "six_column"
	LayoutFiveColumn  TableLayout = "five_column"
	LayoutUnsupported TableLayout = "unsupported"
)

// layoutsByColumns maps a table's grid column count to its layout.
var layoutsByColumns = map[int]TableLayout{
	6: LayoutSixColumn,
	5: LayoutFiveColumn,
}

// priceColumns maps each supported layout to the index of its dealer-price column.
var priceColumns = map[TableLayout]int{
	LayoutSixColumn:  3,
	LayoutFiveColumn: 2,
}

// LayoutForColumns returns the layout of a table with the given column count.
func LayoutForColumns(columns int) TableLayout {
	if l, ok := layoutsByColumns[columns]; ok {
		return l
	}
	return LayoutUnsupported
}

// PriceColumn returns the dealer-price column index, or false for unsupported layouts.
func (l TableLayout) PriceColumn() (int, bool) {
	idx, ok := priceColumns[l]
	return idx, ok
}

// QuoteVariant is a colour variant suffix appended to a product code in a quote.
type QuoteVariant string

const (
	VariantDaylight  QuoteVariant = "DL"
	VariantWarmWhite QuoteVariant = "WW"
)
