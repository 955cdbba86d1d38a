package export

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"pricelist/internal/domain"
)

// BOM is the UTF-8 byte order mark, written first so Excel on Windows
// decodes the file as UTF-8.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes a header row (code, description, dealerPrice) and one row
// per product.
func WriteCSV(w io.Writer, products []domain.ProductRecord) error {
	if _, err := w.Write(BOM); err != nil {
		return fmt.Errorf("writing bom: %w", err)
	}
	rows := products
	if rows == nil {
		rows = []domain.ProductRecord{}
	}
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}
