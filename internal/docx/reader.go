// Package docx reads the tables of an Office Open XML word-processing document.
//
// Only the parts needed for price list extraction are decoded: the top-level
// tables of word/document.xml, their grid column count and the text of each
// cell. Cell text follows the usual Word conventions: paragraphs are joined
// with "\n", tabs become "\t" and line breaks become "\n".
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"pricelist/internal/domain"
)

const documentPart = "word/document.xml"

// DefaultMaxPartSize bounds the decompressed size of word/document.xml.
const DefaultMaxPartSize int64 = 64 << 20

// Parse decodes the tables of a .docx file held in memory, reading at most
// DefaultMaxPartSize bytes of document markup.
// Any structural problem is reported as an error wrapping domain.ErrInvalidDocument.
func Parse(data []byte) (*domain.Document, error) {
	return ParseWithLimit(data, DefaultMaxPartSize)
}

// ParseWithLimit is Parse with an explicit cap on the decompressed size of
// word/document.xml. A larger part is rejected as an invalid document.
func ParseWithLimit(data []byte, maxPartSize int64) (*domain.Document, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: not a zip archive: %v", domain.ErrInvalidDocument, err)
	}

	part, err := readPart(zr, documentPart, maxPartSize)
	if err != nil {
		return nil, err
	}

	var doc xmlDocument
	if err := xml.Unmarshal(part, &doc); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", domain.ErrInvalidDocument, documentPart, err)
	}

	out := &domain.Document{Tables: make([]domain.Table, 0, len(doc.Body.Tables))}
	for i := range doc.Body.Tables {
		out.Tables = append(out.Tables, doc.Body.Tables[i].toTable())
	}
	return out, nil
}

func readPart(zr *zip.Reader, name string, maxSize int64) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		if f.UncompressedSize64 > uint64(maxSize) {
			return nil, fmt.Errorf("%w: %s is %d bytes, limit %d", domain.ErrInvalidDocument, name, f.UncompressedSize64, maxSize)
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: opening %s: %v", domain.ErrInvalidDocument, name, err)
		}
		defer func() { _ = rc.Close() }()

		// The declared size is not trusted.
		b, err := io.ReadAll(io.LimitReader(rc, maxSize+1))
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", domain.ErrInvalidDocument, name, err)
		}
		if int64(len(b)) > maxSize {
			return nil, fmt.Errorf("%w: %s exceeds %d bytes", domain.ErrInvalidDocument, name, maxSize)
		}
		return b, nil
	}
	return nil, fmt.Errorf("%w: missing %s", domain.ErrInvalidDocument, name)
}

// toTable lays the cells of every row out on the table grid. A cell spanning
// several grid columns is repeated once per column, and a vertically merged
// continuation cell takes the text of the cell above it.
func (t *xmlTable) toTable() domain.Table {
	table := domain.Table{
		Columns: len(t.Grid),
		Rows:    make([]domain.Row, 0, len(t.Rows)),
	}

	var prev []string
	for _, tr := range t.Rows {
		cells := make([]string, 0, len(tr.Cells))
		for _, tc := range tr.Cells {
			text := tc.text()
			if tc.Props.isMergeContinuation() {
				text = ""
				if col := len(cells); col < len(prev) {
					text = prev[col]
				}
			}
			for span := tc.Props.span(); span > 0; span-- {
				cells = append(cells, text)
			}
		}
		table.Rows = append(table.Rows, domain.Row{Cells: cells})
		prev = cells
	}
	return table
}

func (c *xmlCell) text() string {
	parts := make([]string, len(c.Paragraphs))
	for i := range c.Paragraphs {
		parts[i] = c.Paragraphs[i].Text
	}
	return strings.Join(parts, "\n")
}
