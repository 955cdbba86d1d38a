// Package docxtest builds minimal .docx files for tests.
package docxtest

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

const (
	contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`
	relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`
	documentOpen  = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`
	documentClose = `</w:body></w:document>`
)

// Builder accumulates body content for a test document.
type Builder struct {
	body strings.Builder
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// Paragraph appends a body paragraph.
func (b *Builder) Paragraph(text string) *Builder {
	b.body.WriteString(paragraph(text))
	return b
}

// Table appends a table with the given grid column count. Each cell string is
// written as one paragraph per "\n"-separated line.
func (b *Builder) Table(columns int, rows ...[]string) *Builder {
	b.body.WriteString("<w:tbl><w:tblGrid>")
	for i := 0; i < columns; i++ {
		b.body.WriteString(`<w:gridCol w:w="1000"/>`)
	}
	b.body.WriteString("</w:tblGrid>")
	for _, row := range rows {
		b.body.WriteString("<w:tr>")
		for _, cell := range row {
			b.body.WriteString("<w:tc>")
			for _, line := range strings.Split(cell, "\n") {
				b.body.WriteString(paragraph(line))
			}
			b.body.WriteString("</w:tc>")
		}
		b.body.WriteString("</w:tr>")
	}
	b.body.WriteString("</w:tbl>")
	return b
}

// Raw appends pre-built WordprocessingML markup to the body.
func (b *Builder) Raw(markup string) *Builder {
	b.body.WriteString(markup)
	return b
}

// Bytes returns the zipped document.
func (b *Builder) Bytes() []byte {
	return Package(documentOpen + b.body.String() + documentClose)
}

// Package zips a complete word/document.xml into a .docx container.
func Package(documentXML string) []byte {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	parts := []struct{ name, body string }{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/document.xml", documentXML},
	}
	for _, p := range parts {
		w, err := zw.Create(p.name)
		if err != nil {
			panic(fmt.Sprintf("docxtest: creating %s: %v", p.name, err))
		}
		if _, err := w.Write([]byte(p.body)); err != nil {
			panic(fmt.Sprintf("docxtest: writing %s: %v", p.name, err))
		}
	}
	if err := zw.Close(); err != nil {
		panic(fmt.Sprintf("docxtest: closing archive: %v", err))
	}
	return buf.Bytes()
}

func paragraph(text string) string {
	if text == "" {
		return "<w:p/>"
	}
	var esc bytes.Buffer
	_ = xml.EscapeText(&esc, []byte(text))
	return `<w:p><w:r><w:t xml:space="preserve">` + esc.String() + `</w:t></w:r></w:p>`
}
