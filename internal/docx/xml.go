package docx

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// The structs below match on local element names only, so the
// WordprocessingML namespace prefix does not matter.

type xmlDocument struct {
	Body xmlBody `xml:"body"`
}

type xmlBody struct {
	Tables []xmlTable `xml:"tbl"`
}

type xmlTable struct {
	Grid []struct{} `xml:"tblGrid>gridCol"`
	Rows []xmlRow   `xml:"tr"`
}

type xmlRow struct {
	Cells []xmlCell `xml:"tc"`
}

type xmlCell struct {
	Props      xmlCellProps   `xml:"tcPr"`
	Paragraphs []xmlParagraph `xml:"p"`
}

type xmlCellProps struct {
	GridSpan *xmlVal `xml:"gridSpan"`
	VMerge   *xmlVal `xml:"vMerge"`
}

type xmlVal struct {
	Val string `xml:"val,attr"`
}

func (p xmlCellProps) span() int {
	if p.GridSpan == nil {
		return 1
	}
	n, err := strconv.Atoi(p.GridSpan.Val)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// isMergeContinuation reports a <w:vMerge/> without val="restart".
func (p xmlCellProps) isMergeContinuation() bool {
	return p.VMerge != nil && p.VMerge.Val != "restart"
}

// xmlParagraph collects the text of the runs directly inside a paragraph,
// including runs wrapped in hyperlinks. Text in nested content such as
// text boxes is not part of the paragraph text.
type xmlParagraph struct {
	Text string
}

func (p *xmlParagraph) UnmarshalXML(d *xml.Decoder, _ xml.StartElement) error {
	var sb strings.Builder
	if err := decodeParagraph(d, &sb); err != nil {
		return err
	}
	p.Text = sb.String()
	return nil
}

func decodeParagraph(d *xml.Decoder, sb *strings.Builder) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "r":
				err = decodeRun(d, sb)
			case "hyperlink":
				err = decodeParagraph(d, sb)
			default:
				err = d.Skip()
			}
			if err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

// decodeRun appends the text of a single <w:r> element.
func decodeRun(d *xml.Decoder, sb *strings.Builder) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "t":
				var s string
				if err := d.DecodeElement(&s, &el); err != nil {
					return err
				}
				sb.WriteString(s)
				continue
			case "tab", "ptab":
				sb.WriteByte('\t')
			case "cr":
				sb.WriteByte('\n')
			case "br":
				// Page and column breaks carry no text.
				if t := breakType(el); t == "" || t == "textWrapping" {
					sb.WriteByte('\n')
				}
			case "noBreakHyphen":
				sb.WriteByte('-')
			}
			if err := d.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

func breakType(el xml.StartElement) string {
	for _, a := range el.Attr {
		if a.Name.Local == "type" {
			return a.Value
		}
	}
	return ""
}
