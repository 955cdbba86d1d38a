package parser

import "strings"

// HeaderToken is the column title that repeats as a row inside data tables.
const HeaderToken = "PRODUCT"

// ParseProductCell splits the text of a product cell into a code and a
// description. It returns ok=false when the cell has no non-blank line.
//
// The first non-blank line is the code, with trailing "/" removed. The
// remaining lines are a description that the source table wrapped across
// several lines; see joinDescription for how it is reassembled.
func ParseProductCell(text string) (code, description string, ok bool) {
	lines := nonBlankLines(text)
	if len(lines) == 0 {
		return "", "", false
	}
	return strings.TrimRight(lines[0], "/"), joinDescription(lines[1:]), true
}

// IsHeaderCode reports whether code is the repeated column title.
func IsHeaderCode(code string) bool {
	return strings.EqualFold(code, HeaderToken)
}

// IsWarrantyClause reports whether a description fragment is a trailing
// warranty clause that must not be slash-joined with the wrapped text.
func IsWarrantyClause(fragment string) bool {
	return strings.Contains(strings.ToLower(fragment), "warranty")
}

// joinDescription rebuilds a wrapped description. "/" was the wrap join in
// the source, except before a trailing warranty clause which is separated
// by a single space. Fragments are joined verbatim; the only trimming is a
// trailing "/" on the first fragment when a warranty clause follows it.
func joinDescription(lines []string) string {
	switch len(lines) {
	case 0:
		return ""
	case 1:
		return lines[0]
	}

	first, rest := lines[0], lines[1:]
	last := rest[len(rest)-1]
	if !IsWarrantyClause(last) {
		return first + " " + strings.Join(rest, "/")
	}
	first = strings.TrimRight(first, "/")
	if middle := rest[:len(rest)-1]; len(middle) > 0 {
		return first + " " + strings.Join(middle, "/") + " " + last
	}
	return first + " " + last
}

func nonBlankLines(text string) []string {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
