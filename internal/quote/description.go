package quote

import (
	"regexp"
	"strings"
)

var (
	colourWarrantyRe = regexp.MustCompile(`(?i)\s*(?:(?:Daylight|Cool\s+White|Warm\s+White|White)/?)+\s*(\d+)\s*years?\s+warranty`)
	warrantyRe       = regexp.MustCompile(`(?i)\s*(\d+)\s*years?\s+warranty`)
)

// DefaultWarranty is appended when a description states no warranty.
const DefaultWarranty = "(1yr warranty)"

// FormatDescription shortens a description for a quote. A colour list
// directly before an "N years warranty" clause is dropped and the clause is
// rewritten as "(Nyr warranty)" or "(Nyrs warranty)" at the end.
func FormatDescription(description string) string {
	if description == "" {
		return DefaultWarranty
	}

	for _, re := range []*regexp.Regexp{colourWarrantyRe, warrantyRe} {
		text, years, ok := cutFirst(re, description)
		if !ok {
			continue
		}
		text = strings.TrimSpace(text)
		clause := "(" + yearsLabel(years) + " warranty)"
		if text == "" {
			return clause
		}
		return text + " " + clause
	}

	return strings.TrimSpace(description + " " + DefaultWarranty)
}

// cutFirst removes the leftmost match of re from s and returns the first
// capture group of that match.
func cutFirst(re *regexp.Regexp, s string) (rest, group string, ok bool) {
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return s, "", false
	}
	return s[:loc[0]] + s[loc[1]:], s[loc[2]:loc[3]], true
}

func yearsLabel(n string) string {
	if n == "1" {
		return "1yr"
	}
	return n + "yrs"
}
