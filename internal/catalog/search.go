// Package catalog searches an extracted price list.
package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"pricelist/internal/domain"
)

// MinFuzzyTermLength is the shortest term for which the fuzzy fallback runs.
const MinFuzzyTermLength = 3

type match struct {
	product  domain.ProductRecord
	code     string
	exact    bool
	prefix   bool
	codeOnly bool
	distance int
}

// Search returns the products whose code or description contains term,
// case-insensitively. Results are ordered exact code match first, then codes
// starting with term, then matches on the code alone, then by code. A blank
// term returns every product in list order.
//
// When nothing contains the term and it is at least MinFuzzyTermLength long,
// Search falls back to fuzzy subsequence matching, closest first.
func Search(products []domain.ProductRecord, term string) []domain.ProductRecord {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return slices.Clone(products)
	}

	var matches []match
	for _, p := range products {
		code := strings.ToLower(p.Code)
		inCode := strings.Contains(code, term)
		inDesc := strings.Contains(strings.ToLower(p.Description), term)
		if !inCode && !inDesc {
			continue
		}
		matches = append(matches, match{
			product:  p,
			code:     code,
			exact:    code == term,
			prefix:   strings.HasPrefix(code, term),
			codeOnly: inCode && !inDesc,
		})
	}

	if len(matches) == 0 {
		if len([]rune(term)) < MinFuzzyTermLength {
			return []domain.ProductRecord{}
		}
		return fuzzySearch(products, term)
	}

	slices.SortStableFunc(matches, func(a, b match) int {
		if c := compareFirst(a.exact, b.exact); c != 0 {
			return c
		}
		if c := compareFirst(a.prefix, b.prefix); c != 0 {
			return c
		}
		if c := compareFirst(a.codeOnly, b.codeOnly); c != 0 {
			return c
		}
		return strings.Compare(a.code, b.code)
	})
	return records(matches)
}

func fuzzySearch(products []domain.ProductRecord, term string) []domain.ProductRecord {
	var matches []match
	for _, p := range products {
		best := -1
		for _, target := range []string{p.Code, p.Description} {
			d := fuzzy.RankMatchNormalizedFold(term, target)
			if d >= 0 && (best < 0 || d < best) {
				best = d
			}
		}
		if best < 0 {
			continue
		}
		matches = append(matches, match{product: p, code: strings.ToLower(p.Code), distance: best})
	}

	slices.SortStableFunc(matches, func(a, b match) int {
		if c := cmp.Compare(a.distance, b.distance); c != 0 {
			return c
		}
		return strings.Compare(a.code, b.code)
	})
	return records(matches)
}

// compareFirst orders true before false.
func compareFirst(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return -1
	default:
		return 1
	}
}

func records(matches []match) []domain.ProductRecord {
	out := make([]domain.ProductRecord, len(matches))
	for i, m := range matches {
		out[i] = m.product
	}
	return out
}

// Find returns the product with exactly the given code.
func Find(products []domain.ProductRecord, code string) (domain.ProductRecord, bool) {
	for _, p := range products {
		if p.Code == code {
			return p, true
		}
	}
	return domain.ProductRecord{}, false
}
