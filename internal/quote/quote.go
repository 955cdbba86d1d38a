// Package quote builds dealer quotes from a price list.
package quote

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"pricelist/internal/catalog"
	"pricelist/internal/domain"
)

// Disclaimer closes every quote text; %s is the quote date.
const Disclaimer = "Prices subject to change. Stocks subject to availability. VAT inclusive. Warranty as specified. Price valid as of %s."

// DateLayout formats the quote date.
const DateLayout = "January 2, 2006"

// Selection picks a product and optional quantities of its colour variants.
type Selection struct {
	Code string `json:"code" binding:"required"`
	DL   *int   `json:"dl,omitempty"`
	WW   *int   `json:"ww,omitempty"`
}

// Line is one priced line of a quote.
type Line struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	DealerPrice string `json:"dealerPrice"`
	Quantity    int    `json:"quantity,omitempty"`
	Total       string `json:"total,omitempty"`
}

// Quote is a built quote: structured lines plus the copyable text block.
type Quote struct {
	Company string `json:"company"`
	Date    string `json:"date"`
	Lines   []Line `json:"lines"`
	Total   string `json:"total,omitempty"`
	Text    string `json:"text"`
}

// Builder builds quotes against a product list.
type Builder struct {
	maxItems int
	currency string
	now      func() time.Time
}

// NewBuilder returns a Builder that accepts at most maxItems selections and
// prefixes prices with currency.
func NewBuilder(maxItems int, currency string) *Builder {
	return &Builder{maxItems: maxItems, currency: currency, now: time.Now}
}

// WithClock returns a copy of b that reads the quote date from now.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	c := *b
	c.now = now
	return &c
}

// Build validates the selections against products and renders the quote.
// The company name is upper-cased. Each selection yields a "-DL" and/or
// "-WW" line for the variants given a positive quantity, or one plain line
// when neither is.
func (b *Builder) Build(company string, selections []Selection, products []domain.ProductRecord) (*Quote, error) {
	company = strings.ToUpper(strings.TrimSpace(company))
	if company == "" {
		return nil, fmt.Errorf("%w: company is required", domain.ErrInvalidRequest)
	}
	if len(selections) == 0 {
		return nil, domain.ErrEmptyQuote
	}
	if len(selections) > b.maxItems {
		return nil, fmt.Errorf("%w: %d selected, maximum %d", domain.ErrQuoteTooLarge, len(selections), b.maxItems)
	}

	q := &Quote{
		Company: company,
		Date:    b.now().Format(DateLayout),
		Lines:   []Line{},
	}
	seen := make(map[string]struct{}, len(selections))
	grand := decimal.Zero
	priced := false

	for _, sel := range selections {
		if _, dup := seen[sel.Code]; dup {
			return nil, fmt.Errorf("%w: %s selected twice", domain.ErrInvalidRequest, sel.Code)
		}
		seen[sel.Code] = struct{}{}

		product, ok := catalog.Find(products, sel.Code)
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownProduct, sel.Code)
		}
		desc := FormatDescription(product.Description)

		for _, v := range variants(sel) {
			line := Line{
				Code:        product.Code + v.suffix,
				Description: desc,
				DealerPrice: product.DealerPrice,
				Quantity:    v.qty,
			}
			if v.qty > 0 {
				if total, ok := lineTotal(product.DealerPrice, v.qty); ok {
					line.Total = total.StringFixed(2)
					grand = grand.Add(total)
					priced = true
				}
			}
			q.Lines = append(q.Lines, line)
		}
	}

	if priced {
		q.Total = grand.StringFixed(2)
	}
	q.Text = b.render(q)
	return q, nil
}

type variant struct {
	suffix string
	qty    int
}

func variants(sel Selection) []variant {
	var out []variant
	if sel.DL != nil && *sel.DL > 0 {
		out = append(out, variant{suffix: "-" + string(domain.VariantDaylight), qty: *sel.DL})
	}
	if sel.WW != nil && *sel.WW > 0 {
		out = append(out, variant{suffix: "-" + string(domain.VariantWarmWhite), qty: *sel.WW})
	}
	if len(out) == 0 {
		out = append(out, variant{})
	}
	return out
}

func (b *Builder) render(q *Quote) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (Dealer's Price)\n========\n\n", q.Company)
	for _, l := range q.Lines {
		if l.Quantity > 0 {
			fmt.Fprintf(&sb, "%d PCS\n", l.Quantity)
		}
		fmt.Fprintf(&sb, "%s\n%s\n%s%s/pc\n\n", l.Code, l.Description, b.currency, l.DealerPrice)
	}
	fmt.Fprintf(&sb, Disclaimer, q.Date)
	return sb.String()
}

// lineTotal multiplies a raw dealer price by qty. Thousands separators,
// currency signs and spaces are ignored; any other text makes the price
// unpriceable.
func lineTotal(price string, qty int) (decimal.Decimal, bool) {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-':
			return r
		case r == ',', r == ' ', r == '$', r == '₱':
			return -1
		default:
			return 'x'
		}
	}, price)
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return d.Mul(decimal.NewFromInt(int64(qty))), true
}
