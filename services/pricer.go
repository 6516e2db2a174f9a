package services

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"roposo-sync/models"
	"roposo-sync/utils"
)

const (
	// DefaultRating is stored on every imported product.
	DefaultRating  = 5
	descriptionFmt = "Imported from %s"
)

// nonPriceRegexp matches everything that cannot be part of a decimal number.
var nonPriceRegexp = regexp.MustCompile(`[^\d.]`)

// ErrNoPrice is returned when price text holds no digits.
var ErrNoPrice = errors.New("no numeric price")

// Pricer turns RawProducts into Products priced at the resale markup.
type Pricer struct {
	markup float64
	logger *utils.Logger
}

// NewPricer creates a Pricer with the given markup factor.
func NewPricer(markup float64, logger *utils.Logger) *Pricer {
	return &Pricer{markup: markup, logger: logger}
}

// Transform prices every raw product and drops the ones without a usable
// price. source is referenced in each description.
func (p *Pricer) Transform(raw []*models.RawProduct, source string) (products []*models.Product, skipped int) {
	products = make([]*models.Product, 0, len(raw))
	for _, r := range raw {
		product, err := p.Product(r, source)
		if err != nil {
			skipped++
			continue
		}
		products = append(products, product)
	}

	p.logger.Debug("[pricer] Priced %d → %d products (dropped %d)",
		len(raw), len(products), skipped)
	return products, skipped
}

// Product builds a single Product from r.
func (p *Pricer) Product(r *models.RawProduct, source string) (*models.Product, error) {
	original, err := ParsePrice(r.PriceText)
	if err != nil {
		return nil, err
	}
	return &models.Product{
		Name:          r.Name,
		OriginalPrice: original,
		Price:         p.ResalePrice(original),
		ImageURL:      r.ImageURL,
		SourceURL:     r.SourceURL,
		Description:   fmt.Sprintf(descriptionFmt, source),
		Rating:        DefaultRating,
		IsTrending:    true,
	}, nil
}

// ResalePrice applies the markup and rounds to 2 decimal places.
func (p *Pricer) ResalePrice(original float64) float64 {
	return round2(original * p.markup)
}

// ParsePrice extracts a positive number from free-form currency text.
//
//	"Rs. 1,234.50" → 1234.50
//	"₹ 800"        → 800
//	"$12.99"       → 12.99
func ParsePrice(text string) (float64, error) {
	cleaned := nonPriceRegexp.ReplaceAllString(text, "")
	// The dot of "Rs." survives the strip above.
	cleaned = strings.Trim(cleaned, ".")
	if cleaned == "" {
		return 0, fmt.Errorf("price %q: %w", text, ErrNoPrice)
	}

	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("price %q: %w", text, err)
	}
	if price <= 0 {
		return 0, fmt.Errorf("price %q: not positive", text)
	}
	return price, nil
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
