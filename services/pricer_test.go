package services

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"roposo-sync/models"
	"roposo-sync/utils"
)

func newTestLogger() *utils.Logger { return utils.NewLoggerTo(io.Discard, io.Discard) }

const source = "https://roposo.com/collections/trending-now"

func TestParsePrice(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"Rs. 1,234.50", 1234.50},
		{"Rs. 800", 800},
		{"₹ 499", 499},
		{"$12.99", 12.99},
		{"Sale price Rs.2,099.00", 2099},
	}

	for _, tt := range tests {
		got, err := ParsePrice(tt.raw)
		if err != nil {
			t.Errorf("ParsePrice(%q) error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePrice(%q) = %.2f; want %.2f", tt.raw, got, tt.want)
		}
	}
}

func TestParsePriceRejects(t *testing.T) {
	for _, raw := range []string{"", "Rs.", "$", "Rs. 1.200.50", "Rs. 0", "Rs. 800 Rs. 1000.5"} {
		_, err := ParsePrice(raw)
		if err == nil {
			t.Errorf("ParsePrice(%q) should fail", raw)
		}
	}

	_, err := ParsePrice("Rs. ")
	require.True(t, errors.Is(err, ErrNoPrice))
}

func TestResalePrice(t *testing.T) {
	p := NewPricer(2.5, newTestLogger())

	require.Equal(t, 3086.25, p.ResalePrice(1234.50))
	require.Equal(t, 2000.0, p.ResalePrice(800))
	require.Equal(t, 33.33, NewPricer(1.0/3, newTestLogger()).ResalePrice(100))
}

func TestTransformSummerDress(t *testing.T) {
	p := NewPricer(2.5, newTestLogger())
	raw := []*models.RawProduct{{
		Name:      "Summer Dress",
		PriceText: "Rs. 800",
		ImageURL:  "https://cdn.site.com/dress.jpg",
		SourceURL: "https://roposo.com/products/dress-1",
	}}

	products, skipped := p.Transform(raw, source)
	require.Zero(t, skipped)
	require.Equal(t, []*models.Product{{
		Name:          "Summer Dress",
		OriginalPrice: 800,
		Price:         2000.0,
		ImageURL:      "https://cdn.site.com/dress.jpg",
		SourceURL:     "https://roposo.com/products/dress-1",
		Description:   "Imported from https://roposo.com/collections/trending-now",
		Rating:        5,
		IsTrending:    true,
	}}, products)
}

func TestTransformDropsUnparseablePrice(t *testing.T) {
	p := NewPricer(2.5, newTestLogger())
	raw := []*models.RawProduct{
		{Name: "A", PriceText: "Rs.", SourceURL: "https://roposo.com/a"},
		{Name: "B", PriceText: "$10", SourceURL: "https://roposo.com/b"},
	}

	products, skipped := p.Transform(raw, source)
	require.Equal(t, 1, skipped)
	require.Len(t, products, 1)
	require.Equal(t, "B", products[0].Name)
	require.Equal(t, 25.0, products[0].Price)
}
