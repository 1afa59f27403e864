package services

import (
	"errors"
	"math"
	"testing"

	"logistics-quote-service/internal/domain"
)

func testPricing() PricingConfig {
	return PricingConfig{
		BaseFee:   5.0,
		RatePerKM: 1.2,
		SizeMultiplier: map[domain.SizeClass]float64{
			domain.SizeS: 1.0,
			domain.SizeM: 1.3,
			domain.SizeL: 1.6,
		},
	}
}

func TestPriceForZeroDistance(t *testing.T) {
	cfg := testPricing()

	got, err := PriceFor(cfg, 0, domain.SizeS)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != cfg.BaseFee {
		t.Fatalf("price at zero distance = %g, want base fee %g", got, cfg.BaseFee)
	}
}

func TestPriceForExample(t *testing.T) {
	// 5.0 + 95.0*1.2*1.3 = 153.2
	got, err := PriceFor(testPricing(), 95.0, domain.SizeM)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 153.2 {
		t.Fatalf("price = %g, want 153.2", got)
	}
}

func TestPriceForMonotonicInDistance(t *testing.T) {
	cfg := testPricing()
	distances := []float64{0, 0.1, 1, 5, 42.5, 95, 1000}

	for _, size := range []domain.SizeClass{domain.SizeS, domain.SizeM, domain.SizeL} {
		prev := math.Inf(-1)
		for _, d := range distances {
			p, err := PriceFor(cfg, d, size)
			if err != nil {
				t.Fatalf("size=%s distance=%g: unexpected error: %v", size, d, err)
			}
			if p < prev {
				t.Fatalf("size=%s distance=%g: price %g decreased from %g", size, d, p, prev)
			}
			prev = p
		}
	}
}

func TestPriceForRejectsNegativeDistance(t *testing.T) {
	_, err := PriceFor(testPricing(), -1, domain.SizeS)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPriceForRejectsUnknownSize(t *testing.T) {
	_, err := PriceFor(testPricing(), 10, domain.SizeClass("XL"))
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPricingConfigValidate(t *testing.T) {
	cfg := testPricing()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	missing := testPricing()
	delete(missing.SizeMultiplier, domain.SizeL)
	if err := missing.Validate(); err == nil {
		t.Fatal("expected error for missing size multiplier")
	}

	negative := testPricing()
	negative.BaseFee = -1
	if err := negative.Validate(); err == nil {
		t.Fatal("expected error for negative base fee")
	}
}
