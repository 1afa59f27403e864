package services

import (
	"errors"
	"fmt"
	"math"

	"logistics-quote-service/internal/domain"
)

// PricingConfig holds the business parameters of the quote formula.
// It is passed explicitly at construction (no package-level state) so tests
// and operators can substitute values without touching code.
type PricingConfig struct {
	BaseFee        float64
	RatePerKM      float64
	SizeMultiplier map[domain.SizeClass]float64
}

func (c PricingConfig) Validate() error {
	switch {
	case c.BaseFee < 0:
		return errors.New("BaseFee must be non-negative")
	case c.RatePerKM < 0:
		return errors.New("RatePerKM must be non-negative")
	}

	for _, size := range []domain.SizeClass{domain.SizeS, domain.SizeM, domain.SizeL} {
		m, ok := c.SizeMultiplier[size]
		if !ok {
			return fmt.Errorf("SizeMultiplier is missing size class %s", size)
		}
		if m <= 0 {
			return fmt.Errorf("SizeMultiplier[%s] must be positive, got %g", size, m)
		}
	}

	return nil
}

// PriceFor computes the quoted price for a distance and size class:
//
//	price = BaseFee + distanceKM * RatePerKM * SizeMultiplier[size]
//
// rounded to two decimals. The price is a pure function of its inputs and the
// config; it never fails for finite non-negative distances and known sizes.
func PriceFor(cfg PricingConfig, distanceKM float64, size domain.SizeClass) (float64, error) {
	if distanceKM < 0 {
		return 0, fmt.Errorf("%w: distance must be non-negative, got %g", domain.ErrInvalidInput, distanceKM)
	}
	if math.IsNaN(distanceKM) || math.IsInf(distanceKM, 0) {
		return 0, fmt.Errorf("%w: distance must be finite", domain.ErrInvalidInput)
	}

	mult, ok := cfg.SizeMultiplier[size]
	if !ok {
		return 0, fmt.Errorf("%w: unknown size class %q", domain.ErrInvalidInput, size)
	}

	price := cfg.BaseFee + distanceKM*cfg.RatePerKM*mult
	return math.Round(price*100) / 100, nil
}
