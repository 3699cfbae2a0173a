package pricing

import (
	"strings"

	"sparkle/models"
)

func required(p *float64, field string) error {
	if p == nil {
		return &ValidationError{Field: field, Reason: "is required for this rule type"}
	}
	return nil
}

// Validate enforces the admin-side constraints on a rule before it is stored.
// The evaluator itself never calls it; it tolerates anything Decode accepts.
func Validate(rec models.PricingRule) error {
	if _, err := Decode(rec); err != nil {
		return err
	}

	switch rec.RuleType {
	case models.RuleBasePrice:
		if err := required(rec.PriceAmount, "priceAmount"); err != nil {
			return err
		}
	case models.RuleSqftRate, models.RuleBedroomRate, models.RuleBathroomRate:
		if err := required(rec.RatePerUnit, "ratePerUnit"); err != nil {
			return err
		}
	case models.RuleExtraService:
		if strings.TrimSpace(rec.ExtraName) == "" {
			return &ValidationError{Field: "extraName", Reason: "is required for EXTRA_SERVICE rules"}
		}
		if err := required(rec.PriceAmount, "priceAmount"); err != nil {
			return err
		}
	case models.RuleTimeEstimate:
		if rec.TimeAmount == nil && rec.TimePerUnit == nil {
			return &ValidationError{Field: "timeAmount", Reason: "timeAmount or timePerUnit is required for TIME_ESTIMATE rules"}
		}
		if rec.PriceAmount != nil || rec.RatePerUnit != nil {
			return &ValidationError{Field: "priceAmount", Reason: "TIME_ESTIMATE rules do not carry a price"}
		}
	}

	amounts := []struct {
		field string
		v     *float64
	}{
		{"priceAmount", rec.PriceAmount},
		{"ratePerUnit", rec.RatePerUnit},
		{"timeAmount", rec.TimeAmount},
		{"timePerUnit", rec.TimePerUnit},
		{"priceRangeMin", rec.PriceRangeMin},
		{"priceRangeMax", rec.PriceRangeMax},
	}
	for _, a := range amounts {
		if a.v != nil && *a.v < 0 {
			return &ValidationError{Field: a.field, Reason: "must not be negative"}
		}
	}

	if rec.PriceRangeMin != nil && rec.PriceRangeMax != nil && *rec.PriceRangeMin > *rec.PriceRangeMax {
		return &ValidationError{Field: "priceRangeMin", Reason: "must not exceed priceRangeMax"}
	}
	if rec.ServiceType != nil && strings.TrimSpace(*rec.ServiceType) == "" {
		return &ValidationError{Field: "serviceType", Reason: "must be omitted rather than blank"}
	}
	return nil
}
