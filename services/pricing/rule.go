package pricing

import (
	"fmt"
	"strings"

	"sparkle/models"
)

// Component is the type-specific part of a pricing rule. Exactly one of the
// concrete variants below implements it per rule type, and each carries only
// the amounts that type uses.
type Component interface {
	Type() models.RuleType
}

// BasePrice is a flat price and duration.
type BasePrice struct {
	Price float64
	Hours float64
}

// SqftRate scales with the home's square footage.
type SqftRate struct {
	Rate         float64
	HoursPerUnit float64
}

// BedroomRate scales with the bedroom count.
type BedroomRate struct {
	Rate         float64
	HoursPerUnit float64
}

// BathroomRate scales with the bathroom count.
type BathroomRate struct {
	Rate         float64
	HoursPerUnit float64
}

// ExtraService is a selectable add-on, applied only when the booking picks it.
type ExtraService struct {
	Name        string
	Description string
	Price       float64
	Hours       float64
}

// TimeEstimate adjusts duration only and never contributes to price.
type TimeEstimate struct {
	Hours        float64
	HoursPerSqft float64
}

func (BasePrice) Type() models.RuleType { return models.RuleBasePrice }
func (SqftRate) Type() models.RuleType { return models.RuleSqftRate }
func (BedroomRate) Type() models.RuleType { return models.RuleBedroomRate }
func (BathroomRate) Type() models.RuleType { return models.RuleBathroomRate }
func (ExtraService) Type() models.RuleType { return models.RuleExtraService }
func (TimeEstimate) Type() models.RuleType { return models.RuleTimeEstimate }

// PriceRange bounds a single rule's own price contribution. A nil bound does
// not clamp that side.
type PriceRange struct {
	Min *float64
	Max *float64
}

// Rule is a decoded pricing rule ready for evaluation.
type Rule struct {
	ID           string
	ServiceType  *string // nil applies to every service type
	Active       bool
	DisplayOrder int
	Range        PriceRange
	Component    Component
}

// AppliesTo reports whether the rule takes part in pricing the given service type.
func (r Rule) AppliesTo(serviceType string) bool {
	if !r.Active || r.Component == nil {
		return false
	}
	return r.ServiceType == nil || *r.ServiceType == serviceType
}

func value(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// Decode converts a stored record into its evaluation variant. Missing
// optional amounts decode as zero; only an unknown rule type fails.
func Decode(rec models.PricingRule) (Rule, error) {
	r := Rule{
		ID:           rec.ID,
		Active:       rec.IsActive,
		DisplayOrder: rec.DisplayOrder,
		Range:        PriceRange{Min: rec.PriceRangeMin, Max: rec.PriceRangeMax},
	}
	if rec.ServiceType != nil && strings.TrimSpace(*rec.ServiceType) != "" {
		st := *rec.ServiceType
		r.ServiceType = &st
	}

	switch rec.RuleType {
	case models.RuleBasePrice:
		r.Component = BasePrice{Price: value(rec.PriceAmount), Hours: value(rec.TimeAmount)}
	case models.RuleSqftRate:
		r.Component = SqftRate{Rate: value(rec.RatePerUnit), HoursPerUnit: value(rec.TimePerUnit)}
	case models.RuleBedroomRate:
		r.Component = BedroomRate{Rate: value(rec.RatePerUnit), HoursPerUnit: value(rec.TimePerUnit)}
	case models.RuleBathroomRate:
		r.Component = BathroomRate{Rate: value(rec.RatePerUnit), HoursPerUnit: value(rec.TimePerUnit)}
	case models.RuleExtraService:
		r.Component = ExtraService{
			Name:        rec.ExtraName,
			Description: rec.ExtraDescription,
			Price:       value(rec.PriceAmount),
			Hours:       value(rec.TimeAmount),
		}
	case models.RuleTimeEstimate:
		r.Component = TimeEstimate{Hours: value(rec.TimeAmount), HoursPerSqft: value(rec.TimePerUnit)}
	default:
		return Rule{}, &ValidationError{Field: "ruleType", Reason: fmt.Sprintf("unknown rule type %q", rec.RuleType)}
	}
	return r, nil
}

// Compile decodes every record, returning the rules that decoded and the
// errors for those that did not.
func Compile(records []models.PricingRule) ([]Rule, []error) {
	rules := make([]Rule, 0, len(records))
	var skipped []error
	for _, rec := range records {
		r, err := Decode(rec)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("rule %s: %w", rec.ID, err))
			continue
		}
		rules = append(rules, r)
	}
	return rules, skipped
}
