package pricing

import (
	"math"
	"strings"

	"sparkle/models"
)

// BookingConfiguration is the home and selection being priced.
type BookingConfiguration struct {
	ServiceType    string   `json:"serviceType" binding:"required"`
	SquareFootage  float64  `json:"squareFootage"`
	Bedrooms       int      `json:"bedrooms"`
	Bathrooms      int      `json:"bathrooms"`
	SelectedExtras []string `json:"selectedExtras,omitempty"`
}

// Result is a price and duration estimate. Total is always Base + Extras.
type Result struct {
	Base            float64  `json:"base"`
	Extras          float64  `json:"extras"`
	Total           float64  `json:"total"`
	DurationMinutes int      `json:"durationMinutes"`
	UnmatchedExtras []string `json:"unmatchedExtras,omitempty"`
}

// ClampPrice bounds v into [lo, hi]; a nil bound leaves that side open.
func ClampPrice(v float64, lo, hi *float64) float64 {
	if lo != nil && v < *lo {
		v = *lo
	}
	if hi != nil && v > *hi {
		v = *hi
	}
	return v
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// contribution returns a rule's own price and hours. priced is false for
// components that never affect price, which also exempts them from clamping.
func contribution(c Component, cfg BookingConfiguration) (price, hours float64, priced bool) {
	sqft := math.Max(0, cfg.SquareFootage)
	// Bedrooms and bathrooms scale by the raw count; no unit is included for free.
	bedrooms := float64(max(0, cfg.Bedrooms))
	bathrooms := float64(max(0, cfg.Bathrooms))

	switch v := c.(type) {
	case BasePrice:
		return v.Price, v.Hours, true
	case SqftRate:
		return v.Rate * sqft, v.HoursPerUnit * sqft, true
	case BedroomRate:
		return v.Rate * bedrooms, v.HoursPerUnit * bedrooms, true
	case BathroomRate:
		return v.Rate * bathrooms, v.HoursPerUnit * bathrooms, true
	case ExtraService:
		return v.Price, v.Hours, true
	case TimeEstimate:
		return 0, v.Hours + v.HoursPerSqft*sqft, false
	}
	return 0, 0, false
}

type extraSelection struct {
	ids     []string
	matched map[string]bool
}

func newExtraSelection(selected []string) *extraSelection {
	s := &extraSelection{matched: make(map[string]bool, len(selected))}
	seen := make(map[string]bool, len(selected))
	for _, id := range selected {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		s.ids = append(s.ids, id)
	}
	return s
}

// pick reports whether the extra rule is selected, matching on rule id or
// (case-insensitively) on the extra's name.
func (s *extraSelection) pick(ruleID string, extra ExtraService) bool {
	picked := false
	for _, id := range s.ids {
		if (ruleID != "" && id == ruleID) || strings.EqualFold(id, strings.TrimSpace(extra.Name)) {
			s.matched[id] = true
			picked = true
		}
	}
	return picked
}

func (s *extraSelection) unmatched() []string {
	var out []string
	for _, id := range s.ids {
		if !s.matched[id] {
			out = append(out, id)
		}
	}
	return out
}

// Evaluate prices a booking configuration against a rule set. Inactive rules
// and rules scoped to another service type are ignored, every remaining rule
// contributes independently, and each rule's own price is clamped to its range
// before summing. It is pure and safe for concurrent use.
func Evaluate(rules []Rule, cfg BookingConfiguration) Result {
	extras := newExtraSelection(cfg.SelectedExtras)

	var baseSum, extrasSum, hours float64
	for _, r := range rules {
		if !r.AppliesTo(cfg.ServiceType) {
			continue
		}
		if extra, ok := r.Component.(ExtraService); ok && !extras.pick(r.ID, extra) {
			continue
		}

		price, h, priced := contribution(r.Component, cfg)
		hours += h
		if !priced {
			continue
		}
		price = roundCents(ClampPrice(price, r.Range.Min, r.Range.Max))
		if r.Component.Type() == models.RuleExtraService {
			extrasSum += price
		} else {
			baseSum += price
		}
	}

	res := Result{
		Base:            roundCents(baseSum),
		Extras:          roundCents(extrasSum),
		DurationMinutes: int(math.Round(math.Max(0, hours) * 60)),
		UnmatchedExtras: extras.unmatched(),
	}
	res.Total = res.Base + res.Extras
	return res
}

// EvaluateRecords decodes stored records and evaluates them, skipping any
// record whose type is not recognised.
func EvaluateRecords(records []models.PricingRule, cfg BookingConfiguration) Result {
	rules, _ := Compile(records)
	return Evaluate(rules, cfg)
}
