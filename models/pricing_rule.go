package models

import "time"

// RuleType names one of the closed set of pricing-rule kinds.
type RuleType string

const (
	RuleBasePrice    RuleType = "BASE_PRICE"
	RuleSqftRate     RuleType = "SQFT_RATE"
	RuleBedroomRate  RuleType = "BEDROOM_RATE"
	RuleBathroomRate RuleType = "BATHROOM_RATE"
	RuleExtraService RuleType = "EXTRA_SERVICE"
	RuleTimeEstimate RuleType = "TIME_ESTIMATE"
)

// RuleTypes lists every recognised rule type.
var RuleTypes = []RuleType{
	RuleBasePrice,
	RuleSqftRate,
	RuleBedroomRate,
	RuleBathroomRate,
	RuleExtraService,
	RuleTimeEstimate,
}

// PricingRule is the admin-editable record as stored and exchanged with the
// portals. Numeric fields are optional; which ones matter depends on RuleType.
type PricingRule struct {
	ID          string   `bson:"id" json:"id"`
	RuleType    RuleType `bson:"ruleType" json:"ruleType" binding:"required"`
	ServiceType *string  `bson:"serviceType,omitempty" json:"serviceType,omitempty"`
	PriceAmount *float64 `bson:"priceAmount,omitempty" json:"priceAmount,omitempty"`
	RatePerUnit *float64 `bson:"ratePerUnit,omitempty" json:"ratePerUnit,omitempty"`
	// Durations are expressed in hours.
	TimeAmount  *float64 `bson:"timeAmount,omitempty" json:"timeAmount,omitempty"`
	TimePerUnit *float64 `bson:"timePerUnit,omitempty" json:"timePerUnit,omitempty"`
	// Extra fields are only meaningful for EXTRA_SERVICE rules.
	ExtraName        string    `bson:"extraName,omitempty" json:"extraName,omitempty"`
	ExtraDescription string    `bson:"extraDescription,omitempty" json:"extraDescription,omitempty"`
	IsActive         bool      `bson:"isActive" json:"isActive"`
	DisplayOrder     int       `bson:"displayOrder" json:"displayOrder"`
	PriceRangeMin    *float64  `bson:"priceRangeMin,omitempty" json:"priceRangeMin,omitempty"`
	PriceRangeMax    *float64  `bson:"priceRangeMax,omitempty" json:"priceRangeMax,omitempty"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}

// PricingWarning records a configuration inconsistency observed while
// quoting, e.g. a wizard offering an extra that no active rule prices.
type PricingWarning struct {
	ID          string    `bson:"id" json:"id"`
	Kind        string    `bson:"kind" json:"kind"`
	ServiceType string    `bson:"serviceType" json:"serviceType"`
	Subject     string    `bson:"subject" json:"subject"`
	Occurrences int       `bson:"occurrences" json:"occurrences"`
	FirstSeen   time.Time `bson:"firstSeen" json:"firstSeen"`
	LastSeen    time.Time `bson:"lastSeen" json:"lastSeen"`
}

// WarningUnmatchedExtra is the kind used for extras no active rule prices.
const WarningUnmatchedExtra = "unmatched_extra"

// UnmatchedExtraPayload is the queued task body describing unmatched extras.
type UnmatchedExtraPayload struct {
	ServiceType string    `json:"serviceType"`
	Extras      []string  `json:"extras"`
	ObservedAt  time.Time `json:"observedAt"`
}
