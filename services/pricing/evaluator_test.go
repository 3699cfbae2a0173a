package pricing

import (
	"math/rand"
	"sync"
	"testing"

	"sparkle/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func num(v float64) *float64 { return &v }
func str(v string) *string { return &v }

func basicRules() []models.PricingRule {
	return []models.PricingRule{
		{ID: "base", RuleType: models.RuleBasePrice, ServiceType: str("Basic"), PriceAmount: num(140), TimeAmount: num(2), IsActive: true},
		{ID: "sqft", RuleType: models.RuleSqftRate, RatePerUnit: num(0.08), IsActive: true},
		{ID: "win", RuleType: models.RuleExtraService, ExtraName: "windows", PriceAmount: num(40), TimeAmount: num(0.75), IsActive: true},
	}
}

func TestEvaluateEndToEnd(t *testing.T) {
	res := EvaluateRecords(basicRules(), BookingConfiguration{
		ServiceType:    "Basic",
		SquareFootage:  1000,
		SelectedExtras: []string{"windows"},
	})

	assert.Equal(t, 220.0, res.Base)
	assert.Equal(t, 40.0, res.Extras)
	assert.Equal(t, 260.0, res.Total)
	assert.Equal(t, 165, res.DurationMinutes)
	assert.Empty(t, res.UnmatchedExtras)
}

func TestEvaluateNoApplicableRules(t *testing.T) {
	inactive := basicRules()
	for i := range inactive {
		inactive[i].IsActive = false
	}
	wrongService := []models.PricingRule{
		{RuleType: models.RuleBasePrice, ServiceType: str("Deep"), PriceAmount: num(300), TimeAmount: num(4), IsActive: true},
	}

	for name, rules := range map[string][]models.PricingRule{
		"all inactive":       inactive,
		"wrong service type": wrongService,
		"empty":              nil,
	} {
		t.Run(name, func(t *testing.T) {
			res := EvaluateRecords(rules, BookingConfiguration{ServiceType: "Basic", SquareFootage: 1200, Bedrooms: 3})
			assert.Equal(t, Result{}, res)
		})
	}
}

func TestEvaluateClampsOwnContribution(t *testing.T) {
	tests := []struct {
		raw  float64
		want float64
	}{
		{raw: 20, want: 50},
		{raw: 900, want: 500},
		{raw: 120, want: 120},
	}
	for _, tt := range tests {
		rules := []Rule{{
			Active:    true,
			Range:     PriceRange{Min: num(50), Max: num(500)},
			Component: BasePrice{Price: tt.raw},
		}}
		res := Evaluate(rules, BookingConfiguration{ServiceType: "Basic"})
		assert.Equal(t, tt.want, res.Base, "raw %v", tt.raw)
	}
}

func TestEvaluateClampIsPerRule(t *testing.T) {
	rules := []Rule{
		{Active: true, Range: PriceRange{Max: num(100)}, Component: SqftRate{Rate: 0.1}},
		{Active: true, Component: BasePrice{Price: 150}},
	}
	res := Evaluate(rules, BookingConfiguration{ServiceType: "Basic", SquareFootage: 2000})
	// 200 from square footage is capped at 100; the base price is untouched.
	assert.Equal(t, 250.0, res.Base)
}

func TestEvaluateOneSidedClamp(t *testing.T) {
	rules := []Rule{{Active: true, Range: PriceRange{Min: num(75)}, Component: BasePrice{Price: 900}}}
	res := Evaluate(rules, BookingConfiguration{})
	assert.Equal(t, 900.0, res.Base)
}

func TestEvaluateRoomRatesUseRawCount(t *testing.T) {
	rules := []Rule{
		{Active: true, Component: BedroomRate{Rate: 15, HoursPerUnit: 0.5}},
		{Active: true, Component: BathroomRate{Rate: 20, HoursPerUnit: 0.25}},
	}
	res := Evaluate(rules, BookingConfiguration{ServiceType: "Basic", Bedrooms: 3, Bathrooms: 2})

	assert.Equal(t, 45.0+40.0, res.Base)
	assert.Equal(t, int((1.5+0.5)*60), res.DurationMinutes)
}

func TestEvaluateTimeEstimateNeverPrices(t *testing.T) {
	rules := []Rule{{
		Active:    true,
		Range:     PriceRange{Min: num(50)},
		Component: TimeEstimate{Hours: 0.5, HoursPerSqft: 0.001},
	}}
	res := Evaluate(rules, BookingConfiguration{ServiceType: "Basic", SquareFootage: 1500})

	assert.Equal(t, 0.0, res.Total)
	assert.Equal(t, 120, res.DurationMinutes)
}

func TestEvaluateExtrasSelection(t *testing.T) {
	rules := []Rule{
		{ID: "oven-rule", Active: true, Component: ExtraService{Name: "Oven", Price: 35, Hours: 0.5}},
		{ID: "fridge-rule", Active: true, Component: ExtraService{Name: "Fridge", Price: 30, Hours: 0.5}},
	}

	t.Run("not selected", func(t *testing.T) {
		res := Evaluate(rules, BookingConfiguration{ServiceType: "Basic"})
		assert.Equal(t, Result{}, res)
	})
	t.Run("by name, case-insensitive", func(t *testing.T) {
		res := Evaluate(rules, BookingConfiguration{ServiceType: "Basic", SelectedExtras: []string{"oven"}})
		assert.Equal(t, 35.0, res.Extras)
		assert.Equal(t, 30, res.DurationMinutes)
	})
	t.Run("by rule id", func(t *testing.T) {
		res := Evaluate(rules, BookingConfiguration{ServiceType: "Basic", SelectedExtras: []string{"fridge-rule"}})
		assert.Equal(t, 30.0, res.Extras)
	})
	t.Run("duplicates count once", func(t *testing.T) {
		res := Evaluate(rules, BookingConfiguration{ServiceType: "Basic", SelectedExtras: []string{"Oven", "Oven", " "}})
		assert.Equal(t, 35.0, res.Extras)
	})
	t.Run("unmatched extras are reported", func(t *testing.T) {
		res := Evaluate(rules, BookingConfiguration{ServiceType: "Basic", SelectedExtras: []string{"garage", "Oven", "balcony"}})
		assert.Equal(t, 35.0, res.Extras)
		assert.Equal(t, []string{"garage", "balcony"}, res.UnmatchedExtras)
	})
}

func TestEvaluateInactiveExtraIsUnmatched(t *testing.T) {
	rules := []Rule{{Active: false, Component: ExtraService{Name: "windows", Price: 40}}}
	res := Evaluate(rules, BookingConfiguration{ServiceType: "Basic", SelectedExtras: []string{"windows"}})

	assert.Equal(t, 0.0, res.Extras)
	assert.Equal(t, []string{"windows"}, res.UnmatchedExtras)
}

func TestEvaluateSkipsUnknownRecordTypes(t *testing.T) {
	records := append(basicRules(), models.PricingRule{ID: "bogus", RuleType: "DISCOUNT", PriceAmount: num(-50), IsActive: true})
	res := EvaluateRecords(records, BookingConfiguration{ServiceType: "Basic", SquareFootage: 1000, SelectedExtras: []string{"windows"}})
	assert.Equal(t, 260.0, res.Total)
}

func TestEvaluateMissingAmountsAreZero(t *testing.T) {
	records := []models.PricingRule{
		{RuleType: models.RuleBasePrice, IsActive: true},
		{RuleType: models.RuleSqftRate, IsActive: true},
		{RuleType: models.RuleTimeEstimate, IsActive: true},
	}
	res := EvaluateRecords(records, BookingConfiguration{ServiceType: "Basic", SquareFootage: 900})
	assert.Equal(t, Result{}, res)
}

func TestEvaluateNegativeInputsDoNotProduceNegativeDuration(t *testing.T) {
	rules := []Rule{{Active: true, Component: SqftRate{Rate: 0.1, HoursPerUnit: 0.002}}}
	res := Evaluate(rules, BookingConfiguration{SquareFootage: -500, Bedrooms: -2})

	assert.Equal(t, 0.0, res.Base)
	assert.GreaterOrEqual(t, res.DurationMinutes, 0)
}

func TestEvaluateTotalInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	types := models.RuleTypes
	services := []string{"Basic", "Deep", "Move-Out"}

	for i := 0; i < 500; i++ {
		var records []models.PricingRule
		n := rng.Intn(8)
		for j := 0; j < n; j++ {
			rec := models.PricingRule{
				ID:          string(rune('a' + j)),
				RuleType:    types[rng.Intn(len(types))],
				PriceAmount: num(float64(rng.Intn(30000)) / 100),
				RatePerUnit: num(float64(rng.Intn(500)) / 1000),
				TimeAmount:  num(float64(rng.Intn(8)) / 4),
				TimePerUnit: num(float64(rng.Intn(10)) / 1000),
				ExtraName:   "extra",
				IsActive:    rng.Intn(4) != 0,
			}
			if rng.Intn(2) == 0 {
				rec.ServiceType = str(services[rng.Intn(len(services))])
			}
			if rng.Intn(3) == 0 {
				rec.PriceRangeMin = num(50)
				rec.PriceRangeMax = num(500)
			}
			records = append(records, rec)
		}
		cfg := BookingConfiguration{
			ServiceType:    services[rng.Intn(len(services))],
			SquareFootage:  float64(rng.Intn(4000)),
			Bedrooms:       rng.Intn(6),
			Bathrooms:      rng.Intn(4),
			SelectedExtras: []string{"extra"},
		}

		res := EvaluateRecords(records, cfg)
		require.Equal(t, res.Base+res.Extras, res.Total)
		require.GreaterOrEqual(t, res.DurationMinutes, 0)
		require.Equal(t, res, EvaluateRecords(records, cfg), "evaluation must be idempotent")
	}
}

func TestEvaluateConcurrentCallsAgree(t *testing.T) {
	rules, skipped := Compile(basicRules())
	require.Empty(t, skipped)
	cfg := BookingConfiguration{ServiceType: "Basic", SquareFootage: 1000, SelectedExtras: []string{"windows"}}
	want := Evaluate(rules, cfg)

	var wg sync.WaitGroup
	results := make([]Result, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Evaluate(rules, cfg)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestClampPrice(t *testing.T) {
	assert.Equal(t, 50.0, ClampPrice(20, num(50), num(500)))
	assert.Equal(t, 500.0, ClampPrice(900, num(50), num(500)))
	assert.Equal(t, 20.0, ClampPrice(20, nil, nil))
	assert.Equal(t, 10.0, ClampPrice(20, nil, num(10)))
}
