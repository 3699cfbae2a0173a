package handlers

import (
	"context"

	warningRepo "sparkle/database/repository/warning"
	"sparkle/models"
	"sparkle/services/availability"
	"sparkle/services/booking"
	"sparkle/services/pricing"

	"go.mongodb.org/mongo-driver/mongo"
)

type fakePricing struct {
	rules map[string]models.PricingRule
}

func newFakePricing(rules ...models.PricingRule) *fakePricing {
	f := &fakePricing{rules: map[string]models.PricingRule{}}
	for _, r := range rules {
		f.rules[r.ID] = r
	}
	return f
}

func (f *fakePricing) Quote(_ context.Context, cfg pricing.BookingConfiguration) (pricing.Result, error) {
	if err := pricing.ValidateConfiguration(cfg); err != nil {
		return pricing.Result{}, err
	}
	var records []models.PricingRule
	for _, r := range f.rules {
		records = append(records, r)
	}
	return pricing.EvaluateRecords(records, cfg), nil
}

func (f *fakePricing) Estimate(ctx context.Context, cfg pricing.BookingConfiguration) (pricing.Result, error) {
	return f.Quote(ctx, cfg)
}

func (f *fakePricing) Snapshot(context.Context) ([]models.PricingRule, error) {
	var out []models.PricingRule
	for _, r := range f.rules {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakePricing) ListRules(ctx context.Context, _ string) ([]models.PricingRule, error) {
	return f.Snapshot(ctx)
}

func (f *fakePricing) GetRule(_ context.Context, id string) (*models.PricingRule, error) {
	r, ok := f.rules[id]
	if !ok {
		return nil, pricing.ErrNotFound
	}
	return &r, nil
}

func (f *fakePricing) CreateRule(_ context.Context, rule models.PricingRule) (*models.PricingRule, error) {
	if err := pricing.Validate(rule); err != nil {
		return nil, err
	}
	rule.ID = "new-rule"
	f.rules[rule.ID] = rule
	return &rule, nil
}

func (f *fakePricing) UpdateRule(_ context.Context, id string, rule models.PricingRule) (*models.PricingRule, error) {
	if _, ok := f.rules[id]; !ok {
		return nil, pricing.ErrNotFound
	}
	if err := pricing.Validate(rule); err != nil {
		return nil, err
	}
	rule.ID = id
	f.rules[id] = rule
	return &rule, nil
}

func (f *fakePricing) DeleteRule(_ context.Context, id string) error {
	if _, ok := f.rules[id]; !ok {
		return pricing.ErrNotFound
	}
	delete(f.rules, id)
	return nil
}

type fakeWarnings struct {
	warnings []models.PricingWarning
}

func (f *fakeWarnings) Record(context.Context, warningRepo.Occurrence) error { return nil }

func (f *fakeWarnings) List(context.Context) ([]models.PricingWarning, error) {
	return f.warnings, nil
}

func (f *fakeWarnings) Delete(_ context.Context, id string) error {
	for i, w := range f.warnings {
		if w.ID == id {
			f.warnings = append(f.warnings[:i], f.warnings[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

type fakeAvailability struct {
	bookings  []models.Booking
	cleanerID string
}

func (f *fakeAvailability) MonthCalendar(_ context.Context, month availability.YearMonth, cleanerID string) (availability.Calendar, error) {
	f.cleanerID = cleanerID
	return availability.BuildCalendar(f.bookings, month), nil
}

func (f *fakeAvailability) DaySchedule(_ context.Context, day availability.Day, cleanerID string) ([]availability.ScheduledBooking, error) {
	f.cleanerID = cleanerID
	return availability.DetailFor(f.bookings, day), nil
}

type fakeDrafts struct {
	drafts map[string]models.BookingDraft
}

func (f *fakeDrafts) Start(_ context.Context, clientID string) (*booking.DraftView, error) {
	d := models.BookingDraft{ID: "draft-1", Step: models.StepService, ClientID: clientID}
	f.drafts[d.ID] = d
	return &booking.DraftView{Draft: d}, nil
}

func (f *fakeDrafts) Load(_ context.Context, id string) (*booking.DraftView, error) {
	d, ok := f.drafts[id]
	if !ok {
		return nil, booking.ErrDraftNotFound
	}
	return &booking.DraftView{Draft: d}, nil
}

func (f *fakeDrafts) Apply(_ context.Context, id string, patch models.DraftPatch) (*booking.DraftView, error) {
	d, ok := f.drafts[id]
	if !ok {
		return nil, booking.ErrDraftNotFound
	}
	if patch.Step != nil && *patch.Step == models.StepReview {
		return nil, &booking.IncompleteError{Step: models.StepReview, Missing: []string{"date"}}
	}
	if patch.ServiceType != nil {
		d.ServiceType = *patch.ServiceType
	}
	d.Step = models.StepHome
	f.drafts[id] = d
	return &booking.DraftView{Draft: d}, nil
}

func (f *fakeDrafts) Discard(_ context.Context, id string) error {
	if _, ok := f.drafts[id]; !ok {
		return booking.ErrDraftNotFound
	}
	delete(f.drafts, id)
	return nil
}

type fakeBookings struct {
	clientID string
}

func (f *fakeBookings) Submit(_ context.Context, draftID, clientID string) (*models.Booking, error) {
	if draftID != "draft-1" {
		return nil, booking.ErrDraftNotFound
	}
	f.clientID = clientID
	return &models.Booking{ID: "booking-1", ClientID: clientID, FinalPrice: 225}, nil
}

func (f *fakeBookings) ListWindow(context.Context, string, string, string) ([]models.Booking, error) {
	return nil, nil
}
