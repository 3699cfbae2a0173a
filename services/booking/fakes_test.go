package booking

import (
	"context"
	"sync"

	bookingRepo "sparkle/database/repository/booking"
	"sparkle/models"
	"sparkle/services/pricing"
)

type memoryDraftStore struct {
	mu     sync.Mutex
	drafts map[string]models.BookingDraft
	saves  int
}

func newMemoryDraftStore() *memoryDraftStore {
	return &memoryDraftStore{drafts: map[string]models.BookingDraft{}}
}

func (m *memoryDraftStore) Load(_ context.Context, id string) (*models.BookingDraft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.drafts[id]
	if !ok {
		return nil, ErrDraftNotFound
	}
	return &d, nil
}

func (m *memoryDraftStore) Save(_ context.Context, d *models.BookingDraft) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drafts[d.ID] = *d
	m.saves++
	return nil
}

func (m *memoryDraftStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.drafts[id]; !ok {
		return ErrDraftNotFound
	}
	delete(m.drafts, id)
	return nil
}

type memoryBookingRepo struct {
	mu         sync.Mutex
	bookings   []models.Booking
	lastFilter bookingRepo.WindowFilter
}

func (r *memoryBookingRepo) Create(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *memoryBookingRepo) ListWindow(_ context.Context, f bookingRepo.WindowFilter) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastFilter = f
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ScheduledDate >= f.From && b.ScheduledDate <= f.To {
			out = append(out, b)
		}
	}
	return out, nil
}

// staticPricing quotes against a fixed rule set.
type staticPricing struct {
	pricing.PricingService
	rules []pricing.Rule
	calls     int
	estimates int
}

// Quote counts as a reported quote; Estimate does not.
func (p *staticPricing) Quote(_ context.Context, cfg pricing.BookingConfiguration) (pricing.Result, error) {
	p.calls++
	if err := pricing.ValidateConfiguration(cfg); err != nil {
		return pricing.Result{}, err
	}
	return pricing.Evaluate(p.rules, cfg), nil
}

func (p *staticPricing) Estimate(_ context.Context, cfg pricing.BookingConfiguration) (pricing.Result, error) {
	p.estimates++
	if err := pricing.ValidateConfiguration(cfg); err != nil {
		return pricing.Result{}, err
	}
	return pricing.Evaluate(p.rules, cfg), nil
}

func num(v float64) *float64 { return &v }

func newStaticPricing() *staticPricing {
	return &staticPricing{rules: []pricing.Rule{
		{ID: "base", Active: true, Component: pricing.BasePrice{Price: 80, Hours: 1}},
		{ID: "sqft", Active: true, Component: pricing.SqftRate{Rate: 0.05, HoursPerUnit: 0.001}},
		{ID: "bed", Active: true, Range: pricing.PriceRange{Max: num(60)}, Component: pricing.BedroomRate{Rate: 15}},
		{ID: "oven", Active: true, Component: pricing.ExtraService{Name: "Oven", Price: 25, Hours: 0.5}},
	}}
}
