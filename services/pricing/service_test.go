package pricing

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"sparkle/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeRuleRepo struct {
	mu    sync.Mutex
	rules map[string]models.PricingRule
	reads int
	err   error
}

func newFakeRuleRepo(rules ...models.PricingRule) *fakeRuleRepo {
	r := &fakeRuleRepo{rules: map[string]models.PricingRule{}}
	for _, rule := range rules {
		r.rules[rule.ID] = rule
	}
	return r
}

func (r *fakeRuleRepo) Create(_ context.Context, rule *models.PricingRule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules[rule.ID] = *rule
	return nil
}

func (r *fakeRuleRepo) Update(_ context.Context, rule *models.PricingRule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rules[rule.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	r.rules[rule.ID] = *rule
	return nil
}

func (r *fakeRuleRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rules[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.rules, id)
	return nil
}

func (r *fakeRuleRepo) GetByID(_ context.Context, id string) (*models.PricingRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rule, ok := r.rules[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &rule, nil
}

func (r *fakeRuleRepo) List(ctx context.Context, serviceType string) ([]models.PricingRule, error) {
	all, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.PricingRule
	for _, rule := range all {
		if serviceType == "" || rule.ServiceType == nil || *rule.ServiceType == serviceType {
			out = append(out, rule)
		}
	}
	return out, nil
}

func (r *fakeRuleRepo) All(context.Context) ([]models.PricingRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	if r.err != nil {
		return nil, r.err
	}
	out := make([]models.PricingRule, 0, len(r.rules))
	for _, rule := range r.rules {
		out = append(out, rule)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

type memoryRuleCache struct {
	rules       []models.PricingRule
	ok          bool
	invalidated int
}

func (c *memoryRuleCache) Get(context.Context) ([]models.PricingRule, bool, error) {
	return c.rules, c.ok, nil
}

func (c *memoryRuleCache) Set(_ context.Context, rules []models.PricingRule) error {
	c.rules, c.ok = rules, true
	return nil
}

func (c *memoryRuleCache) Invalidate(context.Context) error {
	c.rules, c.ok = nil, false
	c.invalidated++
	return nil
}

type recordingReporter struct {
	payloads []models.UnmatchedExtraPayload
}

func (r *recordingReporter) ReportUnmatchedExtras(_ context.Context, p models.UnmatchedExtraPayload) error {
	r.payloads = append(r.payloads, p)
	return nil
}

var fixedNow = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

func newTestService(rules ...models.PricingRule) (*DefaultPricingService, *fakeRuleRepo, *memoryRuleCache, *recordingReporter) {
	repo := newFakeRuleRepo(rules...)
	cache := &memoryRuleCache{}
	reporter := &recordingReporter{}
	svc := &DefaultPricingService{
		Repo:     repo,
		Cache:    cache,
		Warnings: reporter,
		Now:      func() time.Time { return fixedNow },
	}
	return svc, repo, cache, reporter
}

func TestQuoteUsesCachedSnapshot(t *testing.T) {
	svc, repo, _, _ := newTestService(basicRules()...)
	ctx := context.Background()
	cfg := BookingConfiguration{ServiceType: "Basic", SquareFootage: 1000, SelectedExtras: []string{"windows"}}

	first, err := svc.Quote(ctx, cfg)
	require.NoError(t, err)
	second, err := svc.Quote(ctx, cfg)
	require.NoError(t, err)

	assert.Equal(t, 260.0, first.Total)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.reads)
}

func TestQuoteReportsUnmatchedExtras(t *testing.T) {
	svc, _, _, reporter := newTestService(basicRules()...)

	res, err := svc.Quote(context.Background(), BookingConfiguration{ServiceType: "Basic", SelectedExtras: []string{"garage"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"garage"}, res.UnmatchedExtras)
	require.Len(t, reporter.payloads, 1)
	assert.Equal(t, models.UnmatchedExtraPayload{
		ServiceType: "Basic",
		Extras:      []string{"garage"},
		ObservedAt:  fixedNow,
	}, reporter.payloads[0])
}

func TestEstimateDoesNotReport(t *testing.T) {
	svc, _, _, reporter := newTestService(basicRules()...)
	cfg := BookingConfiguration{ServiceType: "Basic", SelectedExtras: []string{"garage"}}

	est, err := svc.Estimate(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"garage"}, est.UnmatchedExtras)
	assert.Empty(t, reporter.payloads)

	quote, err := svc.Quote(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, est, quote)
	assert.Len(t, reporter.payloads, 1)
}

func TestQuoteRejectsImpossibleHome(t *testing.T) {
	svc, _, _, _ := newTestService()
	_, err := svc.Quote(context.Background(), BookingConfiguration{ServiceType: "Basic", Bathrooms: -1})
	assert.True(t, IsValidation(err))
}

func TestQuotePropagatesRepositoryFailure(t *testing.T) {
	svc, repo, _, _ := newTestService()
	repo.err = errors.New("connection refused")

	_, err := svc.Quote(context.Background(), BookingConfiguration{ServiceType: "Basic"})
	assert.ErrorIs(t, err, repo.err)
}

func TestRuleLifecycleInvalidatesCache(t *testing.T) {
	svc, _, cache, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateRule(ctx, models.PricingRule{RuleType: models.RuleBasePrice, PriceAmount: num(120), IsActive: true})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, fixedNow, created.CreatedAt)
	assert.Equal(t, 1, cache.invalidated)

	res, err := svc.Quote(ctx, BookingConfiguration{ServiceType: "Basic"})
	require.NoError(t, err)
	assert.Equal(t, 120.0, res.Total)

	updated, err := svc.UpdateRule(ctx, created.ID, models.PricingRule{RuleType: models.RuleBasePrice, PriceAmount: num(150), IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 2, cache.invalidated)

	res, err = svc.Quote(ctx, BookingConfiguration{ServiceType: "Basic"})
	require.NoError(t, err)
	assert.Equal(t, 150.0, res.Total, "edits apply to the next evaluation")

	require.NoError(t, svc.DeleteRule(ctx, created.ID))
	assert.Equal(t, 3, cache.invalidated)

	_, err = svc.GetRule(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateRuleRejectsInvalid(t *testing.T) {
	svc, repo, cache, _ := newTestService()

	_, err := svc.CreateRule(context.Background(), models.PricingRule{RuleType: "SURGE"})
	assert.True(t, IsValidation(err))
	assert.Empty(t, repo.rules)
	assert.Zero(t, cache.invalidated)
}

func TestUpdateAndDeleteMissingRule(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.UpdateRule(ctx, "nope", models.PricingRule{RuleType: models.RuleBasePrice, PriceAmount: num(1)})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.DeleteRule(ctx, "nope"), ErrNotFound)
}
