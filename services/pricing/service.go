package pricing

import (
	"context"
	"errors"
	"fmt"
	"time"

	pricingRuleRepo "sparkle/database/repository/pricingrule"
	"sparkle/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// WarningReporter forwards configuration inconsistencies seen while quoting.
type WarningReporter interface {
	ReportUnmatchedExtras(ctx context.Context, payload models.UnmatchedExtraPayload) error
}

// PricingService quotes bookings and manages the rule set behind the quotes.
type PricingService interface {
	Quote(ctx context.Context, cfg BookingConfiguration) (Result, error)
	Estimate(ctx context.Context, cfg BookingConfiguration) (Result, error)
	Snapshot(ctx context.Context) ([]models.PricingRule, error)
	ListRules(ctx context.Context, serviceType string) ([]models.PricingRule, error)
	GetRule(ctx context.Context, id string) (*models.PricingRule, error)
	CreateRule(ctx context.Context, rule models.PricingRule) (*models.PricingRule, error)
	UpdateRule(ctx context.Context, id string, rule models.PricingRule) (*models.PricingRule, error)
	DeleteRule(ctx context.Context, id string) error
}

// DefaultPricingService is the production implementation. Cache and Warnings
// are optional.
type DefaultPricingService struct {
	Repo     pricingRuleRepo.PricingRuleRepository
	Cache    RuleCache
	Warnings WarningReporter
	Logger   *zap.Logger
	Now      func() time.Time
}

func (s *DefaultPricingService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *DefaultPricingService) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now()
}

// ValidateConfiguration rejects configurations no home can have.
func ValidateConfiguration(cfg BookingConfiguration) error {
	if cfg.SquareFootage < 0 {
		return &ValidationError{Field: "squareFootage", Reason: "must not be negative"}
	}
	if cfg.Bedrooms < 0 {
		return &ValidationError{Field: "bedrooms", Reason: "must not be negative"}
	}
	if cfg.Bathrooms < 0 {
		return &ValidationError{Field: "bathrooms", Reason: "must not be negative"}
	}
	return nil
}

// Snapshot returns every rule from a single read, served from the cache when
// it holds one.
func (s *DefaultPricingService) Snapshot(ctx context.Context) ([]models.PricingRule, error) {
	if s.Cache != nil {
		rules, ok, err := s.Cache.Get(ctx)
		if err != nil {
			s.logger().Warn("Snapshot: rule cache read failed", zap.Error(err))
		} else if ok {
			return rules, nil
		}
	}

	rules, err := s.Repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load pricing rules: %w", err)
	}
	if s.Cache != nil {
		if err := s.Cache.Set(ctx, rules); err != nil {
			s.logger().Warn("Snapshot: rule cache write failed", zap.Error(err))
		}
	}
	return rules, nil
}

// Estimate evaluates cfg against the current rule snapshot without
// reporting unmatched extras.
func (s *DefaultPricingService) Estimate(ctx context.Context, cfg BookingConfiguration) (Result, error) {
	if err := ValidateConfiguration(cfg); err != nil {
		return Result{}, err
	}
	records, err := s.Snapshot(ctx)
	if err != nil {
		return Result{}, err
	}

	rules, skipped := Compile(records)
	for _, err := range skipped {
		s.logger().Warn("Estimate: skipping undecodable pricing rule", zap.Error(err))
	}
	return Evaluate(rules, cfg), nil
}

// Quote is Estimate plus a warning for every selected extra no active rule
// matched.
func (s *DefaultPricingService) Quote(ctx context.Context, cfg BookingConfiguration) (Result, error) {
	res, err := s.Estimate(ctx, cfg)
	if err != nil {
		return Result{}, err
	}

	if len(res.UnmatchedExtras) > 0 {
		s.logger().Info("Quote: selected extras matched no active rule",
			zap.String("serviceType", cfg.ServiceType),
			zap.Strings("extras", res.UnmatchedExtras))
		if s.Warnings != nil {
			payload := models.UnmatchedExtraPayload{
				ServiceType: cfg.ServiceType,
				Extras:      res.UnmatchedExtras,
				ObservedAt:  s.now(),
			}
			if err := s.Warnings.ReportUnmatchedExtras(ctx, payload); err != nil {
				s.logger().Error("Quote: failed to report unmatched extras", zap.Error(err))
			}
		}
	}
	return res, nil
}

func (s *DefaultPricingService) invalidate(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Invalidate(ctx); err != nil {
		s.logger().Error("failed to invalidate rule cache", zap.Error(err))
	}
}

func notFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func (s *DefaultPricingService) ListRules(ctx context.Context, serviceType string) ([]models.PricingRule, error) {
	return s.Repo.List(ctx, serviceType)
}

func (s *DefaultPricingService) GetRule(ctx context.Context, id string) (*models.PricingRule, error) {
	rule, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return rule, nil
}

func (s *DefaultPricingService) CreateRule(ctx context.Context, rule models.PricingRule) (*models.PricingRule, error) {
	if err := Validate(rule); err != nil {
		return nil, err
	}
	now := s.now()
	rule.ID = uuid.New().String()
	rule.CreatedAt = now
	rule.UpdatedAt = now

	if err := s.Repo.Create(ctx, &rule); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	s.logger().Info("pricing rule created", zap.String("ruleID", rule.ID), zap.String("ruleType", string(rule.RuleType)))
	return &rule, nil
}

func (s *DefaultPricingService) UpdateRule(ctx context.Context, id string, rule models.PricingRule) (*models.PricingRule, error) {
	if err := Validate(rule); err != nil {
		return nil, err
	}
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	rule.ID = existing.ID
	rule.CreatedAt = existing.CreatedAt
	rule.UpdatedAt = s.now()

	if err := s.Repo.Update(ctx, &rule); err != nil {
		return nil, notFound(err)
	}
	s.invalidate(ctx)
	s.logger().Info("pricing rule updated", zap.String("ruleID", rule.ID))
	return &rule, nil
}

func (s *DefaultPricingService) DeleteRule(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return notFound(err)
	}
	s.invalidate(ctx)
	s.logger().Info("pricing rule deleted", zap.String("ruleID", id))
	return nil
}
