package booking

import (
	"context"
	"strings"
	"time"

	"sparkle/models"
	"sparkle/services/pricing"
	"sparkle/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultDraftService implements DraftService on a DraftStore. Pricing is
// used for the live quote returned with every view.
type DefaultDraftService struct {
	Store   DraftStore
	Pricing pricing.PricingService
	Logger  *zap.Logger
	Now     func() time.Time
}

func (s *DefaultDraftService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *DefaultDraftService) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now()
}

func stepIndex(step models.DraftStep) int {
	for i, st := range models.DraftSteps {
		if st == step {
			return i
		}
	}
	return -1
}

func nextStep(step models.DraftStep) models.DraftStep {
	i := stepIndex(step)
	if i < 0 || i+1 >= len(models.DraftSteps) {
		return step
	}
	return models.DraftSteps[i+1]
}

// requirements lists the fields step needs before the wizard may leave it.
func requirements(d *models.BookingDraft, step models.DraftStep) []string {
	var missing []string
	switch step {
	case models.StepService:
		if strings.TrimSpace(d.ServiceType) == "" {
			missing = append(missing, "serviceType")
		}
	case models.StepHome:
		if d.SquareFootage <= 0 {
			missing = append(missing, "squareFootage")
		}
	case models.StepSchedule:
		if d.Date == "" {
			missing = append(missing, "date")
		}
		if d.Time == "" {
			missing = append(missing, "time")
		}
	case models.StepContact:
		if strings.TrimSpace(d.Contact.Name) == "" {
			missing = append(missing, "contact.name")
		}
		if strings.TrimSpace(d.Contact.Email) == "" {
			missing = append(missing, "contact.email")
		}
		if strings.TrimSpace(d.Contact.Address) == "" {
			missing = append(missing, "contact.address")
		}
	}
	return missing
}

// checkReachable returns an IncompleteError when any step before target
// still has missing fields.
func checkReachable(d *models.BookingDraft, target models.DraftStep) error {
	var missing []string
	for _, st := range models.DraftSteps[:stepIndex(target)] {
		missing = append(missing, requirements(d, st)...)
	}
	if len(missing) > 0 {
		return &IncompleteError{Step: target, Missing: missing}
	}
	return nil
}

func merge(d *models.BookingDraft, p models.DraftPatch) {
	if p.ServiceType != nil {
		d.ServiceType = strings.TrimSpace(*p.ServiceType)
	}
	if p.SquareFootage != nil {
		d.SquareFootage = *p.SquareFootage
	}
	if p.Bedrooms != nil {
		d.Bedrooms = *p.Bedrooms
	}
	if p.Bathrooms != nil {
		d.Bathrooms = *p.Bathrooms
	}
	if p.Extras != nil {
		d.Extras = append([]string(nil), (*p.Extras)...)
	}
	if p.Date != nil {
		d.Date = strings.TrimSpace(*p.Date)
	}
	if p.Time != nil {
		d.Time = strings.TrimSpace(*p.Time)
	}
	if p.Contact != nil {
		d.Contact = *p.Contact
	}
	if p.Notes != nil {
		d.Notes = *p.Notes
	}
}

// checkDate rejects a malformed date or one before now's calendar day.
func checkDate(date string, now time.Time) error {
	if _, err := time.Parse(utils.DateLayout, date); err != nil {
		return &pricing.ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}
	if date < now.Format(utils.DateLayout) {
		return &pricing.ValidationError{Field: "date", Reason: "must not be in the past"}
	}
	return nil
}

func (s *DefaultDraftService) validateFields(d *models.BookingDraft) error {
	if err := pricing.ValidateConfiguration(configurationOf(d)); err != nil {
		return err
	}
	if d.Date != "" {
		if err := checkDate(d.Date, s.now()); err != nil {
			return err
		}
	}
	if d.Time != "" {
		if _, err := time.Parse(utils.TimeLayout, d.Time); err != nil {
			return &pricing.ValidationError{Field: "time", Reason: "must be HH:MM"}
		}
	}
	if d.Contact.Email != "" && !strings.Contains(d.Contact.Email, "@") {
		return &pricing.ValidationError{Field: "contact.email", Reason: "must be an email address"}
	}
	return nil
}

func configurationOf(d *models.BookingDraft) pricing.BookingConfiguration {
	return pricing.BookingConfiguration{
		ServiceType:    d.ServiceType,
		SquareFootage:  d.SquareFootage,
		Bedrooms:       d.Bedrooms,
		Bathrooms:      d.Bathrooms,
		SelectedExtras: d.Extras,
	}
}

// view attaches a live estimate. Warnings are left to Submit so re-reading a
// draft does not count its extras again. A failed estimate is logged and
// omitted so the wizard can keep going.
func (s *DefaultDraftService) view(ctx context.Context, d *models.BookingDraft) *DraftView {
	v := &DraftView{Draft: *d}
	if d.ServiceType == "" || s.Pricing == nil {
		return v
	}
	res, err := s.Pricing.Estimate(ctx, configurationOf(d))
	if err != nil {
		s.logger().Warn("Draft quote failed", zap.String("draftID", d.ID), zap.Error(err))
		return v
	}
	v.Quote = &res
	return v
}

// Start creates an empty draft positioned at the first step.
func (s *DefaultDraftService) Start(ctx context.Context, clientID string) (*DraftView, error) {
	d := &models.BookingDraft{
		ID:        uuid.New().String(),
		Step:      models.StepService,
		ClientID:  clientID,
		UpdatedAt: s.now(),
	}
	if err := s.Store.Save(ctx, d); err != nil {
		return nil, err
	}
	s.logger().Info("Draft started", zap.String("draftID", d.ID))
	return s.view(ctx, d), nil
}

func (s *DefaultDraftService) Load(ctx context.Context, id string) (*DraftView, error) {
	d, err := s.Store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, d), nil
}

// Apply merges patch into the draft and moves it to patch.Step, or to the
// following step when none is given. Moving backwards is always allowed;
// moving forwards requires every earlier step to be complete. The draft is
// only saved when the whole patch is valid.
func (s *DefaultDraftService) Apply(ctx context.Context, id string, patch models.DraftPatch) (*DraftView, error) {
	d, err := s.Store.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	target := nextStep(d.Step)
	if patch.Step != nil {
		target = *patch.Step
	}
	if stepIndex(target) < 0 {
		return nil, &pricing.ValidationError{Field: "step", Reason: "unknown step " + string(target)}
	}

	merge(d, patch)
	if err := s.validateFields(d); err != nil {
		return nil, err
	}
	if err := checkReachable(d, target); err != nil {
		return nil, err
	}

	d.Step = target
	d.UpdatedAt = s.now()
	if err := s.Store.Save(ctx, d); err != nil {
		return nil, err
	}
	s.logger().Debug("Draft updated", zap.String("draftID", d.ID), zap.String("step", string(d.Step)))
	return s.view(ctx, d), nil
}

func (s *DefaultDraftService) Discard(ctx context.Context, id string) error {
	if err := s.Store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger().Info("Draft discarded", zap.String("draftID", id))
	return nil
}
