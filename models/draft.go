package models

import "time"

// DraftStep is a stage of the booking wizard.
type DraftStep string

const (
	StepService  DraftStep = "service"
	StepHome     DraftStep = "home"
	StepExtras   DraftStep = "extras"
	StepSchedule DraftStep = "schedule"
	StepContact  DraftStep = "contact"
	StepReview   DraftStep = "review"
)

// DraftSteps is the wizard order.
var DraftSteps = []DraftStep{StepService, StepHome, StepExtras, StepSchedule, StepContact, StepReview}

// BookingDraft is the wizard's in-progress booking. It is a plain value that
// is only persisted when the wizard reaches a save point.
type BookingDraft struct {
	ID            string    `json:"id"`
	Step          DraftStep `json:"step"`
	ServiceType   string    `json:"serviceType,omitempty"`
	SquareFootage float64   `json:"squareFootage,omitempty"`
	Bedrooms      int       `json:"bedrooms,omitempty"`
	Bathrooms     int       `json:"bathrooms,omitempty"`
	Extras        []string  `json:"extras,omitempty"`
	Date          string    `json:"date,omitempty"`
	Time          string    `json:"time,omitempty"`
	Contact       Contact   `json:"contact"`
	Notes         string    `json:"notes,omitempty"`
	ClientID      string    `json:"clientId,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// DraftPatch carries the fields a single wizard step may change. Nil fields
// are left untouched.
type DraftPatch struct {
	Step          *DraftStep `json:"step,omitempty"`
	ServiceType   *string    `json:"serviceType,omitempty"`
	SquareFootage *float64   `json:"squareFootage,omitempty"`
	Bedrooms      *int       `json:"bedrooms,omitempty"`
	Bathrooms     *int       `json:"bathrooms,omitempty"`
	Extras        *[]string  `json:"extras,omitempty"`
	Date          *string    `json:"date,omitempty"`
	Time          *string    `json:"time,omitempty"`
	Contact       *Contact   `json:"contact,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
}
