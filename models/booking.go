package models

import "time"

// CleanerRef is the denormalised cleaner assigned to a booking.
type CleanerRef struct {
	ID        string `bson:"id" json:"id"`
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
}

// Booking represents a confirmed cleaning booking.
type Booking struct {
	ID              string      `bson:"id" json:"id"`
	ClientID        string      `bson:"clientId" json:"clientId"`
	ServiceType     string      `bson:"serviceType" json:"serviceType"`
	ScheduledDate   string      `bson:"scheduledDate" json:"scheduledDate"` // "YYYY-MM-DD"
	ScheduledTime   string      `bson:"scheduledTime" json:"scheduledTime"` // "HH:MM"
	DurationMinutes int         `bson:"durationMinutes" json:"durationMinutes"`
	SquareFootage   float64     `bson:"squareFootage" json:"squareFootage"`
	Bedrooms        int         `bson:"bedrooms" json:"bedrooms"`
	Bathrooms       int         `bson:"bathrooms" json:"bathrooms"`
	Extras          []string    `bson:"extras,omitempty" json:"extras,omitempty"`
	BasePrice       float64     `bson:"basePrice" json:"basePrice"`
	ExtrasPrice     float64     `bson:"extrasPrice" json:"extrasPrice"`
	FinalPrice      float64     `bson:"finalPrice" json:"finalPrice"` // frozen at booking time
	Cleaner         *CleanerRef `bson:"cleaner,omitempty" json:"cleaner,omitempty"`
	Contact         Contact     `bson:"contact" json:"contact"`
	Notes           string      `bson:"notes,omitempty" json:"notes,omitempty"`
	Status          string      `bson:"status" json:"status"`
	CreatedAt       time.Time   `bson:"createdAt" json:"createdAt"`
}

const (
	BookingStatusScheduled = "scheduled"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Contact holds the client's details captured by the wizard.
type Contact struct {
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address string `bson:"address" json:"address"`
}
