package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Pricing      *PricingHandler
	Warnings     *WarningHandler
	Availability *AvailabilityHandler
	Drafts       *DraftHandler

	Health gin.HandlerFunc

	// AdminToken is the static bearer token accepted as an admin identity.
	AdminToken string
	// MaxRequestsPerMin bounds requests per client IP; zero uses the default.
	MaxRequestsPerMin int
}
