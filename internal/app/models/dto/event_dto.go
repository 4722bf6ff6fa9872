package dto

import (
	"time"

	"github.com/osahenru/uniportal/internal/app/models"
)

// CreateEventRequest represents the request to create an event
type CreateEventRequest struct {
	Title                string                  `json:"title" binding:"required"`
	Description          string                  `json:"description" binding:"required"`
	Image                *string                 `json:"image,omitempty"`
	Date                 time.Time               `json:"date" binding:"required"`
	Time                 string                  `json:"time" binding:"required"`
	Location             string                  `json:"location" binding:"required"`
	Eligibility          models.EventEligibility `json:"eligibility" binding:"required"`
	RegistrationRequired bool                    `json:"registrationRequired"`
	Capacity             *int                    `json:"capacity,omitempty" binding:"omitempty,gt=0"`
	Status               models.EventStatus      `json:"status" binding:"required"`
}

// EventListResponse represents a paginated page of events
type EventListResponse struct {
	Events     []*models.Event `json:"events"`
	Pagination PaginationInfo  `json:"pagination"`
}
