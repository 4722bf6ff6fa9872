package models

import "time"

// EventStatus represents the lifecycle state of an event
type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

// IsValid reports whether the status is one of the known values
func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusUpcoming, EventStatusOngoing, EventStatusCompleted, EventStatusCancelled:
		return true
	}
	return false
}

// EventEligibility is the closed set of audiences an event can target
type EventEligibility string

const (
	EligibilityAllStudents    EventEligibility = "all-students"
	EligibilityUndergraduates EventEligibility = "undergraduates"
	EligibilityGraduates      EventEligibility = "graduates"
	EligibilityFaculty        EventEligibility = "faculty"
	EligibilityStaff          EventEligibility = "staff"
	EligibilityPublic         EventEligibility = "public"
)

// IsValid reports whether the eligibility is one of the known values
func (e EventEligibility) IsValid() bool {
	switch e {
	case EligibilityAllStudents, EligibilityUndergraduates, EligibilityGraduates,
		EligibilityFaculty, EligibilityStaff, EligibilityPublic:
		return true
	}
	return false
}

// Event defines an event based on the 'events' table
type Event struct {
	ID                   string           `json:"id" db:"id"`
	Title                string           `json:"title" db:"title"`
	Description          string           `json:"description" db:"description"`
	Image                *string          `json:"image,omitempty" db:"image"`
	Date                 time.Time        `json:"date" db:"date"`
	Time                 string           `json:"time" db:"time"` // free text, e.g. "10:00 AM - 2:00 PM"
	Location             string           `json:"location" db:"location"`
	Eligibility          EventEligibility `json:"eligibility" db:"eligibility"`
	RegistrationRequired bool             `json:"registrationRequired" db:"registration_required"`
	Capacity             *int             `json:"capacity,omitempty" db:"capacity"`
	Status               EventStatus      `json:"status" db:"status"`
	CreatedAt            time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time        `json:"updatedAt" db:"updated_at"`
}

// EventPatch is a partial update to an event. Nil fields are left untouched.
type EventPatch struct {
	Title                *string           `json:"title,omitempty"`
	Description          *string           `json:"description,omitempty"`
	Image                *string           `json:"image,omitempty"`
	Date                 *time.Time        `json:"date,omitempty"`
	Time                 *string           `json:"time,omitempty"`
	Location             *string           `json:"location,omitempty"`
	Eligibility          *EventEligibility `json:"eligibility,omitempty"`
	RegistrationRequired *bool             `json:"registrationRequired,omitempty"`
	Capacity             *int              `json:"capacity,omitempty"`
	Status               *EventStatus      `json:"status,omitempty"`
}

// Apply merges the patch into the event, field by field.
func (p *EventPatch) Apply(e *Event) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Image != nil {
		e.Image = p.Image
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Time != nil {
		e.Time = *p.Time
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.Eligibility != nil {
		e.Eligibility = *p.Eligibility
	}
	if p.RegistrationRequired != nil {
		e.RegistrationRequired = *p.RegistrationRequired
	}
	if p.Capacity != nil {
		e.Capacity = p.Capacity
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
}
