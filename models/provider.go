package models

import "time"

// Provider lifecycle statuses. Only active providers accept bookings.
const (
	ProviderStatusPending   = "pending"
	ProviderStatusActive    = "active"
	ProviderStatusSuspended = "suspended"
)

// Provider service types supported by the platform.
const (
	ServiceTypeAstrologer = "astrologer"
	ServiceTypePriest     = "priest"
	ServiceTypeTourGuide  = "tour_guide"
)

// SessionPolicy holds a provider's fixed session parameters, in minutes.
// Validated when the profile is updated; the scheduling engine trusts it.
type SessionPolicy struct {
	SessionDuration int `bson:"sessionDuration" json:"sessionDuration"`
	BufferTime      int `bson:"bufferTime" json:"bufferTime"`
}

// Bounds enforced on SessionPolicy updates.
const (
	MinSessionDuration = 15
	MaxSessionDuration = 120
	MinBufferTime      = 0
	MaxBufferTime      = 60
)

// Provider is the bookable entity: an astrologer, a priest, or a tour guide.
type Provider struct {
	ID             string         `bson:"id" json:"id"`
	Name           string         `bson:"name" json:"name"`
	ServiceType    string         `bson:"serviceType" json:"serviceType"`
	Bio            string         `bson:"bio,omitempty" json:"bio,omitempty"`
	City           string         `bson:"city,omitempty" json:"city,omitempty"`
	Languages      []string       `bson:"languages,omitempty" json:"languages,omitempty"`
	Status         string         `bson:"status" json:"status"`
	Available      bool           `bson:"available" json:"available"`
	WeeklySchedule WeeklySchedule `bson:"weeklySchedule" json:"weeklySchedule"`
	SessionPolicy  SessionPolicy  `bson:"sessionPolicy" json:"sessionPolicy"`
	CreatedAt      time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// IsBookable reports whether the provider may receive new reservations at
// all: the explicit availability toggle plus the lifecycle status.
func (p *Provider) IsBookable() bool {
	return p.Available && p.Status == ProviderStatusActive
}
