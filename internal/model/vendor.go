package model

import "time"

// Vendor is a contractor or service provider.
type Vendor struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"` // plumbing, electrical, cleaning, ...
	ContactPerson string `json:"contactPerson,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`

	Rating              int     `json:"rating"` // 1-5
	TotalJobsCompleted  int     `json:"totalJobsCompleted"`
	AverageResponseTime float64 `json:"averageResponseTime"` // hours
	IsPreferred         bool    `json:"isPreferred"`

	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
