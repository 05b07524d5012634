package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaintenancePriority orders maintenance work.
type MaintenancePriority string

const (
	PriorityLow       MaintenancePriority = "low"
	PriorityMedium    MaintenancePriority = "medium"
	PriorityHigh      MaintenancePriority = "high"
	PriorityEmergency MaintenancePriority = "emergency"
)

// MaintenanceStatus is the lifecycle state of a maintenance request.
type MaintenanceStatus string

const (
	MaintenancePending    MaintenanceStatus = "pending"
	MaintenanceInProgress MaintenanceStatus = "in-progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
	MaintenanceCancelled  MaintenanceStatus = "cancelled"
)

// MaintenanceRequest tracks a repair from report to completion. GLEntryRef is
// set once a cost transaction has been posted, and guards against posting the
// same cost twice.
type MaintenanceRequest struct {
	ID         string `json:"id"`
	PropertyID string `json:"propertyId"`
	UnitNumber string `json:"unitNumber,omitempty"`
	TenantID   string `json:"tenantId,omitempty"`

	Category    string              `json:"category"` // plumbing, electrical, hvac, ...
	Priority    MaintenancePriority `json:"priority"`
	Status      MaintenanceStatus   `json:"status"`
	Description string              `json:"description"`

	ReportedDate  time.Time  `json:"reportedDate"`
	ScheduledDate *time.Time `json:"scheduledDate,omitempty"`
	CompletedDate *time.Time `json:"completedDate,omitempty"`
	AssignedTo    string     `json:"assignedTo,omitempty"` // vendor ID

	EstimatedCost decimal.Decimal `json:"estimatedCost"`
	ActualCost    decimal.Decimal `json:"actualCost"`
	ResponseTime  float64         `json:"responseTime,omitempty"` // hours, set on completion

	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	GLEntryRef string `json:"glEntryRef,omitempty"`
}
