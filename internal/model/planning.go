package model

import "time"

// Status is a traffic-light health indicator for KPIs and critical numbers.
type Status string

const (
	StatusGreen  Status = "GREEN"
	StatusYellow Status = "YELLOW"
	StatusRed    Status = "RED"
)

// Trend is the direction of a metric's recent history.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// ValuePoint is one historical snapshot of a tracked metric.
type ValuePoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// KPI is a tracked performance indicator with a target and direction.
type KPI struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"` // financial, operational, tenant, strategic

	CurrentValue float64 `json:"currentValue"`
	TargetValue  float64 `json:"targetValue"`
	Unit         string  `json:"unit"`
	Frequency    string  `json:"frequency"` // daily, weekly, monthly, quarterly

	// IsHigherBetter makes the status direction explicit per metric rather
	// than inferred. Expense ratios and vacancy set this false.
	IsHigherBetter bool `json:"isHigherBetter"`

	Status Status `json:"status"`
	Trend  Trend  `json:"trend"`

	LastUpdated time.Time    `json:"lastUpdated"`
	History     []ValuePoint `json:"history"`
}

// CriticalNumber is a leading-indicator metric with an append-only history of
// snapshots recorded on every update.
type CriticalNumber struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	CurrentValue   float64 `json:"currentValue"`
	TargetValue    float64 `json:"targetValue"`
	Unit           string  `json:"unit"`
	IsHigherBetter bool    `json:"isHigherBetter"`

	Status Status `json:"status"`

	LastUpdated time.Time    `json:"lastUpdated"`
	History     []ValuePoint `json:"history"`
}

// RockStatus is user-settable, not derived from progress.
type RockStatus string

const (
	RockOnTrack  RockStatus = "on-track"
	RockAtRisk   RockStatus = "at-risk"
	RockOffTrack RockStatus = "off-track"
)

// Rock is a quarterly strategic priority.
type Rock struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Owner       string     `json:"owner"`
	Quarter     string     `json:"quarter"` // e.g. "Q1 2026"
	Status      RockStatus `json:"status"`
	Progress    int        `json:"progress"` // 0-100
	DueDate     time.Time  `json:"dueDate"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// HuddleEntry records one team huddle.
type HuddleEntry struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	Type       string    `json:"type"` // daily, weekly, monthly, quarterly, annual
	Attendees  []string  `json:"attendees"`
	Wins       []string  `json:"wins"`
	Stucks     []string  `json:"stucks"`
	Priorities []string  `json:"priorities"`
	Notes      string    `json:"notes,omitempty"`
	CreatedBy  string    `json:"createdBy,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// OnePageStrategicPlan is the single OPSP document.
type OnePageStrategicPlan struct {
	ID                  string    `json:"id"`
	CoreValues          []string  `json:"coreValues"`
	CorePurpose         string    `json:"corePurpose"`
	BHAG                string    `json:"bhag"`
	ThreeYearPicture    string    `json:"threeYearPicture"`
	AnnualTheme         string    `json:"annualTheme"`
	AnnualInitiatives   []string  `json:"annualInitiatives"`
	QuarterlyTheme      string    `json:"quarterlyTheme"`
	QuarterlyObjectives []string  `json:"quarterlyObjectives"`
	LastUpdated         time.Time `json:"lastUpdated"`
}
