// Package planning manages the strategic-planning records: the one-page plan,
// quarterly rocks, KPIs, critical numbers, and huddle logs.
package planning

import (
	"fmt"
	"sort"
	"time"

	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/apperrors"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/id"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/metrics"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/model"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/storage"
)

// Service persists the planning records. Status and trend on tracked metrics
// are refreshed in the same write as the value change, never separately.
type Service struct {
	store storage.Store

	now func() time.Time
}

// NewService creates a planning Service.
func NewService(store storage.Store) *Service {
	return &Service{store: store, now: time.Now}
}

// ---- One-page strategic plan ----

// Plan returns the strategic plan document.
func (s *Service) Plan() (model.OnePageStrategicPlan, error) {
	var plan model.OnePageStrategicPlan
	found, err := s.store.Get(storage.KeyOPSP, &plan)
	if err != nil {
		return model.OnePageStrategicPlan{}, fmt.Errorf("loading strategic plan: %w", err)
	}
	if !found {
		return model.OnePageStrategicPlan{}, fmt.Errorf("strategic plan: %w", apperrors.ErrNotFound)
	}
	return plan, nil
}

// SavePlan replaces the strategic plan document. There is only ever one.
func (s *Service) SavePlan(plan model.OnePageStrategicPlan) (model.OnePageStrategicPlan, error) {
	if plan.ID == "" {
		plan.ID = "opsp_main"
	}
	plan.LastUpdated = s.now()
	if err := s.store.Set(storage.KeyOPSP, plan); err != nil {
		return model.OnePageStrategicPlan{}, fmt.Errorf("saving strategic plan: %w", err)
	}
	return plan, nil
}

// ---- Rocks ----

// RockParams holds the caller-supplied fields of a rock.
type RockParams struct {
	Description string
	Owner       string
	Quarter     string
	DueDate     time.Time
}

// Rocks returns every rock, most recently created first.
func (s *Service) Rocks() ([]model.Rock, error) {
	var rocks []model.Rock
	if _, err := s.store.Get(storage.KeyRocks, &rocks); err != nil {
		return nil, fmt.Errorf("loading rocks: %w", err)
	}
	sort.SliceStable(rocks, func(i, j int) bool { return rocks[i].CreatedAt.After(rocks[j].CreatedAt) })
	return rocks, nil
}

// CreateRock adds a quarterly rock starting on-track at zero progress.
func (s *Service) CreateRock(params RockParams) (model.Rock, error) {
	if params.Description == "" || params.Owner == "" || params.Quarter == "" {
		return model.Rock{}, fmt.Errorf("rock description, owner, and quarter are required: %w", apperrors.ErrValidation)
	}

	rock := model.Rock{
		ID:          id.New(id.PrefixRock),
		Description: params.Description,
		Owner:       params.Owner,
		Quarter:     params.Quarter,
		Status:      model.RockOnTrack,
		Progress:    0,
		DueDate:     params.DueDate,
		CreatedAt:   s.now(),
	}

	var rocks []model.Rock
	if _, err := s.store.Get(storage.KeyRocks, &rocks); err != nil {
		return model.Rock{}, fmt.Errorf("loading rocks: %w", err)
	}
	rocks = append(rocks, rock)
	if err := s.store.Set(storage.KeyRocks, rocks); err != nil {
		return model.Rock{}, fmt.Errorf("saving rocks: %w", err)
	}
	return rock, nil
}

// UpdateRock sets a rock's progress and status. Progress is clamped to 0-100;
// reaching 100 stamps CompletedAt, dropping back clears it. Status stays
// caller-chosen, it is not derived from progress.
func (s *Service) UpdateRock(rockID string, progress int, status model.RockStatus) (model.Rock, error) {
	switch status {
	case model.RockOnTrack, model.RockAtRisk, model.RockOffTrack:
	default:
		return model.Rock{}, fmt.Errorf("unknown rock status %q: %w", status, apperrors.ErrValidation)
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	var rocks []model.Rock
	if _, err := s.store.Get(storage.KeyRocks, &rocks); err != nil {
		return model.Rock{}, fmt.Errorf("loading rocks: %w", err)
	}
	for i := range rocks {
		if rocks[i].ID != rockID {
			continue
		}
		rocks[i].Progress = progress
		rocks[i].Status = status
		if progress == 100 {
			if rocks[i].CompletedAt == nil {
				now := s.now()
				rocks[i].CompletedAt = &now
			}
		} else {
			rocks[i].CompletedAt = nil
		}
		if err := s.store.Set(storage.KeyRocks, rocks); err != nil {
			return model.Rock{}, fmt.Errorf("saving rocks: %w", err)
		}
		return rocks[i], nil
	}
	return model.Rock{}, fmt.Errorf("rock %s: %w", rockID, apperrors.ErrNotFound)
}

// DeleteRock removes a rock.
func (s *Service) DeleteRock(rockID string) error {
	var rocks []model.Rock
	if _, err := s.store.Get(storage.KeyRocks, &rocks); err != nil {
		return fmt.Errorf("loading rocks: %w", err)
	}
	for i := range rocks {
		if rocks[i].ID == rockID {
			rocks = append(rocks[:i], rocks[i+1:]...)
			if err := s.store.Set(storage.KeyRocks, rocks); err != nil {
				return fmt.Errorf("saving rocks: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("rock %s: %w", rockID, apperrors.ErrNotFound)
}

// ---- KPIs ----

// KPIParams holds the caller-supplied fields of a KPI.
type KPIParams struct {
	Name           string
	Category       string
	TargetValue    float64
	Unit           string
	Frequency      string
	IsHigherBetter bool
}

// KPIs returns every tracked KPI.
func (s *Service) KPIs() ([]model.KPI, error) {
	var kpis []model.KPI
	if _, err := s.store.Get(storage.KeyKPIs, &kpis); err != nil {
		return nil, fmt.Errorf("loading KPIs: %w", err)
	}
	return kpis, nil
}

// CreateKPI adds a KPI with no recorded value yet. Without history the trend
// is stable and the status is measured against a zero current value.
func (s *Service) CreateKPI(params KPIParams) (model.KPI, error) {
	if params.Name == "" {
		return model.KPI{}, fmt.Errorf("KPI name is required: %w", apperrors.ErrValidation)
	}

	kpi := model.KPI{
		ID:             id.New(id.PrefixKPI),
		Name:           params.Name,
		Category:       params.Category,
		TargetValue:    params.TargetValue,
		Unit:           params.Unit,
		Frequency:      params.Frequency,
		IsHigherBetter: params.IsHigherBetter,
		Status:         metrics.Status(0, params.TargetValue, params.IsHigherBetter),
		Trend:          model.TrendStable,
		LastUpdated:    s.now(),
	}

	var kpis []model.KPI
	if _, err := s.store.Get(storage.KeyKPIs, &kpis); err != nil {
		return model.KPI{}, fmt.Errorf("loading KPIs: %w", err)
	}
	kpis = append(kpis, kpi)
	if err := s.store.Set(storage.KeyKPIs, kpis); err != nil {
		return model.KPI{}, fmt.Errorf("saving KPIs: %w", err)
	}
	return kpi, nil
}

// RecordKPIValue sets a KPI's current value, appends a history point, and
// refreshes status and trend, all in one write.
func (s *Service) RecordKPIValue(kpiID string, value float64) (model.KPI, error) {
	var kpis []model.KPI
	if _, err := s.store.Get(storage.KeyKPIs, &kpis); err != nil {
		return model.KPI{}, fmt.Errorf("loading KPIs: %w", err)
	}
	for i := range kpis {
		if kpis[i].ID != kpiID {
			continue
		}
		now := s.now()
		kpis[i].CurrentValue = value
		kpis[i].History = append(kpis[i].History, model.ValuePoint{Date: now, Value: value})
		kpis[i].Status = metrics.Status(value, kpis[i].TargetValue, kpis[i].IsHigherBetter)
		kpis[i].Trend = metrics.TrendOf(kpis[i].History)
		kpis[i].LastUpdated = now
		if err := s.store.Set(storage.KeyKPIs, kpis); err != nil {
			return model.KPI{}, fmt.Errorf("saving KPIs: %w", err)
		}
		return kpis[i], nil
	}
	return model.KPI{}, fmt.Errorf("KPI %s: %w", kpiID, apperrors.ErrNotFound)
}

// DeleteKPI removes a KPI and its history.
func (s *Service) DeleteKPI(kpiID string) error {
	var kpis []model.KPI
	if _, err := s.store.Get(storage.KeyKPIs, &kpis); err != nil {
		return fmt.Errorf("loading KPIs: %w", err)
	}
	for i := range kpis {
		if kpis[i].ID == kpiID {
			kpis = append(kpis[:i], kpis[i+1:]...)
			if err := s.store.Set(storage.KeyKPIs, kpis); err != nil {
				return fmt.Errorf("saving KPIs: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("KPI %s: %w", kpiID, apperrors.ErrNotFound)
}

// ---- Critical numbers ----

// CriticalNumberParams holds the caller-supplied fields of a critical number.
type CriticalNumberParams struct {
	Name           string
	Description    string
	TargetValue    float64
	Unit           string
	IsHigherBetter bool
}

// CriticalNumbers returns every tracked critical number.
func (s *Service) CriticalNumbers() ([]model.CriticalNumber, error) {
	var numbers []model.CriticalNumber
	if _, err := s.store.Get(storage.KeyCriticalNumbers, &numbers); err != nil {
		return nil, fmt.Errorf("loading critical numbers: %w", err)
	}
	return numbers, nil
}

// CreateCriticalNumber adds a critical number with no recorded value yet.
func (s *Service) CreateCriticalNumber(params CriticalNumberParams) (model.CriticalNumber, error) {
	if params.Name == "" {
		return model.CriticalNumber{}, fmt.Errorf("critical number name is required: %w", apperrors.ErrValidation)
	}

	number := model.CriticalNumber{
		ID:             id.New(id.PrefixCritical),
		Name:           params.Name,
		Description:    params.Description,
		TargetValue:    params.TargetValue,
		Unit:           params.Unit,
		IsHigherBetter: params.IsHigherBetter,
		Status:         metrics.Status(0, params.TargetValue, params.IsHigherBetter),
		LastUpdated:    s.now(),
	}

	var numbers []model.CriticalNumber
	if _, err := s.store.Get(storage.KeyCriticalNumbers, &numbers); err != nil {
		return model.CriticalNumber{}, fmt.Errorf("loading critical numbers: %w", err)
	}
	numbers = append(numbers, number)
	if err := s.store.Set(storage.KeyCriticalNumbers, numbers); err != nil {
		return model.CriticalNumber{}, fmt.Errorf("saving critical numbers: %w", err)
	}
	return number, nil
}

// RecordCriticalValue sets a critical number's current value, appends a
// history point, and refreshes the status, all in one write.
func (s *Service) RecordCriticalValue(numberID string, value float64) (model.CriticalNumber, error) {
	var numbers []model.CriticalNumber
	if _, err := s.store.Get(storage.KeyCriticalNumbers, &numbers); err != nil {
		return model.CriticalNumber{}, fmt.Errorf("loading critical numbers: %w", err)
	}
	for i := range numbers {
		if numbers[i].ID != numberID {
			continue
		}
		now := s.now()
		numbers[i].CurrentValue = value
		numbers[i].History = append(numbers[i].History, model.ValuePoint{Date: now, Value: value})
		numbers[i].Status = metrics.Status(value, numbers[i].TargetValue, numbers[i].IsHigherBetter)
		numbers[i].LastUpdated = now
		if err := s.store.Set(storage.KeyCriticalNumbers, numbers); err != nil {
			return model.CriticalNumber{}, fmt.Errorf("saving critical numbers: %w", err)
		}
		return numbers[i], nil
	}
	return model.CriticalNumber{}, fmt.Errorf("critical number %s: %w", numberID, apperrors.ErrNotFound)
}

// ---- Huddles ----

// HuddleParams holds the caller-supplied fields of a huddle log entry.
type HuddleParams struct {
	Date       time.Time
	Type       string
	Attendees  []string
	Wins       []string
	Stucks     []string
	Priorities []string
	Notes      string
	CreatedBy  string
}

// Huddles returns the huddle log, most recent huddle date first.
func (s *Service) Huddles() ([]model.HuddleEntry, error) {
	var huddles []model.HuddleEntry
	if _, err := s.store.Get(storage.KeyHuddles, &huddles); err != nil {
		return nil, fmt.Errorf("loading huddles: %w", err)
	}
	sort.SliceStable(huddles, func(i, j int) bool { return huddles[i].Date.After(huddles[j].Date) })
	return huddles, nil
}

// LogHuddle appends a huddle entry to the log.
func (s *Service) LogHuddle(params HuddleParams) (model.HuddleEntry, error) {
	if params.Type == "" {
		return model.HuddleEntry{}, fmt.Errorf("huddle type is required: %w", apperrors.ErrValidation)
	}
	if params.Date.IsZero() {
		params.Date = s.now()
	}

	huddle := model.HuddleEntry{
		ID:         id.New(id.PrefixHuddle),
		Date:       params.Date,
		Type:       params.Type,
		Attendees:  params.Attendees,
		Wins:       params.Wins,
		Stucks:     params.Stucks,
		Priorities: params.Priorities,
		Notes:      params.Notes,
		CreatedBy:  params.CreatedBy,
		CreatedAt:  s.now(),
	}

	var huddles []model.HuddleEntry
	if _, err := s.store.Get(storage.KeyHuddles, &huddles); err != nil {
		return model.HuddleEntry{}, fmt.Errorf("loading huddles: %w", err)
	}
	huddles = append(huddles, huddle)
	if err := s.store.Set(storage.KeyHuddles, huddles); err != nil {
		return model.HuddleEntry{}, fmt.Errorf("saving huddles: %w", err)
	}
	return huddle, nil
}
