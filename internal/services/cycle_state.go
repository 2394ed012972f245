package services

import (
	"time"

	"github.com/cyra-app/cyra/internal/models"
)

const (
	PhaseMenstrual  = "menstrual"
	PhaseFollicular = "follicular"
	PhaseFertile    = "fertile"
	PhaseOvulation  = "ovulation"
	PhaseLuteal     = "luteal"
)

// CycleState is the live snapshot derived from a user's history. It is never
// persisted; every read recomputes it from the records.
type CycleState struct {
	AvgCycleLen      int        `json:"avg_cycle_length"`
	AvgPeriodLen     int        `json:"avg_period_length"`
	LastStart        time.Time  `json:"last_period_start"`
	NextStart        time.Time  `json:"next_period_start"`
	OnPeriod         bool       `json:"on_period"`
	PeriodEnd        *time.Time `json:"period_end,omitempty"`
	DaysToPeriodEnd  *int       `json:"days_to_period_end,omitempty"`
	DaysToNextStart  int        `json:"days_to_next_start"`
	Ovulation        time.Time  `json:"ovulation_date"`
	FertileStart     time.Time  `json:"fertile_window_start"`
	FertileEnd       time.Time  `json:"fertile_window_end"`
	DaysToFertileEnd int        `json:"days_to_fertile_end"`
	DayOfCycle       int        `json:"day_of_cycle"`
	Phase            string     `json:"phase"`
}

// ComputeCycleState derives the current snapshot from a history ordered
// most-recent-first. Returns nil on empty history: no cycle logged yet is a
// normal state, not an error. Deterministic for a fixed calendar day; day
// counts are signed and never clamped here, display flooring belongs to the
// caller.
func ComputeCycleState(history []models.CycleRecord, now time.Time, location *time.Location) *CycleState {
	if len(history) == 0 {
		return nil
	}
	if location == nil {
		location = time.UTC
	}

	today := DateAtLocation(now, location)
	current := history[0]

	state := &CycleState{
		AvgCycleLen:  AverageCycleLength(history),
		AvgPeriodLen: AveragePeriodLength(history),
		LastStart:    DateAtLocation(current.StartDate, location),
	}

	state.NextStart = PredictNextStart(state.LastStart, state.AvgCycleLen, location)
	state.Ovulation = PredictOvulation(state.NextStart, location)
	state.FertileStart, state.FertileEnd = PredictFertileWindow(state.Ovulation, location)

	effectivePeriodLen := state.AvgPeriodLen
	if current.PeriodLength != nil {
		effectivePeriodLen = *current.PeriodLength
	}
	if effectivePeriodLen >= 1 {
		periodEnd := state.LastStart.AddDate(0, 0, effectivePeriodLen-1)
		daysToPeriodEnd := DaysBetween(today, periodEnd, location)
		state.PeriodEnd = &periodEnd
		state.DaysToPeriodEnd = &daysToPeriodEnd
		state.OnPeriod = betweenCalendarDaysInclusive(today, state.LastStart, periodEnd)
	}

	state.DaysToNextStart = DaysBetween(today, state.NextStart, location)
	state.DaysToFertileEnd = DaysBetween(today, state.FertileEnd, location)
	state.DayOfCycle = DaysBetween(state.LastStart, today, location) + 1
	state.Phase = currentPhase(state, today)

	return state
}

func currentPhase(state *CycleState, today time.Time) string {
	switch {
	case state.OnPeriod:
		return PhaseMenstrual
	case sameCalendarDay(today, state.Ovulation):
		return PhaseOvulation
	case betweenCalendarDaysInclusive(today, state.FertileStart, state.FertileEnd):
		return PhaseFertile
	case today.Before(state.Ovulation):
		return PhaseFollicular
	default:
		return PhaseLuteal
	}
}
