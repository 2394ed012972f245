package services

import (
	"testing"
	"time"
)

func TestPredictNextStart(t *testing.T) {
	lastStart := mustParseDay(t, "2024-01-01")
	next := PredictNextStart(lastStart, 28, time.UTC)
	if next.Format("2006-01-02") != "2024-01-29" {
		t.Fatalf("expected next start 2024-01-29, got %s", next.Format("2006-01-02"))
	}
}

func TestPredictOvulationFixedLutealPhase(t *testing.T) {
	nextStart := mustParseDay(t, "2024-01-29")
	ovulation := PredictOvulation(nextStart, time.UTC)
	if ovulation.Format("2006-01-02") != "2024-01-15" {
		t.Fatalf("expected ovulation 2024-01-15, got %s", ovulation.Format("2006-01-02"))
	}
}

func TestPredictFertileWindowEndsOnOvulationDay(t *testing.T) {
	ovulation := mustParseDay(t, "2024-01-15")
	start, end := PredictFertileWindow(ovulation, time.UTC)
	if start.Format("2006-01-02") != "2024-01-10" {
		t.Fatalf("expected fertile window start 2024-01-10, got %s", start.Format("2006-01-02"))
	}
	if !end.Equal(ovulation) {
		t.Fatalf("expected fertile window to end on ovulation day, got %s", end.Format("2006-01-02"))
	}
}

func TestPredictNextStartTruncatesClockTime(t *testing.T) {
	lastStart := time.Date(2024, 1, 1, 23, 45, 0, 0, time.UTC)
	next := PredictNextStart(lastStart, 28, time.UTC)
	if next.Hour() != 0 || next.Format("2006-01-02") != "2024-01-29" {
		t.Fatalf("expected midnight 2024-01-29, got %s", next.Format(time.RFC3339))
	}
}
