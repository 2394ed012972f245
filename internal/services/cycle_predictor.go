package services

import "time"

const (
	// Fixed population averages; not personalized.
	lutealPhaseDays       = 14
	fertileWindowLeadDays = 5
)

func PredictNextStart(lastStart time.Time, avgCycleLen int, location *time.Location) time.Time {
	return DateAtLocation(lastStart, location).AddDate(0, 0, avgCycleLen)
}

func PredictOvulation(nextStart time.Time, location *time.Location) time.Time {
	return DateAtLocation(nextStart, location).AddDate(0, 0, -lutealPhaseDays)
}

// PredictFertileWindow returns the inclusive date range in which conception is
// considered likely. The window closes on the ovulation day itself; the five
// preceding days model sperm viability.
func PredictFertileWindow(ovulation time.Time, location *time.Location) (time.Time, time.Time) {
	end := DateAtLocation(ovulation, location)
	return end.AddDate(0, 0, -fertileWindowLeadDays), end
}
