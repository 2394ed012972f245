package services

import "github.com/cyra-app/cyra/internal/models"

// AverageCycleLength returns the mean of every recorded cycle length across
// the user's history, rounded to the nearest day. Averaging the whole history
// smooths single irregular cycles; sparse data falls back to the population
// default.
func AverageCycleLength(history []models.CycleRecord) int {
	lengths := make([]int, 0, len(history))
	for _, record := range history {
		if record.CycleLength != nil {
			lengths = append(lengths, *record.CycleLength)
		}
	}
	if len(lengths) == 0 {
		return models.DefaultCycleLength
	}
	return roundedAverage(lengths)
}

func AveragePeriodLength(history []models.CycleRecord) int {
	lengths := make([]int, 0, len(history))
	for _, record := range history {
		if record.PeriodLength != nil {
			lengths = append(lengths, *record.PeriodLength)
		}
	}
	if len(lengths) == 0 {
		return models.DefaultPeriodLength
	}
	return roundedAverage(lengths)
}

func roundedAverage(values []int) int {
	var total int
	for _, value := range values {
		total += value
	}
	return int(float64(total)/float64(len(values)) + 0.5)
}
