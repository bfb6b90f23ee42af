package view

import (
	"fmt"

	"github.com/Ndanashe-Hevs/London-crime-analysis-dash/engine"
)

// Statistics is the stats-tab summary: raw values plus display lines.
type Statistics struct {
	TotalCrimes         int      `json:"totalCrimes"`
	AverageCrimeRate    float64  `json:"averageCrimeRate"`
	MostAffectedBorough string   `json:"mostAffectedBorough"`
	HighestCrimeRate    float64  `json:"highestCrimeRate"`
	Items               []string `json:"items"`
}

// StatisticsFrom formats an engine summary for display.
func StatisticsFrom(s engine.Summary) *Statistics {
	return &Statistics{
		TotalCrimes:         s.TotalCrimes,
		AverageCrimeRate:    RoundTo2(s.AverageCrimeRate),
		MostAffectedBorough: s.MostAffectedBorough,
		HighestCrimeRate:    RoundTo2(s.HighestCrimeRate),
		Items: []string{
			fmt.Sprintf("Total Crimes: %s", FormatInt(s.TotalCrimes)),
			fmt.Sprintf("Average Crime Rate (per 1000): %.2f", s.AverageCrimeRate),
			fmt.Sprintf("Most Affected Borough: %s", s.MostAffectedBorough),
			fmt.Sprintf("Highest Crime Rate (per 1000): %.2f", s.HighestCrimeRate),
		},
	}
}
