package engine

import "github.com/Ndanashe-Hevs/London-crime-analysis-dash/dataset"

// Summary holds the headline statistics for a filtered record set.
type Summary struct {
	TotalCrimes         int     `json:"total_crimes"`
	AverageCrimeRate    float64 `json:"average_crime_rate"`
	MostAffectedBorough string  `json:"most_affected_borough"`
	HighestCrimeRate    float64 `json:"highest_crime_rate"`
}

// Summarize computes the statistics shown on the stats tab: total crime
// count, mean crime rate, the borough with the highest summed count, and the
// highest per-borough mean rate. Ties keep the first-encountered borough.
// An empty input yields a zero Summary.
func Summarize(records []dataset.CrimeRecord) Summary {
	var s Summary
	if len(records) == 0 {
		return s
	}

	var rateTotal float64
	for _, rec := range records {
		s.TotalCrimes += rec.CrimeCount
		rateTotal += rec.CrimeRatePer1000
	}
	s.AverageCrimeRate = rateTotal / float64(len(records))

	perBorough := Aggregate(records, []Dimension{DimBorough}, []Reduction{
		{Measure: MeasureCrimeCount, Op: Sum},
		{Measure: MeasureCrimeRate, Op: Mean},
	})

	var maxCount float64
	for i, row := range perBorough {
		if i == 0 || row.Value(MeasureCrimeCount) > maxCount {
			maxCount = row.Value(MeasureCrimeCount)
			s.MostAffectedBorough = row.Key(DimBorough)
		}
		if rate := row.Value(MeasureCrimeRate); rate > s.HighestCrimeRate {
			s.HighestCrimeRate = rate
		}
	}
	return s
}
