package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeasonForMonth(t *testing.T) {
	expected := map[int]string{
		12: SeasonWinter, 1: SeasonWinter, 2: SeasonWinter,
		3: SeasonSpring, 4: SeasonSpring, 5: SeasonSpring,
		6: SeasonSummer, 7: SeasonSummer, 8: SeasonSummer,
		9: SeasonAutumn, 10: SeasonAutumn, 11: SeasonAutumn,
	}

	for month := 1; month <= 12; month++ {
		season, err := SeasonForMonth(month)
		require.NoError(t, err, "month %d", month)
		assert.Equal(t, expected[month], season, "month %d", month)
	}
}

func TestSeasonForMonthOutOfRange(t *testing.T) {
	for _, month := range []int{0, 13, -1, 100} {
		_, err := SeasonForMonth(month)
		assert.Error(t, err, "month %d should not classify", month)
	}
}

var sampleCSV = `Boroughs,Year,Month,MajorCrime,CrimeCount,CrimeRatePer1000,Population
Camden,2022,1,Burglary,10,2.0,210000
Camden,2022,7,Burglary,20,4.0,210000
Westminster,2023,10,Robbery,5,1.5,250000
`

func TestParseCSV(t *testing.T) {
	records, err := ParseCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, records, 3)

	first := records[0]
	assert.Equal(t, "Camden", first.Borough)
	assert.Equal(t, 2022, first.Year)
	assert.Equal(t, 1, first.Month)
	assert.Equal(t, "Burglary", first.MajorCrime)
	assert.Equal(t, 10, first.CrimeCount)
	assert.Equal(t, 2.0, first.CrimeRatePer1000)
	assert.Equal(t, 210000, first.Population)
	assert.Equal(t, SeasonWinter, first.Season)

	assert.Equal(t, SeasonSummer, records[1].Season)
	assert.Equal(t, SeasonAutumn, records[2].Season)
}

func TestParseCSVSingularBoroughHeader(t *testing.T) {
	csv := "Borough,Year,Month,MajorCrime,CrimeCount,CrimeRatePer1000,Population\nCamden,2022,3,Theft,1,0.1,1000\n"
	records, err := ParseCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, SeasonSpring, records[0].Season)
}

func TestParseCSVMissingColumn(t *testing.T) {
	csv := "Boroughs,Year,Month\nCamden,2022,1\n"
	_, err := ParseCSV(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing column")
}

func TestParseCSVRejectsOutOfRangeMonth(t *testing.T) {
	csv := "Boroughs,Year,Month,MajorCrime,CrimeCount,CrimeRatePer1000,Population\nCamden,2022,13,Theft,1,0.1,1000\n"
	_, err := ParseCSV(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "month out of range")
}

func TestParseCSVRejectsMalformedRow(t *testing.T) {
	csv := "Boroughs,Year,Month,MajorCrime,CrimeCount,CrimeRatePer1000,Population\nCamden,not-a-year,1,Theft,1,0.1,1000\n"
	_, err := ParseCSV(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid year")
}
