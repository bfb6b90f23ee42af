package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ndanashe-Hevs/London-crime-analysis-dash/dataset"
)

var filterFixture = []dataset.CrimeRecord{
	rec("Camden", 2021, 1, "Burglary", 10, 2.0, 100),
	rec("Camden", 2021, 2, "Robbery", 5, 1.0, 100),
	rec("Lambeth", 2021, 3, "Burglary", 7, 1.5, 100),
	rec("Southwark", 2021, 4, "Theft", 3, 0.5, 100),
}

func TestFilterByCrimeTypePresent(t *testing.T) {
	out := Filter(filterFixture, CrimeTypeIs("Burglary"))
	require.Len(t, out, 2)
	for _, r := range out {
		assert.Equal(t, "Burglary", r.MajorCrime)
	}
}

func TestFilterByCrimeTypeAbsent(t *testing.T) {
	out := Filter(filterFixture, CrimeTypeIs("Arson"))
	assert.Empty(t, out)
}

func TestFilterCaseInsensitive(t *testing.T) {
	out := Filter(filterFixture, CrimeTypeIs("burglary"))
	assert.Len(t, out, 2)
}

func TestFilterByBoroughSet(t *testing.T) {
	out := Filter(filterFixture, BoroughIn([]string{"Camden", "Southwark"}))
	require.Len(t, out, 3)

	out = Filter(filterFixture, BoroughIn(nil))
	assert.Empty(t, out, "empty borough set matches nothing")
}

func TestFilterConjunction(t *testing.T) {
	out := Filter(filterFixture,
		CrimeTypeIs("Burglary"),
		BoroughIn([]string{"Camden", "Lambeth"}),
	)
	require.Len(t, out, 2)

	out = Filter(filterFixture,
		CrimeTypeIs("Theft"),
		BoroughIs("Camden"),
	)
	assert.Empty(t, out)
}

func TestFilterNoPredicates(t *testing.T) {
	assert.Len(t, Filter(filterFixture), len(filterFixture))
}
