package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSemester(t *testing.T) {
	year, term, ok := ParseSemester("Fall 2023")
	require.True(t, ok)
	assert.Equal(t, 2023, year)
	assert.Equal(t, 4, term)

	year, term, ok = ParseSemester("spring 2024")
	require.True(t, ok)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 2, term)

	_, _, ok = ParseSemester("Trimester 2024")
	assert.False(t, ok)
	_, _, ok = ParseSemester("Fall")
	assert.False(t, ok)
}

func TestSortSemestersChronological(t *testing.T) {
	labels := []string{"Spring 2024", "Fall 2023", "Winter 2024", "Summer 2023"}

	asc := append([]string(nil), labels...)
	SortSemestersAsc(asc)
	// Alphabetical order would put "Spring 2024" before the 2023 terms; the
	// chronological (year, term) key must not.
	assert.Equal(t, []string{"Summer 2023", "Fall 2023", "Winter 2024", "Spring 2024"}, asc)

	desc := append([]string(nil), labels...)
	SortSemestersDesc(desc)
	assert.Equal(t, []string{"Spring 2024", "Winter 2024", "Fall 2023", "Summer 2023"}, desc)
}

func TestSortSemestersFallbackForUnparsable(t *testing.T) {
	labels := []string{"Misc B", "Fall 2023", "Misc A"}
	SortSemestersAsc(labels)
	// Parseable labels come first; the rest keep plain string order.
	assert.Equal(t, []string{"Fall 2023", "Misc A", "Misc B"}, labels)
}

func TestCompareSemestersTransitiveAcrossMixedLabels(t *testing.T) {
	// "Misc" sits between "Fall 2023" and "Spring 2022" in plain string
	// order, which would make a naive fallback cyclic. Parseability must
	// dominate so the comparator stays a strict weak ordering.
	assert.Negative(t, CompareSemesters("Spring 2022", "Fall 2023"))
	assert.Negative(t, CompareSemesters("Fall 2023", "Misc"))
	assert.Negative(t, CompareSemesters("Spring 2022", "Misc"))

	labels := []string{"Misc", "Fall 2023", "Spring 2022"}
	SortSemestersAsc(labels)
	assert.Equal(t, []string{"Spring 2022", "Fall 2023", "Misc"}, labels)
}
