package models

import (
	"sort"
	"strconv"
	"strings"
)

// Semester labels look like "Fall 2023". Plain string comparison misorders
// cross-year transitions ("Fall 2023" > "Spring 2024"), so ordering always
// goes through an explicit (year, term-rank) key.

var termRanks = map[string]int{
	"winter": 1,
	"spring": 2,
	"summer": 3,
	"fall":   4,
}

// ParseSemester splits a "Term YYYY" label into a chronological sort key.
// The second return is false when the label does not follow the format.
func ParseSemester(label string) (year int, term int, ok bool) {
	parts := strings.Fields(label)
	if len(parts) != 2 {
		return 0, 0, false
	}
	rank, ok := termRanks[strings.ToLower(parts[0])]
	if !ok {
		return 0, 0, false
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return year, rank, true
}

// CompareSemesters orders two labels chronologically, returning a negative
// value when a precedes b. Parseable labels always sort before unparseable
// ones; unparseable labels compare among themselves as plain strings. Keeping
// the two classes apart makes the comparator transitive over a mixed set.
func CompareSemesters(a, b string) int {
	ay, at, aok := ParseSemester(a)
	by, bt, bok := ParseSemester(b)
	switch {
	case aok && bok:
		if ay != by {
			return ay - by
		}
		return at - bt
	case aok:
		return -1
	case bok:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// SortSemestersAsc orders labels oldest first.
func SortSemestersAsc(labels []string) {
	sort.SliceStable(labels, func(i, j int) bool {
		return CompareSemesters(labels[i], labels[j]) < 0
	})
}

// SortSemestersDesc orders labels most recent first.
func SortSemestersDesc(labels []string) {
	sort.SliceStable(labels, func(i, j int) bool {
		return CompareSemesters(labels[i], labels[j]) > 0
	})
}
