package dataprep

import (
	"math"
	"strconv"
	"strings"

	"titanicprep/pkg/stats"
)

// IsChild flags ages at or below maxAge with 1.
func IsChild(ages []float64, maxAge float64) []int {
	out := make([]int, len(ages))
	for i, age := range ages {
		if age <= maxAge {
			out[i] = 1
		}
	}
	return out
}

// FamilyAboard sums siblings/spouses and parents/children per row.
func FamilyAboard(sibsp, parch []float64) ([]int, error) {
	out := make([]int, len(sibsp))
	for i := range sibsp {
		if math.IsNaN(sibsp[i]) {
			return nil, newDataError(ErrMissingValue, ColSibSp, i, "")
		}
		if math.IsNaN(parch[i]) {
			return nil, newDataError(ErrMissingValue, ColParch, i, "")
		}
		out[i] = int(sibsp[i]) + int(parch[i])
	}
	return out, nil
}

// SharedTicketCounts returns, for every row, how many rows hold the same
// ticket. A row always counts itself.
func SharedTicketCounts(tickets []string) []int {
	counts := stats.CountBy(tickets)
	out := make([]int, len(tickets))
	for i, t := range tickets {
		out[i] = counts[t]
	}
	return out
}

// PerPersonFare splits each fare across the passengers on its ticket,
// rounded to cents. A NaN fare stays NaN.
func PerPersonFare(fares []float64, shared []int) ([]float64, error) {
	out := make([]float64, len(fares))
	for i, fare := range fares {
		if shared[i] <= 0 {
			return nil, newDataError(ErrMissingValue, ColSharedTicket, i, strconv.Itoa(shared[i]))
		}
		out[i] = stats.Round(fare/float64(shared[i]), 2)
	}
	return out, nil
}

// CabinLevels takes the deck letter from each cabin identifier.
func CabinLevels(cabins []string) ([]string, error) {
	out := make([]string, len(cabins))
	for i, c := range cabins {
		if c == "" {
			return nil, newDataError(ErrMissingValue, ColCabin, i, c)
		}
		out[i] = c[:1]
	}
	return out, nil
}

// ExtractTitle returns the honorific in a "Surname, Title. Given names" name:
// the text between the first comma and the next period, trimmed.
func ExtractTitle(name string) (string, bool) {
	_, rest, ok := strings.Cut(name, ",")
	if !ok {
		return "", false
	}
	title, _, ok := strings.Cut(rest, ".")
	if !ok {
		return "", false
	}
	return strings.TrimSpace(title), true
}

// RawTitles extracts the title of every name.
func RawTitles(names []string) ([]string, error) {
	out := make([]string, len(names))
	for i, name := range names {
		title, ok := ExtractTitle(name)
		if !ok {
			return nil, newDataError(ErrMalformedName, ColName, i, name)
		}
		out[i] = title
	}
	return out, nil
}

// GroupTitles normalizes raw titles through tm.
func GroupTitles(titles []string, tm *TitleMap) ([]string, error) {
	out := make([]string, len(titles))
	for i, t := range titles {
		group, ok := tm.Group(t)
		if !ok {
			return nil, newDataError(ErrUnrecognizedTitle, ColTitleRaw, i, t)
		}
		out[i] = group
	}
	return out, nil
}
