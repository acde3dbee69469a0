package dataprep

import (
	"fmt"
	"maps"
	"sort"
	"strconv"
)

// ColumnCodes assigns an integer code to every value a categorical column
// can take after cleaning.
type ColumnCodes struct {
	Column string
	Codes  map[string]int
}

// CategoricalMap is a fixed, ordered table of column -> value -> code.
// It is immutable once built; accessors return copies.
type CategoricalMap struct {
	columns []string
	codes   map[string]map[string]int
}

// NewCategoricalMap validates and builds a CategoricalMap. Within every
// column the codes must be unique and contiguous from 0.
func NewCategoricalMap(entries ...ColumnCodes) (*CategoricalMap, error) {
	cm := &CategoricalMap{codes: make(map[string]map[string]int, len(entries))}
	for _, e := range entries {
		if _, dup := cm.codes[e.Column]; dup {
			return nil, newDataError(ErrInvalidMap, e.Column, NoRow, "duplicate column")
		}
		if len(e.Codes) == 0 {
			return nil, newDataError(ErrInvalidMap, e.Column, NoRow, "no codes")
		}
		seen := make([]bool, len(e.Codes))
		for value, code := range e.Codes {
			if code < 0 || code >= len(e.Codes) {
				return nil, newDataError(ErrInvalidMap, e.Column, NoRow,
					fmt.Sprintf("%s=%d not contiguous from 0", value, code))
			}
			if seen[code] {
				return nil, newDataError(ErrInvalidMap, e.Column, NoRow,
					fmt.Sprintf("%s=%d duplicates another code", value, code))
			}
			seen[code] = true
		}
		cm.columns = append(cm.columns, e.Column)
		cm.codes[e.Column] = maps.Clone(e.Codes)
	}
	return cm, nil
}

// DefaultCategoricalMap returns the hard-coded modeling codes.
func DefaultCategoricalMap() *CategoricalMap {
	cm, err := NewCategoricalMap(
		ColumnCodes{ColSex, map[string]int{"male": 0, "female": 1}},
		ColumnCodes{ColEmbarked, map[string]int{"C": 0, "Q": 1, "S": 2, MissingSentinel: 3}},
		ColumnCodes{ColHasCabin, map[string]int{strconv.FormatBool(false): 0, strconv.FormatBool(true): 1}},
		ColumnCodes{ColCabinLevel, map[string]int{
			"A": 0, "B": 1, "C": 2, "D": 3, "E": 4, "F": 5, "G": 6, "T": 7, MissingSentinel: 8,
		}},
		ColumnCodes{ColTitleGroup, map[string]int{"Miss": 0, "Mr": 1, "Mrs": 2, "Master": 3, "other": 4}},
	)
	if err != nil {
		panic(err)
	}
	return cm
}

// Columns returns the encoded columns in encoding order.
func (cm *CategoricalMap) Columns() []string {
	return append([]string(nil), cm.columns...)
}

// Code looks up the code of value in column.
func (cm *CategoricalMap) Code(column, value string) (int, bool) {
	codes, ok := cm.codes[column]
	if !ok {
		return 0, false
	}
	code, ok := codes[value]
	return code, ok
}

// Codes returns a copy of the value -> code table of column, or nil.
func (cm *CategoricalMap) Codes(column string) map[string]int {
	return maps.Clone(cm.codes[column])
}

// Reverse inverts every column so codes can be turned back into labels.
func (cm *CategoricalMap) Reverse() *LabelMap {
	lm := &LabelMap{labels: make(map[string][]string, len(cm.columns))}
	for _, column := range cm.columns {
		codes := cm.codes[column]
		labels := make([]string, len(codes))
		for value, code := range codes {
			labels[code] = value
		}
		lm.labels[column] = labels
	}
	return lm
}

// LabelMap maps codes back to raw values. It is only used for display.
type LabelMap struct {
	labels map[string][]string
}

// Decode returns the raw value behind code in column.
func (lm *LabelMap) Decode(column string, code int) (string, bool) {
	labels, ok := lm.labels[column]
	if !ok || code < 0 || code >= len(labels) {
		return "", false
	}
	return labels[code], true
}

// Labels returns the raw values of column ordered by code.
func (lm *LabelMap) Labels(column string) []string {
	return append([]string(nil), lm.labels[column]...)
}

// TitleMap collapses raw honorifics into the title_group categories.
type TitleMap struct {
	groups map[string]string
}

// NewTitleMap builds a TitleMap. Every target group must have a code in the
// title_group column of cm.
func NewTitleMap(titles map[string]string, cm *CategoricalMap) (*TitleMap, error) {
	tm := &TitleMap{groups: maps.Clone(titles)}
	if err := tm.Validate(cm); err != nil {
		return nil, err
	}
	return tm, nil
}

// Validate checks that every group of tm has a title_group code in cm.
func (tm *TitleMap) Validate(cm *CategoricalMap) error {
	for _, raw := range sortedKeys(tm.groups) {
		group := tm.groups[raw]
		if _, ok := cm.Code(ColTitleGroup, group); !ok {
			return newDataError(ErrInvalidMap, ColTitleGroup, NoRow,
				fmt.Sprintf("%s -> %s has no code", raw, group))
		}
	}
	return nil
}

// DefaultTitleMap returns the raw titles observed in the Titanic passenger list.
func DefaultTitleMap() *TitleMap {
	tm, err := NewTitleMap(map[string]string{
		"Capt":         "other",
		"Col":          "other",
		"Don":          "other",
		"Dr":           "other",
		"Jonkheer":     "other",
		"Lady":         "other",
		"Major":        "other",
		"Ms":           "Miss",
		"Mlle":         "Miss",
		"Mme":          "Mrs",
		"Rev":          "other",
		"Sir":          "other",
		"the Countess": "other",
		"Mr":           "Mr",
		"Miss":         "Miss",
		"Mrs":          "Mrs",
		"Master":       "Master",
	}, DefaultCategoricalMap())
	if err != nil {
		panic(err)
	}
	return tm
}

// With returns a copy of tm extended (or overridden) by extra.
func (tm *TitleMap) With(extra map[string]string, cm *CategoricalMap) (*TitleMap, error) {
	merged := maps.Clone(tm.groups)
	maps.Copy(merged, extra)
	return NewTitleMap(merged, cm)
}

// Group returns the canonical group of a raw title.
func (tm *TitleMap) Group(raw string) (string, bool) {
	g, ok := tm.groups[raw]
	return g, ok
}

// Len returns the number of known raw titles.
func (tm *TitleMap) Len() int { return len(tm.groups) }

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
