package dataprep

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategoricalMap_Validation(t *testing.T) {
	tests := []struct {
		name    string
		entries []ColumnCodes
		wantErr bool
	}{
		{"valid", []ColumnCodes{{"Sex", map[string]int{"male": 0, "female": 1}}}, false},
		{"duplicate code", []ColumnCodes{{"Sex", map[string]int{"male": 0, "female": 0}}}, true},
		{"gap in codes", []ColumnCodes{{"Sex", map[string]int{"male": 0, "female": 2}}}, true},
		{"negative code", []ColumnCodes{{"Sex", map[string]int{"male": -1, "female": 0}}}, true},
		{"empty column", []ColumnCodes{{"Sex", map[string]int{}}}, true},
		{"duplicate column", []ColumnCodes{
			{"Sex", map[string]int{"male": 0}},
			{"Sex", map[string]int{"female": 0}},
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cm, err := NewCategoricalMap(tt.entries...)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidMap))
				assert.Nil(t, cm)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, cm)
		})
	}
}

func TestDefaultCategoricalMap(t *testing.T) {
	cm := DefaultCategoricalMap()

	assert.Equal(t, []string{ColSex, ColEmbarked, ColHasCabin, ColCabinLevel, ColTitleGroup}, cm.Columns())

	code, ok := cm.Code(ColEmbarked, "S")
	require.True(t, ok)
	assert.Equal(t, 2, code)

	code, ok = cm.Code(ColHasCabin, "true")
	require.True(t, ok)
	assert.Equal(t, 1, code)

	code, ok = cm.Code(ColCabinLevel, MissingSentinel)
	require.True(t, ok)
	assert.Equal(t, 8, code)

	_, ok = cm.Code(ColCabinLevel, "Z")
	assert.False(t, ok)
	_, ok = cm.Code("Pclass", "1")
	assert.False(t, ok)
}

func TestCategoricalMap_CodesIsCopy(t *testing.T) {
	cm := DefaultCategoricalMap()
	codes := cm.Codes(ColSex)
	codes["male"] = 7

	code, _ := cm.Code(ColSex, "male")
	assert.Equal(t, 0, code)
	assert.Nil(t, cm.Codes("missing"))
}

func TestReverse_RoundTrip(t *testing.T) {
	cm := DefaultCategoricalMap()
	lm := cm.Reverse()

	for _, column := range cm.Columns() {
		for value, code := range cm.Codes(column) {
			got, ok := lm.Decode(column, code)
			require.True(t, ok, "%s code %d", column, code)
			assert.Equal(t, value, got)
		}
	}

	assert.Equal(t, []string{"Miss", "Mr", "Mrs", "Master", "other"}, lm.Labels(ColTitleGroup))
	_, ok := lm.Decode(ColSex, 2)
	assert.False(t, ok)
	_, ok = lm.Decode("Pclass", 0)
	assert.False(t, ok)
}

func TestDefaultTitleMap(t *testing.T) {
	tm := DefaultTitleMap()
	assert.Equal(t, 17, tm.Len())

	tests := map[string]string{
		"Mr":           "Mr",
		"Dr":           "other",
		"Jonkheer":     "other",
		"Mlle":         "Miss",
		"Mme":          "Mrs",
		"the Countess": "other",
		"Master":       "Master",
	}
	for raw, want := range tests {
		got, ok := tm.Group(raw)
		require.True(t, ok, raw)
		assert.Equal(t, want, got, raw)
	}

	_, ok := tm.Group("Dona")
	assert.False(t, ok)
}

func TestNewTitleMap_RejectsUnknownGroup(t *testing.T) {
	_, err := NewTitleMap(map[string]string{"Dr": "doctor"}, DefaultCategoricalMap())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidMap))
}

func TestTitleMap_With(t *testing.T) {
	cm := DefaultCategoricalMap()
	base := DefaultTitleMap()

	extended, err := base.With(map[string]string{"Dona": "Mrs", "Dr": "Mr"}, cm)
	require.NoError(t, err)
	assert.Equal(t, 18, extended.Len())

	g, ok := extended.Group("Dona")
	require.True(t, ok)
	assert.Equal(t, "Mrs", g)
	g, _ = extended.Group("Dr")
	assert.Equal(t, "Mr", g)

	// the base map is untouched
	_, ok = base.Group("Dona")
	assert.False(t, ok)
	g, _ = base.Group("Dr")
	assert.Equal(t, "other", g)

	_, err = base.With(map[string]string{"Dona": "Lady"}, cm)
	assert.True(t, errors.Is(err, ErrInvalidMap))
}
