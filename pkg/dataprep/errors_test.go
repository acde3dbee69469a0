package dataprep

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *DataError
		want string
	}{
		{
			name: "row context",
			err:  newDataError(ErrMissingCategory, "Cabin_level", 4, "Z"),
			want: `value has no categorical code: column "Cabin_level" row 4 value "Z"`,
		},
		{
			name: "column and value",
			err:  newDataError(ErrInvalidMap, "Sex", NoRow, "male"),
			want: `invalid lookup table: column "Sex" value "male"`,
		},
		{
			name: "column only",
			err:  newDataError(ErrMissingColumn, "Ticket", NoRow, ""),
			want: `required column is missing: column "Ticket"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestDataError_Unwrap(t *testing.T) {
	wrapped := fmt.Errorf("encode: %w", newDataError(ErrUnrecognizedTitle, "title_raw", 2, "Dona"))

	assert.True(t, errors.Is(wrapped, ErrUnrecognizedTitle))
	assert.False(t, errors.Is(wrapped, ErrMalformedName))

	var de *DataError
	require.True(t, errors.As(wrapped, &de))
	assert.Equal(t, 2, de.Row)
	assert.Equal(t, "Dona", de.Value)
}
