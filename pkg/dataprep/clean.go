package dataprep

// Present inverts a missing-value mask.
func Present(missing []bool) []bool {
	out := make([]bool, len(missing))
	for i, m := range missing {
		out[i] = !m
	}
	return out
}

// RequirePresent fails on the first missing entry of column.
func RequirePresent(column string, missing []bool) error {
	for i, m := range missing {
		if m {
			return newDataError(ErrMissingValue, column, i, "")
		}
	}
	return nil
}
