package dataprep

import "strconv"

// LabelEncode maps every value of column to its code in cm. Unlike a
// learned encoder the codes are fixed, so an unseen value is an error.
func LabelEncode(column string, values []string, cm *CategoricalMap) ([]int, error) {
	if cm.Codes(column) == nil {
		return nil, newDataError(ErrInvalidMap, column, NoRow, "column has no codes")
	}
	out := make([]int, len(values))
	for i, v := range values {
		code, ok := cm.Code(column, v)
		if !ok {
			return nil, newDataError(ErrMissingCategory, column, i, v)
		}
		out[i] = code
	}
	return out, nil
}

// LabelDecode turns codes of column back into their raw values.
func LabelDecode(column string, codes []int, lm *LabelMap) ([]string, error) {
	out := make([]string, len(codes))
	for i, c := range codes {
		v, ok := lm.Decode(column, c)
		if !ok {
			return nil, newDataError(ErrMissingCategory, column, i, "code "+strconv.Itoa(c))
		}
		out[i] = v
	}
	return out, nil
}
