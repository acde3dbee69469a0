package pipeline

import (
	"slices"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"titanicprep/pkg/dataprep"
)

// Schema describes the structure of a dataset.
type Schema struct {
	FeatureNames []string
	Types        []series.Type
}

// InputSchema lists the raw passenger columns the pipeline reads.
var InputSchema = Schema{
	FeatureNames: []string{
		dataprep.ColAge, dataprep.ColSex, dataprep.ColEmbarked, dataprep.ColCabin,
		dataprep.ColSibSp, dataprep.ColParch, dataprep.ColTicket, dataprep.ColFare,
		dataprep.ColName,
	},
	Types: []series.Type{
		series.Float, series.String, series.String, series.String,
		series.Int, series.Int, series.String, series.Float,
		series.String,
	},
}

// OutputSchema lists the modeling columns Run always produces. Pass-through
// columns such as PassengerId or Survived come on top of these.
var OutputSchema = Schema{
	FeatureNames: []string{
		dataprep.ColAge, dataprep.ColSex, dataprep.ColEmbarked, dataprep.ColHasCabin,
		dataprep.ColIsChild, dataprep.ColFamilyAboard, dataprep.ColSharedTicket,
		dataprep.ColPerPersonFare, dataprep.ColCabinLevel, dataprep.ColTitleGroup,
	},
	Types: []series.Type{
		series.Float, series.Int, series.Int, series.Int,
		series.Int, series.Int, series.Int,
		series.Float, series.Int, series.Int,
	},
}

// DroppedColumns are removed once their information lives in derived columns.
var DroppedColumns = []string{
	dataprep.ColName, dataprep.ColTicket, dataprep.ColCabin, dataprep.ColSibSp,
	dataprep.ColParch, dataprep.ColFare, dataprep.ColTitleRaw,
}

// ColumnTypes returns the schema as a name -> type map.
func (s Schema) ColumnTypes() map[string]series.Type {
	types := make(map[string]series.Type, len(s.FeatureNames))
	for i, name := range s.FeatureNames {
		types[name] = s.Types[i]
	}
	return types
}

// Validate reports the first schema column that df lacks.
func (s Schema) Validate(df dataframe.DataFrame) error {
	names := df.Names()
	for _, name := range s.FeatureNames {
		if !slices.Contains(names, name) {
			return &dataprep.DataError{Err: dataprep.ErrMissingColumn, Column: name, Row: dataprep.NoRow}
		}
	}
	return nil
}
