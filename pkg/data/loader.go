package data

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"

	"titanicprep/pkg/pipeline"
)

// MissingTokens are the cell values read as missing. The Kaggle files leave
// missing cells empty.
var MissingTokens = []string{"", "NA", "NaN", "<nil>"}

// ReadCSV loads a passenger table. Raw passenger columns get fixed types;
// every other column has its type detected.
func ReadCSV(r io.Reader) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(bufio.NewReader(r),
		dataframe.NaNValues(MissingTokens),
		dataframe.WithTypes(pipeline.InputSchema.ColumnTypes()),
	)
	if df.Err != nil {
		return df, fmt.Errorf("read csv: %w", df.Err)
	}
	return df, nil
}

// LoadCSV opens path and reads it with ReadCSV.
func LoadCSV(path string) (dataframe.DataFrame, error) {
	file, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	defer file.Close()
	return ReadCSV(file)
}

// WriteCSV writes df with a header row. Missing values are written as NaN.
func WriteCSV(w io.Writer, df dataframe.DataFrame) error {
	if err := df.WriteCSV(w); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// SaveCSV creates path and writes df to it.
func SaveCSV(path string, df dataframe.DataFrame) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(file, df); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
