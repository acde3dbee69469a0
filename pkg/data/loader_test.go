package data

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const trainCSV = `PassengerId,Survived,Pclass,Name,Sex,Age,SibSp,Parch,Ticket,Fare,Cabin,Embarked
1,0,3,"Braund, Mr. Owen Harris",male,22,1,0,A/5 21171,7.25,,S
2,1,1,"Cumings, Mrs. John Bradley (Florence Briggs Thayer)",female,38,1,0,PC 17599,71.2833,C85,C
6,0,3,"Moran, Mr. James",male,,0,0,330877,8.4583,,Q
62,1,1,"Icard, Miss. Amelie",female,38,0,0,113572,80,B28,
`

func TestReadCSV(t *testing.T) {
	df, err := ReadCSV(strings.NewReader(trainCSV))
	require.NoError(t, err)

	assert.Equal(t, 4, df.Nrow())
	assert.Equal(t, series.Float, df.Col("Age").Type())
	assert.Equal(t, series.String, df.Col("Ticket").Type())
	assert.Equal(t, series.Int, df.Col("SibSp").Type())
	assert.Equal(t, series.Int, df.Col("Pclass").Type())

	assert.Equal(t, []bool{false, false, true, false}, df.Col("Age").IsNaN())
	assert.Equal(t, []bool{true, false, true, false}, df.Col("Cabin").IsNaN())
	assert.Equal(t, []bool{false, false, false, true}, df.Col("Embarked").IsNaN())
	assert.Equal(t, "Braund, Mr. Owen Harris", df.Col("Name").Records()[0])
}

func TestWriteCSV_RoundTripKeepsMissing(t *testing.T) {
	df, err := ReadCSV(strings.NewReader(trainCSV))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, df))

	back, err := ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, df.Names(), back.Names())
	assert.Equal(t, df.Col("Age").IsNaN(), back.Col("Age").IsNaN())
	assert.Equal(t, df.Col("Cabin").IsNaN(), back.Col("Cabin").IsNaN())
	assert.Equal(t, df.Col("Ticket").Records(), back.Col("Ticket").Records())
}

func TestSaveAndLoadCSV(t *testing.T) {
	df, err := ReadCSV(strings.NewReader(trainCSV))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "train.csv")
	require.NoError(t, SaveCSV(path, df))

	back, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, df.Nrow(), back.Nrow())
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
