// Package chart draws bar charts of encoded passenger columns. Bars are
// labeled through the pipeline's label map, so the x axis reads "female"
// rather than 1.
package chart

import (
	"fmt"
	"image/color"
	"io"
	"slices"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"titanicprep/pkg/dataprep"
	"titanicprep/pkg/stats"
)

const (
	width  = 6 * vg.Inch
	height = 4 * vg.Inch
)

var barColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}

// CategoryCounts plots how many passengers fall in each category of an
// encoded column.
func CategoryCounts(df dataframe.DataFrame, column string, labels *dataprep.LabelMap) (*plot.Plot, error) {
	codes, names, err := encoded(df, column, labels)
	if err != nil {
		return nil, err
	}
	counts, err := countByCode(column, codes, len(names))
	if err != nil {
		return nil, err
	}
	title := fmt.Sprintf("%s (n=%d)", column, int(stats.Sum(counts)))
	return bars(title, "passengers", counts, names)
}

// SurvivalRates plots the share of survivors in each category of an
// encoded column. df must carry the Survived label.
func SurvivalRates(df dataframe.DataFrame, column string, labels *dataprep.LabelMap) (*plot.Plot, error) {
	codes, names, err := encoded(df, column, labels)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(df.Names(), dataprep.ColSurvived) {
		return nil, &dataprep.DataError{Err: dataprep.ErrMissingColumn, Column: dataprep.ColSurvived, Row: dataprep.NoRow}
	}
	survived, err := df.Col(dataprep.ColSurvived).Int()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", dataprep.ColSurvived, err)
	}
	rates, err := survivalByCode(column, codes, survived, len(names))
	if err != nil {
		return nil, err
	}
	return bars(column+" survival rate", "survived", rates, names)
}

// Save writes p to path; the image format follows the file extension.
func Save(p *plot.Plot, path string) error {
	return p.Save(width, height, path)
}

// Render writes p to w in the given format (png, svg, pdf, ...).
func Render(w io.Writer, p *plot.Plot, format string) error {
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

func encoded(df dataframe.DataFrame, column string, labels *dataprep.LabelMap) ([]int, []string, error) {
	names := labels.Labels(column)
	if len(names) == 0 {
		return nil, nil, &dataprep.DataError{Err: dataprep.ErrInvalidMap, Column: column, Row: dataprep.NoRow, Value: "no labels"}
	}
	if !slices.Contains(df.Names(), column) {
		return nil, nil, &dataprep.DataError{Err: dataprep.ErrMissingColumn, Column: column, Row: dataprep.NoRow}
	}
	codes, err := df.Col(column).Int()
	if err != nil {
		return nil, nil, fmt.Errorf("%s is not encoded: %w", column, err)
	}
	return codes, names, nil
}

func countByCode(column string, codes []int, n int) (plotter.Values, error) {
	counts := make(plotter.Values, n)
	for i, c := range codes {
		if c < 0 || c >= n {
			return nil, &dataprep.DataError{Err: dataprep.ErrMissingCategory, Column: column, Row: i, Value: fmt.Sprint(c)}
		}
		counts[c]++
	}
	return counts, nil
}

func survivalByCode(column string, codes, survived []int, n int) (plotter.Values, error) {
	groups := make([][]float64, n)
	for i, c := range codes {
		if c < 0 || c >= n {
			return nil, &dataprep.DataError{Err: dataprep.ErrMissingCategory, Column: column, Row: i, Value: fmt.Sprint(c)}
		}
		groups[c] = append(groups[c], float64(survived[i]))
	}
	rates := make(plotter.Values, n)
	for c, g := range groups {
		rates[c] = stats.Mean(g)
	}
	return rates, nil
}

func bars(title, yLabel string, values plotter.Values, names []string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel

	b, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return nil, err
	}
	b.Color = barColor
	b.LineStyle.Width = 0

	p.Add(b)
	p.NominalX(names...)
	return p, nil
}
