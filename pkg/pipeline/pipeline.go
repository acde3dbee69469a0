package pipeline

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"titanicprep/pkg/dataprep"
)

// Step is one ordered transformation of the passenger table.
type Step struct {
	Name  string
	Apply func(df dataframe.DataFrame) (dataframe.DataFrame, error)
}

// Pipeline prepares Titanic passenger records for modeling. It owns the
// dataset and the lookup tables for the duration of a single Run and is not
// safe for concurrent use.
type Pipeline struct {
	source dataframe.DataFrame
	data   dataframe.DataFrame

	codes  *dataprep.CategoricalMap
	labels *dataprep.LabelMap
	titles *dataprep.TitleMap

	childMaxAge float64
	logger      *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithCategoricalMap replaces the default modeling codes. The label map is
// derived from it again.
func WithCategoricalMap(cm *dataprep.CategoricalMap) Option {
	return func(p *Pipeline) { p.codes = cm }
}

// WithTitleMap replaces the default title normalization table.
func WithTitleMap(tm *dataprep.TitleMap) Option {
	return func(p *Pipeline) { p.titles = tm }
}

// WithChildMaxAge sets the oldest age flagged in is_Child?.
func WithChildMaxAge(age float64) Option {
	return func(p *Pipeline) { p.childMaxAge = age }
}

// WithLogger sets the logger used for stage progress.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// NewPipeline creates a pipeline over df. The title map is checked against
// the categorical map before anything runs.
func NewPipeline(df dataframe.DataFrame, opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		source:      df,
		data:        df,
		codes:       dataprep.DefaultCategoricalMap(),
		titles:      dataprep.DefaultTitleMap(),
		childMaxAge: dataprep.DefaultChildMaxAge,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.codes == nil {
		return nil, &dataprep.DataError{Err: dataprep.ErrInvalidMap, Column: "categorical map", Row: dataprep.NoRow, Value: "nil"}
	}
	if p.titles == nil {
		return nil, &dataprep.DataError{Err: dataprep.ErrInvalidMap, Column: dataprep.ColTitleGroup, Row: dataprep.NoRow, Value: "nil title map"}
	}
	if p.logger == nil {
		p.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if err := p.titles.Validate(p.codes); err != nil {
		return nil, fmt.Errorf("title map: %w", err)
	}
	p.labels = p.codes.Reverse()
	return p, nil
}

// Run cleans, derives and encodes the dataset and returns the modeling table.
func (p *Pipeline) Run() (dataframe.DataFrame, error) {
	if p.source.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("input dataset: %w", p.source.Err)
	}
	if err := InputSchema.Validate(p.source); err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("input dataset: %w", err)
	}

	prepped, err := p.Prepare(p.source)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	modeling, err := p.Encode(prepped)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	p.data = modeling
	return modeling, nil
}

// Prepare fills missing values and adds the derived feature columns.
func (p *Pipeline) Prepare(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	return p.runStage("prepare", df, p.prepareSteps())
}

// Encode replaces categorical columns by their codes and drops the raw
// columns that are no longer needed.
func (p *Pipeline) Encode(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	steps := make([]Step, 0, len(p.codes.Columns())+1)
	for _, column := range p.codes.Columns() {
		steps = append(steps, Step{Name: "encode " + column, Apply: p.encodeColumn(column)})
	}
	steps = append(steps, Step{Name: "drop raw columns", Apply: dropRawColumns})
	return p.runStage("encode", df, steps)
}

// PassengersOnTicket counts the rows of the input dataset that hold ticket.
func (p *Pipeline) PassengersOnTicket(ticket string) int {
	tickets, err := column(p.source, dataprep.ColTicket)
	if err != nil {
		return 0
	}
	n := 0
	for i, t := range tickets.Records() {
		if t == ticket && !tickets.Elem(i).IsNA() {
			n++
		}
	}
	return n
}

// Data returns the modeling table after Run, or the input before it.
func (p *Pipeline) Data() dataframe.DataFrame { return p.data }

// Codes returns the categorical map used for encoding.
func (p *Pipeline) Codes() *dataprep.CategoricalMap { return p.codes }

// Labels returns the inverse of Codes, for labeling output.
func (p *Pipeline) Labels() *dataprep.LabelMap { return p.labels }

// Titles returns the title normalization table.
func (p *Pipeline) Titles() *dataprep.TitleMap { return p.titles }

func (p *Pipeline) runStage(stage string, df dataframe.DataFrame, steps []Step) (dataframe.DataFrame, error) {
	log := p.logger.With(slog.String("stage", stage))
	log.Info("stage started", slog.Int("rows", df.Nrow()), slog.Int("columns", df.Ncol()))

	for _, step := range steps {
		out, err := step.Apply(df)
		if err == nil {
			err = out.Err
		}
		if err != nil {
			log.Error("step failed", slog.String("step", step.Name), slog.String("error", err.Error()))
			return dataframe.DataFrame{}, fmt.Errorf("%s: %s: %w", stage, step.Name, err)
		}
		log.Debug("step finished", slog.String("step", step.Name))
		df = out
	}

	log.Info("stage finished", slog.Int("rows", df.Nrow()), slog.Int("columns", df.Ncol()))
	return df, nil
}

// prepareSteps runs in a fixed order: has_Cabin? must see Cabin before it is
// filled and is_Child? must see Age after it is.
func (p *Pipeline) prepareSteps() []Step {
	return []Step{
		{Name: "flag cabin", Apply: flagCabin},
		{Name: "impute age", Apply: p.imputeAge},
		{Name: "impute embarked", Apply: imputeSentinel(dataprep.ColEmbarked)},
		{Name: "impute cabin", Apply: imputeSentinel(dataprep.ColCabin)},
		{Name: "flag child", Apply: p.flagChild},
		{Name: "family aboard", Apply: familyAboard},
		{Name: "shared ticket", Apply: sharedTicket},
		{Name: "per person fare", Apply: perPersonFare},
		{Name: "cabin level", Apply: cabinLevel},
		{Name: "raw title", Apply: rawTitle},
		{Name: "title group", Apply: p.titleGroup},
	}
}

func flagCabin(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	cabin, err := column(df, dataprep.ColCabin)
	if err != nil {
		return df, err
	}
	has := dataprep.Present(cabin.IsNaN())
	return df.Mutate(series.New(has, series.Bool, dataprep.ColHasCabin)), nil
}

func (p *Pipeline) imputeAge(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	age, err := column(df, dataprep.ColAge)
	if err != nil {
		return df, err
	}
	filled, fill, err := dataprep.ImputeTruncatedMean(dataprep.ColAge, age.Float())
	if err != nil {
		return df, err
	}
	p.logger.Debug("age imputed", slog.Float64("fill", fill))
	return df.Mutate(series.New(filled, series.Float, dataprep.ColAge)), nil
}

func imputeSentinel(name string) func(dataframe.DataFrame) (dataframe.DataFrame, error) {
	return func(df dataframe.DataFrame) (dataframe.DataFrame, error) {
		col, err := column(df, name)
		if err != nil {
			return df, err
		}
		filled := dataprep.ImputeConstant(col.Records(), col.IsNaN(), dataprep.MissingSentinel)
		return df.Mutate(series.New(filled, series.String, name)), nil
	}
}

func (p *Pipeline) flagChild(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	age, err := column(df, dataprep.ColAge)
	if err != nil {
		return df, err
	}
	flags := dataprep.IsChild(age.Float(), p.childMaxAge)
	return df.Mutate(series.New(flags, series.Int, dataprep.ColIsChild)), nil
}

func familyAboard(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	sibsp, err := column(df, dataprep.ColSibSp)
	if err != nil {
		return df, err
	}
	parch, err := column(df, dataprep.ColParch)
	if err != nil {
		return df, err
	}
	family, err := dataprep.FamilyAboard(sibsp.Float(), parch.Float())
	if err != nil {
		return df, err
	}
	return df.Mutate(series.New(family, series.Int, dataprep.ColFamilyAboard)), nil
}

func sharedTicket(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	ticket, err := column(df, dataprep.ColTicket)
	if err != nil {
		return df, err
	}
	if err := dataprep.RequirePresent(dataprep.ColTicket, ticket.IsNaN()); err != nil {
		return df, err
	}
	counts := dataprep.SharedTicketCounts(ticket.Records())
	return df.Mutate(series.New(counts, series.Int, dataprep.ColSharedTicket)), nil
}

func perPersonFare(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	fare, err := column(df, dataprep.ColFare)
	if err != nil {
		return df, err
	}
	shared, err := column(df, dataprep.ColSharedTicket)
	if err != nil {
		return df, err
	}
	counts, err := shared.Int()
	if err != nil {
		return df, err
	}
	perPerson, err := dataprep.PerPersonFare(fare.Float(), counts)
	if err != nil {
		return df, err
	}
	return df.Mutate(series.New(perPerson, series.Float, dataprep.ColPerPersonFare)), nil
}

func cabinLevel(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	cabin, err := column(df, dataprep.ColCabin)
	if err != nil {
		return df, err
	}
	levels, err := dataprep.CabinLevels(cabin.Records())
	if err != nil {
		return df, err
	}
	return df.Mutate(series.New(levels, series.String, dataprep.ColCabinLevel)), nil
}

func rawTitle(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	name, err := column(df, dataprep.ColName)
	if err != nil {
		return df, err
	}
	titles, err := dataprep.RawTitles(name.Records())
	if err != nil {
		return df, err
	}
	return df.Mutate(series.New(titles, series.String, dataprep.ColTitleRaw)), nil
}

func (p *Pipeline) titleGroup(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	raw, err := column(df, dataprep.ColTitleRaw)
	if err != nil {
		return df, err
	}
	groups, err := dataprep.GroupTitles(raw.Records(), p.titles)
	if err != nil {
		return df, err
	}
	return df.Mutate(series.New(groups, series.String, dataprep.ColTitleGroup)), nil
}

func (p *Pipeline) encodeColumn(name string) func(dataframe.DataFrame) (dataframe.DataFrame, error) {
	return func(df dataframe.DataFrame) (dataframe.DataFrame, error) {
		col, err := column(df, name)
		if err != nil {
			return df, err
		}
		codes, err := dataprep.LabelEncode(name, col.Records(), p.codes)
		if err != nil {
			return df, err
		}
		return df.Mutate(series.New(codes, series.Int, name)), nil
	}
}

func dropRawColumns(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	var keep []string
	for _, name := range df.Names() {
		if !slices.Contains(DroppedColumns, name) {
			keep = append(keep, name)
		}
	}
	return df.Select(keep), nil
}

func column(df dataframe.DataFrame, name string) (series.Series, error) {
	if !slices.Contains(df.Names(), name) {
		return series.Series{}, &dataprep.DataError{Err: dataprep.ErrMissingColumn, Column: name, Row: dataprep.NoRow}
	}
	return df.Col(name), nil
}
