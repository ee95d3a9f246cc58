package pipeline

import (
	"fmt"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/csvmend/csvmend/internal/audit"
	"github.com/csvmend/csvmend/internal/errors"
	"github.com/csvmend/csvmend/internal/models"
	"github.com/csvmend/csvmend/internal/profile"
	"github.com/csvmend/csvmend/internal/prompt"
	"github.com/csvmend/csvmend/internal/reader"
	"github.com/csvmend/csvmend/internal/repair"
)

// DefaultColumn is the conventional free-text column name assumed when the
// caller declares none.
const DefaultColumn = "DESCRIPTION"

// Pipeline orchestrates one repair run: load the file, profile its columns
// once, repair every data row in order, then write the output in a single
// pass. Processing is strictly sequential; the only suspension point is the
// chooser's wait for a human decision on an ambiguous row.
type Pipeline struct {
	// Configuration
	config Config

	// Logger
	logger *zap.Logger

	// Accumulated row results, owned solely by the pipeline
	results []*models.RowResult

	// Summary
	summary *models.Summary
}

// Config holds pipeline configuration
type Config struct {
	// InputFile is the file to repair
	InputFile string

	// OutputFile is where the repaired file is written
	OutputFile string

	// Columns are the preferred text column names (default: DESCRIPTION).
	// Each must exist in the header.
	Columns []string

	// Delimiter is the field separator (default: ",")
	Delimiter string

	// Chooser resolves ambiguous rows; nil makes ambiguity fatal
	Chooser prompt.Chooser

	// AuditStore optionally records every repair (nil = disabled)
	AuditStore *audit.Store

	// Logger for structured progress output (default: no-op)
	Logger *zap.Logger
}

// NewPipeline creates a new repair pipeline
func NewPipeline(config Config) (*Pipeline, error) {
	if config.Delimiter == "" {
		config.Delimiter = ","
	}
	if len(config.Columns) == 0 {
		config.Columns = []string{DefaultColumn}
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &Pipeline{
		config:  config,
		logger:  config.Logger,
		summary: models.NewSummary(),
	}, nil
}

// Run executes the pipeline. On any error the output file is left untouched:
// the repaired rows are written only after every row has been resolved.
func (p *Pipeline) Run() error {
	doc, err := reader.Load(p.config.InputFile, p.config.Delimiter)
	if err != nil {
		return err
	}

	if doc.Empty() {
		return reader.WriteRows(p.config.OutputFile, nil, p.config.Delimiter)
	}

	preferred, err := p.resolveColumns(doc)
	if err != nil {
		return err
	}

	prof := profile.Build(doc.Records, doc.ExpectedColumns(), p.config.Delimiter)

	p.logger.Info("repairing file",
		zap.String("file", p.config.InputFile),
		zap.Int("columns", doc.ExpectedColumns()),
		zap.Int("rows", len(doc.Records)),
		zap.Int("profiled_columns", prof.Len()),
		zap.Ints("preferred", preferred),
	)

	engine := repair.NewEngine(repair.Config{
		Header:           doc.Header,
		Profile:          prof,
		PreferredIndices: preferred,
		Delimiter:        p.config.Delimiter,
		Chooser:          p.config.Chooser,
	})

	rows := make([][]string, 0, len(doc.Records)+1)
	rows = append(rows, doc.Header)

	for _, record := range doc.Records {
		result, err := engine.Repair(record)
		if err != nil {
			return err
		}

		if result.Action != models.ActionPass {
			p.logger.Debug("repaired row",
				zap.Int("line", record.LineNumber),
				zap.String("action", string(result.Action)),
				zap.Int("merge_index", result.MergeIndex),
				zap.Float64("score", result.Score),
			)
		}

		p.results = append(p.results, result)
		p.summary.AddResult(result)
		rows = append(rows, result.Row)
	}

	p.summary.Finalize()

	if p.config.AuditStore != nil {
		if err := p.config.AuditStore.RecordRun(doc.Header, p.config.Delimiter, p.results); err != nil {
			return errors.NewProcessingError("audit", p.config.InputFile, 0, err)
		}
	}

	if err := reader.WriteRows(p.config.OutputFile, rows, p.config.Delimiter); err != nil {
		return errors.NewProcessingError("write", p.config.OutputFile, 0, err)
	}

	p.logger.Info("repair complete",
		zap.Int("total", p.summary.TotalRows),
		zap.Int("passed", p.summary.PassedCount),
		zap.Int("padded", p.summary.PaddedCount),
		zap.Int("merged", p.summary.MergedCount),
		zap.Int("prompted", p.summary.PromptedCount),
	)

	return nil
}

// resolveColumns maps the declared column names to header indices. A name
// occurring more than once resolves to its first index; a name absent from
// the header fails the whole run before any row is processed.
func (p *Pipeline) resolveColumns(doc *reader.Document) ([]int, error) {
	indices := make([]int, 0, len(p.config.Columns))

	for _, name := range p.config.Columns {
		idx := doc.ColumnIndex(name)
		if idx < 0 {
			return nil, errors.NewColumnNotFoundError(name)
		}
		indices = append(indices, idx)
	}

	return indices, nil
}

// Summary returns the processing summary
func (p *Pipeline) Summary() *models.Summary {
	return p.summary
}

// Results returns the per-row outcomes of the run
func (p *Pipeline) Results() []*models.RowResult {
	return p.results
}

// Repair runs a whole repair with default settings: delimiter ",", the
// conventional DESCRIPTION column unless names are given, and an interactive
// line prompt on stdin/stdout for ambiguous rows.
func Repair(inputFile, outputFile string, columns ...string) error {
	pipe, err := NewPipeline(Config{
		InputFile:  inputFile,
		OutputFile: outputFile,
		Columns:    columns,
		Chooser:    prompt.NewLineChooser(os.Stdin, os.Stdout),
	})
	if err != nil {
		return err
	}

	return pipe.Run()
}

// validateConfig validates pipeline configuration
func validateConfig(config Config) error {
	if config.InputFile == "" {
		return fmt.Errorf("no input file specified")
	}

	if config.OutputFile == "" {
		return fmt.Errorf("no output file specified")
	}

	if utf8.RuneCountInString(config.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character")
	}

	for _, name := range config.Columns {
		if name == "" {
			return errors.ErrNoColumns
		}
	}

	return nil
}
