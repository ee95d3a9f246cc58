package profile

import (
	"github.com/csvmend/csvmend/internal/models"
)

// Stats holds the per-column statistics derived from well-formed rows
type Stats struct {
	// MeanLength is the average character length of sampled values
	MeanLength float64

	// NumericRatio is the fraction of sampled values that look numeric
	NumericRatio float64

	// NonEmptyRatio is the fraction of sampled values that are non-empty
	NonEmptyRatio float64
}

// Profile maps column indices to their statistics. It is built once per file
// and read-only afterwards. A column with no valid sample has no entry and
// therefore carries no constraint.
type Profile struct {
	columns   map[int]Stats
	delimiter string
}

// accumulator gathers running counts for one column
type accumulator struct {
	totalLength int
	samples     int
	numeric     int
	nonEmpty    int
}

// Build derives per-column statistics from the records whose raw field count
// already matches expectedColumns. Rows with any other field count are
// skipped entirely so corrupted rows cannot skew the profile.
func Build(records []*models.Record, expectedColumns int, delimiter string) *Profile {
	acc := make(map[int]*accumulator)

	for _, record := range records {
		if record.FieldCount() != expectedColumns {
			continue
		}

		for idx, value := range record.Raw {
			a := acc[idx]
			if a == nil {
				a = &accumulator{}
				acc[idx] = a
			}

			a.totalLength += len(value)
			a.samples++
			if value != "" {
				a.nonEmpty++
			}
			if IsNumeric(value, delimiter) {
				a.numeric++
			}
		}
	}

	columns := make(map[int]Stats, len(acc))
	for idx, a := range acc {
		if a.samples == 0 {
			continue
		}
		columns[idx] = Stats{
			MeanLength:    float64(a.totalLength) / float64(a.samples),
			NumericRatio:  float64(a.numeric) / float64(a.samples),
			NonEmptyRatio: float64(a.nonEmpty) / float64(a.samples),
		}
	}

	return &Profile{columns: columns, delimiter: delimiter}
}

// Column returns the statistics for a column index, if any were collected
func (p *Profile) Column(index int) (Stats, bool) {
	stats, ok := p.columns[index]
	return stats, ok
}

// Len returns the number of profiled columns
func (p *Profile) Len() int {
	return len(p.columns)
}

// Delimiter returns the delimiter the profile was built for
func (p *Profile) Delimiter() string {
	return p.delimiter
}
