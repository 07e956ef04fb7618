// Package table reads and writes evaluator data as comma separated values.
package table

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/j3din00b/modulus-sym/internal/core/domain"
	"go.trai.ch/zerr"
)

// CSV implements ports.Table.
type CSV struct{}

// New creates a CSV table codec.
func New() *CSV {
	return &CSV{}
}

// Read parses a header row followed by numeric rows. Every header field
// becomes one (N, 1) input column.
func (CSV) Read(r io.Reader) (domain.Inputs, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, zerr.With(domain.ErrInputReadFailed, "reason", "missing header")
	}
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrInputReadFailed.Error())
	}

	names := make([]string, len(header))
	seen := make(map[string]struct{}, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			return nil, zerr.With(domain.ErrInputReadFailed, "column", i)
		}
		if _, dup := seen[name]; dup {
			return nil, zerr.With(domain.ErrInputReadFailed, "duplicate", name)
		}
		seen[name] = struct{}{}
		names[i] = name
	}

	columns := make([][]float64, len(names))
	for row := 1; ; row++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInputReadFailed.Error()), "row", row)
		}
		for j, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				err = zerr.With(domain.ErrInputReadFailed, "row", row)
				return nil, zerr.With(err, "column", names[j])
			}
			columns[j] = append(columns[j], v)
		}
	}

	in := make(domain.Inputs, len(names))
	for j, name := range names {
		in[name] = domain.Column(columns[j]...)
	}
	return in, nil
}

// Write emits header followed by one row per leading index of data.
// Boolean arrays are written as true and false.
func (CSV) Write(w io.Writer, header []string, data domain.Array) error {
	rows := 1
	if data.NDim() > 0 {
		rows = data.Shape()[0]
	}
	width := 0
	if rows > 0 {
		width = data.Size() / rows
	}
	if rows > 0 && width != len(header) {
		err := zerr.With(domain.ErrOutputWriteFailed, "columns", len(header))
		return zerr.With(err, "shape", data.Shape())
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
	}
	record := make([]string, len(header))
	for i := range rows {
		for j := range record {
			record[j] = formatCell(data, i*width+j)
		}
		if err := cw.Write(record); err != nil {
			return zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
	}
	return nil
}

func formatCell(a domain.Array, i int) string {
	if a.DType() == domain.DTypeBool {
		return strconv.FormatBool(a.Bool(i))
	}
	return strconv.FormatFloat(a.Float(i), 'g', -1, 64)
}
