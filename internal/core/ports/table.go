package ports

import (
	"io"

	"github.com/j3din00b/modulus-sym/internal/core/domain"
)

// Table reads evaluator inputs and writes evaluator outputs as delimited text.
//
//go:generate mockgen -source=table.go -destination=mocks/mock_table.go -package=mocks
type Table interface {
	// Read parses one (N, 1) column per header field.
	Read(r io.Reader) (domain.Inputs, error)
	// Write emits one row per leading index of data and one column per header field.
	Write(w io.Writer, header []string, data domain.Array) error
}
