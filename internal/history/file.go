package history

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/averycrespi/calc-mcp/internal/calculation"
	"github.com/averycrespi/calc-mcp/internal/operation"
)

var (
	// ErrFileNotFound is returned when the history file does not exist
	ErrFileNotFound = errors.New("history file not found")
	// ErrDecodeFailure is returned when the history file is not valid JSON
	ErrDecodeFailure = errors.New("failed to decode history data")
	// ErrSchemaMismatch is returned when the history file is valid JSON with the wrong shape
	ErrSchemaMismatch = errors.New("incorrect history data format")
	// ErrIOFailure is returned when the history file cannot be read or written
	ErrIOFailure = errors.New("history file I/O failure")
)

// Record is the persisted form of a calculation. Results are not stored;
// they are recomputed on load.
type Record struct {
	Operand1  float64 `json:"operand1"`
	Operand2  float64 `json:"operand2"`
	Operation string  `json:"operation"`
}

// recordFields mirrors Record with pointers so missing fields can be detected.
// Unknown fields are rejected.
type recordFields struct {
	Operand1  *float64 `json:"operand1"`
	Operand2  *float64 `json:"operand2"`
	Operation *string  `json:"operation"`
}

// NewRecord converts a calculation into its persisted form
func NewRecord(calc *calculation.Calculation) Record {
	return Record{
		Operand1:  calc.Operand1(),
		Operand2:  calc.Operand2(),
		Operation: calc.Operation().Name(),
	}
}

// WriteFile stores calculations at path as an indented JSON array
func WriteFile(path string, entries []*calculation.Calculation) error {
	records := make([]Record, 0, len(entries))
	for _, calc := range entries {
		records = append(records, NewRecord(calc))
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to encode history: %v", ErrIOFailure, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	return nil
}

// ReadFile loads calculations from path. Every entry is executed so the
// returned calculations carry their results.
func ReadFile(path string) ([]*calculation.Calculation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}

	return Decode(data)
}

// Decode parses persisted history data
func Decode(data []byte) ([]*calculation.Calculation, error) {
	if !json.Valid(data) {
		return nil, ErrDecodeFailure
	}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, fmt.Errorf("%w: expected an array, got null", ErrSchemaMismatch)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var fields []recordFields
	if err := decoder.Decode(&fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}

	entries := make([]*calculation.Calculation, 0, len(fields))
	for i, f := range fields {
		calc, err := f.toCalculation()
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrSchemaMismatch, i, err)
		}
		entries = append(entries, calc)
	}
	return entries, nil
}

func (f recordFields) toCalculation() (*calculation.Calculation, error) {
	if f.Operand1 == nil {
		return nil, errors.New("missing operand1")
	}
	if f.Operand2 == nil {
		return nil, errors.New("missing operand2")
	}
	if f.Operation == nil {
		return nil, errors.New("missing operation")
	}

	op, err := operation.Lookup(*f.Operation)
	if err != nil {
		return nil, err
	}

	calc := calculation.New(op, *f.Operand1, *f.Operand2)
	if _, err := calc.Execute(); err != nil {
		return nil, fmt.Errorf("failed to recompute %s: %w", calc.Describe(), err)
	}
	return calc, nil
}
