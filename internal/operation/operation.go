package operation

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidOperand is returned when an operand is not a finite integer or floating-point value
	ErrInvalidOperand = errors.New("invalid operand")
	// ErrDivisionByZero is returned by Division when the second operand is zero
	ErrDivisionByZero = errors.New("division by zero is undefined")
	// ErrUnknownOperation is returned when an operation name cannot be resolved
	ErrUnknownOperation = errors.New("unknown operation")
)

// Operation computes a result from two operands
type Operation interface {
	// Name returns the kind name, e.g. "Addition". It is also the persisted identifier.
	Name() string
	Calculate(a, b float64) (float64, error)
}

// The four supported operations. They are stateless and safe to share.
var (
	Addition       Operation = addition{}
	Subtraction    Operation = subtraction{}
	Multiplication Operation = multiplication{}
	Division       Operation = division{}
)

var all = []Operation{Addition, Subtraction, Multiplication, Division}

var byName = map[string]Operation{
	Addition.Name():       Addition,
	Subtraction.Name():    Subtraction,
	Multiplication.Name(): Multiplication,
	Division.Name():       Division,
}

// All returns the supported operations in canonical order
func All() []Operation {
	ops := make([]Operation, len(all))
	copy(ops, all)
	return ops
}

// Lookup resolves an operation by its kind name
func Lookup(name string) (Operation, error) {
	op, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
	return op, nil
}

type addition struct{}

func (addition) Name() string { return "Addition" }

func (addition) Calculate(a, b float64) (float64, error) {
	return a + b, nil
}

type subtraction struct{}

func (subtraction) Name() string { return "Subtraction" }

// Calculate returns the minuend a minus the subtrahend b
func (subtraction) Calculate(a, b float64) (float64, error) {
	return a - b, nil
}

type multiplication struct{}

func (multiplication) Name() string { return "Multiplication" }

func (multiplication) Calculate(a, b float64) (float64, error) {
	return a * b, nil
}

type division struct{}

func (division) Name() string { return "Division" }

func (division) Calculate(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// OperandError describes an operand that is not a finite number
type OperandError struct {
	Position int // 1 or 2
	Value    any
}

func (e *OperandError) Error() string {
	return fmt.Sprintf("%v: operand%d is %v (%T), expected a finite int or float", ErrInvalidOperand, e.Position, e.Value, e.Value)
}

func (e *OperandError) Unwrap() error {
	return ErrInvalidOperand
}

// ToNumbers converts both operands, reporting the first invalid one as an *OperandError
func ToNumbers(a, b any) (float64, float64, error) {
	x, err := ToNumber(a)
	if err != nil {
		return 0, 0, &OperandError{Position: 1, Value: a}
	}
	y, err := ToNumber(b)
	if err != nil {
		return 0, 0, &OperandError{Position: 2, Value: b}
	}
	return x, y, nil
}

// ToNumber converts a Go integer or floating-point value to float64.
// Strings, booleans, nil, NaN, infinities and every other type are
// rejected with ErrInvalidOperand.
func ToNumber(v any) (float64, error) {
	f, err := toFloat(v)
	if err != nil {
		return 0, err
	}
	return f, CheckFinite(f)
}

// CheckFinite returns ErrInvalidOperand for NaN and infinities
func CheckFinite(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: %v is not finite", ErrInvalidOperand, f)
	}
	return nil
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidOperand, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrInvalidOperand, v)
	}
}
