package calculation

import (
	"fmt"
	"strings"

	"github.com/averycrespi/calc-mcp/internal/operation"
)

const notCalculated = "Not calculated"

// Calculation binds an operation to two operands. The result is computed by
// Execute and never changes afterwards.
type Calculation struct {
	operation operation.Operation
	operand1  float64
	operand2  float64

	result   float64
	executed bool
}

// New creates a calculation whose result is not yet computed
func New(op operation.Operation, operand1, operand2 float64) *Calculation {
	return &Calculation{
		operation: op,
		operand1:  operand1,
		operand2:  operand2,
	}
}

// Operation returns the bound operation
func (c *Calculation) Operation() operation.Operation {
	return c.operation
}

// Operand1 returns the first operand
func (c *Calculation) Operand1() float64 {
	return c.operand1
}

// Operand2 returns the second operand
func (c *Calculation) Operand2() float64 {
	return c.operand2
}

// Execute computes and caches the result. Operation errors are returned
// unchanged and leave the calculation unexecuted.
func (c *Calculation) Execute() (float64, error) {
	if c.executed {
		return c.result, nil
	}

	result, err := c.operation.Calculate(c.operand1, c.operand2)
	if err != nil {
		return 0, err
	}

	c.result = result
	c.executed = true
	return result, nil
}

// Result returns the cached result and whether Execute has succeeded
func (c *Calculation) Result() (float64, bool) {
	return c.result, c.executed
}

// Executed reports whether the result has been computed
func (c *Calculation) Executed() bool {
	return c.executed
}

// Describe renders the calculation as "5 addition 3 = 8"
func (c *Calculation) Describe() string {
	var result any = notCalculated
	if c.executed {
		result = c.result
	}
	return fmt.Sprintf("%v %s %v = %v", c.operand1, strings.ToLower(c.operation.Name()), c.operand2, result)
}

func (c *Calculation) String() string {
	return c.Describe()
}
