package problem

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/born-ml/numeracy/internal/linalg"
	"github.com/born-ml/numeracy/internal/tensor"
)

// Result is the outcome of a problem: a scalar for determinants, a tensor
// otherwise.
type Result struct {
	Operation Operation
	Scalar    float64
	Tensor    *tensor.Tensor[float64]
}

// String renders the result for display.
func (r *Result) String() string {
	if r.Tensor == nil {
		return strconv.FormatFloat(r.Scalar, 'g', -1, 64)
	}
	return r.Tensor.String()
}

// Run evaluates the problem. A nil logger disables logging.
func (p *Problem) Run(logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	m, err := tensor.FromSlice2D(p.Matrix)
	if err != nil {
		return nil, fmt.Errorf("problem: matrix: %w", err)
	}
	logger.Debug("evaluating problem",
		"name", p.Name,
		"operation", p.Operation,
		"shape", m.Shape())

	res := &Result{Operation: p.Operation}
	switch p.Operation {
	case OpDeterminant:
		res.Scalar, err = linalg.Determinant(m)
	case OpInverse:
		res.Tensor, err = linalg.Inverse(m)
	case OpAdjugateInverse:
		res.Tensor, err = linalg.AdjugateInverse(m)
	case OpEchelon:
		res.Tensor, err = linalg.Echelon(m)
	case OpReducedEchelon:
		res.Tensor, err = linalg.ReducedEchelon(m)
	case OpSolve:
		res.Tensor, err = linalg.Solve(m)
	case OpTranspose:
		res.Tensor, err = m.Transpose()
	case OpMatMul:
		other, oerr := tensor.FromSlice2D(p.Other)
		if oerr != nil {
			return nil, fmt.Errorf("problem: other: %w", oerr)
		}
		logger.Debug("right operand", "shape", other.Shape())
		res.Tensor, err = tensor.MatMul(m, other)
	}
	if err != nil {
		return nil, fmt.Errorf("problem: %s: %w", p.Operation, err)
	}

	logger.Debug("problem evaluated", "name", p.Name, "operation", p.Operation)
	return res, nil
}
