// Package problem loads linear algebra problems from TOML or YAML files and
// evaluates them.
//
// A problem names an operation and its operands:
//
//	name      = "three equations"
//	operation = "solve"
//	matrix    = [[2.0, 3.0, 4.0, 1.5], [0.0, 0.0, 9.0, 0.3], [1.0, 1.0, 2.0, 9.0]]
//
// Matrices are lists of rows. The second operand of "matmul" is "other".
package problem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a problem file.
type Format int

// Supported formats.
const (
	FormatTOML Format = iota
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

var (
	// ErrUnknownFormat is returned for files that are neither TOML nor YAML.
	ErrUnknownFormat = errors.New("problem: unknown file format")

	// ErrUnknownOperation is returned for an operation this package does not
	// evaluate.
	ErrUnknownOperation = errors.New("problem: unknown operation")

	// ErrMissingOperand is returned when a required matrix is absent.
	ErrMissingOperand = errors.New("problem: missing operand")
)

// Operation names a computation.
type Operation string

// Supported operations.
const (
	OpDeterminant     Operation = "determinant"
	OpInverse         Operation = "inverse"
	OpAdjugateInverse Operation = "adjugate-inverse"
	OpEchelon         Operation = "echelon"
	OpReducedEchelon  Operation = "reduced-echelon"
	OpSolve           Operation = "solve"
	OpTranspose       Operation = "transpose"
	OpMatMul          Operation = "matmul"
)

// Operations lists every supported operation.
var Operations = []Operation{
	OpDeterminant,
	OpInverse,
	OpAdjugateInverse,
	OpEchelon,
	OpReducedEchelon,
	OpSolve,
	OpTranspose,
	OpMatMul,
}

// Problem is one decoded problem file.
type Problem struct {
	Name      string      `toml:"name" yaml:"name"`
	Operation Operation   `toml:"operation" yaml:"operation"`
	Matrix    [][]float64 `toml:"matrix" yaml:"matrix"`
	Other     [][]float64 `toml:"other,omitempty" yaml:"other,omitempty"`
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Load reads and decodes a problem file. The file name defaults the
// problem name.
func Load(path string) (*Problem, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("problem: read %s: %w", path, err)
	}
	p, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return p, nil
}

// Parse decodes a problem and checks that it is complete.
func Parse(data []byte, format Format) (*Problem, error) {
	var p Problem
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &p)
	case FormatYAML:
		err = yaml.Unmarshal(data, &p)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("problem: decode %v: %w", format, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks that the operation is known and its operands are present.
// Operand shapes are checked when the problem runs.
func (p *Problem) Validate() error {
	known := false
	for _, op := range Operations {
		if p.Operation == op {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: %q", ErrUnknownOperation, p.Operation)
	}
	if len(p.Matrix) == 0 {
		return fmt.Errorf("%w: matrix", ErrMissingOperand)
	}
	if p.Operation == OpMatMul && len(p.Other) == 0 {
		return fmt.Errorf("%w: other", ErrMissingOperand)
	}
	return nil
}
