package chain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/affine"
)

// Errors returned by parsing and validation. Returned errors wrap these
// and can be checked with errors.Is.
var (
	ErrSyntax    = errors.New("chain: syntax error")
	ErrUnknownOp = errors.New("chain: unknown op")
)

// Op names a transform constructor.
type Op string

// Supported ops.
const (
	OpIdentity  Op = "identity"
	OpTranslate Op = "translate"
	OpScale     Op = "scale"
	OpRotate    Op = "rotate"
	OpShear     Op = "shear"
	OpMatrix    Op = "matrix"
)

// Step is one transform in a chain. Which fields are used depends on Op:
// translate and shear use X and Y, scale uses X and Y as the two factors,
// rotate uses Radians and matrix uses the six Coefficients.
type Step struct {
	Op           Op        `toml:"op"`
	X            float32   `toml:"x"`
	Y            float32   `toml:"y"`
	Radians      float32   `toml:"radians"`
	Coefficients []float32 `toml:"coefficients"`
}

// Matrix returns the transform described by s.
func (s Step) Matrix() (affine.Matrix, error) {
	switch s.Op {
	case OpIdentity:
		return affine.Identity(), nil
	case OpTranslate:
		return affine.Translate(s.X, s.Y), nil
	case OpScale:
		return affine.Scale(s.X, s.Y), nil
	case OpRotate:
		return affine.Rotate(s.Radians), nil
	case OpShear:
		return affine.Shear(s.X, s.Y), nil
	case OpMatrix:
		if len(s.Coefficients) != 6 {
			return affine.Matrix{}, fmt.Errorf("%w: matrix needs 6 coefficients, got %d", ErrSyntax, len(s.Coefficients))
		}
		c := s.Coefficients
		return affine.New(c[0], c[1], c[2], c[3], c[4], c[5]), nil
	}
	return affine.Matrix{}, fmt.Errorf("%w %q", ErrUnknownOp, s.Op)
}

// String formats s in the form accepted by ParseStep.
func (s Step) String() string {
	switch s.Op {
	case OpTranslate, OpScale, OpShear:
		return string(s.Op) + ":" + joinFloats(s.X, s.Y)
	case OpRotate:
		return string(s.Op) + ":" + joinFloats(s.Radians)
	case OpMatrix:
		return string(s.Op) + ":" + joinFloats(s.Coefficients...)
	}
	return string(s.Op)
}

// ParseStep parses an op string such as "translate:5,0".
//
// Accepted forms:
//
//	identity
//	translate:TX,TY
//	scale:S          (uniform)
//	scale:SX,SY
//	rotate:RADIANS
//	shear:KX,KY
//	matrix:A,B,C,D,E,F
func ParseStep(s string) (Step, error) {
	name, args, hasArgs := strings.Cut(strings.TrimSpace(s), ":")
	op := Op(strings.ToLower(strings.TrimSpace(name)))

	var vals []float32
	if hasArgs {
		var err error
		if vals, err = parseFloats(args); err != nil {
			return Step{}, fmt.Errorf("%w: %q: %v", ErrSyntax, s, err)
		}
	}

	arity := func(n ...int) error {
		for _, want := range n {
			if len(vals) == want {
				return nil
			}
		}
		return fmt.Errorf("%w: %q: %s takes %v values, got %d", ErrSyntax, s, op, n, len(vals))
	}

	switch op {
	case OpIdentity:
		if err := arity(0); err != nil {
			return Step{}, err
		}
		return Step{Op: op}, nil
	case OpTranslate, OpShear:
		if err := arity(2); err != nil {
			return Step{}, err
		}
		return Step{Op: op, X: vals[0], Y: vals[1]}, nil
	case OpScale:
		if err := arity(1, 2); err != nil {
			return Step{}, err
		}
		if len(vals) == 1 {
			return Step{Op: op, X: vals[0], Y: vals[0]}, nil
		}
		return Step{Op: op, X: vals[0], Y: vals[1]}, nil
	case OpRotate:
		if err := arity(1); err != nil {
			return Step{}, err
		}
		return Step{Op: op, Radians: vals[0]}, nil
	case OpMatrix:
		if err := arity(6); err != nil {
			return Step{}, err
		}
		return Step{Op: op, Coefficients: vals}, nil
	}
	return Step{}, fmt.Errorf("%w %q", ErrUnknownOp, name)
}

// ParsePoint parses a point written as "X,Y".
func ParsePoint(s string) (affine.Point, error) {
	vals, err := parseFloats(s)
	if err != nil {
		return affine.Point{}, fmt.Errorf("%w: point %q: %v", ErrSyntax, s, err)
	}
	if len(vals) != 2 {
		return affine.Point{}, fmt.Errorf("%w: point %q: want X,Y", ErrSyntax, s)
	}
	return affine.Pt(vals[0], vals[1]), nil
}

// FormatPoint formats p in the form accepted by ParsePoint.
func FormatPoint(p affine.Point) string {
	return joinFloats(p.X, p.Y)
}

func parseFloats(s string) ([]float32, error) {
	fields := strings.Split(s, ",")
	vals := make([]float32, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return nil, err
		}
		vals = append(vals, float32(v))
	}
	return vals, nil
}

func joinFloats(vals ...float32) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatFloat(float64(v), 'g', -1, 32)
	}
	return strings.Join(parts, ",")
}
