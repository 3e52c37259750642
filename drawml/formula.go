package drawml

import (
	"fmt"
	"math"
	"strings"
)

// Guide formulas express angles in 60000ths of a degree.
const stAnglePerDegree = 60000

func stAngleToRadians(x float64) float64 {
	return x * math.Pi / (stAnglePerDegree * 180)
}

func radiansToSTAngle(x float64) float64 {
	return x * stAnglePerDegree * 180 / math.Pi
}

// Resolver resolves an operand token to a number. A token may be a literal,
// a preset or guide name, or a nested formula; see [Geometry.Value].
type Resolver func(token string) (float64, error)

// UnknownFormulaError is returned when the operator of a formula expression
// is not one of the known operations, or is given the wrong number of
// operands.
type UnknownFormulaError struct {
	Expr string
}

func (err *UnknownFormulaError) Error() string {
	return fmt.Sprintf("drawml: unknown formula %q", err.Expr)
}

type opcode int

const (
	opMulDiv opcode = iota + 1
	opAddSub
	opAddDiv
	opIfElse
	opATan2
	opTan
	opCosATan2
	opCos
	opSinATan2
	opSin
	opMod
	opSqrt
	opVal
	opAbs
	opMax
	opMin
	opPin
)

// The closed set of guide formula operations. Arity is checked at lookup
// time; an expression with the wrong operand count never reaches the
// evaluator.
var formulaOps = map[string]struct {
	op    opcode
	arity int
}{
	"*/":   {opMulDiv, 3},   // multiply divide: x*y/z
	"+-":   {opAddSub, 3},   // add subtract: x+y-z
	"+/":   {opAddDiv, 3},   // add divide: (x+y)/z
	"?:":   {opIfElse, 3},   // if else: y if x>0 else z
	"at2":  {opATan2, 2},    // arc tangent, in st angle units
	"tan":  {opTan, 2},      // x*tan(y)
	"cat2": {opCosATan2, 3}, // x*cos(atan(z/y))
	"cos":  {opCos, 2},      // x*cos(y)
	"sat2": {opSinATan2, 3}, // x*sin(atan(z/y))
	"sin":  {opSin, 2},      // x*sin(y)
	"mod":  {opMod, 3},      // sqrt(x²+y²+z²)
	"sqrt": {opSqrt, 1},
	"val":  {opVal, 1},
	"abs":  {opAbs, 1},
	"max":  {opMax, 2},
	"min":  {opMin, 2},
	"pin":  {opPin, 3}, // clamp y into [x, z]
}

// Evaluate evaluates a whitespace-delimited guide formula expression. The
// first token names the operation, the remaining tokens are its operands.
// Operands are resolved lazily, through resolve, only when the operation
// needs their value: the if/else formula evaluates exactly one of its
// branches, and the cosine arc-tangent formula skips both remaining
// operands when the denominator is zero.
func Evaluate(expr string, resolve Resolver) (float64, error) {
	args := strings.Fields(expr)
	if len(args) == 0 {
		return 0, &UnknownFormulaError{Expr: expr}
	}
	f, ok := formulaOps[args[0]]
	if !ok || len(args)-1 != f.arity {
		return 0, &UnknownFormulaError{Expr: expr}
	}
	return evalFormula(f.op, args[1:], resolve)
}

func evalFormula(op opcode, args []string, v Resolver) (float64, error) {
	switch op {
	case opMulDiv:
		x, y, z, err := resolve3(v, args)
		if err != nil {
			return 0, err
		}
		return x * y / z, nil
	case opAddSub:
		x, y, z, err := resolve3(v, args)
		if err != nil {
			return 0, err
		}
		return x + y - z, nil
	case opAddDiv:
		x, y, z, err := resolve3(v, args)
		if err != nil {
			return 0, err
		}
		return (x + y) / z, nil
	case opIfElse:
		x, err := v(args[0])
		if err != nil {
			return 0, err
		}
		if x > 0 {
			return v(args[1])
		}
		return v(args[2])
	case opATan2:
		x, err := v(args[0])
		if err != nil {
			return 0, err
		}
		y, err := v(args[1])
		if err != nil {
			return 0, err
		}
		if x != 0 {
			return radiansToSTAngle(math.Atan(y / x)), nil
		}
		// Vertical: a quarter circle up or three quarters down.
		if y >= 0 {
			return v("cd4")
		}
		return v("3cd4")
	case opTan:
		x, y, err := resolve2(v, args)
		if err != nil {
			return 0, err
		}
		return x * math.Tan(stAngleToRadians(y)), nil
	case opCosATan2:
		y, err := v(args[1])
		if err != nil {
			return 0, err
		}
		if y == 0 {
			return 0, nil
		}
		x, err := v(args[0])
		if err != nil {
			return 0, err
		}
		z, err := v(args[2])
		if err != nil {
			return 0, err
		}
		return x * math.Cos(math.Atan(z/y)), nil
	case opCos:
		x, y, err := resolve2(v, args)
		if err != nil {
			return 0, err
		}
		return x * math.Cos(stAngleToRadians(y)), nil
	case opSinATan2:
		y, err := v(args[1])
		if err != nil {
			return 0, err
		}
		x, err := v(args[0])
		if err != nil {
			return 0, err
		}
		z, err := v(args[2])
		if err != nil {
			return 0, err
		}
		if y != 0 {
			return x * math.Sin(math.Atan(z/y)), nil
		}
		if z >= 0 {
			return x, nil
		}
		return -x, nil
	case opSin:
		x, y, err := resolve2(v, args)
		if err != nil {
			return 0, err
		}
		return x * math.Sin(stAngleToRadians(y)), nil
	case opMod:
		x, y, z, err := resolve3(v, args)
		if err != nil {
			return 0, err
		}
		return math.Sqrt(x*x + y*y + z*z), nil
	case opSqrt:
		x, err := v(args[0])
		if err != nil {
			return 0, err
		}
		return math.Sqrt(x), nil
	case opVal:
		return v(args[0])
	case opAbs:
		x, err := v(args[0])
		if err != nil {
			return 0, err
		}
		return math.Abs(x), nil
	case opMax:
		x, y, err := resolve2(v, args)
		if err != nil {
			return 0, err
		}
		return max(x, y), nil
	case opMin:
		x, y, err := resolve2(v, args)
		if err != nil {
			return 0, err
		}
		return min(x, y), nil
	case opPin:
		x, err := v(args[0])
		if err != nil {
			return 0, err
		}
		y, err := v(args[1])
		if err != nil {
			return 0, err
		}
		if y < x {
			return x, nil
		}
		z, err := v(args[2])
		if err != nil {
			return 0, err
		}
		if y > z {
			return z, nil
		}
		return y, nil
	default:
		panic("unreachable")
	}
}

func resolve2(v Resolver, args []string) (float64, float64, error) {
	x, err := v(args[0])
	if err != nil {
		return 0, 0, err
	}
	y, err := v(args[1])
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func resolve3(v Resolver, args []string) (float64, float64, float64, error) {
	x, y, err := resolve2(v, args)
	if err != nil {
		return 0, 0, 0, err
	}
	z, err := v(args[2])
	if err != nil {
		return 0, 0, 0, err
	}
	return x, y, z, nil
}
