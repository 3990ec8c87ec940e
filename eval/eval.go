// Package eval implements the tree-walking evaluator: a fixed table of
// builtin procedures dispatched by operator symbol name.
package eval

import (
	"github.com/belskiyanton/Scheme-Object-Interpreter/scmerr"
	"github.com/belskiyanton/Scheme-Object-Interpreter/value"
)

// Builtin is a fixed procedure's implementation. It receives its
// call-site arguments unevaluated; each builtin is responsible for
// evaluating (or not evaluating) its own arguments, per its definition.
type Builtin func(args []*value.Value) (*value.Value, error)

var builtins map[string]Builtin

func init() {
	builtins = map[string]Builtin{
		"+":        biAdd,
		"*":        biMul,
		"-":        biSub,
		"/":        biDiv,
		"=":        biCmp(func(a, b int64) bool { return a == b }),
		"<":        biCmp(func(a, b int64) bool { return a < b }),
		">":        biCmp(func(a, b int64) bool { return a > b }),
		"<=":       biCmp(func(a, b int64) bool { return a <= b }),
		">=":       biCmp(func(a, b int64) bool { return a >= b }),
		"number?":  biNumberP,
		"min":      biMin,
		"max":      biMax,
		"abs":      biAbs,
		"not":      biNot,
		"and":      biAnd,
		"or":       biOr,
		"boolean?": biBooleanP,
		"quote":    biQuote,
		"pair?":    biPairP,
		"null?":    biNullP,
		"list?":    biListP,
		"cons":     biCons,
		"car":      biCar,
		"cdr":      biCdr,
		"list":      biList,
		"list-ref":  biListRef,
		"list-tail": biListTail,
	}
}

// Eval reduces v to its value: self-evaluating atoms evaluate to
// themselves, the booleanly-named symbols "#t"/"#f" evaluate to the
// corresponding Boolean, every other Symbol evaluates to itself, and a
// Pair is an application — its first must resolve to a Builtin, and its
// linearized tail is passed to it unevaluated.
func Eval(v *value.Value) (*value.Value, error) {
	switch v.Kind {
	case value.KindNumber, value.KindBoolean, value.KindText:
		return v, nil
	case value.KindNull:
		return v, nil
	case value.KindSymbol:
		switch v.Symbol {
		case "#t":
			return value.NewBoolean(true), nil
		case "#f":
			return value.NewBoolean(false), nil
		default:
			return v, nil
		}
	case value.KindPair:
		return evalApplication(v)
	default:
		return nil, scmerr.Runtimef("cannot evaluate value of kind %d", v.Kind)
	}
}

func evalApplication(v *value.Value) (*value.Value, error) {
	op, err := Eval(v.First)
	if err != nil {
		return nil, err
	}
	if op.Kind != value.KindSymbol {
		return nil, scmerr.Runtimef("operator position must evaluate to a symbol, got %s", op.String())
	}

	if op.Symbol == "quote" {
		return biQuote([]*value.Value{v.Second})
	}

	fn, ok := builtins[op.Symbol]
	if !ok {
		return nil, scmerr.Namef("unbound name %q", op.Symbol)
	}

	args := value.Linearize(v.Second)
	return fn(args)
}

// evalAll evaluates every argument left to right, the policy most
// builtins — everything but and/or/quote — follow.
func evalAll(args []*value.Value) ([]*value.Value, error) {
	out := make([]*value.Value, len(args))
	for i, a := range args {
		v, err := Eval(a)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func evalOne(args []*value.Value, n int) (*value.Value, error) {
	if len(args) != n {
		return nil, scmerr.Runtimef("expected %d argument(s), got %d", n, len(args))
	}
	return Eval(args[0])
}

func asNumber(v *value.Value) (int64, error) {
	if v.Kind != value.KindNumber {
		return 0, scmerr.Runtimef("expected a number, got %s", v.String())
	}
	return v.Number, nil
}

func numbersOnly(args []*value.Value) ([]int64, error) {
	evaled, err := evalAll(args)
	if err != nil {
		return nil, err
	}
	nums := make([]int64, len(evaled))
	for i, v := range evaled {
		n, err := asNumber(v)
		if err != nil {
			return nil, err
		}
		nums[i] = n
	}
	return nums, nil
}
