package eval

import (
	"github.com/belskiyanton/Scheme-Object-Interpreter/scmerr"
	"github.com/belskiyanton/Scheme-Object-Interpreter/value"
)

func biAdd(args []*value.Value) (*value.Value, error) {
	nums, err := numbersOnly(args)
	if err != nil {
		return nil, err
	}
	var sum int64
	for _, n := range nums {
		sum += n
	}
	return value.NewNumber(sum), nil
}

func biMul(args []*value.Value) (*value.Value, error) {
	nums, err := numbersOnly(args)
	if err != nil {
		return nil, err
	}
	product := int64(1)
	for _, n := range nums {
		product *= n
	}
	return value.NewNumber(product), nil
}

func biSub(args []*value.Value) (*value.Value, error) {
	nums, err := numbersOnly(args)
	if err != nil {
		return nil, err
	}
	if len(nums) < 2 {
		return nil, scmerr.Runtimef("- requires at least 2 arguments, got %d", len(nums))
	}
	result := nums[0]
	for _, n := range nums[1:] {
		result -= n
	}
	return value.NewNumber(result), nil
}

func biDiv(args []*value.Value) (*value.Value, error) {
	nums, err := numbersOnly(args)
	if err != nil {
		return nil, err
	}
	if len(nums) < 2 {
		return nil, scmerr.Runtimef("/ requires at least 2 arguments, got %d", len(nums))
	}
	result := nums[0]
	for _, n := range nums[1:] {
		if n == 0 {
			return nil, scmerr.Runtimef("division by zero")
		}
		result /= n
	}
	return value.NewNumber(result), nil
}

func biCmp(rel func(a, b int64) bool) Builtin {
	return func(args []*value.Value) (*value.Value, error) {
		nums, err := numbersOnly(args)
		if err != nil {
			return nil, err
		}
		for i := 0; i+1 < len(nums); i++ {
			if !rel(nums[i], nums[i+1]) {
				return value.NewBoolean(false), nil
			}
		}
		return value.NewBoolean(true), nil
	}
}

func biNumberP(args []*value.Value) (*value.Value, error) {
	v, err := evalOne(args, 1)
	if err != nil {
		return nil, err
	}
	return value.NewBoolean(v.Kind == value.KindNumber), nil
}

func biMin(args []*value.Value) (*value.Value, error) {
	nums, err := numbersOnly(args)
	if err != nil {
		return nil, err
	}
	if len(nums) < 1 {
		return nil, scmerr.Runtimef("min requires at least 1 argument")
	}
	m := nums[0]
	for _, n := range nums[1:] {
		if n < m {
			m = n
		}
	}
	return value.NewNumber(m), nil
}

func biMax(args []*value.Value) (*value.Value, error) {
	nums, err := numbersOnly(args)
	if err != nil {
		return nil, err
	}
	if len(nums) < 1 {
		return nil, scmerr.Runtimef("max requires at least 1 argument")
	}
	m := nums[0]
	for _, n := range nums[1:] {
		if n > m {
			m = n
		}
	}
	return value.NewNumber(m), nil
}

func biAbs(args []*value.Value) (*value.Value, error) {
	nums, err := numbersOnly(args)
	if err != nil {
		return nil, err
	}
	if len(nums) != 1 {
		return nil, scmerr.Runtimef("abs requires exactly 1 argument, got %d", len(nums))
	}
	n := nums[0]
	if n < 0 {
		n = -n
	}
	return value.NewNumber(n), nil
}

func biNot(args []*value.Value) (*value.Value, error) {
	v, err := evalOne(args, 1)
	if err != nil {
		return nil, err
	}
	isFalse := v.Kind == value.KindBoolean && !v.Boolean
	return value.NewBoolean(isFalse), nil
}

func biAnd(args []*value.Value) (*value.Value, error) {
	if len(args) == 0 {
		return value.NewBoolean(true), nil
	}
	var last *value.Value
	for _, a := range args {
		v, err := Eval(a)
		if err != nil {
			return nil, err
		}
		if v.Kind == value.KindBoolean && !v.Boolean {
			return value.NewBoolean(false), nil
		}
		last = v
	}
	return last, nil
}

func biOr(args []*value.Value) (*value.Value, error) {
	for _, a := range args {
		v, err := Eval(a)
		if err != nil {
			return nil, err
		}
		if v.Kind != value.KindBoolean {
			return v, nil
		}
		if v.Boolean {
			return v, nil
		}
	}
	return value.NewBoolean(false), nil
}

func biBooleanP(args []*value.Value) (*value.Value, error) {
	v, err := evalOne(args, 1)
	if err != nil {
		return nil, err
	}
	return value.NewBoolean(v.Kind == value.KindBoolean), nil
}

// biQuote is the quote builtin's implementation: it is also invoked
// directly by evalApplication, since quote's unevaluated-argument
// contract means it never goes through the args-evaluation path the
// other builtins share.
func biQuote(args []*value.Value) (*value.Value, error) {
	if len(args) != 1 {
		return nil, scmerr.Runtimef("quote requires exactly 1 argument, got %d", len(args))
	}
	return value.NewText(args[0].String()), nil
}

func biPairP(args []*value.Value) (*value.Value, error) {
	v, err := evalOne(args, 1)
	if err != nil {
		return nil, err
	}
	if !v.IsPair() {
		return value.NewBoolean(false), nil
	}
	for _, el := range value.Linearize(v) {
		if el.IsDot() {
			return value.NewBoolean(true), nil
		}
	}
	return value.NewBoolean(false), nil
}

func biNullP(args []*value.Value) (*value.Value, error) {
	v, err := evalOne(args, 1)
	if err != nil {
		return nil, err
	}
	if v.IsNull() {
		return value.NewBoolean(true), nil
	}
	if v.IsPair() && v.First.IsNull() {
		return value.NewBoolean(true), nil
	}
	return value.NewBoolean(false), nil
}

func biListP(args []*value.Value) (*value.Value, error) {
	v, err := evalOne(args, 1)
	if err != nil {
		return nil, err
	}
	if !v.IsPair() {
		return value.NewBoolean(false), nil
	}
	for _, el := range value.Linearize(v) {
		if el.IsDot() || el.IsNull() {
			return value.NewBoolean(false), nil
		}
	}
	return value.NewBoolean(true), nil
}

func biCons(args []*value.Value) (*value.Value, error) {
	if len(args) != 2 {
		return nil, scmerr.Runtimef("cons requires exactly 2 arguments, got %d", len(args))
	}
	evaled, err := evalAll(args)
	if err != nil {
		return nil, err
	}
	return value.DottedPair(evaled[0], evaled[1]), nil
}

func biCar(args []*value.Value) (*value.Value, error) {
	v, err := evalOne(args, 1)
	if err != nil {
		return nil, err
	}
	if !v.IsPair() {
		return nil, scmerr.Runtimef("car requires a pair, got %s", v.String())
	}
	if v.First.IsNull() {
		return nil, scmerr.Runtimef("car of empty list")
	}
	return v.First, nil
}

func biCdr(args []*value.Value) (*value.Value, error) {
	v, err := evalOne(args, 1)
	if err != nil {
		return nil, err
	}
	if !v.IsPair() {
		return nil, scmerr.Runtimef("cdr requires a pair, got %s", v.String())
	}
	if v.First.IsNull() {
		return nil, scmerr.Runtimef("cdr of empty list")
	}

	second := v.Second
	if second.IsPair() && second.First.IsDot() {
		return Eval(second.Second.First)
	}
	if second.IsNull() {
		return value.Cons(value.Null, value.Null), nil
	}
	return second, nil
}

func biList(args []*value.Value) (*value.Value, error) {
	evaled, err := evalAll(args)
	if err != nil {
		return nil, err
	}
	result := value.Null
	for i := len(evaled) - 1; i >= 0; i-- {
		result = value.Cons(evaled[i], result)
	}
	return result, nil
}

func biListRef(args []*value.Value) (*value.Value, error) {
	if len(args) != 2 {
		return nil, scmerr.Runtimef("list-ref requires exactly 2 arguments, got %d", len(args))
	}
	evaled, err := evalAll(args)
	if err != nil {
		return nil, err
	}
	lst, idxVal := evaled[0], evaled[1]
	idx, err := asNumber(idxVal)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		return nil, scmerr.Runtimef("list-ref index must be non-negative, got %d", idx)
	}

	elems := value.Linearize(lst)
	if idx >= int64(len(elems)) {
		return nil, scmerr.Runtimef("list-ref index %d out of range for list of length %d", idx, len(elems))
	}
	return elems[idx], nil
}

func biListTail(args []*value.Value) (*value.Value, error) {
	if len(args) != 2 {
		return nil, scmerr.Runtimef("list-tail requires exactly 2 arguments, got %d", len(args))
	}
	evaled, err := evalAll(args)
	if err != nil {
		return nil, err
	}
	lst, idxVal := evaled[0], evaled[1]
	idx, err := asNumber(idxVal)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		return nil, scmerr.Runtimef("list-tail index must be non-negative, got %d", idx)
	}

	cur := lst
	for i := int64(0); i < idx; i++ {
		if !cur.IsPair() {
			return nil, scmerr.Runtimef("list-tail index %d out of range", idx)
		}
		cur = cur.Second
	}
	if cur.IsNull() {
		return value.Cons(value.Null, value.Null), nil
	}
	return cur, nil
}
