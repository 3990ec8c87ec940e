package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/belskiyanton/Scheme-Object-Interpreter/reader"
	"github.com/belskiyanton/Scheme-Object-Interpreter/scmerr"
	"github.com/belskiyanton/Scheme-Object-Interpreter/lexer"
)

func evalSource(t *testing.T, src string) (string, error) {
	tz, err := lexer.NewTokenizer(src)
	if err != nil {
		return "", err
	}
	v, err := reader.Read(tz)
	if err != nil {
		return "", err
	}
	result, err := Eval(v)
	if err != nil {
		return "", err
	}
	return result.String(), nil
}

func TestArithmetic(t *testing.T) {
	out, err := evalSource(t, `(+ 1 2 3)`)
	assert.NoError(t, err)
	assert.Equal(t, "6", out)

	out, err = evalSource(t, `(* (+ 1 2) (- 10 4))`)
	assert.NoError(t, err)
	assert.Equal(t, "18", out)
}

func TestIdentities(t *testing.T) {
	out, err := evalSource(t, `(+)`)
	assert.NoError(t, err)
	assert.Equal(t, "0", out)

	out, err = evalSource(t, `(*)`)
	assert.NoError(t, err)
	assert.Equal(t, "1", out)

	out, err = evalSource(t, `(and)`)
	assert.NoError(t, err)
	assert.Equal(t, "#t", out)

	out, err = evalSource(t, `(or)`)
	assert.NoError(t, err)
	assert.Equal(t, "#f", out)
}

func TestAndReturnsLast(t *testing.T) {
	out, err := evalSource(t, `(and 1 2 3)`)
	assert.NoError(t, err)
	assert.Equal(t, "3", out)
}

func TestOrReturnsFirstNonFalse(t *testing.T) {
	out, err := evalSource(t, `(or #f #f 7)`)
	assert.NoError(t, err)
	assert.Equal(t, "7", out)
}

func TestListRef(t *testing.T) {
	out, err := evalSource(t, `(list-ref (list 10 20 30) 1)`)
	assert.NoError(t, err)
	assert.Equal(t, "20", out)
}

func TestAbs(t *testing.T) {
	out, err := evalSource(t, `(abs -5)`)
	assert.NoError(t, err)
	assert.Equal(t, "5", out)
}

func TestBooleanPOfComparison(t *testing.T) {
	out, err := evalSource(t, `(boolean? (= 1 1))`)
	assert.NoError(t, err)
	assert.Equal(t, "#t", out)
}

func TestCarOfEmptyIsRuntimeError(t *testing.T) {
	_, err := evalSource(t, `(car (list))`)
	assert.Error(t, err)
	assert.True(t, scmerr.IsRuntime(err))
}

func TestUnknownOperatorIsNameError(t *testing.T) {
	_, err := evalSource(t, `(foo 1 2)`)
	assert.Error(t, err)
	assert.True(t, scmerr.IsName(err))
}

func TestComparisonChain(t *testing.T) {
	out, err := evalSource(t, `(< 1 2 3)`)
	assert.NoError(t, err)
	assert.Equal(t, "#t", out)

	out, err = evalSource(t, `(< 1 3 2)`)
	assert.NoError(t, err)
	assert.Equal(t, "#f", out)
}

func TestNot(t *testing.T) {
	out, err := evalSource(t, `(not #f)`)
	assert.NoError(t, err)
	assert.Equal(t, "#t", out)

	out, err = evalSource(t, `(not 0)`)
	assert.NoError(t, err)
	assert.Equal(t, "#f", out)
}

func TestQuoteAndSugarEquivalent(t *testing.T) {
	out1, err := evalSource(t, `(quote (1 2 3))`)
	assert.NoError(t, err)

	out2, err := evalSource(t, `'(1 2 3)`)
	assert.NoError(t, err)

	assert.Equal(t, out1, out2)
	assert.Equal(t, "(1 2 3)", out1)
}

func TestConsCarCdr(t *testing.T) {
	out, err := evalSource(t, `(car (cons 1 2))`)
	assert.NoError(t, err)
	assert.Equal(t, "1", out)

	out, err = evalSource(t, `(cdr (cons 1 2))`)
	assert.NoError(t, err)
	assert.Equal(t, "2", out)
}

func TestCdrOfSingleElementListIsEmptyList(t *testing.T) {
	out, err := evalSource(t, `(cdr (list 5))`)
	assert.NoError(t, err)
	assert.Equal(t, "()", out)
}

func TestListPredicate(t *testing.T) {
	out, err := evalSource(t, `(list? (list 1 2 3))`)
	assert.NoError(t, err)
	assert.Equal(t, "#t", out)

	out, err = evalSource(t, `(pair? (cons 1 2))`)
	assert.NoError(t, err)
	assert.Equal(t, "#t", out)
}

func TestListPredicateOnDottedTailThatIsItselfAList(t *testing.T) {
	out, err := evalSource(t, `(list? '(1 . (2 3)))`)
	assert.NoError(t, err)
	assert.Equal(t, "#t", out)

	out, err = evalSource(t, `'(1 . (2 3))`)
	assert.NoError(t, err)
	assert.Equal(t, "(1 2 3)", out)
}

func TestListTail(t *testing.T) {
	out, err := evalSource(t, `(list-tail (list 1 2 3 4) 2)`)
	assert.NoError(t, err)
	assert.Equal(t, "(3 4)", out)
}

func TestDivisionByZero(t *testing.T) {
	_, err := evalSource(t, `(/ 10 0)`)
	assert.Error(t, err)
	assert.True(t, scmerr.IsRuntime(err))
}

func TestSyntaxErrorPropagates(t *testing.T) {
	_, err := evalSource(t, `(+ 1`)
	assert.Error(t, err)
	assert.True(t, scmerr.IsSyntax(err))
}
