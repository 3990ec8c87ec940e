package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/belskiyanton/Scheme-Object-Interpreter/scmerr"
)

func TestRunEndToEndScenarios(t *testing.T) {
	testCases := []struct {
		in  string
		out string
	}{
		{`(+ 1 2 3)`, "6"},
		{`(* (+ 1 2) (- 10 4))`, "18"},
		{`(and 1 2 3)`, "3"},
		{`(or #f #f 7)`, "7"},
		{`(list-ref (list 10 20 30) 1)`, "20"},
		{`(abs -5)`, "5"},
		{`(boolean? (= 1 1))`, "#t"},
	}

	for _, tc := range testCases {
		out, err := Run(tc.in)
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.out, out, tc.in)
	}
}

func TestRunCarOfEmptyIsRuntimeError(t *testing.T) {
	_, err := Run(`(car (list))`)
	assert.Error(t, err)
	assert.True(t, scmerr.IsRuntime(err))
}

func TestRunUnknownOperatorIsNameError(t *testing.T) {
	_, err := Run(`(foo 1 2)`)
	assert.Error(t, err)
	assert.True(t, scmerr.IsName(err))
}

func TestRunUnterminatedFormIsSyntaxError(t *testing.T) {
	_, err := Run(`(+ 1`)
	assert.Error(t, err)
	assert.True(t, scmerr.IsSyntax(err))
}

func TestRunTwoTopLevelForms(t *testing.T) {
	out, err := Run(`(+ 1 2)(* 3 4)`)
	assert.NoError(t, err)
	assert.Equal(t, "312", out)
}

func TestRunTrailingTokensIgnored(t *testing.T) {
	out, err := Run(`(+ 1 2)(* 3 4)(- 9 1)`)
	assert.NoError(t, err)
	assert.Equal(t, "312", out)
}

func TestRunFailureYieldsNoPartialOutput(t *testing.T) {
	out, err := Run(`(+ 1 2)(foo)`)
	assert.Error(t, err)
	assert.Empty(t, out)
}
