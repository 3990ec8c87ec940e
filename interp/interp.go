// Package interp glues the tokenizer, reader, and evaluator together
// into the single entry point external callers use.
package interp

import (
	"github.com/sirupsen/logrus"

	"github.com/belskiyanton/Scheme-Object-Interpreter/eval"
	"github.com/belskiyanton/Scheme-Object-Interpreter/lexer"
	"github.com/belskiyanton/Scheme-Object-Interpreter/reader"
)

// Run tokenizes source, reads up to two top-level forms (the second only
// if tokens remain after the first), evaluates each, and returns the
// concatenation of their printed forms. A failure in either form aborts
// the whole call with no partial output.
func Run(source string) (string, error) {
	tz, err := lexer.NewTokenizer(source)
	if err != nil {
		Log.WithError(err).Debug("tokenize failed")
		return "", err
	}

	first, err := readEvalPrint(tz, "first")
	if err != nil {
		return "", err
	}
	out := first

	if !tz.AtEnd() {
		second, err := readEvalPrint(tz, "second")
		if err != nil {
			return "", err
		}
		out += second
	}

	return out, nil
}

func readEvalPrint(tz *lexer.Tokenizer, label string) (string, error) {
	form, err := reader.Read(tz)
	if err != nil {
		Log.WithFields(logrus.Fields{"form": label}).WithError(err).Debug("read failed")
		return "", err
	}

	result, err := eval.Eval(form)
	if err != nil {
		Log.WithFields(logrus.Fields{"form": label}).WithError(err).Debug("eval failed")
		return "", err
	}

	printed := result.String()
	Log.WithFields(logrus.Fields{"form": label, "result": printed}).Debug("evaluated")
	return printed, nil
}
