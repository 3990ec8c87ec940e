// Package reader turns a lexer.Tokenizer's token stream into value.Value
// trees: one routine for operator-position forms, another — stricter —
// for data reached through quotation.
package reader

import (
	"github.com/belskiyanton/Scheme-Object-Interpreter/lexer"
	"github.com/belskiyanton/Scheme-Object-Interpreter/scmerr"
	"github.com/belskiyanton/Scheme-Object-Interpreter/value"
)

// Read consumes one top-level form from tz using the "clean" reader: an
// empty list reads as value.Null, and `(quote x)` / `'x` are recognized
// and synthesized directly rather than left as a literal list to
// evaluate.
func Read(tz *lexer.Tokenizer) (*value.Value, error) {
	if tz.AtEnd() {
		return nil, scmerr.Syntaxf("unexpected end of input")
	}

	tok := tz.Peek()
	switch tok.Type() {
	case lexer.TokenNumber:
		return readNumber(tz)
	case lexer.TokenSymbol:
		return readSymbol(tz)
	case lexer.TokenQuote:
		return readQuoteSugar(tz)
	case lexer.TokenOpenParen:
		return readTopLevelList(tz)
	default:
		return nil, scmerr.Syntaxf("unexpected token %v", tok)
	}
}

// ReadQuoted consumes one datum from tz using the careful reader: an
// empty list reads as Pair(Null, Null), dotted-pair structure is
// preserved through any depth, and `(quote ...)` in operator position is
// not special-cased — it is just a list whose first element happens to
// be the symbol "quote".
func ReadQuoted(tz *lexer.Tokenizer) (*value.Value, error) {
	if tz.AtEnd() {
		return nil, scmerr.Syntaxf("unexpected end of input")
	}

	tok := tz.Peek()
	switch tok.Type() {
	case lexer.TokenNumber:
		return readNumber(tz)
	case lexer.TokenSymbol:
		return readSymbol(tz)
	case lexer.TokenQuote:
		return readQuoteSugar(tz)
	case lexer.TokenOpenParen:
		return readCarefulList(tz)
	default:
		return nil, scmerr.Syntaxf("unexpected token %v", tok)
	}
}

func readNumber(tz *lexer.Tokenizer) (*value.Value, error) {
	tok := tz.Peek()
	n, err := parseInt64(tok.Text())
	if err != nil {
		return nil, err
	}
	if err := tz.Advance(); err != nil {
		return nil, err
	}
	return value.NewNumber(n), nil
}

func readSymbol(tz *lexer.Tokenizer) (*value.Value, error) {
	tok := tz.Peek()
	if err := tz.Advance(); err != nil {
		return nil, err
	}
	return value.NewSymbol(tok.Text()), nil
}

// readQuoteSugar handles the `'` lexeme in either reader mode: the
// quoted datum is always read with the careful reader, then wrapped as
// Pair(Symbol "quote", datum).
func readQuoteSugar(tz *lexer.Tokenizer) (*value.Value, error) {
	if err := tz.Advance(); err != nil { // consume '
		return nil, err
	}
	if tz.AtEnd() {
		return nil, scmerr.Syntaxf("quote not followed by a datum")
	}
	datum, err := ReadQuoted(tz)
	if err != nil {
		return nil, err
	}
	return value.Cons(value.NewSymbol("quote"), datum), nil
}

// readTopLevelList reads the body of a `(` ... `)` form encountered in
// operator position: `(quote x)` is special-cased, an immediately
// closed list reads as Null, and every other element is read with the
// top-level reader recursively so nested applications stay evaluable.
func readTopLevelList(tz *lexer.Tokenizer) (*value.Value, error) {
	if err := tz.Advance(); err != nil { // consume (
		return nil, err
	}

	if tz.AtEnd() {
		return nil, scmerr.Syntaxf("unexpected end of input inside list")
	}

	if tz.Peek().Is(lexer.TokenSymbol) && tz.Peek().Text() == "quote" {
		if err := tz.Advance(); err != nil { // consume the symbol "quote"
			return nil, err
		}
		if tz.AtEnd() {
			return nil, scmerr.Syntaxf("quote not followed by a datum")
		}
		datum, err := ReadQuoted(tz)
		if err != nil {
			return nil, err
		}
		if !tz.Peek().Is(lexer.TokenCloseParen) {
			return nil, scmerr.Syntaxf("expected ) to close quote form")
		}
		if err := tz.Advance(); err != nil { // consume )
			return nil, err
		}
		return value.Cons(value.NewSymbol("quote"), datum), nil
	}

	if tz.Peek().Is(lexer.TokenCloseParen) {
		if err := tz.Advance(); err != nil { // consume )
			return nil, err
		}
		return value.Null, nil
	}

	return readListBody(tz, Read)
}

// readCarefulList reads the body of a `(` ... `)` form encountered while
// reading quoted data: an immediately closed list reads as
// Pair(Null, Null), and every element is read with the careful reader
// recursively so nested sub-lists round-trip literally.
func readCarefulList(tz *lexer.Tokenizer) (*value.Value, error) {
	if err := tz.Advance(); err != nil { // consume (
		return nil, err
	}

	if tz.AtEnd() {
		return nil, scmerr.Syntaxf("unexpected end of input inside list")
	}

	if tz.Peek().Is(lexer.TokenCloseParen) {
		if err := tz.Advance(); err != nil { // consume )
			return nil, err
		}
		return value.Cons(value.Null, value.Null), nil
	}

	return readListBody(tz, ReadQuoted)
}

// readListBody reads `datum { datum } [ '.' datum ]` up to the closing
// `)`, using elementReader for every element, and assembles the result
// per the three-node dotted encoding when a '.' is present and the
// dot-tail itself reads as a non-Pair atom. A dot-tail that reads as a
// Pair is spliced in directly (or collapsed to Null if it is the
// empty-list encoding) rather than wrapped with Dot, so `(a . (b c))`
// and `(a b c)` read to the same structure, per invariant 3's "where b
// is not itself a Pair" qualifier on the dotted encoding.
func readListBody(tz *lexer.Tokenizer, elementReader func(*lexer.Tokenizer) (*value.Value, error)) (*value.Value, error) {
	var elems []*value.Value
	var tail *value.Value

	for {
		if tz.AtEnd() {
			return nil, scmerr.Syntaxf("unexpected end of input inside list")
		}

		if tz.Peek().Is(lexer.TokenCloseParen) {
			break
		}

		if tz.Peek().Is(lexer.TokenDot) {
			if len(elems) == 0 {
				return nil, scmerr.Syntaxf("dot must follow at least one datum")
			}
			if err := tz.Advance(); err != nil { // consume .
				return nil, err
			}
			if tz.AtEnd() || tz.Peek().Is(lexer.TokenCloseParen) {
				return nil, scmerr.Syntaxf("dot not followed by a datum")
			}
			td, err := elementReader(tz)
			if err != nil {
				return nil, err
			}
			switch {
			case td.IsPair() && td.First.IsNull():
				tail = value.Null
			case td.IsPair():
				tail = td
			default:
				tail = value.Cons(value.Dot, value.Cons(td, value.Null))
			}
			break
		}

		elem, err := elementReader(tz)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}

	if !tz.Peek().Is(lexer.TokenCloseParen) {
		return nil, scmerr.Syntaxf("expected ) to close list")
	}
	if err := tz.Advance(); err != nil { // consume )
		return nil, err
	}

	result := value.Null
	if tail != nil {
		result = tail
	}
	for i := len(elems) - 1; i >= 0; i-- {
		result = value.Cons(elems[i], result)
	}
	return result, nil
}

func parseInt64(s string) (int64, error) {
	neg := false
	i := 0
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		i = 1
	}
	if i == len(s) {
		return 0, scmerr.Syntaxf("malformed number literal %q", s)
	}
	var n int64
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, scmerr.Syntaxf("malformed number literal %q", s)
		}
		n = n*10 + int64(c-'0')
	}
	if neg {
		n = -n
	}
	return n, nil
}
