package lexer

import (
	"strings"

	"github.com/belskiyanton/Scheme-Object-Interpreter/scmerr"
)

// Tokenizer presents a Lexer's channel of tokens as a one-token-lookahead
// stream: construction advances once so Peek is valid before the caller
// ever calls Advance.
type Tokenizer struct {
	lx      *Lexer
	scanErr chan error

	cur  Token
	done bool
}

// NewTokenizer scans source in full, returning a SyntaxError if any
// character does not begin a token, and returns a Tokenizer positioned at
// its first token. The tokens are then delivered by a scan on a background
// goroutine; Advance blocks until the next token is available, so no
// concurrency is visible to the caller.
func NewTokenizer(source string) (*Tokenizer, error) {
	if _, err := TokenizeBytes([]byte(source)); err != nil {
		return nil, scmerr.Wrap(err, scmerr.Syntax, "tokenizing source")
	}

	lx := New(strings.NewReader(source))
	scanErr := make(chan error, 1)

	go func() {
		scanErr <- lx.Scan()
	}()

	t := &Tokenizer{lx: lx, scanErr: scanErr}
	if err := t.Advance(); err != nil {
		return nil, err
	}
	return t, nil
}

// Advance discards the current token and blocks for the next one,
// returning a SyntaxError if the underlying scan failed.
func (t *Tokenizer) Advance() error {
	if t.done {
		return nil
	}

	tok, ok := <-t.lx.tokens
	if !ok {
		if err := <-t.scanErr; err != nil {
			return scmerr.Wrap(err, scmerr.Syntax, "tokenizing source")
		}
		t.done = true
		t.cur = NewToken(TokenEOF, "", t.cur.line, t.cur.col)
		return nil
	}

	t.cur = tok
	if tok.Is(TokenEOF) {
		t.done = true
	}
	return nil
}

// Peek returns the current lookahead token without consuming it.
func (t *Tokenizer) Peek() Token {
	return t.cur
}

// AtEnd reports whether the lookahead token is the end-of-input sentinel.
func (t *Tokenizer) AtEnd() bool {
	return t.cur.Is(TokenEOF)
}
