package lexer

import (
	"bytes"
	"io"
	"text/scanner"

	"github.com/belskiyanton/Scheme-Object-Interpreter/scmerr"
)

type lexState func(*Lexer) lexState

// New initializes a Lexer over r.
func New(r io.Reader) *Lexer {
	s := &scanner.Scanner{
		Mode: scanner.ScanIdents | scanner.ScanInts,
	}
	s.Whitespace = 0 // the state machine handles whitespace itself

	return &Lexer{
		in:     s.Init(r),
		tokens: make(chan Token),
		buf:    []rune{},
	}
}

// Lexer is a streaming scanner over a character source, emitting Tokens on
// a channel as it recognizes them.
type Lexer struct {
	in *scanner.Scanner

	tokens chan Token

	lastErr error

	buf []rune

	start  int
	offset int
	lines  int
}

// Tokens returns the channel Scan emits recognized tokens on.
func (lx *Lexer) Tokens() chan Token {
	return lx.tokens
}

// Scan drives the state machine to completion, emitting a final TokenEOF on
// a clean end of input. It returns a SyntaxError if an unrecognized
// character is encountered.
func (lx *Lexer) Scan() error {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}

	if lx.lastErr == nil {
		lx.emit(TokenEOF)
	}

	close(lx.tokens)

	return lx.lastErr
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tokens <- NewToken(tt, string(lx.buf), lx.lines+1, lx.start+1)
	lx.start = lx.offset
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) peek() rune {
	return lx.in.Peek()
}

func (lx *Lexer) next() (rune, error) {
	lx.offset++

	r := lx.in.Next()
	if r == scanner.EOF {
		return rune(0), io.EOF
	}
	if r == '\n' {
		lx.lines++
		lx.start = 0
		lx.offset = 0
	}

	lx.buf = append(lx.buf, r)
	return r, nil
}

// skip discards the pending lexeme buffer, dropping the characters next
// has already consumed into it.
func (lx *Lexer) skip() {
	lx.start = lx.offset
	lx.buf = lx.buf[0:0]
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func lexDefaultState(lx *Lexer) lexState {
	for isWhitespace(lx.peek()) {
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
		lx.skip()
	}

	r, err := lx.next()
	if err != nil {
		return lexStateError(err)
	}

	switch {
	case r == '(':
		return lexEmit(TokenOpenParen)
	case r == ')':
		return lexEmit(TokenCloseParen)
	case r == '\'':
		return lexEmit(TokenQuote)
	case r == '.':
		return lexEmit(TokenDot)
	case isDigit(r):
		return lexNumber
	case isSignChar(r) && isDigit(lx.peek()):
		return lexNumber
	case isSymbolStart(r) || isSignChar(r):
		return lexSymbol
	default:
		return lexStateError(scmerr.Syntaxf("unrecognized character %q at line %d, column %d", r, lx.lines+1, lx.start+1))
	}
}

func lexNumber(lx *Lexer) lexState {
	for isDigit(lx.peek()) {
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}
	return lexEmit(TokenNumber)
}

func lexSymbol(lx *Lexer) lexState {
	for isSymbolCont(lx.peek()) {
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}
	return lexEmit(TokenSymbol)
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexStateError(err error) lexState {
	if err == io.EOF {
		return nil
	}
	return func(lx *Lexer) lexState {
		lx.lastErr = err
		return nil
	}
}

// TokenizeBytes scans all of in and returns every token it holds, or a
// SyntaxError if an unrecognized character is encountered.
func TokenizeBytes(in []byte) ([]Token, error) {
	tokens := []Token{}
	done := make(chan struct{})

	lx := New(bytes.NewReader(in))

	go func() {
		for tok := range lx.tokens {
			tokens = append(tokens, tok)
		}
		done <- struct{}{}
	}()

	if err := lx.Scan(); err != nil {
		<-done
		return nil, err
	}

	<-done
	return tokens, nil
}
