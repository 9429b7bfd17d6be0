/*
Copyright 2017 Google Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package ionlex

import "io"

// Tokenizer is the struct used to generate Ion text tokens for a higher
// level value parser. It owns a byte source exclusively for its lifetime and
// is not safe for concurrent use.
type Tokenizer struct {
	buf     []byte
	bufPos  int
	bufSize int

	cur    rune
	curLen int
	pos    int

	line            int
	offset          int
	lineOffsets     [lineOffsetCapacity]int
	lineOffsetCount int

	pending      [pushbackCapacity]charEntry
	pendingCount int
	history      [pushbackCapacity]charEntry
	historyCount int

	queue tokenQueue

	lastError *LexError

	scratch []byte
}

// NewStringTokenizer creates a Tokenizer over an in-memory Ion text string.
func NewStringTokenizer(src string) *Tokenizer {
	return NewTokenizer([]byte(src))
}

// NewTokenizer creates a Tokenizer over an in-memory byte buffer.
func NewTokenizer(src []byte) *Tokenizer {
	tkn := &Tokenizer{buf: src}
	tkn.Reset()
	return tkn
}

// NewReaderTokenizer slurps an io.Reader into memory and returns a
// Tokenizer over it. The Byte Source is random-access, so streaming without
// buffering the whole input is not supported; this mirrors the teacher's
// NewTokenizer(io.Reader) entrypoint for callers who have a reader rather
// than a byte slice in hand.
func NewReaderTokenizer(r io.Reader) (*Tokenizer, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewTokenizer(buf), nil
}

// Reset returns the tokenizer to its initial state over the same buffer.
func (tkn *Tokenizer) Reset() {
	tkn.bufPos = 0
	tkn.bufSize = len(tkn.buf)
	tkn.cur = 0
	tkn.curLen = 0
	tkn.pos = 0
	tkn.line = 1
	tkn.offset = 0
	tkn.lineOffsetCount = 0
	tkn.pendingCount = 0
	tkn.historyCount = 0
	tkn.queue.Reset()
	tkn.lastError = nil
	tkn.scratch = tkn.scratch[:0]

	if err := tkn.primeInitial(); err != nil {
		tkn.lastError = err.(*LexError)
	}
}

// Close releases the tokenizer's reference to its byte source.
func (tkn *Tokenizer) Close() {
	tkn.buf = nil
	tkn.bufPos = 0
	tkn.bufSize = 0
}

func (tkn *Tokenizer) primeInitial() error {
	e, err := tkn.decodeFromBuffer()
	if err != nil {
		return err
	}
	tkn.cur = e.r
	tkn.curLen = e.byteLen
	tkn.pos = e.byteLen
	if e.r == '\n' {
		tkn.line++
		tkn.pushLineOffset(tkn.offset)
		tkn.offset = 0
	} else if e.r != eofRune {
		tkn.offset++
	}
	return nil
}

// endPos is the byte offset of the first unconsumed (lookahead) character,
// i.e. the exclusive end of whatever token was just scanned.
func (tkn *Tokenizer) endPos() int {
	return tkn.pos - tkn.curLen
}

// Lookahead peeks ahead k tokens (0..6) without consuming them, lazily
// filling the queue as needed.
func (tkn *Tokenizer) Lookahead(k int) (Kind, error) {
	for tkn.queue.Count() < k+1 {
		if err := tkn.fillQueue(); err != nil {
			return ERROR, err
		}
	}
	return tkn.queue.Peek(k).Kind, nil
}

// ConsumeToken discards the head token. If no token is queued yet, one is
// scanned first and then discarded.
func (tkn *Tokenizer) ConsumeToken() error {
	if tkn.queue.Count() == 0 {
		if _, err := tkn.Lookahead(0); err != nil {
			return err
		}
	}
	return tkn.queue.Dequeue()
}

// CurrentToken is equivalent to Lookahead(0).
func (tkn *Tokenizer) CurrentToken() (Kind, error) {
	return tkn.Lookahead(0)
}

// ValueStart returns the head token's start byte offset.
func (tkn *Tokenizer) ValueStart() (int, error) {
	if _, err := tkn.Lookahead(0); err != nil {
		return 0, err
	}
	return tkn.queue.Peek(0).Start, nil
}

// ValueEnd returns the head token's end byte offset (exclusive).
func (tkn *Tokenizer) ValueEnd() (int, error) {
	if _, err := tkn.Lookahead(0); err != nil {
		return 0, err
	}
	return tkn.queue.Peek(0).End, nil
}

// fillQueue skips whitespace/comments, scans exactly one token, and enqueues
// its descriptor.
func (tkn *Tokenizer) fillQueue() error {
	if err := tkn.skipInsignificant(); err != nil {
		return err
	}
	kind, start, end, err := tkn.scanOne()
	if err != nil {
		return err
	}
	return tkn.queue.Enqueue(kind, start, end)
}

// skipInsignificant advances past whitespace and comments, leaving tkn.cur
// at the first significant, unconsumed character. A '/' that does not
// introduce a comment is left untouched for scanOne to dispatch on.
func (tkn *Tokenizer) skipInsignificant() error {
	for {
		switch tkn.cur {
		case ' ', '\t', '\n':
			if err := tkn.advance(); err != nil {
				return err
			}
			continue
		case '/':
			slash := tkn.cur
			if err := tkn.advance(); err != nil {
				return err
			}
			switch tkn.cur {
			case '/':
				if err := tkn.skipLineComment(); err != nil {
					return err
				}
				continue
			case '*':
				if err := tkn.skipBlockComment(); err != nil {
					return err
				}
				continue
			default:
				tkn.UnreadChar(slash)
				return nil
			}
		default:
			return nil
		}
	}
}

func (tkn *Tokenizer) skipLineComment() error {
	// tkn.cur == '/' of the second slash; consume it, then run to \n or EOF.
	if err := tkn.advance(); err != nil {
		return err
	}
	for tkn.cur != '\n' && tkn.cur != eofRune {
		if err := tkn.advance(); err != nil {
			return err
		}
	}
	return nil
}

func (tkn *Tokenizer) skipBlockComment() error {
	// tkn.cur == '*'; consume it, then run until "*/" or error at EOF.
	if err := tkn.advance(); err != nil {
		return err
	}
	for {
		if tkn.cur == eofRune {
			return tkn.errorf(UnexpectedEof, eofRune, "unterminated block comment")
		}
		if tkn.cur == '*' {
			if err := tkn.advance(); err != nil {
				return err
			}
			if tkn.cur == '/' {
				return tkn.advance()
			}
			continue
		}
		if err := tkn.advance(); err != nil {
			return err
		}
	}
}

// scanOne dispatches on the first significant character, per the
// leading-character table of the main scanner.
func (tkn *Tokenizer) scanOne() (Kind, int, int, error) {
	start := tkn.endPos()
	ch := tkn.cur

	switch {
	case ch == eofRune:
		return EOF, start, start, nil

	case isSymbolStart(ch):
		return tkn.scanPlainSymbol(start)

	case isDigit(ch):
		return tkn.scanNumber(start, false, false)

	case ch == '-':
		if err := tkn.advance(); err != nil {
			return ERROR, start, start, err
		}
		if isDigit(tkn.cur) {
			return tkn.scanNumber(start, true, true)
		}
		if matched, err := tkn.tryInfLiteral(); err != nil {
			return ERROR, start, start, err
		} else if matched {
			return FLOAT, start, tkn.endPos(), nil
		}
		return tkn.scanOperatorSymbol(start, '-')

	case ch == '+':
		if err := tkn.advance(); err != nil {
			return ERROR, start, start, err
		}
		if matched, err := tkn.tryInfLiteral(); err != nil {
			return ERROR, start, start, err
		} else if matched {
			return FLOAT, start, tkn.endPos(), nil
		}
		return tkn.scanOperatorSymbol(start, '+')

	case ch == ':':
		if err := tkn.advance(); err != nil {
			return ERROR, start, start, err
		}
		if tkn.cur == ':' {
			if err := tkn.advance(); err != nil {
				return ERROR, start, start, err
			}
			return DOUBLE_COLON, start, tkn.endPos(), nil
		}
		return COLON, start, tkn.endPos(), nil

	case ch == '{':
		if err := tkn.advance(); err != nil {
			return ERROR, start, start, err
		}
		if tkn.cur == '{' {
			if err := tkn.advance(); err != nil {
				return ERROR, start, start, err
			}
			return OPEN_DOUBLE_BRACE, start, tkn.endPos(), nil
		}
		return OPEN_BRACE, start, tkn.endPos(), nil

	case ch == '}':
		if err := tkn.advance(); err != nil {
			return ERROR, start, start, err
		}
		return CLOSE_BRACE, start, tkn.endPos(), nil

	case ch == '[':
		if err := tkn.advance(); err != nil {
			return ERROR, start, start, err
		}
		return OPEN_SQUARE, start, tkn.endPos(), nil

	case ch == ']':
		if err := tkn.advance(); err != nil {
			return ERROR, start, start, err
		}
		return CLOSE_SQUARE, start, tkn.endPos(), nil

	case ch == '(':
		if err := tkn.advance(); err != nil {
			return ERROR, start, start, err
		}
		return OPEN_PAREN, start, tkn.endPos(), nil

	case ch == ')':
		if err := tkn.advance(); err != nil {
			return ERROR, start, start, err
		}
		return CLOSE_PAREN, start, tkn.endPos(), nil

	case ch == ',':
		if err := tkn.advance(); err != nil {
			return ERROR, start, start, err
		}
		return COMMA, start, tkn.endPos(), nil

	case ch == '.':
		if err := tkn.advance(); err != nil {
			return ERROR, start, start, err
		}
		if isOperatorChar(tkn.cur) {
			return tkn.scanOperatorSymbol(start, '.')
		}
		return DOT, start, tkn.endPos(), nil

	case ch == '\'':
		return tkn.scanQuotedSymbolOrLongString(start)

	case ch == '"':
		return tkn.scanShortString(start)

	case isOperatorChar(ch):
		if err := tkn.advance(); err != nil {
			return ERROR, start, start, err
		}
		return tkn.scanOperatorSymbol(start, ch)

	default:
		return ERROR, start, start, tkn.errorf(BadTokenStart, ch, "unexpected character at start of token")
	}
}

// LobLookahead skips whitespace and returns one character of lookahead
// without committing to it, used by the parser to distinguish a blob's
// quoted-text form from its base-64 form immediately after `{{`.
func (tkn *Tokenizer) LobLookahead() (int, error) {
	for isWhitespace(tkn.cur) {
		if err := tkn.advance(); err != nil {
			return -1, err
		}
	}
	if tkn.cur == eofRune {
		return -1, nil
	}
	return int(tkn.cur), nil
}

// IsReallyDoubleBrace is called right after a CLOSE_BRACE token has been
// produced; it peeks one more character to decide whether the source really
// continues with a second '}' (closing a blob/clob) without tokenizing `}}`
// as a single ambiguous token.
func (tkn *Tokenizer) IsReallyDoubleBrace() bool {
	return tkn.cur == '}'
}

// ConsumeDoubleBraceClose consumes the second '}' once the parser has
// confirmed, via IsReallyDoubleBrace, that it wants to treat the pair as a
// CLOSE_DOUBLE_BRACE.
func (tkn *Tokenizer) ConsumeDoubleBraceClose() (Kind, int, int, error) {
	start := tkn.endPos() - 1 // the first '}' was already consumed by scanOne
	if tkn.cur != '}' {
		return ERROR, start, start, tkn.errorf(BadToken, tkn.cur, "expected '}' to close blob/clob")
	}
	if err := tkn.advance(); err != nil {
		return ERROR, start, start, err
	}
	return CLOSE_DOUBLE_BRACE, start, tkn.endPos(), nil
}

// LastError returns the most recently raised lexical error, if any.
func (tkn *Tokenizer) LastError() error {
	if tkn.lastError == nil {
		return nil
	}
	return tkn.lastError
}
