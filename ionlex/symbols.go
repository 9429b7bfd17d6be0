package ionlex

// scanPlainSymbol scans an unquoted identifier-style symbol: [A-Za-z_$] then
// any run of [A-Za-z0-9_$]. tkn.cur holds the unconsumed first character.
func (tkn *Tokenizer) scanPlainSymbol(start int) (Kind, int, int, error) {
	for isSymbolChar(tkn.cur) {
		if err := tkn.advance(); err != nil {
			return ERROR, start, start, err
		}
	}
	return SYMBOL_BASIC, start, tkn.endPos(), nil
}

// scanOperatorSymbol scans a run of operator characters. The caller has
// already consumed the first character before dispatching here.
func (tkn *Tokenizer) scanOperatorSymbol(start int, first rune) (Kind, int, int, error) {
	for isOperatorChar(tkn.cur) {
		if err := tkn.advance(); err != nil {
			return ERROR, start, start, err
		}
	}
	return SYMBOL_OPERATOR, start, tkn.endPos(), nil
}

// tryInfLiteral attempts to match the literal text "inf" followed by a value
// terminator, immediately after a leading '+' or '-' has already been
// consumed by the caller. On a mismatch it rewinds exactly the characters it
// consumed, via UnreadChar, so the caller can fall back to treating the sign
// as the start of an operator symbol. Matches +inf/-inf, the two special
// signed-infinity float literals.
func (tkn *Tokenizer) tryInfLiteral() (bool, error) {
	c1 := tkn.cur
	if c1 != 'i' {
		return false, nil
	}
	if err := tkn.advance(); err != nil {
		return false, err
	}
	c2 := tkn.cur
	if c2 != 'n' {
		tkn.UnreadChar(c1)
		return false, nil
	}
	if err := tkn.advance(); err != nil {
		return false, err
	}
	c3 := tkn.cur
	if c3 != 'f' {
		tkn.UnreadChar(c2)
		tkn.UnreadChar(c1)
		return false, nil
	}
	if err := tkn.advance(); err != nil {
		return false, err
	}
	if !isValueTerminator(tkn.cur, tkn.GetByte(tkn.pos)) {
		tkn.UnreadChar(c3)
		tkn.UnreadChar(c2)
		tkn.UnreadChar(c1)
		return false, nil
	}
	return true, nil
}

// scanQuotedSymbolOrLongString handles the single-quote lead character,
// disambiguating a quoted symbol 'text' from a triple-quoted long string
// '''text''' by peeking for two more consecutive quotes.
func (tkn *Tokenizer) scanQuotedSymbolOrLongString(start int) (Kind, int, int, error) {
	if err := tkn.advance(); err != nil { // consume first '
		return ERROR, start, start, err
	}
	if tkn.cur == '\'' {
		if err := tkn.advance(); err != nil { // consume second '
			return ERROR, start, start, err
		}
		if tkn.cur == '\'' {
			if err := tkn.advance(); err != nil { // consume third '
				return ERROR, start, start, err
			}
			return tkn.scanLongString(start, STRING_CLOB_LONG)
		}
		// Empty quoted symbol: ''
		return SYMBOL_QUOTED, start, tkn.endPos(), nil
	}

	for {
		switch tkn.cur {
		case eofRune:
			return ERROR, start, start, tkn.errorf(UnexpectedEof, eofRune, "unterminated quoted symbol")
		case '\n':
			return ERROR, start, start, tkn.errorf(BadToken, tkn.cur, "quoted symbol may not contain a raw newline")
		case '\'':
			if err := tkn.advance(); err != nil {
				return ERROR, start, start, err
			}
			return SYMBOL_QUOTED, start, tkn.endPos(), nil
		case '\\':
			if _, err := tkn.skipEscape(); err != nil {
				return ERROR, start, start, err
			}
		default:
			if err := tkn.advance(); err != nil {
				return ERROR, start, start, err
			}
		}
	}
}
