package ionlex

// scanShortString scans a double-quoted string literal, disambiguating
// STRING_UTF8 from STRING_CLOB: a string is STRING_UTF8 if it contains a
// literal code point above 0xFF, or an escape that forces UTF-8 per
// skipEscape; otherwise it is STRING_CLOB.
// Unescaped newlines are not permitted; callers wanting embedded newlines
// need the long (triple-quoted) form.
func (tkn *Tokenizer) scanShortString(start int) (Kind, int, int, error) {
	if err := tkn.advance(); err != nil { // consume opening quote
		return ERROR, start, start, err
	}
	utf8 := false
	for {
		switch tkn.cur {
		case eofRune:
			return ERROR, start, start, tkn.errorf(UnexpectedEof, eofRune, "unterminated string")
		case '\n':
			return ERROR, start, start, tkn.errorf(BadToken, tkn.cur, "string may not contain a raw newline")
		case '"':
			if err := tkn.advance(); err != nil {
				return ERROR, start, start, err
			}
			if utf8 {
				return STRING_UTF8, start, tkn.endPos(), nil
			}
			return STRING_CLOB, start, tkn.endPos(), nil
		case '\\':
			forcesUtf8, err := tkn.skipEscape()
			if err != nil {
				return ERROR, start, start, err
			}
			if forcesUtf8 {
				utf8 = true
			}
		default:
			if tkn.cur > 0xFF {
				utf8 = true
			}
			if err := tkn.advance(); err != nil {
				return ERROR, start, start, err
			}
		}
	}
}

// scanLongString scans the body of a triple-quoted string, having already
// consumed the opening '''. Raw newlines are permitted. Returns one segment;
// adjacent triple-quoted segments separated only by whitespace/comments are
// concatenated by the higher-level value parser, not here.
func (tkn *Tokenizer) scanLongString(start int, base Kind) (Kind, int, int, error) {
	utf8 := base == STRING_UTF8_LONG
	for {
		switch tkn.cur {
		case eofRune:
			return ERROR, start, start, tkn.errorf(UnexpectedEof, eofRune, "unterminated long string")
		case '\\':
			forcesUtf8, err := tkn.skipEscape()
			if err != nil {
				return ERROR, start, start, err
			}
			if forcesUtf8 {
				utf8 = true
			}
		case '\'':
			closed, err := tkn.tryLongStringClose()
			if err != nil {
				return ERROR, start, start, err
			}
			if closed {
				if utf8 {
					return STRING_UTF8_LONG, start, tkn.endPos(), nil
				}
				return STRING_CLOB_LONG, start, tkn.endPos(), nil
			}
		default:
			if tkn.cur > 0xFF {
				utf8 = true
			}
			if err := tkn.advance(); err != nil {
				return ERROR, start, start, err
			}
		}
	}
}

// tryLongStringClose attempts to match the closing ''' of a long string.
// tkn.cur must be '\''. On a partial match (one or two quotes that turn out
// to be content rather than the terminator) the quotes are consumed as plain
// content characters and false is returned, so the caller's loop continues
// without re-reading them.
func (tkn *Tokenizer) tryLongStringClose() (bool, error) {
	if err := tkn.advance(); err != nil { // consume first '
		return false, err
	}
	if tkn.cur != '\'' {
		return false, nil
	}
	if err := tkn.advance(); err != nil { // consume second '
		return false, err
	}
	if tkn.cur != '\'' {
		return false, nil
	}
	if err := tkn.advance(); err != nil { // consume third '
		return false, err
	}
	return true, nil
}
