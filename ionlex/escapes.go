package ionlex

// skipEscape consumes a backslash escape sequence starting at tkn.cur == '\\'
// without producing a decoded value; decoding is deferred to the value
// materializer, which re-reads the byte range on demand. It reports whether
// the escape forces UTF-8 kind on its enclosing string: a \u or \U escape
// always does, while \xHH never does, whatever HH is. A string stays a CLOB
// only while it has no code point above 0xFF and no \u/\U escape.
func (tkn *Tokenizer) skipEscape() (bool, error) {
	if err := tkn.advance(); err != nil { // consume the backslash
		return false, err
	}
	switch tkn.cur {
	case '0', 'a', 'b', 't', 'n', 'f', 'r', 'v', '"', '\'', '?', '\\', '/', '\n':
		return false, tkn.advance()
	case 'x':
		if err := tkn.advance(); err != nil {
			return false, err
		}
		return false, tkn.skipHexDigits(2)
	case 'u':
		if err := tkn.advance(); err != nil {
			return false, err
		}
		return true, tkn.skipHexDigits(4)
	case 'U':
		if err := tkn.advance(); err != nil {
			return false, err
		}
		return true, tkn.skipHexDigits(8)
	default:
		return false, tkn.errorf(BadEscape, tkn.cur, "invalid escape sequence")
	}
}

func (tkn *Tokenizer) readHexDigit() (int, error) {
	c := tkn.cur
	var v int
	switch {
	case c >= '0' && c <= '9':
		v = int(c - '0')
	case c >= 'a' && c <= 'f':
		v = int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		v = int(c-'A') + 10
	default:
		return 0, tkn.errorf(BadEscape, c, "expected hex digit in escape")
	}
	if err := tkn.advance(); err != nil {
		return 0, err
	}
	return v, nil
}

func (tkn *Tokenizer) skipHexDigits(n int) error {
	for i := 0; i < n; i++ {
		if _, err := tkn.readHexDigit(); err != nil {
			return err
		}
	}
	return nil
}
