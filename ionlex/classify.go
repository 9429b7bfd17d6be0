package ionlex

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// isSymbolStart matches the leading character of a plain symbol.
func isSymbolStart(r rune) bool {
	return isLetter(r) || r == '$' || r == '_'
}

// isSymbolChar matches any character of a plain symbol after the first.
func isSymbolChar(r rune) bool {
	return isSymbolStart(r) || isDigit(r)
}

func isBase64Char(r rune) bool {
	return isLetter(r) || isDigit(r) || r == '+' || r == '/'
}

// operatorChars is the closed set accepted by the operator-symbol scanner.
const operatorChars = ".+-/<>*=^&|~;!?@%#`"

func isOperatorChar(r rune) bool {
	for _, c := range operatorChars {
		if c == r {
			return true
		}
	}
	return false
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}

// isNumericStop matches additional characters that may stop a numeric
// literal besides the generic value-terminator set; currently only ':'.
// Kept distinct from isValueTerminator so
// the two can evolve independently, matching the distilled spec's own
// separation of concerns.
func isNumericStop(r rune) bool {
	switch r {
	case ':':
		return true
	}
	return false
}

// isValueTerminator reports whether r may legally follow a scalar literal.
// '\'' always terminates (it opens the next quoted symbol or long string). A
// '/' only terminates if it begins a comment; that requires a one-byte peek
// at the position immediately after r, which the caller supplies via
// peekNext (typically tkn.GetByte(tkn.pos)).
func isValueTerminator(r rune, peekNext int) bool {
	if r == eofRune || isWhitespace(r) {
		return true
	}
	switch r {
	case '{', '}', '[', ']', '(', ')', ',', '"', '\'':
		return true
	case '/':
		return peekNext == '/' || peekNext == '*'
	}
	return isNumericStop(r)
}
