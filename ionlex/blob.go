package ionlex

// ScanBase64Value scans the base64-encoded content of a blob, called by the
// value parser once it has consumed an OPEN_DOUBLE_BRACE and LobLookahead
// has shown the content doesn't start with a quote (the clob form). Embedded
// whitespace between base64 characters is permitted and does not extend the
// reported range; padding ('=') must trail all data characters and the
// total length (data plus padding) must be a multiple of 4.
func (tkn *Tokenizer) ScanBase64Value() (Kind, int, int, error) {
	start := tkn.endPos()
	contentEnd := start
	count, pad := 0, 0

loop:
	for {
		switch {
		case isWhitespace(tkn.cur):
			if err := tkn.advance(); err != nil {
				return ERROR, start, start, err
			}
		case tkn.cur == '=':
			pad++
			if pad > 3 {
				return ERROR, start, start, tkn.errorf(BadToken, tkn.cur, "too much base64 padding in blob")
			}
			if err := tkn.advance(); err != nil {
				return ERROR, start, start, err
			}
			contentEnd = tkn.endPos()
		case isBase64Char(tkn.cur):
			if pad > 0 {
				return ERROR, start, start, tkn.errorf(BadToken, tkn.cur, "base64 data after padding in blob")
			}
			count++
			if err := tkn.advance(); err != nil {
				return ERROR, start, start, err
			}
			contentEnd = tkn.endPos()
		default:
			break loop
		}
	}

	total := count + pad
	if total == 0 || total%4 != 0 {
		return ERROR, start, start, tkn.errorf(BadToken, tkn.cur, "blob content length must be a non-zero multiple of 4")
	}
	return BLOB, start, contentEnd, nil
}
