package ionlex

// Keyword matches a plain-symbol's text against the closed set of Ion type
// keywords and special numeric names, returning NoKeyword if it isn't one.
//
// Lengths dispatch first, then the text is compared whole against the
// keywords of that length; there is no per-prefix tree and no runtime hash
// map: the set is small, fixed, and ASCII.
func Keyword(text string) KeywordTag {
	switch len(text) {
	case 3:
		switch text {
		case "int":
			return KeywordInt
		case "nan":
			return KeywordNan
		case "inf":
			return KeywordInf
		}
	case 4:
		switch text {
		case "true":
			return KeywordTrue
		case "null":
			return KeywordNull
		case "bool":
			return KeywordBool
		case "blob":
			return KeywordBlob
		case "clob":
			return KeywordClob
		case "list":
			return KeywordList
		case "sexp":
			return KeywordSexp
		case "+inf":
			return KeywordPlusInf
		case "-inf":
			return KeywordMinusInf
		}
	case 5:
		switch text {
		case "false":
			return KeywordFalse
		case "float":
			return KeywordFloat
		}
	case 6:
		switch text {
		case "symbol":
			return KeywordSymbol
		case "string":
			return KeywordString
		case "struct":
			return KeywordStruct
		}
	case 7:
		if text == "decimal" {
			return KeywordDecimal
		}
	case 9:
		if text == "timestamp" {
			return KeywordTimestamp
		}
	}
	return NoKeyword
}

// KeywordRange identifies a reserved word over a raw byte range of the
// source buffer, re-reading bytes via GetByte the same way the value
// materializer re-reads token ranges on demand.
func (tkn *Tokenizer) KeywordRange(start, end int) KeywordTag {
	if end < start || end-start > 9 {
		return NoKeyword
	}
	buf := make([]byte, 0, end-start)
	for i := start; i < end; i++ {
		b := tkn.GetByte(i)
		if b < 0 {
			return NoKeyword
		}
		buf = append(buf, byte(b))
	}
	return Keyword(string(buf))
}
