package ionlex

import "testing"

func TestKeyword(t *testing.T) {
	cases := map[string]KeywordTag{
		"true":      KeywordTrue,
		"false":     KeywordFalse,
		"null":      KeywordNull,
		"bool":      KeywordBool,
		"int":       KeywordInt,
		"float":     KeywordFloat,
		"decimal":   KeywordDecimal,
		"timestamp": KeywordTimestamp,
		"symbol":    KeywordSymbol,
		"string":    KeywordString,
		"blob":      KeywordBlob,
		"clob":      KeywordClob,
		"list":      KeywordList,
		"sexp":      KeywordSexp,
		"struct":    KeywordStruct,
		"nan":       KeywordNan,
		"inf":       KeywordInf,
		"+inf":      KeywordPlusInf,
		"-inf":      KeywordMinusInf,
		"foobar":    NoKeyword,
		"":          NoKeyword,
		"strings":   NoKeyword,
	}

	for text, want := range cases {
		if got := Keyword(text); got != want {
			t.Errorf("Keyword(%q) = %v, want %v", text, got, want)
		}
	}
}

func TestKeywordRange(t *testing.T) {
	tkn := NewStringTokenizer("timestamp foo")
	if got := tkn.KeywordRange(0, 9); got != KeywordTimestamp {
		t.Errorf("KeywordRange(0,9) = %v, want KeywordTimestamp", got)
	}
	if got := tkn.KeywordRange(10, 13); got != NoKeyword {
		t.Errorf("KeywordRange(10,13) = %v, want NoKeyword", got)
	}
}
