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

// Package ionlex is a streaming lexical analyzer for the Ion text format. It
// produces a lazy sequence of token descriptors (kind plus byte range) for a
// higher-level Ion value parser to consume; it does not itself build a value
// tree or manage a symbol table.
package ionlex

// Kind identifies the lexical class of a scanned token. The set is closed:
// callers should treat an unrecognized Kind as a programming error, not a
// forward-compatible extension point.
type Kind int

const (
	ERROR Kind = iota
	EOF

	INT
	HEX
	DECIMAL
	FLOAT
	TIMESTAMP
	BLOB

	SYMBOL_BASIC
	SYMBOL_QUOTED
	SYMBOL_OPERATOR

	STRING_UTF8
	STRING_UTF8_LONG
	STRING_CLOB
	STRING_CLOB_LONG

	DOT
	COMMA
	COLON
	DOUBLE_COLON

	OPEN_PAREN
	CLOSE_PAREN
	OPEN_BRACE
	CLOSE_BRACE
	OPEN_SQUARE
	CLOSE_SQUARE
	OPEN_DOUBLE_BRACE
	CLOSE_DOUBLE_BRACE
)

var kindNames = map[Kind]string{
	ERROR:              "ERROR",
	EOF:                "EOF",
	INT:                "INT",
	HEX:                "HEX",
	DECIMAL:            "DECIMAL",
	FLOAT:              "FLOAT",
	TIMESTAMP:          "TIMESTAMP",
	BLOB:               "BLOB",
	SYMBOL_BASIC:       "SYMBOL_BASIC",
	SYMBOL_QUOTED:      "SYMBOL_QUOTED",
	SYMBOL_OPERATOR:    "SYMBOL_OPERATOR",
	STRING_UTF8:        "STRING_UTF8",
	STRING_UTF8_LONG:   "STRING_UTF8_LONG",
	STRING_CLOB:        "STRING_CLOB",
	STRING_CLOB_LONG:   "STRING_CLOB_LONG",
	DOT:                "DOT",
	COMMA:              "COMMA",
	COLON:              "COLON",
	DOUBLE_COLON:       "DOUBLE_COLON",
	OPEN_PAREN:         "OPEN_PAREN",
	CLOSE_PAREN:        "CLOSE_PAREN",
	OPEN_BRACE:         "OPEN_BRACE",
	CLOSE_BRACE:        "CLOSE_BRACE",
	OPEN_SQUARE:        "OPEN_SQUARE",
	CLOSE_SQUARE:       "CLOSE_SQUARE",
	OPEN_DOUBLE_BRACE:  "OPEN_DOUBLE_BRACE",
	CLOSE_DOUBLE_BRACE: "CLOSE_DOUBLE_BRACE",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN_KIND"
}

// KeywordTag identifies a reserved Ion word recognized by Keyword.
type KeywordTag int

const (
	NoKeyword KeywordTag = iota
	KeywordTrue
	KeywordFalse
	KeywordNull
	KeywordBool
	KeywordInt
	KeywordFloat
	KeywordDecimal
	KeywordTimestamp
	KeywordSymbol
	KeywordString
	KeywordBlob
	KeywordClob
	KeywordList
	KeywordSexp
	KeywordStruct
	KeywordNan
	KeywordInf
	KeywordPlusInf
	KeywordMinusInf
)

// Descriptor is the {kind, start, end} triple reported by the tokenizer.
// [Start, End) is a half-open byte range into the source buffer, not the
// post-normalization character stream.
type Descriptor struct {
	Kind  Kind
	Start int
	End   int
}
