package testutil

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"

	"github.com/ion-text/iontext/ionlex"
	"github.com/ion-text/iontext/util"
)

func init() {
	util.InitSlog()

	// In test environments, suppress INFO-level logs to prevent them from
	// contaminating test output comparisons. LOG_LEVEL still overrides this.
	if os.Getenv("LOG_LEVEL") == "" {
		opts := &slog.HandlerOptions{Level: slog.LevelWarn}
		handler := slog.NewTextHandler(os.Stderr, opts)
		slog.SetDefault(slog.New(handler))
	}
}

// ExpectedToken is one entry of a TokenizerTestCase's expected token
// sequence. Text is the materialized value for scalar kinds (symbols,
// strings) and the raw source slice for everything else; it is left empty
// for kinds where the text carries no extra information beyond Kind itself
// (punctuation, EOF).
type ExpectedToken struct {
	Kind string
	Text string `yaml:"text,omitempty"`
}

// TokenizerTestCase is the YAML fixture shape loaded by
// ReadTokenizerTests: an Ion text input, either its expected token sequence
// or an expected lexical error code, never both. Error names one of the
// ErrorCode constants (e.g. "BadToken"); fixtures assert the failure
// category, not the full formatted message, since the message embeds
// position information that's tedious to hand-compute in a fixture file.
type TokenizerTestCase struct {
	Input  string
	Tokens []ExpectedToken `yaml:"tokens,omitempty"`
	Error  string          `yaml:"error,omitempty"`
}

// ReadTokenizerTests loads every YAML fixture file matching pattern into a
// name-keyed map of test cases, mirroring the teacher's glob-and-decode
// fixture loader. Unknown fields are rejected so a typo in a fixture file
// fails loudly instead of silently testing nothing.
func ReadTokenizerTests(pattern string) (map[string]TokenizerTestCase, error) {
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}

	ret := map[string]TokenizerTestCase{}
	fileOf := map[string]string{}

	for _, file := range files {
		var cases map[string]*TokenizerTestCase

		buf, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}

		dec := yaml.NewDecoder(bytes.NewReader(buf), yaml.DisallowUnknownField())
		if err := dec.Decode(&cases); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}

		for name, tc := range cases {
			if existing, ok := fileOf[name]; ok {
				return nil, fmt.Errorf("duplicate test case name '%s': defined in both '%s' and '%s'", name, existing, file)
			}
			fileOf[name] = file
			ret[name] = *tc
		}
	}

	return ret, nil
}

// RunTokenizerTest drives tkn over the test case's Input and asserts either
// the expected token sequence (kind plus materialized text) or the expected
// lexical error, whichever the fixture specifies.
func RunTokenizerTest(t *testing.T, tc TokenizerTestCase) {
	t.Helper()

	tkn := ionlex.NewStringTokenizer(tc.Input)
	defer tkn.Close()

	var got []ExpectedToken
	for {
		kind, err := tkn.CurrentToken()
		if err != nil {
			if tc.Error == "" {
				t.Fatalf("unexpected lexical error: %v", err)
			}
			lexErr, ok := err.(*ionlex.LexError)
			if !ok {
				t.Fatalf("expected a *ionlex.LexError, got %T: %v", err, err)
			}
			assert.Equal(t, tc.Error, lexErr.Code.String())
			return
		}

		text := ""
		switch kind {
		case ionlex.SYMBOL_BASIC, ionlex.SYMBOL_QUOTED, ionlex.SYMBOL_OPERATOR,
			ionlex.STRING_UTF8, ionlex.STRING_UTF8_LONG, ionlex.STRING_CLOB, ionlex.STRING_CLOB_LONG:
			text, err = tkn.ValueAsString()
			if err != nil {
				if lexErr, ok := err.(*ionlex.LexError); ok && tc.Error != "" {
					assert.Equal(t, tc.Error, lexErr.Code.String())
					return
				}
				t.Fatalf("failed to materialize token: %v", err)
			}
		case ionlex.INT, ionlex.HEX, ionlex.DECIMAL, ionlex.FLOAT, ionlex.TIMESTAMP, ionlex.BLOB:
			start, _ := tkn.ValueStart()
			end, _ := tkn.ValueEnd()
			raw, err := tkn.ValueAsStringRange(start, end)
			if err != nil {
				t.Fatalf("failed to materialize token: %v", err)
			}
			text = raw
		}

		got = append(got, ExpectedToken{Kind: kind.String(), Text: text})

		if kind == ionlex.EOF {
			break
		}
		if err := tkn.ConsumeToken(); err != nil {
			t.Fatalf("failed to consume token: %v", err)
		}
	}

	if tc.Error != "" {
		t.Fatalf("expected lexical error %q, but scanning succeeded", tc.Error)
	}
	assert.Equal(t, tc.Tokens, got)
}
