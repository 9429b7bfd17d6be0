package ionlex_test

import (
	"testing"

	"github.com/ion-text/iontext/testutil"
	"github.com/ion-text/iontext/util"
)

func TestScalars(t *testing.T) {
	tests, err := testutil.ReadTokenizerTests("testdata/*.yml")
	if err != nil {
		t.Fatal(err)
	}
	if len(tests) == 0 {
		t.Fatal("no fixtures loaded from testdata/*.yml")
	}

	// Canonical order keeps subtest output (and -run ordering) stable across
	// runs instead of following Go's randomized map iteration.
	for name, tc := range util.CanonicalMapIter(tests) {
		t.Run(name, func(t *testing.T) {
			testutil.RunTokenizerTest(t, tc)
		})
	}
}
