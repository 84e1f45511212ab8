// Package testutil holds assertion helpers shared by the package tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// AssertEqual fails with a cmp diff when got and want differ.
func AssertEqual(t testing.TB, got, want any, opts ...cmp.Option) {
	t.Helper()
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func AssertNoError(t testing.TB, err error, context ...any) {
	t.Helper()
	if err != nil {
		t.Fatalf("%sunexpected error: %v", prefix(context), err)
	}
}

func AssertError(t testing.TB, err error, context ...any) {
	t.Helper()
	if err == nil {
		t.Errorf("%sexpected error but got nil", prefix(context))
	}
}

func AssertContains(t testing.TB, got, substr string) {
	t.Helper()
	if !strings.Contains(got, substr) {
		t.Errorf("%q does not contain %q", got, substr)
	}
}

func prefix(context []any) string {
	if len(context) == 0 {
		return ""
	}
	if format, ok := context[0].(string); ok {
		return fmt.Sprintf(format, context[1:]...) + ": "
	}
	return fmt.Sprint(context...) + ": "
}
