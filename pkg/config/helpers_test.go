package config_test

import (
	"os"
	"testing"
)

// unsetForTest removes variables for the duration of the test. Call t.Setenv
// on the same keys first so the testing package restores them afterwards.
func unsetForTest(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}
}
