package testutil

import (
	"os"
	"strings"
	"testing"
)

// EnvOrSkip returns the values of keys in the same order. The test is skipped
// when any of them is unset, naming every missing key at once.
func EnvOrSkip(t testing.TB, keys ...string) []string {
	t.Helper()

	values := make([]string, len(keys))
	var missing []string
	for i, key := range keys {
		values[i] = os.Getenv(key)
		if values[i] == "" {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		t.Skipf("%s not set, skipping test", strings.Join(missing, ", "))
	}
	return values
}

func GetEnvOrSkip(t testing.TB, key string) string {
	t.Helper()
	return EnvOrSkip(t, key)[0]
}
