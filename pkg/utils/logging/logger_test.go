package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gittales/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestConfigure(t *testing.T) {
	t.Run("json format to stdout", func(t *testing.T) {
		gt.NoError(t, logging.Configure("json", "info", "stdout"))
	})

	t.Run("text format with upper case level", func(t *testing.T) {
		gt.NoError(t, logging.Configure("text", "DEBUG", "-"))
	})

	t.Run("invalid format", func(t *testing.T) {
		gt.Error(t, logging.Configure("invalid", "info", "stdout"))
	})

	t.Run("invalid level", func(t *testing.T) {
		gt.Error(t, logging.Configure("json", "trace", "stdout"))
	})

	t.Run("secrets are masked in file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.log")
		gt.NoError(t, logging.Configure("json", "info", path))
		t.Cleanup(func() { _ = logging.Configure("text", "info", "stdout") })

		type credential struct {
			Email        string
			RefreshToken string
		}
		logging.Default().Info("masking",
			slog.Any("secret", types.WebhookSecret("webhook-secret-value")),
			slog.Any("jwt", types.JWTSecret("jwt-secret-value")),
			slog.Any("user", credential{Email: "blue@example.com", RefreshToken: "refresh-token-value"}),
		)

		raw := gt.R1(os.ReadFile(path)).NoError(t)
		gt.False(t, bytes.Contains(raw, []byte("webhook-secret-value")))
		gt.False(t, bytes.Contains(raw, []byte("jwt-secret-value")))
		gt.False(t, bytes.Contains(raw, []byte("refresh-token-value")))
		gt.True(t, bytes.Contains(raw, []byte("blue@example.com")))

		var line map[string]any
		gt.NoError(t, json.Unmarshal(bytes.Split(raw, []byte("\n"))[0], &line))
		gt.V(t, line["msg"]).Equal("masking")
	})
}
