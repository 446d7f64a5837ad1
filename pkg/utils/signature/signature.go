package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/m-mizutani/gittales/pkg/domain/types"
)

const prefix = "sha256="

// Sign returns the X-Hub-Signature-256 header value of body
func Sign(body []byte, secret types.WebhookSecret) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return prefix + hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether provided is the signature of the raw body with
// secret. The whole header value is compared in constant time, so a header in
// another letter case or without the prefix does not match. An empty secret
// never matches.
func Verify(body []byte, provided string, secret types.WebhookSecret) bool {
	if secret == "" || provided == "" {
		return false
	}
	return hmac.Equal([]byte(Sign(body, secret)), []byte(provided))
}
