package signature_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gittales/pkg/utils/signature"
	"github.com/m-mizutani/gt"
)

func TestVerify(t *testing.T) {
	body := []byte(`{"ref":"refs/heads/main"}`)
	secret := types.WebhookSecret("It's a Secret to Everybody")

	t.Run("GitHub documented example", func(t *testing.T) {
		// https://docs.github.com/en/webhooks/using-webhooks/validating-webhook-deliveries#testing-the-webhook-payload-validation
		gt.True(t, signature.Verify(
			[]byte("Hello, World!"),
			"sha256=757107ea0eb2509fc211221cce984b8a37570b6d7586c22c46f4379c8b043e17",
			secret,
		))
	})

	testCases := map[string]struct {
		provided string
		secret   types.WebhookSecret
		expected bool
	}{
		"valid signature": {
			provided: signature.Sign(body, secret),
			secret:   secret,
			expected: true,
		},
		"empty signature": {
			provided: "",
			secret:   secret,
			expected: false,
		},
		"missing prefix": {
			provided: signature.Sign(body, secret)[len("sha256="):],
			secret:   secret,
			expected: false,
		},
		"sha1 signature": {
			provided: "sha1=0123456789abcdef0123456789abcdef01234567",
			secret:   secret,
			expected: false,
		},
		"not hex": {
			provided: "sha256=zzzz",
			secret:   secret,
			expected: false,
		},
		"wrong secret": {
			provided: signature.Sign(body, "other"),
			secret:   secret,
			expected: false,
		},
		"empty secret never matches": {
			provided: signature.Sign(body, ""),
			secret:   "",
			expected: false,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			gt.V(t, signature.Verify(body, tc.provided, tc.secret)).Equal(tc.expected)
		})
	}
}

func TestVerifyProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	genSecret := gen.AlphaString().SuchThat(func(s string) bool { return s != "" })
	genBody := gen.SliceOf(gen.UInt8())

	properties.Property("signature of body is accepted", prop.ForAll(
		func(secret string, body []byte) bool {
			s := types.WebhookSecret(secret)
			return signature.Verify(body, signature.Sign(body, s), s)
		},
		genSecret, genBody,
	))

	properties.Property("single byte mutation of body is rejected", prop.ForAll(
		func(secret string, body []byte, pos int, delta uint8) bool {
			s := types.WebhookSecret(secret)
			sig := signature.Sign(body, s)

			mutated := append([]byte{}, body...)
			mutated[pos%len(mutated)] += delta
			return !signature.Verify(mutated, sig, s)
		},
		genSecret,
		genBody.SuchThat(func(b []byte) bool { return len(b) > 0 }),
		gen.IntRange(0, 1<<16),
		gen.UInt8Range(1, 255),
	))

	properties.Property("single byte mutation of signature is rejected", prop.ForAll(
		func(secret string, body []byte, pos int, delta uint8) bool {
			s := types.WebhookSecret(secret)
			sig := []byte(signature.Sign(body, s))

			sig[pos%len(sig)] += delta
			return !signature.Verify(body, string(sig), s)
		},
		genSecret, genBody,
		gen.IntRange(0, 1<<16),
		gen.UInt8Range(1, 255),
	))

	properties.TestingRun(t)
}
