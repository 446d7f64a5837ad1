package jwt

import (
	"context"
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/m-mizutani/gittales/pkg/domain/interfaces"
	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gittales/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const (
	DefaultAccessTTL  = 15 * time.Minute
	DefaultRefreshTTL = 7 * 24 * time.Hour
)

type claims struct {
	jwtlib.RegisteredClaims
	UserID types.UserID    `json:"userId"`
	Email  string          `json:"email"`
	Kind   types.TokenKind `json:"kind"`
}

type keyConfig struct {
	secret []byte
	ttl    time.Duration
}

// Signer signs and verifies HS256 tokens. Access and refresh tokens use
// independent secrets and lifetimes.
type Signer struct {
	keys map[types.TokenKind]keyConfig
}

var _ interfaces.TokenSigner = (*Signer)(nil)

type Option func(*Signer)

func WithAccessTTL(ttl time.Duration) Option {
	return func(x *Signer) {
		k := x.keys[types.AccessToken]
		k.ttl = ttl
		x.keys[types.AccessToken] = k
	}
}

func WithRefreshTTL(ttl time.Duration) Option {
	return func(x *Signer) {
		k := x.keys[types.RefreshToken]
		k.ttl = ttl
		x.keys[types.RefreshToken] = k
	}
}

func New(accessSecret, refreshSecret types.JWTSecret, options ...Option) (*Signer, error) {
	if accessSecret == "" || refreshSecret == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "JWT secrets are required")
	}
	if accessSecret == refreshSecret {
		return nil, goerr.Wrap(types.ErrInvalidOption, "access and refresh token secrets must differ")
	}

	x := &Signer{
		keys: map[types.TokenKind]keyConfig{
			types.AccessToken:  {secret: []byte(accessSecret), ttl: DefaultAccessTTL},
			types.RefreshToken: {secret: []byte(refreshSecret), ttl: DefaultRefreshTTL},
		},
	}
	for _, opt := range options {
		opt(x)
	}

	for kind, k := range x.keys {
		if k.ttl <= 0 {
			return nil, goerr.Wrap(types.ErrInvalidOption, "token TTL must be positive",
				goerr.V("kind", kind),
				goerr.V("ttl", k.ttl),
			)
		}
	}

	return x, nil
}

func (x *Signer) key(kind types.TokenKind) (keyConfig, error) {
	k, ok := x.keys[kind]
	if !ok {
		return keyConfig{}, goerr.Wrap(types.ErrInvalidOption, "unknown token kind", goerr.V("kind", kind))
	}
	return k, nil
}

// Sign issues a token for payload. Every token carries a random jti so that
// two tokens signed within the same second still differ.
func (x *Signer) Sign(ctx context.Context, kind types.TokenKind, payload model.TokenPayload) (string, error) {
	k, err := x.key(kind)
	if err != nil {
		return "", err
	}

	now := logging.CtxTime(ctx)
	c := claims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   payload.UserID.String(),
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(k.ttl)),
		},
		UserID: payload.UserID,
		Email:  payload.Email,
		Kind:   kind,
	}

	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c).SignedString(k.secret)
	if err != nil {
		return "", goerr.Wrap(err, "failed to sign token", goerr.V("kind", kind))
	}
	return signed, nil
}

// Verify checks signature and expiry of token. Errors are classified as
// types.ErrTokenExpired, types.ErrTokenInvalid or
// types.ErrTokenVerificationFailed.
func (x *Signer) Verify(ctx context.Context, kind types.TokenKind, token string) (*model.TokenPayload, error) {
	k, err := x.key(kind)
	if err != nil {
		return nil, err
	}

	parser := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithExpirationRequired(),
		jwtlib.WithTimeFunc(func() time.Time { return logging.CtxTime(ctx) }),
	)

	var c claims
	if _, err := parser.ParseWithClaims(token, &c, func(*jwtlib.Token) (any, error) {
		return k.secret, nil
	}); err != nil {
		return nil, goerr.Wrap(classify(err), "failed to verify token", goerr.V("kind", kind))
	}

	if c.Kind != kind || c.UserID == 0 {
		return nil, goerr.Wrap(types.ErrTokenInvalid, "unexpected token claims",
			goerr.V("kind", kind),
			goerr.V("claimed_kind", c.Kind),
		)
	}

	return &model.TokenPayload{UserID: c.UserID, Email: c.Email}, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwtlib.ErrTokenExpired):
		return fmt.Errorf("%w: %w", types.ErrTokenExpired, err)

	case errors.Is(err, jwtlib.ErrTokenMalformed),
		errors.Is(err, jwtlib.ErrTokenSignatureInvalid),
		errors.Is(err, jwtlib.ErrTokenUnverifiable),
		errors.Is(err, jwtlib.ErrTokenNotValidYet),
		errors.Is(err, jwtlib.ErrTokenRequiredClaimMissing),
		errors.Is(err, jwtlib.ErrTokenInvalidClaims):
		return fmt.Errorf("%w: %w", types.ErrTokenInvalid, err)
	}

	return fmt.Errorf("%w: %w", types.ErrTokenVerificationFailed, err)
}
