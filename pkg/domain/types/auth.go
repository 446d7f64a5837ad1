package types

import (
	"log/slog"
	"strconv"
)

type (
	UserID    int64
	JWTSecret string
	TokenKind string
)

const (
	AccessToken  TokenKind = "access"
	RefreshToken TokenKind = "refresh"
)

func (x UserID) String() string { return strconv.FormatInt(int64(x), 10) }

func (x JWTSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x JWTSecret) String() string {
	return "***********"
}
