package model

import "github.com/m-mizutani/gittales/pkg/domain/types"

type TokenPayload struct {
	UserID types.UserID `json:"userId"`
	Email  string       `json:"email"`
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthResult struct {
	User   *User
	Tokens *TokenPair
}
