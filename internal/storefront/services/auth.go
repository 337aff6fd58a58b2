package services

import "net/http"

type AuthEngine interface {
	SetApiKey(req *http.Request)
}

// TokenAuth authenticates admin API calls with a private access token.
type TokenAuth struct {
	token string
}

func NewTokenAuth(token string) *TokenAuth {
	return &TokenAuth{token: token}
}

func (a *TokenAuth) SetApiKey(req *http.Request) {
	req.Header.Set("X-Shopify-Access-Token", a.token)
}
