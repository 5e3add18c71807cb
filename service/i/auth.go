package i

import (
	dmn "github.com/maxfahl/Labyrinths/domain"
)

// Authenticator registers accounts and exchanges credentials for tokens.
type Authenticator interface {
	Register(username, password string) error
	SignIn(username, password string) (*dmn.User, string, error)
}
