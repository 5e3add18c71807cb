package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	dmn "github.com/maxfahl/Labyrinths/domain"
	"github.com/maxfahl/Labyrinths/service/i"
)

const tokenLifetime = 24 * time.Hour

type Auth struct {
	userRepo  i.UserRepo
	tokenizer i.Tokenizer
	logger    i.Logger
}

func NewAuthService(userRepo i.UserRepo, tokenizer i.Tokenizer, logger i.Logger) (*Auth, error) {
	if userRepo == nil || tokenizer == nil || logger == nil {
		return nil, errors.New("auth service requires a user repository, a tokenizer and a logger")
	}
	return &Auth{
		userRepo:  userRepo,
		tokenizer: tokenizer,
		logger:    logger,
	}, nil
}

func (a *Auth) Register(username, password string) error {
	userConfig := dmn.UserConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	}

	user, err := dmn.NewUser(userConfig)
	if err != nil {
		return err
	}

	if _, err := a.userRepo.ByUsername(username); err == nil {
		return dmn.ErrUsernameConflict
	} else if !errors.Is(err, dmn.ErrUserNotFound) {
		return err
	}

	if err := a.userRepo.Save(user); err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("Registered user %s", user.Username))
	return nil
}

func (a *Auth) SignIn(username, password string) (*dmn.User, string, error) {
	user, err := a.userRepo.ByUsername(username)
	if err != nil {
		return nil, "", dmn.ErrInvalidCredentials
	}

	if !user.VerifyPassword(password) {
		return nil, "", dmn.ErrInvalidCredentials
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		"userID":   user.ID.String(),
		"username": user.Username,
	}, tokenLifetime)
	if err != nil {
		a.logger.Error(fmt.Sprintf("Generating token for %s: %v", user.Username, err))
		return nil, "", err
	}

	return user, token, nil
}
