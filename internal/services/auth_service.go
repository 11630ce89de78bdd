package services

import (
	"errors"
	"strings"

	"depotlog/internal/domain"
	"depotlog/internal/repos"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrBadCreds   = errors.New("invalid email or password")
	ErrEmailTaken = errors.New("email already registered")
)

type AuthService struct {
	Accounts *repos.AccountRepo
}

func (s *AuthService) SignIn(sid, email, password string) (*domain.Account, error) {
	a, err := s.Accounts.ByEmail(email)
	if err != nil {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(a.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	if err := s.Accounts.BindSession(sid, a.ID); err != nil {
		return nil, err
	}
	return a, nil
}

// SignUp creates a USER account. An empty display name falls back to the
// part of the email before the @.
func (s *AuthService) SignUp(email, password, name string) (*domain.Account, error) {
	if _, err := s.Accounts.ByEmail(email); err == nil {
		return nil, ErrEmailTaken
	}
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, err
	}
	a := domain.Account{ID: uuid.NewString(), Email: email, Name: name, Hash: string(h), Role: "USER"}
	if err := s.Accounts.Create(a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *AuthService) SignOut(sid string) error {
	return s.Accounts.UnbindSession(sid)
}

func (s *AuthService) CurrentUser(sid string) (*domain.Account, error) {
	return s.Accounts.SessionAccount(sid)
}
