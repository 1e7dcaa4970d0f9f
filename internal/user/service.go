package user

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/lingobeats/song-catalogue/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

// StatusLoggedIn is the default status assigned at registration.
const StatusLoggedIn = 2

type Service struct {
	repo         Repository
	tokens       *auth.TokenManager
	mailer       auth.Mailer
	resetBaseURL string
}

func NewService(repo Repository, tokens *auth.TokenManager, mailer auth.Mailer, resetBaseURL string) *Service {
	return &Service{repo: repo, tokens: tokens, mailer: mailer, resetBaseURL: resetBaseURL}
}

// ValidateUser runs the field checks, resolving language existence
// against the store.
func (s *Service) ValidateUser(in Input, requirePassword bool) ([]string, error) {
	languageExists, err := s.repo.LanguageExists(in.LanguageID)
	if err != nil {
		return nil, err
	}
	return Validate(in, languageExists, requirePassword), nil
}

func (s *Service) Register(req RegisterRequest) error {
	existing, err := s.repo.GetByEmail(req.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u := &User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		BirthDate:    req.BirthDate,
		LanguageID:   req.LanguageID,
		StatusID:     StatusLoggedIn,
	}
	return s.repo.Create(u)
}

// Login checks the credentials and issues a signed token embedding the
// user's identity claims.
func (s *Service) Login(email, password string) (string, error) {
	u, err := s.repo.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidPassword
	}

	return s.tokens.Generate(u.ID, u.Email, u.Username, u.LanguageID, u.StatusID)
}

func (s *Service) ListUsers() ([]Summary, error) {
	return s.repo.List()
}

func (s *Service) GetUser(id int) (*Detail, error) {
	d, err := s.repo.Detail(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrNotFound
	}
	return d, nil
}

func (s *Service) UpdateUser(id int, req UpdateRequest) error {
	taken, err := s.repo.EmailTakenByOther(req.Email, id)
	if err != nil {
		return err
	}
	if taken {
		return ErrEmailTaken
	}

	hash := ""
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		hash = string(hashed)
	}

	updated, err := s.repo.Update(id, req.Username, req.Email, hash, req.BirthDate, req.LanguageID, req.StatusID)
	if err != nil {
		return err
	}
	if !updated {
		return ErrNotFound
	}
	return nil
}

// DeleteUser removes the account row. Favourite rows are intentionally
// left in place (no cascade is defined for them).
func (s *Service) DeleteUser(id int) error {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// ForgotPassword mails a time-limited reset link to a registered address.
func (s *Service) ForgotPassword(email string) error {
	u, err := s.repo.GetByEmail(email)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrNotFound
	}

	token, err := s.tokens.GenerateResetToken(u.Email)
	if err != nil {
		return err
	}
	if s.mailer == nil {
		return errors.New("mail delivery is not configured")
	}

	link := fmt.Sprintf("%s?token=%s", s.resetBaseURL, url.QueryEscape(token))
	return s.mailer.SendResetEmail(u.Email, link)
}

// ResetPassword verifies the reset token and replaces the stored hash.
func (s *Service) ResetPassword(token, password string) error {
	claims, err := s.tokens.ParseResetToken(token)
	if err != nil {
		return auth.ErrInvalidToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	updated, err := s.repo.UpdatePasswordByEmail(claims.Email, string(hash))
	if err != nil {
		return err
	}
	if !updated {
		return ErrNotFound
	}
	return nil
}
