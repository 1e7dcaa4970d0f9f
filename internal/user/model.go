package user

import "errors"

var (
	ErrNotFound        = errors.New("user not found")
	ErrEmailTaken      = errors.New("email is already registered")
	ErrInvalidPassword = errors.New("invalid password")
)

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	BirthDate    string `json:"birthDate"`
	LanguageID   int    `json:"languageId"`
	StatusID     int    `json:"statusId"`
}

type RegisterRequest struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	BirthDate  string `json:"birthDate"`
	LanguageID int    `json:"languageId"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateRequest struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	BirthDate  string `json:"birthDate"`
	LanguageID int    `json:"languageId"`
	StatusID   int    `json:"statusId"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// Summary is the admin listing row: public fields plus language name.
type Summary struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Language string `json:"language"`
}

// Detail is the profile view with lookup names resolved.
type Detail struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	BirthDate string `json:"birthDate"`
	Language  string `json:"language"`
	Status    string `json:"status"`
}
