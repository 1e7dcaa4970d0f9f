package user

import (
	"regexp"
	"strings"
	"time"
)

const (
	msgUsername  = "Username must be between 3 and 30 characters."
	msgEmail     = "Invalid email format."
	msgPassword  = "Password must be at least 8 characters long, include one letter, one number, and one special character."
	msgLanguage  = "Selected language does not exist."
	msgBirthDate = "Invalid birth date or user must be at least 3 years old."
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const passwordSpecials = "@$!%*?&"

// Input bundles the fields shared by registration and profile update.
type Input struct {
	Username   string
	Email      string
	Password   string
	BirthDate  string
	LanguageID int
}

// Validate collects every violated rule instead of failing fast. The
// password is checked whenever one is supplied; requirePassword makes an
// absent password a violation too (registration).
func Validate(in Input, languageExists, requirePassword bool) []string {
	var errs []string

	if len(in.Username) < 3 || len(in.Username) > 30 {
		errs = append(errs, msgUsername)
	}
	if !emailRegex.MatchString(in.Email) {
		errs = append(errs, msgEmail)
	}
	if (in.Password != "" || requirePassword) && !validPassword(in.Password) {
		errs = append(errs, msgPassword)
	}
	if !languageExists {
		errs = append(errs, msgLanguage)
	}
	if !validBirthDate(in.BirthDate) {
		errs = append(errs, msgBirthDate)
	}

	return errs
}

func validPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasLetter, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z':
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, r):
			hasSpecial = true
		default:
			return false
		}
	}
	return hasLetter && hasDigit && hasSpecial
}

func validBirthDate(birthDate string) bool {
	bd, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return false
	}
	return time.Now().Year()-bd.Year() >= 3
}
