package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validInput() Input {
	return Input{
		Username:   "maria",
		Email:      "maria@example.com",
		Password:   "Secret1!",
		BirthDate:  "1995-06-01",
		LanguageID: 1,
	}
}

func TestValidateAcceptsValidInput(t *testing.T) {
	assert.Empty(t, Validate(validInput(), true, true))
}

func TestValidateFieldRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Input)
		message string
	}{
		{"username too short", func(in *Input) { in.Username = "ab" }, msgUsername},
		{"username too long", func(in *Input) { in.Username = "abcdefghijklmnopqrstuvwxyzabcde" }, msgUsername},
		{"email without at sign", func(in *Input) { in.Email = "maria.example.com" }, msgEmail},
		{"email without domain dot", func(in *Input) { in.Email = "maria@example" }, msgEmail},
		{"password too short", func(in *Input) { in.Password = "Ab1!" }, msgPassword},
		{"password without digit", func(in *Input) { in.Password = "Abcdefg!" }, msgPassword},
		{"password without special", func(in *Input) { in.Password = "Abcdefg1" }, msgPassword},
		{"password without letter", func(in *Input) { in.Password = "12345678!" }, msgPassword},
		{"birth date unparseable", func(in *Input) { in.BirthDate = "not-a-date" }, msgBirthDate},
		{"user younger than three", func(in *Input) { in.BirthDate = "2025-01-01" }, msgBirthDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			errs := Validate(in, true, true)
			assert.Equal(t, []string{tt.message}, errs)
		})
	}
}

func TestValidateUnknownLanguage(t *testing.T) {
	errs := Validate(validInput(), false, true)
	assert.Equal(t, []string{msgLanguage}, errs)
}

func TestValidateMissingPasswordOnRegistration(t *testing.T) {
	in := validInput()
	in.Password = ""
	errs := Validate(in, true, true)
	assert.Equal(t, []string{msgPassword}, errs)
}

func TestValidateMissingPasswordOnUpdate(t *testing.T) {
	in := validInput()
	in.Password = ""
	assert.Empty(t, Validate(in, true, false))
}

func TestValidateAccumulatesAllViolations(t *testing.T) {
	in := Input{Username: "ab", Email: "bad", Password: "short", BirthDate: "nope"}
	errs := Validate(in, false, true)
	assert.Equal(t, []string{msgUsername, msgEmail, msgPassword, msgLanguage, msgBirthDate}, errs)
}
