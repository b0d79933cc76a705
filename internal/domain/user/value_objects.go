package user

import (
	"errors"
	"net/mail"
	"strings"
)

var (
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters")
	ErrEmptyFullName   = errors.New("full name cannot be empty")
)

const MinPasswordLength = 8

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	trimmed := strings.TrimSpace(strings.ToLower(s))
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: trimmed}, nil
}

func (e Email) String() string { return e.value }

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < MinPasswordLength {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string { return p.value }

type Credentials struct {
	email    Email
	password Password
}

func NewCredentials(email, password string) (Credentials, error) {
	e, err := NewEmail(email)
	if err != nil {
		return Credentials{}, err
	}
	p, err := NewPassword(password)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{email: e, password: p}, nil
}

func (c Credentials) Email() Email       { return c.email }
func (c Credentials) Password() Password { return c.password }

type FullName struct {
	value string
}

func NewFullName(s string) (FullName, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return FullName{}, ErrEmptyFullName
	}
	return FullName{value: trimmed}, nil
}

func (n FullName) String() string { return n.value }
