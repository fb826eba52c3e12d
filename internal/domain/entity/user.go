package entity

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MaxUsernameLength is the longest accepted username, in characters
const MaxUsernameLength = 9

var (
	ErrEmptyUsername    = errors.New("you MUST have name")
	ErrUsernameTooLong  = errors.New("username must be less than 10 characters")
	ErrReservedUsername = errors.New("that name is already taken")
)

// reservedName cannot be used as a username in any letter case
const reservedName = "death"

// User is the persisted player profile
type User struct {
	Username string `yaml:"username"`
	Score    int    `yaml:"score"`
}

// ValidateUsername trims name and checks it against the naming rules.
// It returns the trimmed name on success.
func ValidateUsername(name string) (string, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return "", ErrEmptyUsername
	case utf8.RuneCountInString(name) > MaxUsernameLength:
		return "", ErrUsernameTooLong
	case strings.EqualFold(name, reservedName):
		return "", ErrReservedUsername
	}
	return name, nil
}
