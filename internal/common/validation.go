package common

import (
	"regexp"
	"strings"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)
	if len(username) < 3 || len(username) > 20 {
		return &ValidationError{Field: "username", Reason: "must be between 3 and 20 characters"}
	}

	if !usernameRegex.MatchString(username) {
		return &ValidationError{Field: "username", Reason: "can only contain letters, numbers, and underscores"}
	}

	return nil
}

func ValidatePassword(password string) error {
	if len(password) < 6 {
		return &ValidationError{Field: "password", Reason: "must be at least 6 characters long"}
	}

	if len(password) > 100 {
		return &ValidationError{Field: "password", Reason: "is too long"}
	}

	return nil
}

func ValidateEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(email) {
		return &ValidationError{Field: "email", Reason: "invalid format"}
	}

	return nil
}

func ValidatePrivacyMode(mode PrivacyMode) error {
	switch mode {
	case PrivacyPublic, PrivacyFollowing, PrivacySelectedUsers, PrivacyPrivate:
		return nil
	default:
		return &ValidationError{Field: "privacy_setting", Reason: "must be public, following, selected_users or private"}
	}
}
