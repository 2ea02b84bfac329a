package utils

import "regexp"

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail does a shape check only; deliverability is not our problem.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidPassword enforces the minimum length accepted at registration.
func IsValidPassword(password string) bool {
	return len(password) >= 6
}
