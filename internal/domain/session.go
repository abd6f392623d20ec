// Package domain contains entity without logic, just meta-data
package domain

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	ErrNameRequired = errors.New("Username and room are required!")
	ErrNameTaken    = errors.New("Username is in use!")
	ErrProfanity    = errors.New("Profanity is not allowed")
)

// ConnID is the transport-assigned identity of a single live connection.
type ConnID string

// Avatar is an opaque reference carried through on join, never validated.
type Avatar struct {
	URL      string `json:"url,omitempty"`
	Filename string `json:"filename,omitempty"`
}

// Session is one live connection's membership in a room. The registry owns
// all Session records; everything outside it works with value copies.
type Session struct {
	ConnID   ConnID
	Username string
	Room     string
	IsActive bool
	Avatar   *Avatar
}

// Normalize is the identity form of usernames and room names.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Display upper-cases the first character only; the remainder stays as
// stored, so Display("mcKenzie") == "McKenzie".
func Display(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
