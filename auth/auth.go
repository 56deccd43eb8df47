// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/danielhkuo/leadpage/cliparse"
)

// Realm sent in the WWW-Authenticate challenge
const Realm = "Leads"

var (
	ErrInvalidSignature = errors.New("invalid signature")
	ErrInvalidToken     = errors.New("invalid token format")
)

// AdminSessions reports whether the session behind a request was unlocked
// with the admin PIN
type AdminSessions interface {
	IsAdmin(r *http.Request) bool
}

// Gate decides whether a request carries admin capability
type Gate struct {
	user     string
	pass     string
	sessions AdminSessions
}

func NewGate(cfg cliparse.Config, sessions AdminSessions) *Gate {
	return &Gate{
		user:     cfg.BasicAuthUser,
		pass:     cfg.BasicAuthPass,
		sessions: sessions,
	}
}

// IsAdmin is true when the session holds the PIN flag or the request has
// matching Basic credentials
func (g *Gate) IsAdmin(r *http.Request) bool {
	if g.sessions != nil && g.sessions.IsAdmin(r) {
		return true
	}
	return g.BasicOK(r)
}

// BasicOK checks HTTP Basic credentials against the configured pair
func (g *Gate) BasicOK(r *http.Request) bool {
	user, pass, ok := r.BasicAuth()
	if !ok {
		return false
	}
	// Evaluate both so timing does not reveal which one failed
	userOK := constantEqual(user, g.user)
	passOK := constantEqual(pass, g.pass)
	return userOK && passOK
}

// Challenge returns the WWW-Authenticate header value
func Challenge() string {
	return `Basic realm="` + Realm + `"`
}

// CheckPIN reports whether the submitted PIN matches. Blank never matches.
func CheckPIN(submitted, configured string) bool {
	submitted = strings.TrimSpace(submitted)
	if submitted == "" || configured == "" {
		return false
	}
	return constantEqual(submitted, configured)
}

// Sign appends an HMAC-SHA256 signature to value: "<value>.<sig>"
// The signature is URL-safe base64 without padding.
func Sign(value, secret string) string {
	return value + "." + signature(value, secret)
}

// Verify checks a value produced by Sign and returns the original value
func Verify(signed, secret string) (string, error) {
	i := strings.LastIndexByte(signed, '.')
	if i <= 0 || i == len(signed)-1 {
		return "", ErrInvalidToken
	}
	value, sig := signed[:i], signed[i+1:]

	expected := signature(value, secret)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return "", ErrInvalidSignature
	}
	return value, nil
}

func signature(value, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(value))
	return strings.TrimRight(base64.URLEncoding.EncodeToString(h.Sum(nil)), "=")
}

func constantEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
