// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("invalid access key or password")
	ErrInvalidToken       = errors.New("invalid token format")
	ErrExpiredToken       = errors.New("token expired")
	ErrMissingSecret      = errors.New("token secret is empty")
)

// CheckCredentials compares the submitted access key and password with the
// configured ones in constant time.
func CheckCredentials(accessKey, password, wantKey, wantPassword string) error {
	keyOK := hmac.Equal(digest(accessKey), digest(wantKey))
	passOK := hmac.Equal(digest(password), digest(wantPassword))
	if !keyOK || !passOK || wantKey == "" || wantPassword == "" {
		return ErrInvalidCredentials
	}
	return nil
}

// digest hides length differences from hmac.Equal.
func digest(s string) []byte {
	sum := sha256.Sum256([]byte(s))
	return sum[:]
}

// IssueToken creates a signed bearer token for subject that expires ttl
// after now. Tokens are stateless: the signature and expiry are all that is
// checked.
func IssueToken(subject, secret string, now time.Time, ttl time.Duration) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, ErrMissingSecret
	}
	expires := now.Add(ttl).Truncate(time.Second)
	payload := subject + "|" + strconv.FormatInt(expires.Unix(), 10)

	token := base64.RawURLEncoding.EncodeToString([]byte(payload)) + "." + sign(payload, secret)
	return token, expires, nil
}

// ValidateToken checks the signature and expiry and returns the subject.
func ValidateToken(token, secret string, now time.Time) (string, error) {
	if secret == "" {
		return "", ErrMissingSecret
	}

	encoded, sig, ok := strings.Cut(token, ".")
	if !ok || encoded == "" || sig == "" {
		return "", ErrInvalidToken
	}
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrInvalidToken
	}
	payload := string(raw)

	if !hmac.Equal([]byte(sig), []byte(sign(payload, secret))) {
		return "", ErrInvalidToken
	}

	i := strings.LastIndexByte(payload, '|')
	if i < 0 {
		return "", ErrInvalidToken
	}
	expUnix, err := strconv.ParseInt(payload[i+1:], 10, 64)
	if err != nil {
		return "", ErrInvalidToken
	}
	if !now.Before(time.Unix(expUnix, 0)) {
		return "", ErrExpiredToken
	}

	return payload[:i], nil
}

// sign returns the URL-safe HMAC-SHA256 of payload.
func sign(payload, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}
