// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides operator login and bearer token utilities.

# Credentials

There is a single operator account configured by access key and password:

	err := auth.CheckCredentials(key, password, cfg.AdminAccessKey, cfg.AdminPassword)

Both values are compared in constant time.

# Bearer Tokens

Tokens are stateless and HMAC-SHA256 signed with the configured secret:

	token, expires, err := auth.IssueToken(accessKey, secret, now, 12*time.Hour)
	subject, err := auth.ValidateToken(token, secret, now)

The token is base64url(subject|expiry-unix) + "." + base64url(signature).
Nothing is stored server-side, so rotating the secret revokes every token.
The caller supplies now; this package never reads the clock itself.
*/
package auth
