package auth

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Legacy bearer tokens are plain strings of the form
//
//	hub_token_<unix millis>_<email>_<nonce>
//
// There is no signature, expiry, or server-side state: validity is purely
// structural and identity extraction is string parsing. This is the
// compatibility contract inherited from the original portal; signed session
// tokens (jwt.go) exist for clients that opt in.
const (
	tokenPrefix    = "hub_token_"
	tokenDelimiter = "_"
	tokenMinLength = 20

	// Position of the email segment after splitting on the delimiter:
	// ["hub", "token", millis, email, nonce].
	tokenEmailIndex = 3
	tokenMinParts   = 4

	tokenNonceLength = 8
)

// IssueToken mints a fresh legacy token for the given email. Each call
// produces a new value; uniqueness comes from the millisecond timestamp plus
// a random nonce.
func IssueToken(email string) string {
	return issueTokenAt(email, time.Now(), uuid.NewString()[:tokenNonceLength])
}

func issueTokenAt(email string, now time.Time, nonce string) string {
	return tokenPrefix +
		strconv.FormatInt(now.UnixMilli(), 10) + tokenDelimiter +
		email + tokenDelimiter +
		nonce
}

// ValidateToken is a cheap structural predicate: prefix plus minimum length.
// It does not check the nonce, timestamp freshness, or that the encoded email
// resolves to an account.
func ValidateToken(token string) bool {
	return token != "" && strings.HasPrefix(token, tokenPrefix) && len(token) > tokenMinLength
}

// ExtractIdentity returns the email encoded in the token, or false when the
// token fails validation or has too few segments.
func ExtractIdentity(token string) (string, bool) {
	if !ValidateToken(token) {
		return "", false
	}
	parts := strings.Split(token, tokenDelimiter)
	if len(parts) < tokenMinParts {
		return "", false
	}
	return parts[tokenEmailIndex], true
}

// StripBearer removes a literal "Bearer " scheme from a raw Authorization
// header value. Both bare tokens and prefixed values are tolerated.
func StripBearer(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) >= len(bearerScheme) && strings.EqualFold(raw[:len(bearerScheme)], bearerScheme) {
		return strings.TrimSpace(raw[len(bearerScheme):])
	}
	return raw
}

const bearerScheme = "Bearer "
