package auth

import (
	"crypto/hmac"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"
)

// sessionTokenClaims is the payload subset the verifier inspects. Any other
// claims a token may carry are ignored.
type sessionTokenClaims struct {
	// Sub is the application user id the token was minted for.
	Sub string `json:"sub"`

	// Exp is the optional expiry as unix seconds. Zero means no expiry.
	Exp int64 `json:"exp"`
}

// VerifySessionToken validates a compact bearer session token and returns
// the user id it was minted for, or "" when the token does not verify.
//
// The token must consist of exactly three non-empty dot-separated segments.
// The third segment must equal the unpadded base64url HMAC-SHA256 of
// "header.payload" keyed with botToken (constant-time comparison), the
// payload must decode as base64url JSON, and a present "exp" claim must not
// lie in the past.
//
// All failure modes — wrong shape, bad signature, undecodable payload,
// expiry, missing bot token — collapse to "" so callers observe a single
// unauthenticated signal.
func VerifySessionToken(token, botToken string) string {
	if token == "" || botToken == "" {
		return ""
	}

	segments := strings.Split(token, ".")
	if len(segments) != 3 {
		return ""
	}
	for _, segment := range segments {
		if segment == "" {
			return ""
		}
	}

	signingInput := segments[0] + "." + segments[1]
	expectedSignature := base64.RawURLEncoding.EncodeToString(
		hmacSHA256([]byte(botToken), []byte(signingInput)),
	)
	if !hmac.Equal([]byte(expectedSignature), []byte(segments[2])) {
		return ""
	}

	payloadJSON, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(segments[1], "="))
	if err != nil {
		return ""
	}

	var claims sessionTokenClaims
	if err := json.Unmarshal(payloadJSON, &claims); err != nil {
		return ""
	}

	if claims.Exp != 0 && claims.Exp < time.Now().Unix() {
		return ""
	}

	return claims.Sub
}
