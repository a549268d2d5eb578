package http

import (
	"net/http"
	"strings"

	"github.com/konstrukt-app/konstrukt-be/models"
)

// credentialsFromRequest assembles the raw credentials carried by a request.
//
// The Mini App sends Telegram init data either as an `initData` field inside
// the JSON body (already decoded by the calling handler and passed in via
// bodyInitData) or as an `initData` query parameter. A previously issued
// session token travels in the standard "Authorization: Bearer" header.
// Either credential may be absent; verification is the service layer's job.
func credentialsFromRequest(r *http.Request, bodyInitData string) models.CredentialBundle {
	creds := models.CredentialBundle{InitData: bodyInitData}
	if creds.InitData == "" {
		creds.InitData = r.URL.Query().Get("initData")
	}

	if token, err := getTokenFromAuthHeader(r.Header.Get("Authorization")); err == nil {
		creds.BearerToken = token
	}

	return creds
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrEmptyAuthorizationHeader] — if the header is absent or blank.
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
