// Package auth implements credential verification for the mini-app backend:
// the Telegram WebApp initData check and the bearer session token check.
//
// Both verifiers are pure functions over an injected bot token. They never
// return errors: every failure path — malformed input, signature mismatch,
// missing configuration — collapses to the single "not verified" signal so
// that callers cannot distinguish why verification failed.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/url"
	"sort"
	"strings"

	"github.com/konstrukt-app/konstrukt-be/models"
)

// initDataSecretSalt is the fixed HMAC key Telegram prescribes for deriving
// the per-bot secret from the bot token.
const initDataSecretSalt = "WebAppData"

// VerifyInitData reports whether initData was signed by Telegram for the bot
// owning botToken.
//
// The check follows the WebApp validation procedure: all pairs except "hash"
// are sorted by key and joined as "key=value" lines, the secret key is
// HMAC-SHA256(key="WebAppData", message=botToken), and the hex-encoded
// HMAC-SHA256 of the data-check string under that key must equal the "hash"
// pair. Comparison is constant-time.
//
// An empty payload, an empty bot token, an unparsable query string or a
// missing hash all yield false. Payload freshness (auth_date) is not checked.
func VerifyInitData(initData, botToken string) bool {
	if initData == "" || botToken == "" {
		return false
	}

	pairs, err := parseInitData(initData)
	if err != nil {
		return false
	}

	suppliedHash, ok := pairs["hash"]
	if !ok || suppliedHash == "" {
		return false
	}
	delete(pairs, "hash")

	keys := make([]string, 0, len(pairs))
	for key := range pairs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, key+"="+pairs[key])
	}
	dataCheckString := strings.Join(lines, "\n")

	secretKey := hmacSHA256([]byte(initDataSecretSalt), []byte(botToken))
	calculatedHash := hex.EncodeToString(hmacSHA256(secretKey, []byte(dataCheckString)))

	return hmac.Equal([]byte(calculatedHash), []byte(suppliedHash))
}

// ExtractTelegramUser decodes the "user" pair of an initData payload.
//
// The boolean result is false when the pair is absent, is not valid JSON or
// carries no user id. Callers must verify the payload first: the extractor
// itself trusts whatever it is given.
func ExtractTelegramUser(initData string) (models.TelegramUser, bool) {
	pairs, err := parseInitData(initData)
	if err != nil {
		return models.TelegramUser{}, false
	}

	rawUser, ok := pairs["user"]
	if !ok || rawUser == "" {
		return models.TelegramUser{}, false
	}

	var user models.TelegramUser
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		return models.TelegramUser{}, false
	}
	if user.ID == 0 {
		return models.TelegramUser{}, false
	}

	return user, true
}

// parseInitData parses the query-string payload into a key → first-value
// mapping. URL-decoding of values is handled by url.ParseQuery.
func parseInitData(initData string) (map[string]string, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, err
	}

	pairs := make(map[string]string, len(values))
	for key, value := range values {
		if len(value) > 0 {
			pairs[key] = value[0]
		}
	}

	return pairs, nil
}

func hmacSHA256(key, message []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(message)
	return mac.Sum(nil)
}
