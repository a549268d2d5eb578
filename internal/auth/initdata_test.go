// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBotToken = "123456:ABC-DEF1234ghIkl-zyx57W2v1u123ew11"

// signInitData builds a syntactically valid initData payload signed for the
// given bot token, mirroring what Telegram attaches to a WebApp launch.
func signInitData(t *testing.T, botToken string, params map[string]string) string {
	t.Helper()

	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, key+"="+params[key])
	}

	secretMAC := hmac.New(sha256.New, []byte("WebAppData"))
	secretMAC.Write([]byte(botToken))
	secret := secretMAC.Sum(nil)

	hashMAC := hmac.New(sha256.New, secret)
	hashMAC.Write([]byte(strings.Join(lines, "\n")))
	hash := hex.EncodeToString(hashMAC.Sum(nil))

	values := url.Values{}
	for key, value := range params {
		values.Set(key, value)
	}
	values.Set("hash", hash)

	return values.Encode()
}

func validParams() map[string]string {
	return map[string]string{
		"auth_date": "1700000000",
		"query_id":  "AAH9mZkbAAAAAP2ZmRtRKCHq",
		"user":      `{"id":42,"first_name":"Ivan","last_name":"Petrov","username":"ivanp"}`,
	}
}

func TestVerifyInitData_Valid(t *testing.T) {
	initData := signInitData(t, testBotToken, validParams())

	assert.True(t, VerifyInitData(initData, testBotToken))
}

func TestVerifyInitData_KeyOrderDoesNotMatter(t *testing.T) {
	params := validParams()
	signed := signInitData(t, testBotToken, params)

	// reassemble the pairs in reverse order; the data-check string is
	// built from sorted keys, so verification must still pass
	values, err := url.ParseQuery(signed)
	require.NoError(t, err)

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+"="+url.QueryEscape(values.Get(key)))
	}
	shuffled := strings.Join(parts, "&")

	assert.True(t, VerifyInitData(shuffled, testBotToken))
}

func TestVerifyInitData_TamperedValue(t *testing.T) {
	initData := signInitData(t, testBotToken, validParams())
	tampered := strings.Replace(initData, "1700000000", "1700000001", 1)

	assert.False(t, VerifyInitData(tampered, testBotToken))
}

func TestVerifyInitData_WrongBotToken(t *testing.T) {
	initData := signInitData(t, testBotToken, validParams())

	assert.False(t, VerifyInitData(initData, "999999:other-bot-token"))
}

func TestVerifyInitData_MissingHash(t *testing.T) {
	values := url.Values{}
	for key, value := range validParams() {
		values.Set(key, value)
	}

	assert.False(t, VerifyInitData(values.Encode(), testBotToken))
}

func TestVerifyInitData_EmptyInputs(t *testing.T) {
	initData := signInitData(t, testBotToken, validParams())

	assert.False(t, VerifyInitData("", testBotToken))
	assert.False(t, VerifyInitData(initData, ""))
	assert.False(t, VerifyInitData("", ""))
}

func TestVerifyInitData_UnparsableQueryString(t *testing.T) {
	assert.False(t, VerifyInitData("%zz=broken", testBotToken))
}

func TestExtractTelegramUser_Valid(t *testing.T) {
	initData := signInitData(t, testBotToken, validParams())

	user, ok := ExtractTelegramUser(initData)
	require.True(t, ok)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "Ivan", user.FirstName)
	assert.Equal(t, "Petrov", user.LastName)
	assert.Equal(t, "ivanp", user.Username)
}

func TestExtractTelegramUser_NoUserPair(t *testing.T) {
	params := validParams()
	delete(params, "user")
	initData := signInitData(t, testBotToken, params)

	_, ok := ExtractTelegramUser(initData)
	assert.False(t, ok)
}

func TestExtractTelegramUser_InvalidUserJSON(t *testing.T) {
	params := validParams()
	params["user"] = "{not-json"
	initData := signInitData(t, testBotToken, params)

	_, ok := ExtractTelegramUser(initData)
	assert.False(t, ok)
}

func TestExtractTelegramUser_ZeroID(t *testing.T) {
	params := validParams()
	params["user"] = `{"id":0,"first_name":"Ghost"}`
	initData := signInitData(t, testBotToken, params)

	_, ok := ExtractTelegramUser(initData)
	assert.False(t, ok)
}
