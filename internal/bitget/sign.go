package bitget

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
	"time"
)

// Credentials holds the API key set used to sign requests.
type Credentials struct {
	AccessKey  string
	SecretKey  string
	Passphrase string
}

// Validate checks that all three credential parts are present.
func (c Credentials) Validate() error {
	if c.AccessKey == "" {
		return errors.New("access key is required")
	}
	if c.SecretKey == "" {
		return errors.New("secret key is required")
	}
	if c.Passphrase == "" {
		return errors.New("passphrase is required")
	}
	return nil
}

// SignRequest generates authentication headers for a Bitget API request.
// requestPath must include the encoded query string when one is sent.
func (c Credentials) SignRequest(method, requestPath, body string) map[string]string {
	timestampMs := time.Now().UnixMilli()
	return c.signAt(timestampMs, method, requestPath, body)
}

// signAt builds the header set for a fixed timestamp. Split out so tests can
// pin the timestamp.
func (c Credentials) signAt(timestampMs int64, method, requestPath, body string) map[string]string {
	ts := strconv.FormatInt(timestampMs, 10)
	signature := c.signature(ts, method, requestPath, body)

	return map[string]string{
		"ACCESS-KEY":        c.AccessKey,
		"ACCESS-SIGN":       signature,
		"ACCESS-TIMESTAMP":  ts,
		"ACCESS-PASSPHRASE": c.Passphrase,
		"Content-Type":      "application/json",
		"locale":            "en-US",
	}
}

// signature computes base64(HMAC-SHA256(secret, timestamp + METHOD + path + body)).
func (c Credentials) signature(timestamp, method, requestPath, body string) string {
	message := timestamp + strings.ToUpper(method) + requestPath + body

	mac := hmac.New(sha256.New, []byte(c.SecretKey))
	mac.Write([]byte(message))

	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
