package bitget

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"testing"
)

func TestSignRequestHeaders(t *testing.T) {
	creds := Credentials{
		AccessKey:  "test-access",
		SecretKey:  "test-secret",
		Passphrase: "test-phrase",
	}

	headers := creds.signAt(1704067200000, "GET", "/api/v2/mix/account/accounts?marginCoin=USDT&productType=USDT-FUTURES", "")

	if headers["ACCESS-KEY"] != "test-access" {
		t.Errorf("ACCESS-KEY = %q, want %q", headers["ACCESS-KEY"], "test-access")
	}
	if headers["ACCESS-TIMESTAMP"] != "1704067200000" {
		t.Errorf("ACCESS-TIMESTAMP = %q, want %q", headers["ACCESS-TIMESTAMP"], "1704067200000")
	}
	if headers["ACCESS-PASSPHRASE"] != "test-phrase" {
		t.Errorf("ACCESS-PASSPHRASE = %q, want %q", headers["ACCESS-PASSPHRASE"], "test-phrase")
	}
	if headers["Content-Type"] != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", headers["Content-Type"])
	}
	if headers["locale"] != "en-US" {
		t.Errorf("locale = %q, want en-US", headers["locale"])
	}

	// Signature must be base64(HMAC-SHA256(secret, ts + METHOD + path + body)).
	mac := hmac.New(sha256.New, []byte("test-secret"))
	mac.Write([]byte("1704067200000GET/api/v2/mix/account/accounts?marginCoin=USDT&productType=USDT-FUTURES"))
	want := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	if headers["ACCESS-SIGN"] != want {
		t.Errorf("ACCESS-SIGN = %q, want %q", headers["ACCESS-SIGN"], want)
	}
}

func TestSignatureUppercasesMethod(t *testing.T) {
	creds := Credentials{AccessKey: "k", SecretKey: "s", Passphrase: "p"}

	lower := creds.signature("1", "get", "/path", "")
	upper := creds.signature("1", "GET", "/path", "")

	if lower != upper {
		t.Errorf("signature(get) = %q, signature(GET) = %q; want equal", lower, upper)
	}
}

func TestSignatureCoversBody(t *testing.T) {
	creds := Credentials{AccessKey: "k", SecretKey: "s", Passphrase: "p"}

	empty := creds.signature("1", "POST", "/path", "")
	withBody := creds.signature("1", "POST", "/path", `{"size":"0.01"}`)

	if empty == withBody {
		t.Error("signatures with and without body should differ")
	}
}

func TestCredentialsValidate(t *testing.T) {
	tests := []struct {
		name    string
		creds   Credentials
		wantErr bool
	}{
		{"complete", Credentials{AccessKey: "a", SecretKey: "b", Passphrase: "c"}, false},
		{"missing access key", Credentials{SecretKey: "b", Passphrase: "c"}, true},
		{"missing secret", Credentials{AccessKey: "a", Passphrase: "c"}, true},
		{"missing passphrase", Credentials{AccessKey: "a", SecretKey: "b"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.creds.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
