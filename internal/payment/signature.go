package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

const SignatureHeader = "X-Payment-Signature"

// Sign computes the hex HMAC-SHA256 of the payload with the shared webhook
// secret.
func Sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks a webhook payload against its signature header in
// constant time.
func VerifySignature(payload []byte, signature, secret string) bool {
	if signature == "" || secret == "" {
		return false
	}

	expected := Sign(payload, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
