package miscutils

import (
	"crypto/rand"
	"encoding/base64"
	"net/url"
)

// MustParseURL parses the given string as a URL. It panics upon error.
func MustParseURL(u string) *url.URL {
	parsed, err := url.Parse(u)
	if err != nil {
		panic("error in url.Parse call: " + err.Error())
	}
	return parsed
}

// RandomString returns a cryptographically unpredictable URL-safe string
// built from the given number of random bytes.
func RandomString(byteCount int) (string, error) {
	buf := make([]byte, byteCount)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
