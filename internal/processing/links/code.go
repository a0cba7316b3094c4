package links

import (
	"crypto/rand"
	"regexp"
	"strings"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var codeFormat = regexp.MustCompile(`^[A-Za-z0-9]{6,8}$`)

// reservedCodes are routing-namespace reservations. They are rejected before
// any store access and are never looked up or counted.
var reservedCodes = map[string]struct{}{
	"API":       {},
	"HEALTHZ":   {},
	"CODE":      {},
	"ADMIN":     {},
	"DASHBOARD": {},
}

// NormalizeCode is the single canonicalization step shared by every boundary:
// store key, lookup key and API parameter all pass through here.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidCodeFormat reports whether code is 6-8 alphanumeric characters,
// case-insensitively.
func ValidCodeFormat(code string) bool {
	return codeFormat.MatchString(strings.TrimSpace(code))
}

func IsReservedCode(code string) bool {
	_, ok := reservedCodes[NormalizeCode(code)]
	return ok
}

type CryptoCodeGenerator struct{}

func NewCryptoCodeGenerator() *CryptoCodeGenerator { return &CryptoCodeGenerator{} }

func (g *CryptoCodeGenerator) Generate(length int) (string, error) {
	if length <= 0 {
		length = 6
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	out := make([]byte, length)
	for i := range buf {
		out[i] = codeAlphabet[int(buf[i])%len(codeAlphabet)]
	}

	return string(out), nil
}
