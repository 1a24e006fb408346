package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"math/big"
	"strings"
)

const codeCharset = "ABCDEFGHJKMNPQRSTUVWXYZ23456789" // no 0/O/1/I/L

// GenerateSecureToken returns a hex token (length = bytes).
func GenerateSecureToken(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("invalid token length")
	}
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// GenerateBillNumber returns a display invoice number like "INV-7K2D9M".
// Uses crypto/rand + math/big to avoid modulo bias.
func GenerateBillNumber() (string, error) {
	var sb strings.Builder
	sb.WriteString("INV-")
	alphaLen := big.NewInt(int64(len(codeCharset)))
	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(codeCharset[n.Int64()])
	}
	return sb.String(), nil
}
