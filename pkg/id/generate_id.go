package id

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// NewAccountNumber returns a loan account number like "LN-9F2C81AD04".
func NewAccountNumber() string {
	u := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "LN-" + strings.ToUpper(u[:10])
}
