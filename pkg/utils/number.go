package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// GenerateRecordNumber builds a 16-digit human-readable record number:
// the current date (YYYYMMDD) followed by an 8-digit random sequence,
// e.g. "2025010100000001". The number is the idempotency correlation key
// with the external processor; uniqueness is enforced by the database.
func GenerateRecordNumber(now time.Time) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(100000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate record number: %w", err)
	}
	return fmt.Sprintf("%s%08d", now.Format("20060102"), n.Int64()), nil
}
