// utils/utils.go

package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// GenerateSha256Hash returns a stable hex digest of the value's string form.
// For structs, serialize to a stable format first if field order matters.
func GenerateSha256Hash[T any](data T) string {
	dataString := fmt.Sprintf("%v", data)
	hash := sha256.Sum256([]byte(dataString))
	return hex.EncodeToString(hash[:])
}

// GenerateUniqueHash returns a unique identifier derived from the current
// time and 128 bits of random data. Used to stamp component metadata IDs.
func GenerateUniqueHash() string {
	currentTime := time.Now().UnixNano()
	randomBytes := make([]byte, 16)
	_, err := rand.Read(randomBytes)
	if err != nil {
		panic("random number generator failed")
	}

	hashInput := append([]byte(fmt.Sprintf("%d", currentTime)), randomBytes...)
	hash := sha256.Sum256(hashInput)
	return hex.EncodeToString(hash[:])
}
