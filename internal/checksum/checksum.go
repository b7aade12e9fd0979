// Package checksum fingerprints raw log.txt content. The index keys
// its rebuild skip on these digests: an unchanged digest means the
// entry needs no re-parse.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sum returns the hex-encoded SHA-256 digest of an entry's raw bytes.
func Sum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
