package utils

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
)

// Checksum contains various checksums for a blob
type Checksum struct {
	MD5    string
	SHA256 string
	Size   int64
}

// CalculateChecksums calculates the checksums apt publishes in Release files
func CalculateChecksums(data []byte) *Checksum {
	md5Sum := md5.Sum(data)
	sha256Sum := sha256.Sum256(data)

	return &Checksum{
		MD5:    hex.EncodeToString(md5Sum[:]),
		SHA256: hex.EncodeToString(sha256Sum[:]),
		Size:   int64(len(data)),
	}
}
