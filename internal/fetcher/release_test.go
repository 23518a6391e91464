package fetcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRelease = `Origin: Debian
Label: Debian
Suite: stable
Codename: bookworm
Date: Sat, 10 Feb 2024 10:27:33 UTC
Architectures: all amd64 arm64
Components: main contrib non-free-firmware
Description: Debian 12.5 Released 10 February 2024
MD5Sum:
 0ed6d4c8891eb86358b94bb35d9e4da4  1484322 contrib/Contents-all
 d0a0325a97c42fd5f66a8c3e29bcea64    98581 contrib/Contents-all.gz
SHA256:
 a6d9c9f8b1d0f8e8c0e5ab0ae8b4b2a2fd6b1bdfb03ef3a0c4a2dfce3b6f2b3a 51312455 main/Contents-amd64.gz
`

func TestParseRelease(t *testing.T) {
	rel, err := ParseRelease([]byte(sampleRelease))
	require.NoError(t, err)

	assert.Equal(t, "Debian", rel.Origin)
	assert.Equal(t, "stable", rel.Suite)
	assert.Equal(t, "bookworm", rel.Codename)
	assert.Equal(t, []string{"all", "amd64", "arm64"}, rel.Architectures)
	assert.Equal(t, []string{"main", "contrib", "non-free-firmware"}, rel.Components)
	assert.Len(t, rel.MD5Sum, 2)
	assert.Len(t, rel.SHA256, 1)

	info, hashType, ok := rel.Lookup("main/Contents-amd64.gz")
	require.True(t, ok)
	assert.Equal(t, "sha256", hashType)
	assert.Equal(t, int64(51312455), info.Size)

	info, hashType, ok = rel.Lookup("contrib/Contents-all.gz")
	require.True(t, ok)
	assert.Equal(t, "md5", hashType)
	assert.Equal(t, "d0a0325a97c42fd5f66a8c3e29bcea64", info.Checksum)

	_, _, ok = rel.Lookup("main/Contents-s390x.gz")
	assert.False(t, ok)
}

func TestParseReleaseMalformedEntry(t *testing.T) {
	_, err := ParseRelease([]byte("SHA256:\n deadbeef notasize main/Contents-amd64.gz\n"))
	assert.Error(t, err)

	_, err = ParseRelease([]byte("SHA256:\n deadbeef\n"))
	assert.Error(t, err)
}
