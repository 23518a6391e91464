package contents

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleContents = `bin/bash                                                shells/bash
usr/bin/ls                                              utils/coreutils
usr/bin/cat                                             utils/coreutils
usr/lib/x86_64-linux-gnu/libfoo.so.1                    libs/libfoo1,libs/libfoo-dev
usr/share/doc/libfoo1/copyright                         libs/libfoo1
`

func TestSplitLine(t *testing.T) {
	path, pkgs, ok := SplitLine("usr/bin/ls   utils/coreutils")
	require.True(t, ok)
	assert.Equal(t, "usr/bin/ls", path)
	assert.Equal(t, "utils/coreutils", pkgs)
}

func TestSplitLineKeepsSpacesInPath(t *testing.T) {
	path, pkgs, ok := SplitLine("usr/share/My Documents/readme.txt \t doc/weird\r")
	require.True(t, ok)
	assert.Equal(t, "usr/share/My Documents/readme.txt", path)
	assert.Equal(t, "doc/weird", pkgs)
}

func TestSplitLineRejectsMalformed(t *testing.T) {
	for _, line := range []string{"", "   ", "usr/bin/lonely", "   utils/coreutils", "usr/bin/ls   \t"} {
		_, _, ok := SplitLine(line)
		assert.False(t, ok, "%q", line)
	}
}

func TestSplitPackages(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitPackages("a,b"))
	assert.Equal(t, []string{"a", "b"}, SplitPackages(" a , b ,"))
	assert.Equal(t, []string{"a"}, SplitPackages("a,a"))
	assert.Empty(t, SplitPackages(",,"))
}

func TestCountFilesPerPackage(t *testing.T) {
	counts := CountFilesPerPackage([]byte(sampleContents))

	assert.Equal(t, Counts{
		"shells/bash":     1,
		"utils/coreutils": 2,
		"libs/libfoo1":    2,
		"libs/libfoo-dev": 1,
	}, counts)
}

func TestCountMultiplePackagesOnOneLine(t *testing.T) {
	counts := CountFilesPerPackage([]byte("some/path.so   pkgA,pkgB"))

	assert.Equal(t, Counts{"pkgA": 1, "pkgB": 1}, counts)
}

func TestCountEmptyInput(t *testing.T) {
	assert.Empty(t, CountFilesPerPackage(nil))
	assert.Empty(t, CountFilesPerPackage([]byte("\n\n   \nno-separator-here\n")))
}

func TestCountIsDeterministic(t *testing.T) {
	first := CountFilesPerPackage([]byte(sampleContents))
	second := CountFilesPerPackage([]byte(sampleContents))

	assert.Equal(t, first, second)
}

func TestCountHandlesCRLF(t *testing.T) {
	counts := CountFilesPerPackage([]byte("usr/bin/a x/one\r\nusr/bin/b x/one\r\n"))

	assert.Equal(t, Counts{"x/one": 2}, counts)
}

func TestCounterLogsSkippedLines(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	NewCounter(log).Count([]byte("usr/bin/ls utils/coreutils\ngarbage\n"))

	var skipped int
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.DebugLevel && strings.HasPrefix(entry.Message, "Skipping line 2") {
			skipped++
		}
	}
	assert.Equal(t, 1, skipped)
}
