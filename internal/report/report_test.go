package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ralt/debstats/internal/contents"
)

func TestTopPackages(t *testing.T) {
	top := TopPackages(contents.Counts{"a": 5, "b": 9, "c": 1}, 2)

	assert.Equal(t, []Entry{{"b", 9}, {"a", 5}}, top)
}

func TestTopPackagesFewerThanN(t *testing.T) {
	top := TopPackages(contents.Counts{"a": 5, "b": 9, "c": 1}, 10)

	assert.Equal(t, []Entry{{"b", 9}, {"a", 5}, {"c", 1}}, top)
}

func TestTopPackagesTieBreakByName(t *testing.T) {
	counts := contents.Counts{"zeta": 3, "alpha": 3, "mid": 3, "big": 7}

	for i := 0; i < 20; i++ {
		top := TopPackages(counts, 3)
		assert.Equal(t, []Entry{{"big", 7}, {"alpha", 3}, {"mid", 3}}, top)
	}
}

func TestTopPackagesDoesNotMutateInput(t *testing.T) {
	counts := contents.Counts{"a": 1, "b": 2}
	TopPackages(counts, 1)

	assert.Equal(t, contents.Counts{"a": 1, "b": 2}, counts)
}

func TestTopPackagesEmpty(t *testing.T) {
	assert.Empty(t, TopPackages(contents.Counts{}, 10))
	assert.Empty(t, TopPackages(contents.Counts{"a": 1}, 0))
}

func TestRenderText(t *testing.T) {
	r := New("amd64", contents.Counts{"devel/big-package": 1200, "libs/x": 7}, DefaultTopN)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, FormatText))

	want := "\nTop 10 Packages by Number of Files:\n" +
		"devel/big-package   1200\n" +
		"libs/x                 7\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderTextHeaderMatchesTopN(t *testing.T) {
	r := New("arm64", contents.Counts{"a": 1}, 3)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, FormatText))
	assert.Contains(t, buf.String(), "Top 3 Packages by Number of Files:")
}

func TestRenderTable(t *testing.T) {
	r := New("amd64", contents.Counts{"libs/x": 7, "devel/y": 3}, 2)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, FormatTable))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Top 2 Packages by Number of Files:\n"), out)
	assert.Contains(t, out, "Top 2 Packages by Number of Files:")
	assert.Contains(t, out, "libs/x")
	assert.Less(t, strings.Index(out, "libs/x"), strings.Index(out, "devel/y"))
}

func TestRenderJSON(t *testing.T) {
	r := New("i386", contents.Counts{"a": 5, "b": 9, "c": 1}, 2)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, FormatJSON))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "i386", decoded.Architecture)
	assert.Equal(t, 2, decoded.Top)
	assert.Equal(t, 3, decoded.TotalPackages)
	assert.Equal(t, []Entry{{"b", 9}, {"a", 5}}, decoded.Packages)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("TABLE")
	require.NoError(t, err)
	assert.Equal(t, FormatTable, f)

	_, err = ParseFormat("yaml")
	assert.Error(t, err)
}
