// Package fetcher downloads Contents indices from a Debian mirror.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/ralt/debstats/internal/models"
	"github.com/ralt/debstats/internal/signer"
	"github.com/ralt/debstats/internal/utils"
)

// Defaults for the mirror location
const (
	DefaultMirror    = "http://ftp.uk.debian.org/debian"
	DefaultSuite     = "stable"
	DefaultComponent = "main"
)

// Doer performs HTTP requests. *http.Client implements it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetcher downloads and decompresses Contents indices
type Fetcher struct {
	client      Doer
	log         logrus.FieldLogger
	verifier    signer.Verifier
	mirror      string
	suite       string
	component   string
	compression utils.Compression
}

// NewFetcher creates a Fetcher for the mirror location in config. A nil
// client uses http.DefaultClient. verifier may be nil, in which case the
// Release file is not consulted.
func NewFetcher(config *models.StatsConfig, client Doer, verifier signer.Verifier, log logrus.FieldLogger) (*Fetcher, error) {
	compression, err := utils.ParseCompression(config.Compression)
	if err != nil {
		return nil, &models.StatsError{Type: models.ErrInvalidConfig, Err: err}
	}

	if client == nil {
		client = http.DefaultClient
	}

	mirror := strings.TrimRight(config.Mirror, "/")
	if mirror == "" {
		mirror = DefaultMirror
	}

	f := &Fetcher{
		client:      client,
		log:         log,
		verifier:    verifier,
		mirror:      mirror,
		suite:       config.Suite,
		component:   config.Component,
		compression: compression,
	}
	if f.suite == "" {
		f.suite = DefaultSuite
	}
	if f.component == "" {
		f.component = DefaultComponent
	}

	return f, nil
}

// IndexPath returns the Contents path relative to the dists/<suite>
// directory, as listed in the Release file
func (f *Fetcher) IndexPath(arch string) string {
	return fmt.Sprintf("%s/Contents-%s%s", f.component, arch, f.compression.Extension())
}

// URL returns the location of the Contents index for arch
func (f *Fetcher) URL(arch string) string {
	return fmt.Sprintf("%s/dists/%s/%s", f.mirror, f.suite, f.IndexPath(arch))
}

// ReleaseURL returns the location of the signed InRelease file
func (f *Fetcher) ReleaseURL() string {
	return fmt.Sprintf("%s/dists/%s/InRelease", f.mirror, f.suite)
}

// Fetch downloads the Contents index for arch and returns it decompressed.
// arch is validated before any request is made.
func (f *Fetcher) Fetch(ctx context.Context, arch string) ([]byte, error) {
	if err := models.ValidateArchitecture(arch); err != nil {
		return nil, err
	}

	var expected *ReleaseFileInfo
	var hashType string
	if f.verifier != nil {
		info, ht, err := f.releaseEntry(ctx, arch)
		if err != nil {
			return nil, err
		}
		expected, hashType = &info, ht
	}

	url := f.URL(arch)
	f.log.Infof("Attempting to download the Contents file from %s", url)
	start := time.Now()

	compressed, err := f.get(ctx, url)
	if err != nil {
		return nil, &models.StatsError{Type: models.ErrDownload, URL: url, Err: err}
	}
	f.log.Infof("Downloaded file size: %s (%d bytes)", humanize.Bytes(uint64(len(compressed))), len(compressed))

	if expected != nil {
		if err := checkIndex(compressed, *expected, hashType); err != nil {
			return nil, &models.StatsError{Type: models.ErrVerify, URL: url, Err: err}
		}
		f.log.Infof("Contents file matches the signed %s checksum", strings.ToUpper(hashType))
	}

	content, err := f.compression.Decompress(compressed)
	if err != nil {
		if detected, ok := utils.DetectCompression(compressed); ok && detected != f.compression {
			err = fmt.Errorf("%w (body looks like %s, not %s)", err, detected, f.compression)
		}
		return nil, &models.StatsError{Type: models.ErrDecompress, URL: url, Err: err}
	}
	f.log.Debugf("Decompressed to %s", humanize.Bytes(uint64(len(content))))

	f.log.Info("File successfully downloaded and decompressed.")
	f.log.Infof("Download and decompression completed in %.3f seconds.", time.Since(start).Seconds())

	return content, nil
}

// releaseEntry fetches and verifies InRelease and returns the checksum
// entry for the Contents index of arch
func (f *Fetcher) releaseEntry(ctx context.Context, arch string) (ReleaseFileInfo, string, error) {
	url := f.ReleaseURL()
	f.log.Infof("Fetching signed Release file from %s", url)

	signed, err := f.get(ctx, url)
	if err != nil {
		return ReleaseFileInfo{}, "", &models.StatsError{Type: models.ErrDownload, URL: url, Err: err}
	}

	plaintext, err := f.verifier.VerifyCleartext(signed)
	if err != nil {
		return ReleaseFileInfo{}, "", &models.StatsError{Type: models.ErrVerify, URL: url, Err: err}
	}

	rel, err := ParseRelease(plaintext)
	if err != nil {
		return ReleaseFileInfo{}, "", &models.StatsError{Type: models.ErrVerify, URL: url, Err: err}
	}
	f.log.Debugf("Release verified: origin=%q suite=%q codename=%q date=%q", rel.Origin, rel.Suite, rel.Codename, rel.Date)

	path := f.IndexPath(arch)
	info, hashType, ok := rel.Lookup(path)
	if !ok {
		return ReleaseFileInfo{}, "", &models.StatsError{
			Type: models.ErrVerify,
			URL:  url,
			Err:  fmt.Errorf("%s is not listed in the Release file", path),
		}
	}

	return info, hashType, nil
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected HTTP status %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}

func checkIndex(data []byte, expected ReleaseFileInfo, hashType string) error {
	sum := utils.CalculateChecksums(data)
	if sum.Size != expected.Size {
		return fmt.Errorf("size mismatch: got %d bytes, Release lists %d", sum.Size, expected.Size)
	}

	got := sum.SHA256
	if hashType == "md5" {
		got = sum.MD5
	}
	if !strings.EqualFold(got, expected.Checksum) {
		return fmt.Errorf("%s mismatch: got %s, Release lists %s", hashType, got, expected.Checksum)
	}

	return nil
}
