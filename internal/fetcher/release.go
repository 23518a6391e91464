package fetcher

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// ReleaseFileInfo describes one index listed in a Release file
type ReleaseFileInfo struct {
	Path     string
	Size     int64
	Checksum string
}

// Release is the subset of a Debian Release file needed to check indices
type Release struct {
	Origin        string
	Label         string
	Suite         string
	Codename      string
	Date          string
	Architectures []string
	Components    []string

	MD5Sum map[string]ReleaseFileInfo
	SHA256 map[string]ReleaseFileInfo
}

// ParseRelease parses the (already verified) text of a Release file
func ParseRelease(data []byte) (*Release, error) {
	rel := &Release{
		MD5Sum: make(map[string]ReleaseFileInfo),
		SHA256: make(map[string]ReleaseFileInfo),
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var currentKey string

	for scanner.Scan() {
		line := scanner.Text()

		// Continuation lines carry checksum entries
		if len(line) > 0 && (line[0] == ' ' || line[0] == '\t') {
			var files map[string]ReleaseFileInfo
			switch currentKey {
			case "MD5Sum":
				files = rel.MD5Sum
			case "SHA256":
				files = rel.SHA256
			default:
				continue
			}

			fields := strings.Fields(line)
			if len(fields) != 3 {
				return nil, fmt.Errorf("malformed %s entry: %q", currentKey, line)
			}
			size, err := strconv.ParseInt(fields[1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("malformed size in %s entry %q: %w", currentKey, line, err)
			}
			files[fields[2]] = ReleaseFileInfo{Path: fields[2], Size: size, Checksum: fields[0]}
			continue
		}

		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			currentKey = ""
			continue
		}
		currentKey = strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch currentKey {
		case "Origin":
			rel.Origin = value
		case "Label":
			rel.Label = value
		case "Suite":
			rel.Suite = value
		case "Codename":
			rel.Codename = value
		case "Date":
			rel.Date = value
		case "Architectures":
			rel.Architectures = strings.Fields(value)
		case "Components":
			rel.Components = strings.Fields(value)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return rel, nil
}

// Lookup returns the checksum entry for path, preferring SHA256. hashType
// is "sha256" or "md5".
func (r *Release) Lookup(path string) (info ReleaseFileInfo, hashType string, ok bool) {
	if info, ok := r.SHA256[path]; ok {
		return info, "sha256", true
	}
	if info, ok := r.MD5Sum[path]; ok {
		return info, "md5", true
	}
	return ReleaseFileInfo{}, "", false
}
