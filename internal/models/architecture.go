package models

import (
	"fmt"
	"strings"
)

// SupportedArchitectures lists the Contents variants published by the
// mirror. "all" is the architecture-independent index; source and udeb
// indices are not supported.
var SupportedArchitectures = []string{
	"amd64",
	"arm64",
	"armel",
	"armhf",
	"i386",
	"mips64el",
	"mipsel",
	"ppc64el",
	"s390x",
	"all",
}

// IsSupportedArchitecture reports whether arch is one of SupportedArchitectures
func IsSupportedArchitecture(arch string) bool {
	for _, a := range SupportedArchitectures {
		if a == arch {
			return true
		}
	}
	return false
}

// ValidateArchitecture returns an ErrInvalidArch error naming arch and the
// supported set when arch is not supported
func ValidateArchitecture(arch string) error {
	if IsSupportedArchitecture(arch) {
		return nil
	}
	return &StatsError{
		Type: ErrInvalidArch,
		Err: fmt.Errorf("unsupported architecture specified: %q, supported types are: %s",
			arch, strings.Join(SupportedArchitectures, ", ")),
	}
}
