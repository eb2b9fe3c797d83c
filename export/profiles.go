package export

import (
	"fmt"
	"strings"
)

// Profile determines which statements an export includes.
type Profile string

const (
	// ProfileMinimal exports each node's type assertion and property
	// statements.
	ProfileMinimal Profile = "minimal"

	// ProfileFull additionally exports the placement hierarchy as a
	// part statement from every parent to each of its children.
	ProfileFull Profile = "full"
)

// IsValid checks whether the profile is known.
func (p Profile) IsValid() bool {
	_, ok := Profiles[p]
	return ok
}

// String returns the string representation of the profile.
func (p Profile) String() string {
	return string(p)
}

// ParseProfile maps a user-supplied name to a Profile.
func ParseProfile(s string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minimal", "min":
		return ProfileMinimal, nil
	case "full":
		return ProfileFull, nil
	default:
		return "", fmt.Errorf("unsupported profile: %s", s)
	}
}

// ProfileConfig describes one export profile.
type ProfileConfig struct {
	// Name is the profile identifier.
	Name Profile

	// Description describes what the profile includes.
	Description string

	// IncludeHierarchy indicates whether parent-to-child part
	// statements are written.
	IncludeHierarchy bool
}

// Profiles contains the configuration for all supported profiles.
var Profiles = map[Profile]ProfileConfig{
	ProfileMinimal: {
		Name:             ProfileMinimal,
		Description:      "Type and property statements only",
		IncludeHierarchy: false,
	},
	ProfileFull: {
		Name:             ProfileFull,
		Description:      "Type and property statements plus the placement hierarchy",
		IncludeHierarchy: true,
	},
}

// GetProfileConfig returns the configuration for a profile. Unknown
// profiles, including the empty one, fall back to minimal.
func GetProfileConfig(profile Profile) ProfileConfig {
	if cfg, ok := Profiles[profile]; ok {
		return cfg
	}
	return Profiles[ProfileMinimal]
}
