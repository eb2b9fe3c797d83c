package schema

import (
	"fmt"
	"strings"
)

// ID is a namespaced type identifier of the form "vocabulary:Local",
// for example "dcat:Dataset" or "opcua:MotionDeviceType". The
// vocabulary prefix is the source name the class was loaded from, so
// classes with the same local name in different vocabularies never
// collide.
type ID string

// MakeID builds an ID from a vocabulary name and a local class name.
func MakeID(vocab, local string) ID {
	return ID(vocab + ":" + local)
}

// ParseID parses a string of the form "vocabulary:Local" into an ID.
func ParseID(s string) (ID, error) {
	vocab, local, ok := strings.Cut(s, ":")
	if !ok || vocab == "" || local == "" {
		return "", fmt.Errorf("invalid type ID format: %q (expected vocabulary:Local)", s)
	}
	if strings.Contains(local, ":") {
		return "", fmt.Errorf("invalid type ID format: %q (expected vocabulary:Local)", s)
	}
	return ID(s), nil
}

// Vocabulary returns the vocabulary prefix, or "" if the ID is malformed.
func (id ID) Vocabulary() string {
	vocab, _, ok := strings.Cut(string(id), ":")
	if !ok {
		return ""
	}
	return vocab
}

// Local returns the local class name, or "" if the ID is malformed.
func (id ID) Local() string {
	_, local, ok := strings.Cut(string(id), ":")
	if !ok {
		return ""
	}
	return local
}

// IsValid reports whether the ID has both a vocabulary prefix and a
// local name, with exactly one separating colon.
func (id ID) IsValid() bool {
	_, err := ParseID(string(id))
	return err == nil
}

// String returns the ID in its wire form "vocabulary:Local".
func (id ID) String() string {
	return string(id)
}
