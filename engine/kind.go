package engine

import (
	"fmt"
	"strings"
)

// AssetKind classifies what a described asset is. The kind is free
// metadata: it travels in the save manifest and surfaces in listings,
// but the type system does not constrain it.
type AssetKind string

const (
	// AssetKindRawData marks captured data: sensor logs, point clouds,
	// telemetry series.
	AssetKindRawData AssetKind = "raw-data"

	// AssetKindModel marks derived artifacts: trained models,
	// simulation models, digital twins.
	AssetKindModel AssetKind = "model"

	// AssetKindSoftwareService marks deployable software and services.
	AssetKindSoftwareService AssetKind = "software-service"
)

// IsValid checks if the kind is a known value.
func (k AssetKind) IsValid() bool {
	switch k {
	case AssetKindRawData, AssetKindModel, AssetKindSoftwareService:
		return true
	}
	return false
}

// String returns the string representation of the kind.
func (k AssetKind) String() string {
	return string(k)
}

// ParseAssetKind maps a user-supplied name to an AssetKind.
func ParseAssetKind(s string) (AssetKind, error) {
	kind := AssetKind(strings.ToLower(strings.TrimSpace(s)))
	if !kind.IsValid() {
		return "", fmt.Errorf("unknown asset kind %q (want raw-data, model, or software-service)", s)
	}
	return kind, nil
}
