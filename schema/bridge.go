package schema

import "fmt"

// BridgeMode selects how a bridge rule connects two types.
type BridgeMode string

const (
	// BridgeReference adds an optional multi-valued reference property
	// on the From type targeting the To type.
	BridgeReference BridgeMode = "reference"

	// BridgeContainment allows nodes of the To type to be placed under
	// nodes of the From type.
	BridgeContainment BridgeMode = "containment"
)

// IsValid checks if the bridge mode is a known value.
func (m BridgeMode) IsValid() bool {
	switch m {
	case BridgeReference, BridgeContainment:
		return true
	}
	return false
}

// String returns the string representation of the bridge mode.
func (m BridgeMode) String() string {
	return string(m)
}

// BridgeRule links two types from different vocabularies. Reference
// rules carry the name of the property they add; containment rules
// leave Property empty.
type BridgeRule struct {
	From     ID         `json:"from" yaml:"from"`
	Property string     `json:"property,omitempty" yaml:"property,omitempty"`
	To       ID         `json:"to" yaml:"to"`
	Mode     BridgeMode `json:"mode" yaml:"mode"`
}

// Validate checks the rule's shape before it is applied to a registry.
func (r BridgeRule) Validate() error {
	if !r.From.IsValid() {
		return fmt.Errorf("bridge rule: invalid from type %q", r.From)
	}
	if !r.To.IsValid() {
		return fmt.Errorf("bridge rule: invalid to type %q", r.To)
	}
	if !r.Mode.IsValid() {
		return fmt.Errorf("bridge rule %s -> %s: unknown mode %q", r.From, r.To, r.Mode)
	}
	if r.Mode == BridgeReference && r.Property == "" {
		return fmt.Errorf("bridge rule %s -> %s: reference mode requires a property name", r.From, r.To)
	}
	if r.Mode == BridgeContainment && r.Property != "" {
		return fmt.Errorf("bridge rule %s -> %s: containment mode takes no property name", r.From, r.To)
	}
	return nil
}

// DefaultBridges returns the built-in bridge table connecting the
// embedded data-catalog and robotics vocabularies. Used when no
// configuration overrides the rules.
func DefaultBridges() []BridgeRule {
	return []BridgeRule{
		// A controller may contain the datasets it produces.
		{From: "opcua:ControllerType", To: "dcat:Dataset", Mode: BridgeContainment},
		// A motion device system points at the dataset describing it.
		{From: "opcua:MotionDeviceSystemType", Property: "described_by", To: "dcat:Dataset", Mode: BridgeReference},
		// A controller hosts data services that expose its telemetry.
		{From: "opcua:ControllerType", Property: "hosts_service", To: "dcat:DataService", Mode: BridgeReference},
		// A dataset points back at the device it was captured from.
		{From: "dcat:Dataset", Property: "source_device", To: "opcua:MotionDeviceType", Mode: BridgeReference},
	}
}
