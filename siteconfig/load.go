package siteconfig

import (
	"bytes"
	"fmt"

	yaml "gopkg.in/yaml.v3"
)

// LoadDefinition decodes a YAML site configuration in strict mode:
// unknown top-level fields are rejected rather than silently ignored.
//
// Discovering *which* file to load for a given site is a caller
// concern; this is just the decode step.
func LoadDefinition(data []byte) (*Definition, error) {
	var def Definition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("siteconfig: decoding site configuration: %w", err)
	}
	return &def, nil
}
