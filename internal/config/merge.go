package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names used for shallow merge.
const (
	keySource  = "source"
	keyList    = "list"
	keyOutput  = "output"
	keyLogging = "logging"
)

// ShallowMergeYAML decodes the sections present in the YAML file at path
// onto target. Fields a section omits keep their current values; sections
// the file omits are untouched. Unknown top-level keys are ignored.
func ShallowMergeYAML(target *Config, path string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing config YAML from %s: %w", path, err)
	}

	for key, node := range overlay {
		var decodeErr error
		switch key {
		case keySource:
			decodeErr = node.Decode(&target.Source)
		case keyList:
			decodeErr = node.Decode(&target.List)
		case keyOutput:
			decodeErr = node.Decode(&target.Output)
		case keyLogging:
			decodeErr = node.Decode(&target.Logging)
		default:
			continue
		}
		if decodeErr != nil {
			return fmt.Errorf("applying config section %q: %w", key, decodeErr)
		}
	}

	return nil
}
