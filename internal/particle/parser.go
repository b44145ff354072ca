package particle

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/decker502/sparkfx/pkg/embedded"
)

// ParseTemplateYAML decodes a template file and checks its structure.
//
// Only structural problems are reported here (no emitters, missing or
// duplicate names). Value syntax and semantic checks happen when pkg/config
// converts each EmitterSpec into a template.
func ParseTemplateYAML(data []byte) (*TemplateFile, error) {
	var file TemplateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse template YAML: %w", err)
	}

	if len(file.Emitters) == 0 {
		return nil, fmt.Errorf("template file contains no emitters")
	}

	seen := make(map[string]bool, len(file.Emitters))
	for i, spec := range file.Emitters {
		if spec.Name == "" {
			return nil, fmt.Errorf("emitter #%d has no name", i+1)
		}
		if seen[spec.Name] {
			return nil, fmt.Errorf("emitter %q is defined twice", spec.Name)
		}
		seen[spec.Name] = true
	}

	return &file, nil
}

// LoadTemplateFile reads and parses a template file.
//
// Example usage:
//
//	file, err := LoadTemplateFile("data/emitters.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Loaded %d emitters\n", len(file.Emitters))
func LoadTemplateFile(path string) (*TemplateFile, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file %s: %w", path, err)
	}

	file, err := ParseTemplateYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}
