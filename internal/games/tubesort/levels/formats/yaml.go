package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
//
//	id: crossed
//	name: Crossed Pair
//	tubes:
//	  - [red, blue]
//	  - [blue, red]
//	  - []
type YAMLLevel struct {
	ID    string     `yaml:"id"`
	Name  string     `yaml:"name"`
	Tubes [][]string `yaml:"tubes"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return Level{ID: yl.ID, Name: yl.Name, Tubes: yl.Tubes}, nil
}
