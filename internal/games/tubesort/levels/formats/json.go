package formats

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"
)

// JSONLevel represents the JSON structure for a level file.
// Comments and trailing commas are accepted.
type JSONLevel struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Tubes [][]string `json:"tubes"`
}

// ParseJSON parses a JSON or JSONC level file.
func ParseJSON(data []byte) (Level, error) {
	var jl JSONLevel
	if err := json.Unmarshal(jsonc.ToJSON(data), &jl); err != nil {
		return Level{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return Level{ID: jl.ID, Name: jl.Name, Tubes: jl.Tubes}, nil
}
