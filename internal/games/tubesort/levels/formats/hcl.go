package formats

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// HCLLevel represents the HCL structure for a level file.
//
//	id    = "crossed"
//	name  = "Crossed Pair"
//	tubes = [["red", "blue"], ["blue", "red"], []]
type HCLLevel struct {
	ID    string     `hcl:"id"`
	Name  string     `hcl:"name,optional"`
	Tubes [][]string `hcl:"tubes"`
}

// ParseHCL parses an HCL level file. filename is only used in diagnostics.
func ParseHCL(data []byte, filename string) (Level, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return Level{}, fmt.Errorf("hcl parse: %w", diags)
	}

	var hl HCLLevel
	if diags := gohcl.DecodeBody(file.Body, nil, &hl); diags.HasErrors() {
		return Level{}, fmt.Errorf("hcl decode: %w", diags)
	}
	return Level{ID: hl.ID, Name: hl.Name, Tubes: hl.Tubes}, nil
}
