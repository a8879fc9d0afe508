package hcsc

import (
	"os"

	"github.com/hashicorp/hcl"
)

// ProjectConfig is the optional companion file (hcs.hcl) a directory
// of HCS sources may carry alongside it — purely informational
// metadata; it never changes how a .hcs file is compiled, and neither
// Compile nor cmd/hcsc loads it. Uses hashicorp/hcl's
// plain Unmarshal since hcsc has no need for the 2.0 dialect's
// expression language.
type ProjectConfig struct {
	Project struct {
		Name string `hcl:"name"`
	} `hcl:"project,block"`
	Build struct {
		BinaryName string `hcl:"binary_name,optional"`
	} `hcl:"build,block"`
}

// LoadProjectConfig reads and decodes path. A missing file is not an
// error — callers treat a nil, nil return as "no companion config".
func LoadProjectConfig(path string) (*ProjectConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, MissingInputError{Path: path, Err: err}
	}

	cfg := &ProjectConfig{}
	if err := hcl.Unmarshal(raw, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
