package sensor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Log is a recorded batch of sensor packages, as written by the
// sensor feed:
//
//	packages:
//	  - type: SWM
//	    data: [720, 1, 80, 25, 40]
type Log struct {
	Packages []Package `yaml:"packages"`
}

// LoadLog reads a YAML sensor log from disk. Only the record shape is
// checked here; value counts and types are rejected per record by
// ReadPackage.
func LoadLog(path string) (*Log, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sensor log: %w", err)
	}

	log := &Log{}
	if err := yaml.Unmarshal(data, log); err != nil {
		return nil, fmt.Errorf("parsing sensor log: %w", err)
	}

	if len(log.Packages) == 0 {
		return nil, fmt.Errorf("sensor log %s contains no packages", path)
	}
	for i, p := range log.Packages {
		if p.Type == "" {
			return nil, fmt.Errorf("sensor log %s: package %d has no type", path, i)
		}
		if len(p.Data) == 0 {
			return nil, fmt.Errorf("sensor log %s: package %d has no data", path, i)
		}
	}
	return log, nil
}
