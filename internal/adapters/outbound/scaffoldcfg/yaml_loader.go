// Package scaffoldcfg reads the optional .agentinit.yaml scaffold settings.
package scaffoldcfg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/agentinit/agentinit/internal/domain"
)

const fileName = ".agentinit.yaml"

// YAMLLoader implements domain.ScaffoldConfigLoader.
type YAMLLoader struct{}

func New() *YAMLLoader {
	return &YAMLLoader{}
}

// Load reads .agentinit.yaml from projectPath. A missing file yields the
// zero config; unlike the lint config, a malformed file is an error the
// user should fix rather than something to silently default away.
func (l *YAMLLoader) Load(projectPath string) (domain.ScaffoldConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.ScaffoldConfig{}, nil
		}
		return domain.ScaffoldConfig{}, fmt.Errorf("reading %s: %w", fileName, err)
	}

	var cfg domain.ScaffoldConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ScaffoldConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}
	return cfg, nil
}
