package box

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	boxerrors "github.com/boxkit/boxkit/pkg/errors"
	"github.com/boxkit/boxkit/pkg/spacing"
)

// FileConfig is the on-disk theme file shape. Unlike programmatic
// Configure, files are validated: breakpoint names must be simple
// identifiers, min widths must be 0 or greater, and spacing values must
// look like CSS lengths.
type FileConfig struct {
	Breakpoints map[string]int    `yaml:"breakpoints" validate:"omitempty,dive,keys,breakpoint_name,endkeys,min=0"`
	Spacing     map[string]string `yaml:"spacing" validate:"omitempty,dive,css_length"`
}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfigFile loads a theme file from disk, validates it, and returns
// the resulting model without applying it.
func ParseConfigFile(path string) (FileConfig, error) {
	var fc FileConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, boxerrors.NewParseError(path, 0, err)
	}

	if err := yaml.Unmarshal(data, &fc); err != nil {
		return FileConfig{}, boxerrors.NewParseError(path, extractLine(err), err)
	}

	if err := validateFileConfig(&fc); err != nil {
		return FileConfig{}, err
	}

	return fc, nil
}

// Apply merges the file's tables into the global configuration.
func (fc FileConfig) Apply() {
	cfg := Config{}
	if len(fc.Breakpoints) > 0 {
		cfg.Breakpoints = fc.Breakpoints
	}
	if len(fc.Spacing) > 0 {
		scale := make(spacing.Scale, len(fc.Spacing))
		for k, v := range fc.Spacing {
			scale[k] = v
		}
		cfg.Spacing = scale
	}
	Configure(cfg)
}

// LoadConfig parses a theme file and applies it in one step.
func LoadConfig(path string) error {
	fc, err := ParseConfigFile(path)
	if err != nil {
		return err
	}
	fc.Apply()
	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
