package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	EncodingAuto = "auto"

	LogLevelNormal  = "normal"
	LogLevelVerbose = "verbose"
	LogLevelOff     = "off"

	HostAuto = "auto"
)

// Settings is the full configuration of a stamping run, loaded from an optional
// YAML file and overridden by command-line flags.
type Settings struct {
	Path                       string      `yaml:"path"`
	FileNames                  []string    `yaml:"file_names"`
	InsertAttributes           bool        `yaml:"insert_attributes"`
	FileEncoding               string      `yaml:"file_encoding"`
	WriteBOM                   bool        `yaml:"write_bom"`
	FailOnWarning              bool        `yaml:"fail_on_warning"`
	LogLevel                   string      `yaml:"log_level"`
	IgnoreNetFrameworkProjects bool        `yaml:"ignore_netframework_projects"`
	Host                       string      `yaml:"host"`
	UpdateBuildNumber          string      `yaml:"update_build_number"`
	AddBuildTag                string      `yaml:"add_build_tag"`
	Fields                     FieldValues `yaml:"fields"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the settings used when neither file nor flags set a value.
func DefaultSettings() *Settings {
	return &Settings{
		Path: ".",
		FileNames: []string{
			"**/*.csproj",
			"**/*.vbproj",
			"**/*.fsproj",
			"**/Directory.Build.props",
			"**/AssemblyInfo.cs",
			"**/AssemblyInfo.vb",
			"**/AssemblyInfo.cpp",
		},
		FileEncoding: EncodingAuto,
		LogLevel:     LogLevelNormal,
		Host:         HostAuto,
	}
}

// NewSettings reads and parses a configuration file on top of the defaults,
// expanding environment variable references in every string value.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.ExpandEnv()
	settings.FileNames = SplitFileNames(settings.FileNames)

	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".assemblystamp.yaml",
		".assemblystamp.yml",
		"assemblystamp.yaml",
		"assemblystamp.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// ExpandEnv resolves ${VAR} references in every string setting and field value.
func (s *Settings) ExpandEnv() {
	for _, value := range []*string{
		&s.Path, &s.FileEncoding, &s.LogLevel, &s.Host, &s.UpdateBuildNumber, &s.AddBuildTag,
	} {
		*value = expandEnv(*value)
	}
	for i := range s.FileNames {
		s.FileNames[i] = expandEnv(s.FileNames[i])
	}
	for _, definition := range FieldDefinitions() {
		slot := s.Fields.Slot(definition.Key)
		*slot = expandEnv(*slot)
	}
}

// Validate checks for required and enumerated values.
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.Path) == "" {
		return errors.New("path is required")
	}
	if len(s.FileNames) == 0 {
		return errors.New("at least one file name pattern must be configured")
	}

	switch strings.ToLower(s.LogLevel) {
	case LogLevelNormal, LogLevelVerbose, LogLevelOff, "":
	default:
		return fmt.Errorf("log_level must be one of %q, %q or %q, got %q",
			LogLevelNormal, LogLevelVerbose, LogLevelOff, s.LogLevel)
	}

	for _, definition := range FieldDefinitions() {
		if !definition.IsPicklist {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(*s.Fields.Slot(definition.Key))) {
		case PicklistTrue, PicklistFalse, PicklistIgnore, "":
		default:
			return fmt.Errorf("%s must be %q, %q or %q", definition.Key, PicklistTrue, PicklistFalse, PicklistIgnore)
		}
	}

	return nil
}

// SplitFileNames flattens comma and newline separated patterns, trimming
// blanks and dropping empty entries.
func SplitFileNames(raw []string) []string {
	result := make([]string, 0, len(raw))
	for _, entry := range raw {
		for _, pattern := range strings.FieldsFunc(entry, func(r rune) bool {
			return r == ',' || r == '\n' || r == '\r'
		}) {
			if trimmed := strings.TrimSpace(pattern); trimmed != "" {
				result = append(result, trimmed)
			}
		}
	}
	return result
}

func expandEnv(raw string) string {
	if !strings.Contains(raw, "${") {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
