package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config models lexboard.yml.
type Config struct {
	Court struct {
		Name string `yaml:"name"`
	} `yaml:"court"`
	Areas struct {
		Catalog map[string]struct {
			Description string `yaml:"description"`
		} `yaml:"catalog"`
	} `yaml:"areas"`
	States []string `yaml:"states"`
	Tasks  struct {
		Titles  map[string]string `yaml:"titles"`
		DueDays map[string]int    `yaml:"due_days"`
	} `yaml:"tasks"`
}

// Load reads and validates config from workspace.
func Load(workspace string) (*Config, error) {
	path := Path(workspace)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config %s not found; run lxb init to create one", path)
		}
		return nil, err
	}
	return FromYAML(data)
}

// Validate ensures the config meets required structure.
func (c *Config) Validate() error {
	if c.Court.Name == "" {
		return fmt.Errorf("config.court.name is required")
	}
	for area := range c.Areas.Catalog {
		if area == "" {
			return fmt.Errorf("config.areas.catalog contains empty area label")
		}
	}
	for _, state := range c.States {
		if len(state) != 2 {
			return fmt.Errorf("state code %q must be two letters", state)
		}
	}
	for taskType, title := range c.Tasks.Titles {
		if taskType == "" {
			return fmt.Errorf("config.tasks.titles contains empty task type")
		}
		if title == "" {
			return fmt.Errorf("title for task type %s is empty", taskType)
		}
	}
	for taskType, days := range c.Tasks.DueDays {
		if days < 0 {
			return fmt.Errorf("due_days for task type %s must not be negative", taskType)
		}
	}
	return nil
}

// KnownArea reports whether the area label is in the catalog. An empty
// catalog accepts any label.
func (c *Config) KnownArea(area string) bool {
	if len(c.Areas.Catalog) == 0 {
		return true
	}
	_, ok := c.Areas.Catalog[area]
	return ok
}

// KnownState reports whether the state code is configured. An empty list
// accepts any code.
func (c *Config) KnownState(state string) bool {
	if len(c.States) == 0 {
		return true
	}
	for _, s := range c.States {
		if s == state {
			return true
		}
	}
	return false
}

// TaskTitle returns the configured title for a derived task type.
func (c *Config) TaskTitle(taskType string) string {
	if t, ok := c.Tasks.Titles[taskType]; ok {
		return t
	}
	return taskType
}

// TaskDueDays returns the configured due window for a derived task type;
// 0 means no due date.
func (c *Config) TaskDueDays(taskType string) int {
	return c.Tasks.DueDays[taskType]
}

// Path returns the config file path for a workspace.
func Path(workspace string) string {
	if workspace == "" {
		workspace = "."
	}
	return filepath.Join(workspace, "lexboard.yml")
}

// GenerateDefault returns default config YAML.
func GenerateDefault(courtName string) string {
	return fmt.Sprintf(defaultTemplate, courtName)
}

// LoadOptional returns nil,nil if the config file does not exist.
func LoadOptional(workspace string) (*Config, error) {
	path := Path(workspace)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return FromYAML(data)
}

// Default returns the default Config struct.
func Default(courtName string) *Config {
	var cfg Config
	cfg.Court.Name = courtName
	_ = yaml.NewDecoder(bytes.NewBufferString(fmt.Sprintf(defaultTemplate, courtName))).Decode(&cfg)
	return &cfg
}

// FromYAML parses and validates config from raw YAML bytes.
func FromYAML(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FromFile reads YAML config from the given path.
func FromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromYAML(data)
}

const defaultTemplate = `court:
  name: %s

areas:
  catalog:
    Civil:
      description: "Civil litigation"
    Criminal:
      description: "Criminal proceedings"
    Labor:
      description: "Labor and employment"
    Family:
      description: "Family law"
    Tax:
      description: "Tax disputes"

states: [AC, AL, AP, AM, BA, CE, DF, ES, GO, MA, MT, MS, MG, PA, PB, PR, PE, PI, RJ, RN, RS, RO, RR, SC, SP, SE, TO]

tasks:
  titles:
    upload_minutes: "Upload hearing minutes"
    assign_professional: "Assign a professional"
    payment: "Register hearing payment"

  due_days:
    upload_minutes: 3
    assign_professional: 2
    payment: 7
`
