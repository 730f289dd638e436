package archiver

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const DefaultConcurrency = 5

type Target struct {
	Agency string `yaml:"agency" validate:"required"`
	Route  string `yaml:"route" validate:"required"`
}

type Config struct {
	Concurrency int      `yaml:"concurrency" validate:"gte=0,lte=64"`
	Targets     []Target `yaml:"targets" validate:"required,min=1,dive"`
}

func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("decoding archiver config: %w", err)
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("validating archiver config: %w", err)
	}

	if config.Concurrency == 0 {
		config.Concurrency = DefaultConcurrency
	}

	return &config, nil
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseConfig(data)
}
