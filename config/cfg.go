package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	validator "github.com/go-playground/validator/v10"
	"golang.org/x/text/encoding/ianaindex"
	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	BalanceConfig struct {
		ShortParagraph int     `yaml:"short_paragraph" validate:"gte=0"`
		TailRatio      float64 `yaml:"tail_ratio" validate:"gt=0"`
	}

	ReflowConfig struct {
		Width       int           `yaml:"width" validate:"min=1"`
		PrefixDepth int           `yaml:"prefix_depth" validate:"min=1,max=16"`
		Balance     BalanceConfig `yaml:"balance"`
		Workers     int           `yaml:"workers" validate:"gte=0"`
		Cache       bool          `yaml:"cache"`
		MaxLineSize int           `yaml:"max_line_size" validate:"min=4096"`
	}

	InputConfig struct {
		// IANA character set name, empty means UTF-8
		Encoding string `yaml:"encoding"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Reflow    ReflowConfig   `yaml:"reflow"`
		Input     InputConfig    `yaml:"input"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

// checkEncoding makes sure requested character set is known and supported,
// otherwise we would only find out after reading the input.
func checkEncoding(sl validator.StructLevel) {
	cfg, ok := sl.Current().Interface().(Config)
	if !ok || len(cfg.Input.Encoding) == 0 {
		return
	}
	if enc, err := ianaindex.IANA.Encoding(cfg.Input.Encoding); err != nil || enc == nil {
		sl.ReportError(cfg.Input.Encoding, "Encoding", "Encoding", "iana_charset", "")
	}
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, fmt.Errorf("failed to sanitize configuration: %w", err)
		}
		if err := gencfg.Validate(cfg, gencfg.WithAdditionalChecks(checkEncoding)); err != nil {
			return nil, fmt.Errorf("failed to validate configuration: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
