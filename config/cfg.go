package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	// ClassPrefix maps a class name fragment to the label id prefix. Nil
	// Prefix marks a placeholder class.
	ClassPrefix struct {
		Class  string  `yaml:"class" validate:"required"`
		Prefix *string `yaml:"prefix"`
	}

	ModuleConfig struct {
		Module    string `yaml:"module"`
		SubModule string `yaml:"sub_module"`
		PageName  string `yaml:"page_name"`
	}

	DocumentConfig struct {
		InputPath             string        `yaml:"input_path"`
		OutputPath            string        `yaml:"output_path"`
		FileNameTransliterate bool          `yaml:"file_name_transliterate"`
		FunctionName          string        `yaml:"function_name" validate:"required"`
		ClassPrefixes         []ClassPrefix `yaml:"class_prefixes" validate:"min=1,dive"`
		DefaultPrefix         string        `yaml:"default_prefix" validate:"required"`
		PlaceholderClass      string        `yaml:"placeholder_class" validate:"required"`
		CTAClass              string        `yaml:"cta_class" validate:"required"`
		Module                ModuleConfig  `yaml:"module"`
		SheetName             string        `yaml:"sheet_name" validate:"required,max=31"`
		PrintTable            bool          `yaml:"print_table"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Document  DocumentConfig `yaml:"document"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to
// provide sane defaults and performs validation.
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
