package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"gopkg.in/yaml.v3"
)

const (
	defaultLogFile  = "avlctl.log"
	defaultLogSize  = 1048576
	defaultLogCount = 10

	// logger.Initialise refuses anything smaller
	minimumLogSize  = 20000
	minimumLogCount = 10
)

// ErrLogging is returned by LoadConfiguration for a logging section
// that logger.Initialise would refuse.
var ErrLogging = errors.New("invalid logging configuration")

// LoggingConfiguration is the YAML form of logger.Configuration.
type LoggingConfiguration struct {
	Directory string            `yaml:"directory"`
	File      string            `yaml:"file"`
	Size      int               `yaml:"size"`
	Count     int               `yaml:"count"`
	Console   bool              `yaml:"console"`
	Levels    map[string]string `yaml:"levels"`
}

// Configuration is read from the file given by --config.
type Configuration struct {
	Logging LoggingConfiguration `yaml:"logging"`
}

func defaultConfiguration() *Configuration {
	return &Configuration{
		Logging: LoggingConfiguration{
			Directory: os.TempDir(),
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "info",
			},
		},
	}
}

// LoadConfiguration reads the YAML file at path over the defaults.
// An empty path gives the defaults.
func LoadConfiguration(path string) (*Configuration, error) {
	config := defaultConfiguration()
	if "" == path {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if nil != err {
		return nil, fmt.Errorf("read configuration: %w", err)
	}

	if err := yaml.Unmarshal(data, config); nil != err {
		return nil, fmt.Errorf("parse configuration %q: %w", path, err)
	}

	if nil == config.Logging.Levels {
		config.Logging.Levels = map[string]string{}
	}
	if _, ok := config.Logging.Levels[logger.DefaultTag]; !ok {
		config.Logging.Levels[logger.DefaultTag] = "info"
	}

	if err := config.Logging.validate(); nil != err {
		return nil, fmt.Errorf("configuration %q: %w", path, err)
	}

	return config, nil
}

func (l LoggingConfiguration) validate() error {
	switch {
	case "" == l.Directory:
		return fmt.Errorf("%w: directory cannot be empty", ErrLogging)
	case "" == l.File:
		return fmt.Errorf("%w: file cannot be empty", ErrLogging)
	case filepath.Base(l.File) != l.File:
		return fmt.Errorf("%w: file %q cannot be a path name", ErrLogging, l.File)
	case l.Size < minimumLogSize:
		return fmt.Errorf("%w: size %d cannot be less than %d", ErrLogging, l.Size, minimumLogSize)
	case l.Count < minimumLogCount:
		return fmt.Errorf("%w: count %d cannot be less than %d", ErrLogging, l.Count, minimumLogCount)
	}
	return nil
}

// toLogger converts the logging section for logger.Initialise.
func (l LoggingConfiguration) toLogger() logger.Configuration {
	return logger.Configuration{
		Directory: l.Directory,
		File:      l.File,
		Size:      l.Size,
		Count:     l.Count,
		Console:   l.Console,
		Levels:    l.Levels,
	}
}
