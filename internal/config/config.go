// Package config loads the YAML configuration shared by cv2html and html2pdf.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/alnah/go-cv2pdf/internal/fileutil"
	"github.com/alnah/go-cv2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidConfig   = errors.New("invalid config")
)

// Engine names accepted by browser.engine.
const (
	EngineRod      = "rod"
	EngineChromedp = "chromedp"
)

// AppDirName is the directory searched under the user config directory.
const AppDirName = "go-cv2pdf"

// Config holds every value that can come from a configuration file.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Browser BrowserConfig `yaml:"browser"`
}

// RenderConfig sets header values the CV text does not carry.
type RenderConfig struct {
	Location string `yaml:"location" validate:"max=200"` // first part of the contact line
	Title    string `yaml:"title" validate:"max=200"`    // overrides the derived <title>
}

// BrowserConfig drives the pagination stage.
type BrowserConfig struct {
	Engine     string `yaml:"engine" validate:"omitempty,oneof=rod chromedp"`
	Timeout    string `yaml:"timeout" validate:"omitempty,duration"`    // e.g. "45s"
	Bin        string `yaml:"bin" validate:"max=4096"`                  // browser executable
	NoSandbox  bool   `yaml:"noSandbox"`                                // needed in most containers
	Download   bool   `yaml:"download"`                                 // let go-rod fetch Chromium
	IdleWindow string `yaml:"idleWindow" validate:"omitempty,duration"` // quiet period before printing
}

// TimeoutDuration returns browser.timeout, or 0 when unset.
func (b BrowserConfig) TimeoutDuration() time.Duration {
	return parseDuration(b.Timeout)
}

// IdleWindowDuration returns browser.idleWindow, or 0 when unset.
func (b BrowserConfig) IdleWindowDuration() time.Duration {
	return parseDuration(b.IdleWindow)
}

// parseDuration is only called on validated values.
func parseDuration(s string) time.Duration {
	if s == "" {
		return 0
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return d
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their YAML key.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
		d, err := time.ParseDuration(fl.Field().String())
		return err == nil && d > 0
	})
	return v
}

// Validate checks field values. Called by LoadConfig; also available for
// callers that build a Config by hand.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// fieldMessage turns a validation failure into "render.title: ..." form.
func fieldMessage(fe validator.FieldError) string {
	key := fe.Namespace()
	if _, rest, ok := strings.Cut(key, "."); ok {
		key = rest // drop the root struct name
	}
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s: invalid value %q (must be one of %s)", key, fe.Value(), fe.Param())
	case "duration":
		return fmt.Sprintf("%s: invalid duration %q (e.g. 30s, 1m)", key, fe.Value())
	case "max":
		return fmt.Sprintf("%s: too long (max %s chars)", key, fe.Param())
	default:
		return fmt.Sprintf("%s: failed %s", key, fe.Tag())
	}
}

// DefaultConfig returns an empty configuration; every unset value falls back
// to the library default.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// userConfigDir is replaced in tests.
var userConfigDir = os.UserConfigDir

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/go-cv2pdf/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	if dir, err := userConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(dir, AppDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// SearchPaths lists the files resolveConfigPath would try for name.
func SearchPaths(name string) []string {
	paths := []string{name + ".yaml", name + ".yml"}
	if dir, err := userConfigDir(); err == nil {
		paths = append(paths,
			filepath.Join(dir, AppDirName, name+".yaml"),
			filepath.Join(dir, AppDirName, name+".yml"))
	}
	return paths
}
