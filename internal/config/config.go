// Package config loads extctl's layout, rent and logging settings from a
// YAML file and EXTCTL_* environment variables.
package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/joshuapare/stateext/ledger"
	"github.com/joshuapare/stateext/pkg/stateext"
	"github.com/joshuapare/stateext/pkg/types"
)

const (
	fileName  = "config"
	fileType  = "yaml"
	envPrefix = "EXTCTL"
	homeDir   = ".extctl"
)

// Defaults. The base length matches a 165-byte token account; the marker
// is "EXTSTATE".
const (
	DefaultBaseLen = 165
	DefaultMarker  = "4558545354415445"
	DefaultOwner   = "stateext-program"
)

// Config is the resolved configuration.
type Config struct {
	Layout LayoutConfig `mapstructure:"layout"`
	Rent   RentConfig   `mapstructure:"rent"`
	Log    LogConfig    `mapstructure:"log"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// LayoutConfig holds the layout keys: where the region sits and who owns it.
type LayoutConfig struct {
	BaseLen       int    `mapstructure:"base_len"`
	Marker        string `mapstructure:"marker"`
	Owner         string `mapstructure:"owner"`
	MaxExtensions int    `mapstructure:"max_extensions"`
	RentBasis     string `mapstructure:"rent_basis"`
}

// RentConfig holds the rent.* keys.
type RentConfig struct {
	LamportsPerByteYear uint64  `mapstructure:"lamports_per_byte_year"`
	ExemptionThreshold  float64 `mapstructure:"exemption_threshold"`
}

// LogConfig holds the log.* keys.
type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// Dir returns the default config directory (~/.extctl/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", homeDir)
	}
	return filepath.Join(home, homeDir)
}

// FilePath returns the default config file path (~/.extctl/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("layout.base_len", DefaultBaseLen)
	v.SetDefault("layout.marker", DefaultMarker)
	v.SetDefault("layout.owner", types.DerivePubkey(DefaultOwner).String())
	v.SetDefault("layout.max_extensions", 0)
	v.SetDefault("layout.rent_basis", stateext.RentOnTotal.String())
	v.SetDefault("rent.lamports_per_byte_year", ledger.DefaultLamportsPerByteYear)
	v.SetDefault("rent.exemption_threshold", ledger.DefaultExemptionThreshold)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.json", false)
}

// Load reads path, or the default file when path is empty, layered over
// defaults and under EXTCTL_* environment variables (EXTCTL_LAYOUT_BASE_LEN
// overrides layout.base_len). A missing default file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigFile(FilePath())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case path == "" && (errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)):
		default:
			return nil, fmt.Errorf("reading config %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if _, statErr := os.Stat(v.ConfigFileUsed()); statErr == nil {
		c.File = v.ConfigFileUsed()
	}
	return &c, nil
}

// StateLayout builds the extension layout.
func (c *Config) StateLayout() (stateext.Layout, error) {
	var l stateext.Layout

	raw, err := hex.DecodeString(strings.TrimPrefix(c.Layout.Marker, "0x"))
	if err != nil {
		return l, fmt.Errorf("layout.marker: %w", err)
	}
	if len(raw) != stateext.MarkerLen {
		return l, fmt.Errorf("layout.marker: %d bytes, want %d", len(raw), stateext.MarkerLen)
	}
	owner, err := types.ParsePubkey(c.Layout.Owner)
	if err != nil {
		return l, fmt.Errorf("layout.owner: %w", err)
	}
	basis, err := stateext.ParseRentBasis(c.Layout.RentBasis)
	if err != nil {
		return l, fmt.Errorf("layout.rent_basis: %w", err)
	}

	l.BaseLen = c.Layout.BaseLen
	copy(l.Marker[:], raw)
	l.Owner = owner
	l.MaxExtensions = c.Layout.MaxExtensions
	l.RentBasis = basis
	return l, l.Validate()
}

// RentSchedule builds the rent schedule.
func (c *Config) RentSchedule() ledger.Rent {
	return ledger.Rent{
		LamportsPerByteYear: c.Rent.LamportsPerByteYear,
		ExemptionThreshold:  c.Rent.ExemptionThreshold,
	}
}
