package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	xcbuilder "github.com/openweb3-io/bankclient/builder"
	"github.com/openweb3-io/bankclient/factory/defaults/networks"
	xc "github.com/openweb3-io/bankclient/types"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const EnvKeyPrefix = "BANK"

// Config is the configuration of the bank CLI, read from flags, BANK_*
// environment variables, a .env file and an optional YAML file, in that
// order of precedence.
type Config struct {
	Network  string `mapstructure:"network"`
	URL      string `mapstructure:"url"`
	ChainID  int64  `mapstructure:"chain_id"`
	Contract string `mapstructure:"contract"`

	PrivateKey       Secret `mapstructure:"private_key"`
	Keystore         string `mapstructure:"keystore"`
	KeystorePassword Secret `mapstructure:"keystore_password"`
	// skip the authorization prompt
	AutoApprove bool `mapstructure:"auto_approve"`

	GasMultiplier float64 `mapstructure:"gas_multiplier"`
	// low, market or aggressive
	Priority string `mapstructure:"priority"`
	// fixed gas limit, estimated when zero
	GasLimit uint64 `mapstructure:"gas_limit"`
	// zero keeps the network's own setting
	ConfirmationTimeout      time.Duration `mapstructure:"confirmation_timeout"`
	ConfirmationPollInterval time.Duration `mapstructure:"confirmation_poll_interval"`

	LogLevel string `mapstructure:"log_level"`
}

var defaults = map[string]interface{}{
	"network":                    networks.Default,
	"url":                        "",
	"chain_id":                   0,
	"contract":                   string(xc.DefaultContractAddress),
	"private_key":                "",
	"keystore":                   "",
	"keystore_password":          "",
	"auto_approve":               false,
	"gas_multiplier":             0.0,
	"priority":                   "",
	"gas_limit":                  0,
	"confirmation_timeout":       "0s",
	"confirmation_poll_interval": "0s",
	"log_level":                  "info",
}

// New returns a viper instance with the defaults and the environment bound.
func New() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvKeyPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadDotEnv loads .env files into the environment, existing variables win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	existing := []string{}
	for _, file := range files {
		if _, err := os.Stat(file); err == nil {
			existing = append(existing, file)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return errors.Wrap(godotenv.Load(existing...), "loading .env")
}

// Load reads configFile, when given, and decodes the merged configuration.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", configFile)
		}
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) Validate() error {
	if cfg.Network == "" && cfg.URL == "" {
		return errors.New("either a network or an rpc url is required")
	}
	if cfg.PrivateKey.IsSet() && cfg.Keystore != "" {
		return errors.New("private_key and keystore are mutually exclusive")
	}
	if cfg.ConfirmationTimeout < 0 || cfg.ConfirmationPollInterval < 0 {
		return errors.New("confirmation durations must not be negative")
	}
	if cfg.Priority != "" {
		if _, ok := xc.GasFeePriority(cfg.Priority).GetDefault(); !ok {
			return errors.Errorf("invalid priority %q, expected low, market or aggressive", cfg.Priority)
		}
	}
	return nil
}

// CallOptions are the fee options attached to every deposit and withdraw.
func (cfg *Config) CallOptions() []xcbuilder.BuilderOption {
	options := []xcbuilder.BuilderOption{}
	if cfg.Priority != "" {
		options = append(options, xcbuilder.WithPriority(xc.GasFeePriority(cfg.Priority)))
	}
	if cfg.GasLimit > 0 {
		options = append(options, xcbuilder.WithGasLimit(cfg.GasLimit))
	}
	return options
}

// Apply overlays the configured overrides on a network definition.
func (cfg *Config) Apply(chain *xc.ChainConfig) *xc.ChainConfig {
	result := *chain
	if cfg.URL != "" {
		result.URL = cfg.URL
	}
	if cfg.ChainID != 0 {
		result.ChainID = cfg.ChainID
	}
	if cfg.GasMultiplier > 0 {
		result.ChainGasMultiplier = cfg.GasMultiplier
	}
	if cfg.ConfirmationTimeout > 0 {
		result.ConfirmationTimeout = cfg.ConfirmationTimeout
	}
	if cfg.ConfirmationPollInterval > 0 {
		result.ConfirmationPollInterval = cfg.ConfirmationPollInterval
	}
	return &result
}

// ContractConfig is the contract the client talks to on chain.
func (cfg *Config) ContractConfig(chain *xc.ChainConfig) *xc.ContractConfig {
	contract := xc.ContractAddress(cfg.Contract)
	if contract == "" {
		contract = xc.DefaultContractAddress
	}
	return &xc.ContractConfig{
		Address:     contract,
		ChainConfig: chain,
	}
}
