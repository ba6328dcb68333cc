package setup

import (
	"context"
	"fmt"

	"github.com/openweb3-io/bankclient/bank"
	"github.com/openweb3-io/bankclient/config"
	"github.com/openweb3-io/bankclient/factory"
	"github.com/openweb3-io/bankclient/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type ContextKey string

const (
	ContextFactory ContextKey = "factory"
	ContextChain   ContextKey = "chain"
	ContextBank    ContextKey = "bank"
)

func WrapFactory(ctx context.Context, bankFactory *factory.Factory) context.Context {
	return context.WithValue(ctx, ContextFactory, bankFactory)
}

func UnwrapFactory(ctx context.Context) *factory.Factory {
	return ctx.Value(ContextFactory).(*factory.Factory)
}

func WrapChain(ctx context.Context, chain *types.ChainConfig) context.Context {
	return context.WithValue(ctx, ContextChain, chain)
}

func UnwrapChain(ctx context.Context) *types.ChainConfig {
	return ctx.Value(ContextChain).(*types.ChainConfig)
}

func WrapBank(ctx context.Context, client *bank.Client) context.Context {
	return context.WithValue(ctx, ContextBank, client)
}

func UnwrapBank(ctx context.Context) *bank.Client {
	return ctx.Value(ContextBank).(*bank.Client)
}

func CreateContext(ctx context.Context, bankFactory *factory.Factory, chain *types.ChainConfig, client *bank.Client) context.Context {
	ctx = WrapFactory(ctx, bankFactory)
	ctx = WrapChain(ctx, chain)
	ctx = WrapBank(ctx, client)
	return ctx
}

// flag name -> config key
var flagKeys = map[string]string{
	"network":      "network",
	"rpc":          "url",
	"chain-id":     "chain_id",
	"contract":     "contract",
	"private-key":  "private_key",
	"keystore":     "keystore",
	"auto-approve": "auto_approve",
	"priority":     "priority",
	"gas-limit":    "gas_limit",
	"log-level":    "log_level",
}

func AddRpcArgs(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", "", "YAML config file. Optional.")
	cmd.PersistentFlags().String("env-file", ".env", "dotenv file loaded before reading BANK_* variables.")
	cmd.PersistentFlags().String("network", "", "Network to use (default sepolia).")
	cmd.PersistentFlags().String("rpc", "", "RPC url to use. Optional.")
	cmd.PersistentFlags().Int64("chain-id", 0, "Chain id, fetched from the node when unset.")
	cmd.PersistentFlags().String("contract", "", "Bank contract address. Optional.")
	cmd.PersistentFlags().String("private-key", "", "Private key or secret reference (env:, file:, vault:, gsm:).")
	cmd.PersistentFlags().String("keystore", "", "Keystore file, unlocked with BANK_KEYSTORE_PASSWORD.")
	cmd.PersistentFlags().Bool("auto-approve", false, "Authorize the account without prompting.")
	cmd.PersistentFlags().String("priority", "", "Gas fee priority: low, market or aggressive.")
	cmd.PersistentFlags().Uint64("gas-limit", 0, "Fixed gas limit, estimated when unset.")
	cmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error).")
}

// BindFlags makes explicitly set flags take precedence over every other source.
func BindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for flag, key := range flagKeys {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			return fmt.Errorf("unknown flag --%s", flag)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}

func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	if err := config.LoadDotEnv(envFile); err != nil {
		return nil, err
	}
	v := config.New()
	if err := BindFlags(v, cmd); err != nil {
		return nil, err
	}
	configFile, _ := cmd.Flags().GetString("config")
	return config.Load(v, configFile)
}

func LoadFactory(cfg *config.Config) (*factory.Factory, error) {
	return factory.NewDefaultFactory(), nil
}

// LoadChain resolves the configured network and applies the overrides. An
// unknown network is accepted when an rpc url is given.
func LoadChain(bankFactory *factory.Factory, cfg *config.Config) (*types.ChainConfig, error) {
	chain, err := bankFactory.GetNetwork(cfg.Network)
	if err != nil {
		if cfg.URL == "" {
			return nil, err
		}
		chain = &types.ChainConfig{
			Chain:   "ETH",
			Network: cfg.Network,
		}
	}
	return cfg.Apply(chain), nil
}
