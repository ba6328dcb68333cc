package types

import (
	"fmt"
	"time"
)

// Decimals of ether and of every amount the bank contract accepts.
const DefaultDecimals int32 = 18

// ChainConfig describes the network the bank contract is deployed on.
type ChainConfig struct {
	Chain    string `mapstructure:"chain" yaml:"chain"`
	Network  string `mapstructure:"network" yaml:"network,omitempty"`
	URL      string `mapstructure:"url" yaml:"url"`
	ChainID  int64  `mapstructure:"chain_id" yaml:"chain_id,omitempty"`
	Decimals int32  `mapstructure:"decimals" yaml:"decimals,omitempty"`

	ChainGasMultiplier float64 `mapstructure:"chain_gas_multiplier" yaml:"chain_gas_multiplier,omitempty"`
	// upper bound of the priority fee, in gwei
	ChainMaxGasPrice   float64 `mapstructure:"chain_max_gas_price" yaml:"chain_max_gas_price,omitempty"`
	GasLimitMultiplier float64 `mapstructure:"gas_limit_multiplier" yaml:"gas_limit_multiplier,omitempty"`

	ConfirmationTimeout      time.Duration `mapstructure:"confirmation_timeout" yaml:"confirmation_timeout,omitempty"`
	ConfirmationPollInterval time.Duration `mapstructure:"confirmation_poll_interval" yaml:"confirmation_poll_interval,omitempty"`
}

func (chain *ChainConfig) GetDecimals() int32 {
	if chain.Decimals == 0 {
		return DefaultDecimals
	}
	return chain.Decimals
}

func (chain *ChainConfig) String() string {
	return fmt.Sprintf(
		"ChainConfig(chain=%s network=%s chain_id=%d url=%s)",
		chain.Chain,
		chain.Network,
		chain.ChainID,
		chain.URL,
	)
}

// ContractConfig points the client at one deployed bank contract.
type ContractConfig struct {
	Address     ContractAddress `mapstructure:"address" yaml:"address"`
	ChainConfig *ChainConfig    `mapstructure:"-" yaml:"-"`
}

func (c *ContractConfig) GetContract() ContractAddress {
	return c.Address
}

func (c *ContractConfig) GetChain() *ChainConfig {
	return c.ChainConfig
}

func (c *ContractConfig) GetDecimals() int32 {
	return c.ChainConfig.GetDecimals()
}
