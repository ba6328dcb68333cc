package builder

import (
	"fmt"

	xc_types "github.com/openweb3-io/bankclient/types"
	"go.uber.org/zap"
)

// All possible builder arguments go in here, privately available.
// Then the public BuilderArgs can typecast and select which arguments are needed.
type builderOptions struct {
	gasFeePriority *xc_types.GasFeePriority
	gasLimit       *uint64
}

// All ArgumentBuilders should provide base arguments for transactions
type TransactionOptions interface {
	GetPriority() (xc_types.GasFeePriority, bool)
	GetGasLimit() (uint64, bool)
}

var _ TransactionOptions = &builderOptions{}

func get[T any](arg *T) (T, bool) {
	if arg == nil {
		var zero T
		return zero, false
	}
	return *arg, true
}

// Transaction options
func (opts *builderOptions) GetPriority() (xc_types.GasFeePriority, bool) {
	return get(opts.gasFeePriority)
}
func (opts *builderOptions) GetGasLimit() (uint64, bool) { return get(opts.gasLimit) }

type BuilderOption func(opts *builderOptions) error

func WithPriority(priority xc_types.GasFeePriority) BuilderOption {
	return func(opts *builderOptions) error {
		if _, ok := priority.GetDefault(); !ok {
			return fmt.Errorf("invalid gas fee priority: %q", priority)
		}
		opts.gasFeePriority = &priority
		return nil
	}
}

// Fix the gas limit instead of estimating it
func WithGasLimit(gasLimit uint64) BuilderOption {
	return func(opts *builderOptions) error {
		opts.gasLimit = &gasLimit
		return nil
	}
}

// Chain transaction inputs are fetched before the caller's options are known to
// the builder; this copies the options onto the input.
func SetTxInputOptions(txInput xc_types.TxInput, options TransactionOptions) {
	if priority, ok := options.GetPriority(); ok && priority != "" {
		err := txInput.SetGasFeePriority(priority)
		if err != nil {
			zap.S().Errorw("failed to set gas fee priority", "error", err)
		}
	}
	if gasLimit, ok := options.GetGasLimit(); ok {
		if withLimit, ok := txInput.(TxInputWithGasLimit); ok {
			withLimit.SetGasLimit(gasLimit)
		}
	}
}

type TxInputWithGasLimit interface {
	SetGasLimit(gasLimit uint64)
}
