package builder

import (
	"fmt"

	"github.com/openweb3-io/bankclient/types"
)

// CallArgs are the arguments of one mutating call on the bank contract. The
// amount is both the method argument and, for deposits, the attached value, so
// the two can never disagree.
type CallArgs struct {
	options  builderOptions
	kind     types.OperationKind
	from     types.Address
	contract types.ContractAddress
	amount   types.BigInt
}

var _ TransactionOptions = &CallArgs{}

func NewCallArgs(kind types.OperationKind, from types.Address, contract types.ContractAddress, amount types.BigInt, options ...BuilderOption) (*CallArgs, error) {
	builderOptions := builderOptions{}
	args := &CallArgs{
		options:  builderOptions,
		kind:     kind,
		from:     from,
		contract: contract,
		amount:   amount,
	}
	for _, opt := range options {
		err := opt(&args.options)
		if err != nil {
			return args, err
		}
	}

	switch kind {
	case types.Deposit, types.Withdraw:
	default:
		return args, fmt.Errorf("unsupported contract call: %q", kind)
	}
	if amount.Sign() <= 0 {
		return args, types.WrapErr(types.ErrInvalidAmount, fmt.Errorf("amount must be positive, got %s", amount.String()))
	}
	return args, nil
}

func (args *CallArgs) GetKind() types.OperationKind       { return args.kind }
func (args *CallArgs) GetFrom() types.Address             { return args.from }
func (args *CallArgs) GetContract() types.ContractAddress { return args.contract }
func (args *CallArgs) GetAmount() types.BigInt            { return args.amount }

// GetValue is the native value attached to the call: the amount for deposits, zero otherwise.
func (args *CallArgs) GetValue() types.BigInt {
	if args.kind == types.Deposit {
		return args.amount
	}
	return types.NewBigIntFromUint64(0)
}

// Exposed options
func (args *CallArgs) GetPriority() (types.GasFeePriority, bool) { return args.options.GetPriority() }
func (args *CallArgs) GetGasLimit() (uint64, bool)               { return args.options.GetGasLimit() }
