package tx_input

import (
	"fmt"

	"github.com/openweb3-io/bankclient/builder"
	xc "github.com/openweb3-io/bankclient/types"
)

// TxInput for EVM
type TxInput struct {
	Nonce    uint64 `json:"nonce,omitempty"`
	GasLimit uint64 `json:"gas_limit,omitempty"`
	// DynamicFeeTx
	GasFeeCap xc.BigInt `json:"gas_fee_cap,omitempty"`
	GasTipCap xc.BigInt `json:"gas_tip_cap,omitempty"`
	ChainId   xc.BigInt `json:"chain_id,omitempty"`
}

var _ xc.TxInput = &TxInput{}
var _ builder.TxInputWithGasLimit = &TxInput{}

func NewTxInput() *TxInput {
	return &TxInput{}
}

func (input *TxInput) SetGasFeePriority(priority xc.GasFeePriority) error {
	multiplier, ok := priority.GetDefault()
	if !ok {
		return fmt.Errorf("invalid gas fee priority: %q", priority)
	}
	input.GasFeeCap = xc.MultiplyByFloat(input.GasFeeCap, multiplier)
	input.GasTipCap = xc.MultiplyByFloat(input.GasTipCap, multiplier)
	return nil
}

func (input *TxInput) SetGasLimit(gasLimit uint64) {
	input.GasLimit = gasLimit
}
