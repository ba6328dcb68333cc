package builder

import (
	"github.com/openweb3-io/bankclient/types"
)

// TxBuilder is a Builder that can call the bank contract
type TxBuilder interface {
	NewDeposit(args *CallArgs, input types.TxInput) (types.Tx, error)
	NewWithdraw(args *CallArgs, input types.TxInput) (types.Tx, error)
}
