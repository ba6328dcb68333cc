package wallet

import (
	"context"
	"errors"

	xc "github.com/openweb3-io/bankclient/types"
)

//go:generate mockgen -destination=mock/wallet.go -package=mock . Provider,ReadConnection,SigningConnection

// ErrRejected is returned by a Provider when the user declines a request.
var ErrRejected = errors.New("user rejected the request")

// Provider is the wallet agent holding the user's keys.
type Provider interface {
	// Ask the user to expose accounts; the first account is the active one
	RequestAccounts(ctx context.Context) ([]xc.Address, error)

	// Connection usable for view calls without any authorization
	ReadConnection(ctx context.Context) (ReadConnection, error)

	// Connection that submits transactions from account
	SigningConnection(ctx context.Context, account xc.Address) (SigningConnection, error)
}

type ReadConnection interface {
	Call(ctx context.Context, contract xc.ContractAddress, data []byte) ([]byte, error)
}

type SigningConnection interface {
	Account() xc.Address

	// Sign and submit a call; value is attached as native currency
	SendTransaction(ctx context.Context, contract xc.ContractAddress, value xc.BigInt, data []byte) (xc.TxHash, error)

	// Block until the tx is mined; a context or confirmation deadline yields ErrConfirmationTimeout
	WaitForReceipt(ctx context.Context, hash xc.TxHash) (*xc.TransactionReceipt, error)

	// Receipt of a mined tx, TxStatusPending while unknown to the chain
	TransactionReceipt(ctx context.Context, hash xc.TxHash) (*xc.TransactionReceipt, error)
}
