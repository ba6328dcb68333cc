package client

import (
	"context"

	"github.com/openweb3-io/bankclient/builder"
	xc_types "github.com/openweb3-io/bankclient/types"
)

type IClient interface {
	// Fetch the nonce, fees and gas limit for a bank call
	FetchTxInput(ctx context.Context, args *builder.CallArgs) (xc_types.TxInput, error)

	/**
	 * read-only contract call
	 */
	CallContract(ctx context.Context, contract xc_types.ContractAddress, data []byte) ([]byte, error)

	/**
	 * get native balance
	 */
	FetchNativeBalance(ctx context.Context, address xc_types.Address) (*xc_types.BigInt, error)

	/**
	 * send signed tx
	 */
	BroadcastTx(ctx context.Context, tx xc_types.Tx) error

	// Receipt of a mined tx
	FetchReceipt(ctx context.Context, txHash xc_types.TxHash) (*xc_types.TransactionReceipt, error)

	// Block until the tx is mined or the confirmation timeout passes
	WaitForReceipt(ctx context.Context, txHash xc_types.TxHash) (*xc_types.TransactionReceipt, error)
}

type ClientError string

// A transaction terminally failed due to no balance
const NoBalance ClientError = "NoBalance"

// A transaction terminally failed due to no balance after accounting for gas cost
const NoBalanceForGas ClientError = "NoBalanceForGas"

// A transaction terminally failed due to another reason
const TransactionFailure ClientError = "TransactionFailure"

// A transaction failed to submit because it already exists
const TransactionExists ClientError = "TransactionExists"

// deadline exceeded and transaction can no longer be accepted
const TransactionTimedOut ClientError = "TransactionTimedOut"

// A network error occured -- there may be nothing wrong with the transaction
const NetworkError ClientError = "NetworkError"

// No outcome for this error known
const UnknownError ClientError = "UnknownError"
