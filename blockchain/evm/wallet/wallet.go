package wallet

import (
	"context"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/openweb3-io/bankclient/blockchain/evm"
	"github.com/openweb3-io/bankclient/blockchain/evm/abi/bank"
	"github.com/openweb3-io/bankclient/blockchain/evm/builder"
	xcbuilder "github.com/openweb3-io/bankclient/builder"
	xclient "github.com/openweb3-io/bankclient/client"
	"github.com/openweb3-io/bankclient/signer"
	xc "github.com/openweb3-io/bankclient/types"
	xcwallet "github.com/openweb3-io/bankclient/wallet"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Authorizer decides whether account may be exposed to the client.
type Authorizer func(ctx context.Context, account xc.Address) (bool, error)

func AutoApprove(ctx context.Context, account xc.Address) (bool, error) {
	return true, nil
}

func Deny(ctx context.Context, account xc.Address) (bool, error) {
	return false, nil
}

// LocalWallet is a wallet agent backed by a local key and a JSON-RPC node.
type LocalWallet struct {
	client    xclient.IClient
	builder   builder.TxBuilder
	signer    signer.Signer
	authorize Authorizer
	// fee options applied to every call
	options []xcbuilder.BuilderOption

	mu         sync.Mutex
	authorized map[string]bool
}

var _ xcwallet.Provider = &LocalWallet{}

func NewLocalWallet(client xclient.IClient, txBuilder builder.TxBuilder, s signer.Signer, authorize Authorizer, options ...xcbuilder.BuilderOption) *LocalWallet {
	if authorize == nil {
		authorize = AutoApprove
	}
	return &LocalWallet{
		client:     client,
		builder:    txBuilder,
		signer:     s,
		authorize:  authorize,
		options:    options,
		authorized: map[string]bool{},
	}
}

func (w *LocalWallet) account(ctx context.Context) (xc.Address, error) {
	pubkey, err := w.signer.PublicKey(ctx)
	if err != nil {
		return "", errors.Wrap(err, "reading public key")
	}
	return evm.AddressFromPublicKey(pubkey)
}

func (w *LocalWallet) RequestAccounts(ctx context.Context) ([]xc.Address, error) {
	account, err := w.account(ctx)
	if err != nil {
		return nil, err
	}
	w.mu.Lock()
	known := w.authorized[strings.ToLower(string(account))]
	w.mu.Unlock()
	if known {
		return []xc.Address{account}, nil
	}

	ok, err := w.authorize(ctx, account)
	if err != nil {
		return nil, err
	}
	if !ok {
		zap.S().Infow("account authorization declined", "account", account)
		return nil, xcwallet.ErrRejected
	}

	w.mu.Lock()
	w.authorized[strings.ToLower(string(account))] = true
	w.mu.Unlock()
	return []xc.Address{account}, nil
}

func (w *LocalWallet) ReadConnection(ctx context.Context) (xcwallet.ReadConnection, error) {
	return &readConnection{client: w.client}, nil
}

func (w *LocalWallet) SigningConnection(ctx context.Context, account xc.Address) (xcwallet.SigningConnection, error) {
	w.mu.Lock()
	ok := w.authorized[strings.ToLower(string(account))]
	w.mu.Unlock()
	if !ok {
		return nil, errors.Wrapf(xcwallet.ErrRejected, "account %s is not authorized", account)
	}
	return &signingConnection{wallet: w, account: account}, nil
}

type readConnection struct {
	client xclient.IClient
}

func (c *readConnection) Call(ctx context.Context, contract xc.ContractAddress, data []byte) ([]byte, error) {
	return c.client.CallContract(ctx, contract, data)
}

type signingConnection struct {
	wallet  *LocalWallet
	account xc.Address
}

func (c *signingConnection) Account() xc.Address {
	return c.account
}

// SendTransaction signs and broadcasts a bank call. The calldata is decoded so
// the tx is rebuilt by the bank tx builder; a value that does not match what
// the call requires is refused.
func (c *signingConnection) SendTransaction(ctx context.Context, contract xc.ContractAddress, value xc.BigInt, data []byte) (xc.TxHash, error) {
	kind, amount, err := bank.ParseCall(data)
	if err != nil {
		return "", err
	}
	args, err := xcbuilder.NewCallArgs(kind, c.account, contract, amount, c.wallet.options...)
	if err != nil {
		return "", err
	}
	expected := args.GetValue()
	if value.Cmp(&expected) != 0 {
		return "", errors.Errorf("%s expects value %s, got %s", kind, expected.String(), value.String())
	}

	input, err := c.wallet.client.FetchTxInput(ctx, args)
	if err != nil {
		return "", err
	}
	var tx xc.Tx
	switch kind {
	case xc.Deposit:
		tx, err = c.wallet.builder.NewDeposit(args, input)
	default:
		tx, err = c.wallet.builder.NewWithdraw(args, input)
	}
	if err != nil {
		return "", err
	}

	sighashes, err := tx.Sighashes()
	if err != nil {
		return "", err
	}
	signatures := []xc.TxSignature{}
	for _, sighash := range sighashes {
		sig, err := c.wallet.signer.Sign(sighash)
		if err != nil {
			return "", errors.Wrap(err, "signing tx")
		}
		signatures = append(signatures, sig)
	}
	if err := tx.AddSignatures(signatures...); err != nil {
		return "", err
	}

	if err := c.wallet.client.BroadcastTx(ctx, tx); err != nil {
		return "", err
	}
	zap.S().Infow("submitted bank call", "kind", kind, "account", c.account, "tx_hash", tx.Hash())
	return tx.Hash(), nil
}

func (c *signingConnection) WaitForReceipt(ctx context.Context, hash xc.TxHash) (*xc.TransactionReceipt, error) {
	receipt, err := c.wallet.client.WaitForReceipt(ctx, hash)
	if err != nil {
		return nil, err
	}
	receipt.From = c.account
	return receipt, nil
}

func (c *signingConnection) TransactionReceipt(ctx context.Context, hash xc.TxHash) (*xc.TransactionReceipt, error) {
	receipt, err := c.wallet.client.FetchReceipt(ctx, hash)
	if errors.Is(err, ethereum.NotFound) {
		return &xc.TransactionReceipt{TxHash: hash, From: c.account, Status: xc.TxStatusPending}, nil
	}
	if err != nil {
		return nil, err
	}
	receipt.From = c.account
	return receipt, nil
}
