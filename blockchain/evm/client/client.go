package client

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/openweb3-io/bankclient/blockchain/evm/abi/bank"
	"github.com/openweb3-io/bankclient/blockchain/evm/address"
	"github.com/openweb3-io/bankclient/blockchain/evm/tx_input"
	xcbuilder "github.com/openweb3-io/bankclient/builder"
	xclient "github.com/openweb3-io/bankclient/client"
	xc "github.com/openweb3-io/bankclient/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	DefaultConfirmationTimeout      = 2 * time.Minute
	DefaultConfirmationPollInterval = time.Second
	// polling backs off up to this many times the configured interval
	maxPollBackoff = 8
)

// Client for EVM
type Client struct {
	Chain     *xc.ChainConfig
	EthClient *ethclient.Client
	RpcClient *rpc.Client
}

var _ xclient.IClient = &Client{}

// NewClient returns a new EVM Client
func NewClient(cfg *xc.ChainConfig) (*Client, error) {
	rpcClient, err := rpc.DialOptions(context.Background(), cfg.URL)
	if err != nil {
		return nil, errors.Wrapf(err, "dialing %s", cfg.URL)
	}
	return &Client{
		Chain:     cfg,
		EthClient: ethclient.NewClient(rpcClient),
		RpcClient: rpcClient,
	}, nil
}

func (client *Client) log() *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		"chain":    client.Chain.Chain,
		"chain_id": client.Chain.ChainID,
	})
}

func (client *Client) GetNonce(ctx context.Context, from xc.Address) (uint64, error) {
	fromAddr, err := address.FromHex(from)
	if err != nil {
		return 0, err
	}
	nonce, err := client.EthClient.PendingNonceAt(ctx, fromAddr)
	if err != nil {
		return 0, errors.Wrap(err, "fetching nonce")
	}
	return nonce, nil
}

// ChainID returns the configured chain id, or asks the node when none is configured.
func (client *Client) ChainID(ctx context.Context) (xc.BigInt, error) {
	if client.Chain.ChainID != 0 {
		return xc.NewBigIntFromInt64(client.Chain.ChainID), nil
	}
	chainId, err := client.EthClient.ChainID(ctx)
	if err != nil {
		return xc.BigInt{}, errors.Wrap(err, "fetching chain id")
	}
	return xc.BigInt(*chainId), nil
}

// FetchTxInput gathers the nonce, fees, gas limit and chain id for a bank call.
func (client *Client) FetchTxInput(ctx context.Context, args *xcbuilder.CallArgs) (xc.TxInput, error) {
	result := tx_input.NewTxInput()

	nonce, err := client.GetNonce(ctx, args.GetFrom())
	if err != nil {
		return nil, err
	}
	result.Nonce = nonce

	gasPrice, err := client.EthClient.SuggestGasPrice(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fetching gas price")
	}
	result.GasFeeCap = xc.BigInt(*gasPrice).ApplyGasPriceMultiplier(client.Chain)

	tipCap, err := client.EthClient.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fetching priority fee")
	}
	result.GasTipCap = xc.BigInt(*tipCap)

	if gasLimit, ok := args.GetGasLimit(); ok {
		result.GasLimit = gasLimit
	} else {
		gasLimit, err := client.EstimateCallGas(ctx, args)
		if err != nil {
			return nil, err
		}
		result.GasLimit = gasLimit
	}

	result.ChainId, err = client.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	xcbuilder.SetTxInputOptions(result, args)
	client.log().WithFields(logrus.Fields{
		"kind":        args.GetKind(),
		"nonce":       result.Nonce,
		"gas_limit":   result.GasLimit,
		"gas_fee_cap": result.GasFeeCap.String(),
		"gas_tip_cap": result.GasTipCap.String(),
	}).Debug("fetched tx input")
	return result, nil
}

// EstimateCallGas simulates the call and applies the configured gas limit multiplier.
func (client *Client) EstimateCallGas(ctx context.Context, args *xcbuilder.CallArgs) (uint64, error) {
	msg, err := callMsg(args)
	if err != nil {
		return 0, err
	}
	gas, err := client.EthClient.EstimateGas(ctx, msg)
	if err != nil {
		return 0, errors.Wrap(err, "estimating gas")
	}
	if multiplier := client.Chain.GasLimitMultiplier; multiplier > 0.01 {
		gas = xc.MultiplyByFloat(xc.NewBigIntFromUint64(gas), multiplier).Uint64()
	}
	return gas, nil
}

func callMsg(args *xcbuilder.CallArgs) (ethereum.CallMsg, error) {
	from, err := address.FromHex(args.GetFrom())
	if err != nil {
		return ethereum.CallMsg{}, err
	}
	to, err := address.FromHex(args.GetContract())
	if err != nil {
		return ethereum.CallMsg{}, err
	}
	data, err := bank.PackCall(args.GetKind(), args.GetAmount())
	if err != nil {
		return ethereum.CallMsg{}, err
	}
	return ethereum.CallMsg{
		From:  from,
		To:    &to,
		Value: args.GetValue().Int(),
		Data:  data,
	}, nil
}

// BroadcastTx submits a signed tx
func (client *Client) BroadcastTx(ctx context.Context, tx xc.Tx) error {
	serialized, err := tx.Serialize()
	if err != nil {
		return errors.Wrap(err, "serializing tx")
	}
	ethTx := &types.Transaction{}
	if err := ethTx.UnmarshalBinary(serialized); err != nil {
		return errors.Wrap(err, "decoding tx")
	}
	if err := client.EthClient.SendTransaction(ctx, ethTx); err != nil {
		client.log().WithError(err).WithFields(logrus.Fields{
			"tx_hash": tx.Hash(),
			"reason":  xclient.ClassifyError(err),
		}).Warn("broadcast failed")
		return errors.Wrap(err, "broadcasting tx")
	}
	client.log().WithField("tx_hash", tx.Hash()).Info("broadcast tx")
	return nil
}

// CallContract runs a read-only call against the latest block.
func (client *Client) CallContract(ctx context.Context, contract xc.ContractAddress, data []byte) ([]byte, error) {
	to, err := address.FromHex(contract)
	if err != nil {
		return nil, err
	}
	result, err := client.EthClient.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "calling %s", contract)
	}
	return result, nil
}

func (client *Client) FetchNativeBalance(ctx context.Context, addr xc.Address) (*xc.BigInt, error) {
	target, err := address.FromHex(addr)
	if err != nil {
		return nil, err
	}
	balance, err := client.EthClient.BalanceAt(ctx, target, nil)
	if err != nil {
		return nil, errors.Wrap(err, "fetching balance")
	}
	result := xc.BigInt(*balance)
	return &result, nil
}

// FetchReceipt returns ethereum.NotFound while the tx is not mined.
func (client *Client) FetchReceipt(ctx context.Context, txHash xc.TxHash) (*xc.TransactionReceipt, error) {
	receipt, err := client.EthClient.TransactionReceipt(ctx, common.HexToHash(string(txHash)))
	if err != nil {
		return nil, err
	}
	return toReceipt(txHash, receipt), nil
}

// WaitForReceipt polls for the receipt of txHash until it is mined or the
// confirmation timeout passes, in which case ErrConfirmationTimeout is returned.
func (client *Client) WaitForReceipt(ctx context.Context, txHash xc.TxHash) (*xc.TransactionReceipt, error) {
	timeout := client.Chain.ConfirmationTimeout
	if timeout <= 0 {
		timeout = DefaultConfirmationTimeout
	}
	interval := client.Chain.ConfirmationPollInterval
	if interval <= 0 {
		interval = DefaultConfirmationPollInterval
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	delay := interval
	for attempt := 1; ; attempt++ {
		receipt, err := client.FetchReceipt(ctx, txHash)
		if err == nil {
			client.log().WithFields(logrus.Fields{
				"tx_hash":  txHash,
				"block":    receipt.BlockNumber,
				"status":   receipt.Status,
				"attempts": attempt,
			}).Info("tx confirmed")
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) && ctx.Err() == nil {
			client.log().WithError(err).WithField("tx_hash", txHash).Debug("receipt lookup failed, retrying")
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, xc.WrapErrWithDetails(xc.ErrConfirmationTimeout, ctx.Err(), map[string]any{
				"tx_hash": string(txHash),
			})
		case <-timer.C:
		}
		if delay < interval*time.Duration(maxPollBackoff) {
			delay *= 2
		}
	}
}

func toReceipt(txHash xc.TxHash, receipt *types.Receipt) *xc.TransactionReceipt {
	result := &xc.TransactionReceipt{
		TxHash:            txHash,
		BlockHash:         receipt.BlockHash.Hex(),
		GasUsed:           receipt.GasUsed,
		EffectiveGasPrice: xc.NewBigIntFromUint64(0),
		Status:            xc.TxStatusSuccess,
	}
	if receipt.BlockNumber != nil {
		result.BlockNumber = receipt.BlockNumber.Uint64()
	}
	if receipt.EffectiveGasPrice != nil {
		result.EffectiveGasPrice = xc.BigInt(*new(big.Int).Set(receipt.EffectiveGasPrice))
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		result.Status = xc.TxStatusFailure
	}
	if receipt.ContractAddress != (common.Address{}) {
		result.Contract = xc.ContractAddress(receipt.ContractAddress.Hex())
	}
	return result
}
