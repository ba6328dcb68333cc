package builder

import (
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/openweb3-io/bankclient/blockchain/evm/abi/bank"
	"github.com/openweb3-io/bankclient/blockchain/evm/address"
	"github.com/openweb3-io/bankclient/blockchain/evm/tx"
	"github.com/openweb3-io/bankclient/blockchain/evm/tx_input"
	xcbuilder "github.com/openweb3-io/bankclient/builder"
	xc "github.com/openweb3-io/bankclient/types"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var DefaultMaxTipCapGwei uint64 = 5

type GethTxBuilder interface {
	BuildTxWithPayload(chain *xc.ChainConfig, to xc.Address, value xc.BigInt, data []byte, input xc.TxInput) (xc.Tx, error)
}

// supports evm after london merge
type EvmTxBuilder struct {
}

var _ GethTxBuilder = &EvmTxBuilder{}

// TxBuilder for EVM
type TxBuilder struct {
	Chain         *xc.ChainConfig
	gethTxBuilder GethTxBuilder
}

var _ xcbuilder.TxBuilder = &TxBuilder{}

// NewTxBuilder creates a new EVM TxBuilder
func NewTxBuilder(chain *xc.ChainConfig) (TxBuilder, error) {
	return TxBuilder{
		Chain:         chain,
		gethTxBuilder: &EvmTxBuilder{},
	}, nil
}

// NewDeposit calls deposit(amount) with the same amount attached as value
func (txBuilder TxBuilder) NewDeposit(args *xcbuilder.CallArgs, input xc.TxInput) (xc.Tx, error) {
	if args.GetKind() != xc.Deposit {
		return nil, errors.Errorf("expected a deposit, got %s", args.GetKind())
	}
	return txBuilder.newCall(args, input)
}

// NewWithdraw calls withdraw(amount) without attaching value
func (txBuilder TxBuilder) NewWithdraw(args *xcbuilder.CallArgs, input xc.TxInput) (xc.Tx, error) {
	if args.GetKind() != xc.Withdraw {
		return nil, errors.Errorf("expected a withdraw, got %s", args.GetKind())
	}
	return txBuilder.newCall(args, input)
}

func (txBuilder TxBuilder) newCall(args *xcbuilder.CallArgs, input xc.TxInput) (xc.Tx, error) {
	payload, err := bank.PackCall(args.GetKind(), args.GetAmount())
	if err != nil {
		return nil, err
	}
	zap.S().Debugw("new bank call",
		"kind", args.GetKind(),
		"from", args.GetFrom(),
		"contract", args.GetContract(),
		"amount", args.GetAmount().String(),
	)
	return txBuilder.gethTxBuilder.BuildTxWithPayload(txBuilder.Chain, xc.Address(args.GetContract()), args.GetValue(), payload, input)
}

func (*EvmTxBuilder) BuildTxWithPayload(chain *xc.ChainConfig, to xc.Address, value xc.BigInt, data []byte, inputRaw xc.TxInput) (xc.Tx, error) {
	address, err := address.FromHex(to)
	if err != nil {
		return nil, err
	}

	input, ok := inputRaw.(*tx_input.TxInput)
	if !ok {
		return nil, errors.Errorf("unexpected tx input %T", inputRaw)
	}
	var chainId *big.Int = input.ChainId.Int()
	if input.ChainId.Uint64() == 0 {
		chainId = new(big.Int).SetInt64(chain.ChainID)
	}
	if chainId.Sign() == 0 {
		return nil, errors.New("chain id is required")
	}

	// Protection from setting very high gas tip
	maxTipGwei := uint64(chain.ChainMaxGasPrice)
	if maxTipGwei == 0 {
		maxTipGwei = DefaultMaxTipCapGwei
	}
	maxTipWei := GweiToWei(maxTipGwei)
	gasTipCap := input.GasTipCap

	if gasTipCap.Cmp(&maxTipWei) > 0 {
		// limit to max
		gasTipCap = maxTipWei
	}
	gasFeeCap := input.GasFeeCap
	if gasFeeCap.Cmp(&gasTipCap) < 0 {
		// a fee cap below the tip is rejected by nodes
		gasFeeCap = gasTipCap
	}

	return &tx.Tx{
		EthTx: types.NewTx(&types.DynamicFeeTx{
			ChainID:   chainId,
			Nonce:     input.Nonce,
			GasTipCap: gasTipCap.Int(),
			GasFeeCap: gasFeeCap.Int(),
			Gas:       input.GasLimit,
			To:        &address,
			Value:     value.Int(),
			Data:      data,
		}),
		Signer: types.LatestSignerForChainID(chainId),
	}, nil
}

func GweiToWei(gwei uint64) xc.BigInt {
	bigGwei := new(big.Int).SetUint64(gwei)

	ten := big.NewInt(10)
	nine := big.NewInt(9)
	factor := big.NewInt(0).Exp(ten, nine, nil)

	bigGwei.Mul(bigGwei, factor)
	return xc.BigInt(*bigGwei)
}
