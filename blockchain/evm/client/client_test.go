package client_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/openweb3-io/bankclient/blockchain/evm"
	"github.com/openweb3-io/bankclient/blockchain/evm/abi/bank"
	"github.com/openweb3-io/bankclient/blockchain/evm/builder"
	"github.com/openweb3-io/bankclient/blockchain/evm/client"
	"github.com/openweb3-io/bankclient/blockchain/evm/tx_input"
	xcbuilder "github.com/openweb3-io/bankclient/builder"
	testtypes "github.com/openweb3-io/bankclient/testutil/types"
	xc_types "github.com/openweb3-io/bankclient/types"
	"github.com/stretchr/testify/suite"
)

var (
	chainId  = 11155111
	pkStrHex = "8e812436a0e3323166e1f0e8ba79e19e217b2c4a53c970d4cca0cfb1078979df"
	from     = xc_types.Address("0x50B0c2B3bcAd53Eb45B57C4e5dF8a9890d002Cc8")
	txHash   = xc_types.TxHash("0x8d4b8b9b2c1f0e1d4e3b2a1908f7e6d5c4b3a29180f7e6d5c4b3a29180f7e6d5")
)

func receiptJSON(status string) string {
	return fmt.Sprintf(`{
		"blockHash": "0x%064x",
		"blockNumber": "0x10",
		"contractAddress": null,
		"cumulativeGasUsed": "0xb9ea",
		"effectiveGasPrice": "0x77359400",
		"from": "0x50b0c2b3bcad53eb45b57c4e5df8a9890d002cc8",
		"gasUsed": "0xb9ea",
		"logs": [],
		"logsBloom": "0x%s",
		"status": "%s",
		"to": "0x9d7f74d0c41e726ec95884e0e97fa6129e3b5e99",
		"transactionHash": "%s",
		"transactionIndex": "0x0",
		"type": "0x2"
	}`, 1, strings.Repeat("0", 512), status, txHash)
}

type ClientTestSuite struct {
	suite.Suite
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) newClient(url string, cfg xc_types.ChainConfig) *client.Client {
	cfg.URL = url
	cli, err := client.NewClient(&cfg)
	s.Require().NoError(err)
	return cli
}

func (s *ClientTestSuite) TestFetchTxInput() {
	require := s.Require()
	ctx := context.Background()

	vectors := []struct {
		name       string
		multiplier float64
		gasLimit   float64
		options    []xcbuilder.BuilderOption
		methods    []string
		val        *tx_input.TxInput
	}{
		{
			name: "deposit",
			methods: []string{
				"eth_getTransactionCount", "eth_gasPrice", "eth_maxPriorityFeePerGas", "eth_estimateGas",
			},
			val: &tx_input.TxInput{
				Nonce:     6,
				GasLimit:  21220,
				GasFeeCap: xc_types.NewBigIntFromUint64(50_000_000_000),
				GasTipCap: xc_types.NewBigIntFromUint64(1_000_000_000),
				ChainId:   xc_types.NewBigIntFromInt64(int64(chainId)),
			},
		},
		{
			name:       "multipliers",
			multiplier: 2.0,
			gasLimit:   1.5,
			methods: []string{
				"eth_getTransactionCount", "eth_gasPrice", "eth_maxPriorityFeePerGas", "eth_estimateGas",
			},
			val: &tx_input.TxInput{
				Nonce:     6,
				GasLimit:  31830,
				GasFeeCap: xc_types.NewBigIntFromUint64(100_000_000_000),
				GasTipCap: xc_types.NewBigIntFromUint64(1_000_000_000),
				ChainId:   xc_types.NewBigIntFromInt64(int64(chainId)),
			},
		},
		{
			name:    "fixed gas limit and priority",
			options: []xcbuilder.BuilderOption{xcbuilder.WithGasLimit(90_000), xcbuilder.WithPriority(xc_types.Aggressive)},
			methods: []string{
				"eth_getTransactionCount", "eth_gasPrice", "eth_maxPriorityFeePerGas",
			},
			val: &tx_input.TxInput{
				Nonce:     6,
				GasLimit:  90_000,
				GasFeeCap: xc_types.NewBigIntFromUint64(75_000_000_000),
				GasTipCap: xc_types.NewBigIntFromUint64(1_500_000_000),
				ChainId:   xc_types.NewBigIntFromInt64(int64(chainId)),
			},
		},
	}
	for _, v := range vectors {
		server, close := testtypes.MockJSONRPC(s.T(), []string{
			// eth_getTransactionCount
			`"0x6"`,
			// eth_gasPrice
			`"0xba43b7400"`,
			// eth_maxPriorityFeePerGas
			`"0x3b9aca00"`,
			// eth_estimateGas
			`"0x52e4"`,
		})
		cli := s.newClient(server.URL, xc_types.ChainConfig{
			ChainID:            int64(chainId),
			ChainGasMultiplier: v.multiplier,
			GasLimitMultiplier: v.gasLimit,
		})

		args, err := xcbuilder.NewCallArgs(xc_types.Deposit, from, xc_types.DefaultContractAddress, xc_types.NewBigIntFromUint64(1000), v.options...)
		require.NoError(err, v.name)

		input, err := cli.FetchTxInput(ctx, args)
		require.NoError(err, v.name)
		require.Equal(v.val, input, v.name)
		require.Equal(v.methods, server.Methods(), v.name)
		close()
	}
}

func (s *ClientTestSuite) TestFetchTxInputChainIdFromNode() {
	require := s.Require()

	server, close := testtypes.MockJSONRPC(s.T(), []string{`"0x0"`, `"0x1"`, `"0x1"`, `"0x5208"`, `"0xaa36a7"`})
	defer close()
	cli := s.newClient(server.URL, xc_types.ChainConfig{})

	args, err := xcbuilder.NewCallArgs(xc_types.Withdraw, from, xc_types.DefaultContractAddress, xc_types.NewBigIntFromUint64(1))
	require.NoError(err)
	input, err := cli.FetchTxInput(context.Background(), args)
	require.NoError(err)
	require.EqualValues(chainId, input.(*tx_input.TxInput).ChainId.Uint64())
	require.Equal("eth_chainId", server.Methods()[4])
}

func (s *ClientTestSuite) TestFetchTxInputError() {
	require := s.Require()

	server, close := testtypes.MockJSONRPC(s.T(), []interface{}{
		`"0x6"`,
		testtypes.JSONRPCError{Code: -32000, Message: "backend unavailable"},
	})
	defer close()
	cli := s.newClient(server.URL, xc_types.ChainConfig{ChainID: int64(chainId)})

	args, err := xcbuilder.NewCallArgs(xc_types.Deposit, from, xc_types.DefaultContractAddress, xc_types.NewBigIntFromUint64(1))
	require.NoError(err)
	_, err = cli.FetchTxInput(context.Background(), args)
	require.ErrorContains(err, "backend unavailable")
}

func (s *ClientTestSuite) TestCallContract() {
	require := s.Require()

	balance := xc_types.NewBigIntFromStr("2000000000000000000")
	server, close := testtypes.MockJSONRPC(s.T(), testtypes.Uint256Hex(balance))
	defer close()
	cli := s.newClient(server.URL, xc_types.ChainConfig{})

	data, err := bank.PackGetBalance()
	require.NoError(err)
	result, err := cli.CallContract(context.Background(), xc_types.DefaultContractAddress, data)
	require.NoError(err)

	units, err := bank.UnpackBalance(result)
	require.NoError(err)
	require.Equal(balance.String(), units.String())
	require.Equal([]string{"eth_call"}, server.Methods())
	require.Contains(strings.ToLower(string(server.Params(0))), "0x9d7f74d0c41e726ec95884e0e97fa6129e3b5e99")
}

func (s *ClientTestSuite) TestCallContractInvalidAddress() {
	cli := s.newClient("http://127.0.0.1:1", xc_types.ChainConfig{})
	_, err := cli.CallContract(context.Background(), "0x1234", nil)
	s.Require().True(errors.Is(err, xc_types.ErrInvalidAddress))
}

func (s *ClientTestSuite) TestFetchNativeBalance() {
	require := s.Require()

	server, close := testtypes.MockJSONRPC(s.T(), `"0xde0b6b3a7640000"`)
	defer close()
	cli := s.newClient(server.URL, xc_types.ChainConfig{})

	balance, err := cli.FetchNativeBalance(context.Background(), from)
	require.NoError(err)
	require.Equal("1000000000000000000", balance.String())
}

func (s *ClientTestSuite) signedDeposit() xc_types.Tx {
	require := s.Require()

	signer, err := evm.NewLocalSignerFromHex(pkStrHex)
	require.NoError(err)
	args, err := xcbuilder.NewCallArgs(xc_types.Deposit, signer.Address(), xc_types.DefaultContractAddress, xc_types.NewBigIntFromUint64(1000))
	require.NoError(err)

	txBuilder, err := builder.NewTxBuilder(&xc_types.ChainConfig{ChainID: int64(chainId)})
	require.NoError(err)
	input := tx_input.NewTxInput()
	input.GasLimit = 60_000
	input.GasFeeCap = builder.GweiToWei(2)
	input.GasTipCap = builder.GweiToWei(1)
	tx, err := txBuilder.NewDeposit(args, input)
	require.NoError(err)

	sighashes, err := tx.Sighashes()
	require.NoError(err)
	sig, err := signer.Sign(sighashes[0])
	require.NoError(err)
	require.NoError(tx.AddSignatures(sig))
	return tx
}

func (s *ClientTestSuite) TestBroadcastTx() {
	require := s.Require()

	server, close := testtypes.MockJSONRPC(s.T(), fmt.Sprintf(`"%s"`, txHash))
	defer close()
	cli := s.newClient(server.URL, xc_types.ChainConfig{ChainID: int64(chainId)})

	err := cli.BroadcastTx(context.Background(), s.signedDeposit())
	require.NoError(err)
	require.Equal([]string{"eth_sendRawTransaction"}, server.Methods())
}

func (s *ClientTestSuite) TestBroadcastTxRejected() {
	require := s.Require()

	server, close := testtypes.MockJSONRPC(s.T(), testtypes.JSONRPCError{Code: -32000, Message: "insufficient funds for gas * price + value"})
	defer close()
	cli := s.newClient(server.URL, xc_types.ChainConfig{})

	err := cli.BroadcastTx(context.Background(), s.signedDeposit())
	require.ErrorContains(err, "insufficient funds")
}

func (s *ClientTestSuite) TestBroadcastTxMalformed() {
	cli := s.newClient("http://127.0.0.1:1", xc_types.ChainConfig{})
	err := cli.BroadcastTx(context.Background(), &testtypes.MockXcTx{SerializedSignedTx: []byte{0x01}})
	s.Require().ErrorContains(err, "decoding tx")
}

func (s *ClientTestSuite) TestFetchReceipt() {
	require := s.Require()

	server, close := testtypes.MockJSONRPC(s.T(), receiptJSON("0x1"))
	defer close()
	cli := s.newClient(server.URL, xc_types.ChainConfig{})

	receipt, err := cli.FetchReceipt(context.Background(), txHash)
	require.NoError(err)
	require.Equal(txHash, receipt.TxHash)
	require.EqualValues(16, receipt.BlockNumber)
	require.EqualValues(0xb9ea, receipt.GasUsed)
	require.EqualValues(2_000_000_000, receipt.EffectiveGasPrice.Uint64())
	require.Equal(xc_types.TxStatusSuccess, receipt.Status)
	require.True(receipt.Succeeded())
}

func (s *ClientTestSuite) TestWaitForReceipt() {
	require := s.Require()

	server, close := testtypes.MockJSONRPC(s.T(), []string{"null", "null", receiptJSON("0x1")})
	defer close()
	cli := s.newClient(server.URL, xc_types.ChainConfig{
		ConfirmationTimeout:      5 * time.Second,
		ConfirmationPollInterval: time.Millisecond,
	})

	receipt, err := cli.WaitForReceipt(context.Background(), txHash)
	require.NoError(err)
	require.True(receipt.Succeeded())
	require.Len(server.Methods(), 3)
}

func (s *ClientTestSuite) TestWaitForReceiptReverted() {
	require := s.Require()

	server, close := testtypes.MockJSONRPC(s.T(), receiptJSON("0x0"))
	defer close()
	cli := s.newClient(server.URL, xc_types.ChainConfig{ConfirmationPollInterval: time.Millisecond})

	receipt, err := cli.WaitForReceipt(context.Background(), txHash)
	require.NoError(err)
	require.Equal(xc_types.TxStatusFailure, receipt.Status)
	require.False(receipt.Succeeded())
}

func (s *ClientTestSuite) TestWaitForReceiptTimeout() {
	require := s.Require()

	server, close := testtypes.MockJSONRPC(s.T(), "null")
	defer close()
	cli := s.newClient(server.URL, xc_types.ChainConfig{
		ConfirmationTimeout:      50 * time.Millisecond,
		ConfirmationPollInterval: time.Millisecond,
	})

	_, err := cli.WaitForReceipt(context.Background(), txHash)
	require.Error(err)
	require.True(errors.Is(err, xc_types.ErrConfirmationTimeout))

	var xcErr *xc_types.Error
	require.True(errors.As(err, &xcErr))
	require.Equal(string(txHash), xcErr.Details["tx_hash"])
}
