package wallet_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/openweb3-io/bankclient/blockchain/evm"
	"github.com/openweb3-io/bankclient/blockchain/evm/abi/bank"
	"github.com/openweb3-io/bankclient/blockchain/evm/builder"
	"github.com/openweb3-io/bankclient/blockchain/evm/client"
	"github.com/openweb3-io/bankclient/blockchain/evm/wallet"
	xcbuilder "github.com/openweb3-io/bankclient/builder"
	testtypes "github.com/openweb3-io/bankclient/testutil/types"
	xc "github.com/openweb3-io/bankclient/types"
	xcwallet "github.com/openweb3-io/bankclient/wallet"
	"github.com/stretchr/testify/suite"
)

const (
	chainId  = 11155111
	pkStrHex = "8e812436a0e3323166e1f0e8ba79e19e217b2c4a53c970d4cca0cfb1078979df"
	someHash = `"0x8d4b8b9b2c1f0e1d4e3b2a1908f7e6d5c4b3a29180f7e6d5c4b3a29180f7e6d5"`
)

type WalletTestSuite struct {
	suite.Suite
	signer *evm.LocalSigner
}

func TestWalletTestSuite(t *testing.T) {
	suite.Run(t, new(WalletTestSuite))
}

func (s *WalletTestSuite) SetupTest() {
	var err error
	s.signer, err = evm.NewLocalSignerFromHex(pkStrHex)
	s.Require().NoError(err)
}

func (s *WalletTestSuite) newWallet(url string, authorize wallet.Authorizer, options ...xcbuilder.BuilderOption) *wallet.LocalWallet {
	chain := &xc.ChainConfig{
		URL:                      url,
		ChainID:                  chainId,
		ConfirmationPollInterval: time.Millisecond,
	}
	cli, err := client.NewClient(chain)
	s.Require().NoError(err)
	txBuilder, err := builder.NewTxBuilder(chain)
	s.Require().NoError(err)
	return wallet.NewLocalWallet(cli, txBuilder, s.signer, authorize, options...)
}

// decodeRawTx reads the tx sent with eth_sendRawTransaction.
func (s *WalletTestSuite) decodeRawTx(params json.RawMessage) *types.Transaction {
	var raw []string
	s.Require().NoError(json.Unmarshal(params, &raw))
	s.Require().Len(raw, 1)
	bz, err := hexutil.Decode(raw[0])
	s.Require().NoError(err)
	tx := &types.Transaction{}
	s.Require().NoError(tx.UnmarshalBinary(bz))
	return tx
}

func (s *WalletTestSuite) TestRequestAccounts() {
	require := s.Require()
	w := s.newWallet("http://127.0.0.1:1", wallet.AutoApprove)

	accounts, err := w.RequestAccounts(context.Background())
	require.NoError(err)
	require.Equal([]xc.Address{s.signer.Address()}, accounts)

	conn, err := w.SigningConnection(context.Background(), accounts[0])
	require.NoError(err)
	require.Equal(accounts[0], conn.Account())
}

func (s *WalletTestSuite) TestRequestAccountsAuthorizesOnce() {
	require := s.Require()
	prompts := 0
	w := s.newWallet("http://127.0.0.1:1", func(ctx context.Context, account xc.Address) (bool, error) {
		prompts++
		return true, nil
	})

	for i := 0; i < 3; i++ {
		_, err := w.RequestAccounts(context.Background())
		require.NoError(err)
	}
	require.Equal(1, prompts)
}

func (s *WalletTestSuite) TestRequestAccountsDenied() {
	require := s.Require()
	w := s.newWallet("http://127.0.0.1:1", wallet.Deny)

	accounts, err := w.RequestAccounts(context.Background())
	require.True(errors.Is(err, xcwallet.ErrRejected))
	require.Empty(accounts)

	_, err = w.SigningConnection(context.Background(), s.signer.Address())
	require.True(errors.Is(err, xcwallet.ErrRejected))
}

func (s *WalletTestSuite) TestRequestAccountsAuthorizerError() {
	w := s.newWallet("http://127.0.0.1:1", func(ctx context.Context, account xc.Address) (bool, error) {
		return false, fmt.Errorf("prompt closed")
	})
	_, err := w.RequestAccounts(context.Background())
	s.Require().ErrorContains(err, "prompt closed")
}

func (s *WalletTestSuite) TestReadConnection() {
	require := s.Require()

	server, close := testtypes.MockJSONRPC(s.T(), testtypes.Uint256Hex(xc.NewBigIntFromUint64(42)))
	defer close()
	w := s.newWallet(server.URL, wallet.Deny)

	// reads need no authorization
	conn, err := w.ReadConnection(context.Background())
	require.NoError(err)
	data, err := bank.PackGetBalance()
	require.NoError(err)
	result, err := conn.Call(context.Background(), xc.DefaultContractAddress, data)
	require.NoError(err)
	balance, err := bank.UnpackBalance(result)
	require.NoError(err)
	require.EqualValues(42, balance.Uint64())
}

func (s *WalletTestSuite) TestSendDeposit() {
	require := s.Require()
	ctx := context.Background()

	server, close := testtypes.MockJSONRPC(s.T(), []string{
		// eth_getTransactionCount
		`"0x3"`,
		// eth_gasPrice
		`"0x77359400"`,
		// eth_maxPriorityFeePerGas
		`"0x3b9aca00"`,
		// eth_estimateGas
		`"0xea60"`,
		// eth_sendRawTransaction
		someHash,
	})
	defer close()
	w := s.newWallet(server.URL, wallet.AutoApprove)

	accounts, err := w.RequestAccounts(ctx)
	require.NoError(err)
	conn, err := w.SigningConnection(ctx, accounts[0])
	require.NoError(err)

	amount := xc.NewBigIntFromStr("1500000000000000000")
	data, err := bank.PackCall(xc.Deposit, amount)
	require.NoError(err)
	hash, err := conn.SendTransaction(ctx, xc.DefaultContractAddress, amount, data)
	require.NoError(err)

	require.Equal([]string{
		"eth_getTransactionCount", "eth_gasPrice", "eth_maxPriorityFeePerGas", "eth_estimateGas", "eth_sendRawTransaction",
	}, server.Methods())

	sent := s.decodeRawTx(server.Params(4))
	require.Equal(string(hash), sent.Hash().Hex())
	require.Equal(amount.String(), sent.Value().String())
	require.Equal(data, sent.Data())
	require.Equal(string(xc.DefaultContractAddress), sent.To().Hex())
	require.EqualValues(3, sent.Nonce())
	require.EqualValues(60_000, sent.Gas())

	from, err := types.Sender(types.LatestSignerForChainID(sent.ChainId()), sent)
	require.NoError(err)
	require.Equal(string(s.signer.Address()), from.Hex())
}

func (s *WalletTestSuite) TestSendWithCallOptions() {
	require := s.Require()
	ctx := context.Background()

	// a fixed gas limit skips eth_estimateGas
	server, close := testtypes.MockJSONRPC(s.T(), []string{`"0x3"`, `"0x77359400"`, `"0x3b9aca00"`, someHash})
	defer close()
	w := s.newWallet(server.URL, wallet.AutoApprove, xcbuilder.WithGasLimit(90_000), xcbuilder.WithPriority(xc.Aggressive))

	accounts, err := w.RequestAccounts(ctx)
	require.NoError(err)
	conn, err := w.SigningConnection(ctx, accounts[0])
	require.NoError(err)

	amount := xc.NewBigIntFromStr("1000000000000000000")
	data, err := bank.PackCall(xc.Deposit, amount)
	require.NoError(err)
	_, err = conn.SendTransaction(ctx, xc.DefaultContractAddress, amount, data)
	require.NoError(err)

	require.Equal([]string{
		"eth_getTransactionCount", "eth_gasPrice", "eth_maxPriorityFeePerGas", "eth_sendRawTransaction",
	}, server.Methods())
	sent := s.decodeRawTx(server.Params(3))
	require.EqualValues(90_000, sent.Gas())
	require.Equal("3000000000", sent.GasFeeCap().String())
	require.Equal("1500000000", sent.GasTipCap().String())
}

func (s *WalletTestSuite) TestSendWithdraw() {
	require := s.Require()
	ctx := context.Background()

	server, close := testtypes.MockJSONRPC(s.T(), []string{`"0x3"`, `"0x77359400"`, `"0x3b9aca00"`, `"0xea60"`, someHash})
	defer close()
	w := s.newWallet(server.URL, wallet.AutoApprove)

	accounts, err := w.RequestAccounts(ctx)
	require.NoError(err)
	conn, err := w.SigningConnection(ctx, accounts[0])
	require.NoError(err)

	amount := xc.NewBigIntFromStr("2000000000000000000")
	data, err := bank.PackCall(xc.Withdraw, amount)
	require.NoError(err)
	_, err = conn.SendTransaction(ctx, xc.DefaultContractAddress, xc.NewBigIntFromUint64(0), data)
	require.NoError(err)

	sent := s.decodeRawTx(server.Params(4))
	require.EqualValues(0, sent.Value().Sign())
	kind, parsed, err := bank.ParseCall(sent.Data())
	require.NoError(err)
	require.Equal(xc.Withdraw, kind)
	require.Equal(amount.String(), parsed.String())
}

func (s *WalletTestSuite) TestSendValueMismatch() {
	require := s.Require()
	ctx := context.Background()

	server, close := testtypes.MockJSONRPC(s.T(), someHash)
	defer close()
	w := s.newWallet(server.URL, wallet.AutoApprove)

	accounts, err := w.RequestAccounts(ctx)
	require.NoError(err)
	conn, err := w.SigningConnection(ctx, accounts[0])
	require.NoError(err)

	amount := xc.NewBigIntFromUint64(1000)
	data, err := bank.PackCall(xc.Deposit, amount)
	require.NoError(err)
	_, err = conn.SendTransaction(ctx, xc.DefaultContractAddress, xc.NewBigIntFromUint64(999), data)
	require.ErrorContains(err, "expects value")
	require.Empty(server.Methods())
}

func (s *WalletTestSuite) TestTransactionReceiptPending() {
	require := s.Require()
	ctx := context.Background()

	server, close := testtypes.MockJSONRPC(s.T(), "null")
	defer close()
	w := s.newWallet(server.URL, wallet.AutoApprove)

	accounts, err := w.RequestAccounts(ctx)
	require.NoError(err)
	conn, err := w.SigningConnection(ctx, accounts[0])
	require.NoError(err)

	receipt, err := conn.TransactionReceipt(ctx, "0x8d4b8b9b2c1f0e1d4e3b2a1908f7e6d5c4b3a29180f7e6d5c4b3a29180f7e6d5")
	require.NoError(err)
	require.Equal(xc.TxStatusPending, receipt.Status)
	require.Equal(accounts[0], receipt.From)
}
