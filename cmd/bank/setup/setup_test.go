package setup_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/openweb3-io/bankclient/cmd/bank/setup"
	testtypes "github.com/openweb3-io/bankclient/testutil/types"
	xc "github.com/openweb3-io/bankclient/types"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const pri = "289c2857d4598e37fb9647507e47a309d6133539bf21a8b9cb6df88fd5232032"

type SetupTestSuite struct {
	suite.Suite
}

func TestSetup(t *testing.T) {
	suite.Run(t, new(SetupTestSuite))
}

func (s *SetupTestSuite) command(args ...string) *cobra.Command {
	cmd := &cobra.Command{Use: "bank"}
	setup.AddRpcArgs(cmd)
	s.Require().NoError(cmd.ParseFlags(append([]string{"--env-file", "missing.env"}, args...)))
	return cmd
}

func (s *SetupTestSuite) TestLoadConfigFlags() {
	require := s.Require()

	cfg, err := setup.LoadConfig(s.command("--network", "local", "--auto-approve", "--log-level", "debug"))
	require.NoError(err)
	require.Equal("local", cfg.Network)
	require.True(cfg.AutoApprove)
	require.Equal("debug", cfg.LogLevel)
	require.Equal(string(xc.DefaultContractAddress), cfg.Contract)
}

func (s *SetupTestSuite) TestLoadChain() {
	require := s.Require()

	cfg, err := setup.LoadConfig(s.command("--network", "local", "--rpc", "http://127.0.0.1:9545"))
	require.NoError(err)
	bankFactory, err := setup.LoadFactory(cfg)
	require.NoError(err)

	chain, err := setup.LoadChain(bankFactory, cfg)
	require.NoError(err)
	require.Equal("http://127.0.0.1:9545", chain.URL)
	require.EqualValues(31337, chain.ChainID)

	cfg.Network = "devnet"
	chain, err = setup.LoadChain(bankFactory, cfg)
	require.NoError(err)
	require.Equal("devnet", chain.Network)

	cfg.URL = ""
	_, err = setup.LoadChain(bankFactory, cfg)
	require.ErrorContains(err, "unknown network")
}

func (s *SetupTestSuite) TestLoadChainKeepsNetworkConfirmation() {
	require := s.Require()

	cfg, err := setup.LoadConfig(s.command("--network", "local"))
	require.NoError(err)
	bankFactory, _ := setup.LoadFactory(cfg)
	chain, err := setup.LoadChain(bankFactory, cfg)
	require.NoError(err)
	require.Equal(30*time.Second, chain.ConfirmationTimeout)
	require.Equal(250*time.Millisecond, chain.ConfirmationPollInterval)

	s.T().Setenv("BANK_CONFIRMATION_TIMEOUT", "45s")
	cfg, err = setup.LoadConfig(s.command("--network", "local"))
	require.NoError(err)
	chain, err = setup.LoadChain(bankFactory, cfg)
	require.NoError(err)
	require.Equal(45*time.Second, chain.ConfirmationTimeout)
	require.Equal(250*time.Millisecond, chain.ConfirmationPollInterval)
}

func (s *SetupTestSuite) TestFeeFlags() {
	require := s.Require()

	cfg, err := setup.LoadConfig(s.command("--network", "local", "--priority", "low", "--gas-limit", "70000"))
	require.NoError(err)
	require.Equal("low", cfg.Priority)
	require.EqualValues(70_000, cfg.GasLimit)
	require.Len(cfg.CallOptions(), 2)

	_, err = setup.LoadConfig(s.command("--network", "local", "--priority", "urgent"))
	require.ErrorContains(err, "invalid priority")
}

func (s *SetupTestSuite) TestAccountBalance() {
	require := s.Require()

	server, close := testtypes.MockJSONRPC(s.T(), `"0x1bc16d674ec80000"`)
	defer close()
	cfg, err := setup.LoadConfig(s.command("--network", "local", "--rpc", server.URL))
	require.NoError(err)
	bankFactory, _ := setup.LoadFactory(cfg)
	chain, err := setup.LoadChain(bankFactory, cfg)
	require.NoError(err)

	balance, err := setup.AccountBalance(context.Background(), bankFactory, chain, "0x724435CC1B2821362c2CD425F2744Bd7347bf299")
	require.NoError(err)
	require.Equal("2.0", balance.Format())
	require.Equal([]string{"eth_getBalance"}, server.Methods())
}

func (s *SetupTestSuite) TestLoadBankWithoutKey() {
	require := s.Require()
	ctx := context.Background()

	cfg, err := setup.LoadConfig(s.command("--network", "local"))
	require.NoError(err)
	bankFactory, _ := setup.LoadFactory(cfg)
	chain, err := setup.LoadChain(bankFactory, cfg)
	require.NoError(err)

	client, err := setup.LoadBank(ctx, bankFactory, chain, cfg)
	require.NoError(err)
	_, err = client.FetchBalance(ctx)
	require.True(errors.Is(err, xc.ErrProviderUnavailable))
}

func (s *SetupTestSuite) TestLoadBankWithKey() {
	require := s.Require()
	ctx := context.Background()

	cfg, err := setup.LoadConfig(s.command("--network", "local", "--private-key", pri, "--auto-approve"))
	require.NoError(err)
	bankFactory, _ := setup.LoadFactory(cfg)
	chain, err := setup.LoadChain(bankFactory, cfg)
	require.NoError(err)

	client, err := setup.LoadBank(ctx, bankFactory, chain, cfg)
	require.NoError(err)
	state, err := client.Connect(ctx)
	require.NoError(err)
	require.True(state.IsConnected())
}

func (s *SetupTestSuite) TestLoadBankInvalidContract() {
	require := s.Require()

	cfg, err := setup.LoadConfig(s.command("--network", "local", "--contract", "0x1234"))
	require.NoError(err)
	bankFactory, _ := setup.LoadFactory(cfg)
	chain, err := setup.LoadChain(bankFactory, cfg)
	require.NoError(err)

	_, err = setup.LoadBank(context.Background(), bankFactory, chain, cfg)
	require.True(errors.Is(err, xc.ErrInvalidAddress))
}

func (s *SetupTestSuite) TestConfigureLogging() {
	require := s.Require()

	stop, err := setup.ConfigureLogging("warning")
	require.NoError(err)
	defer stop()
	require.Equal(logrus.WarnLevel, logrus.GetLevel())
	require.True(zap.L().Core().Enabled(zapcore.WarnLevel))
	require.False(zap.L().Core().Enabled(zapcore.InfoLevel))

	_, err = setup.ConfigureLogging("loud")
	require.Error(err)
}
