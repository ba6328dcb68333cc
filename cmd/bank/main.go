package main

import (
	"context"
	"os"

	"github.com/openweb3-io/bankclient/cmd/bank/setup"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	stopLogging := func() {}
	cmd := &cobra.Command{
		Use:          "bank",
		Short:        "Deposit to and withdraw from the bank contract",
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := setup.LoadConfig(cmd)
			if err != nil {
				return err
			}
			stopLogging, err = setup.ConfigureLogging(cfg.LogLevel)
			if err != nil {
				return err
			}

			bankFactory, err := setup.LoadFactory(cfg)
			if err != nil {
				return err
			}
			chainConfig, err := setup.LoadChain(bankFactory, cfg)
			if err != nil {
				return err
			}
			client, err := setup.LoadBank(cmd.Context(), bankFactory, chainConfig, cfg)
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"rpc":      chainConfig.URL,
				"network":  chainConfig.Network,
				"contract": client.Contract(),
				"session":  client.Session().ID,
			}).Debug("bank")

			cmd.SetContext(setup.CreateContext(cmd.Context(), bankFactory, chainConfig, client))
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			stopLogging()
		},
	}
	setup.AddRpcArgs(cmd)

	cmd.AddCommand(CmdBalance())
	cmd.AddCommand(CmdConnect())
	cmd.AddCommand(CmdDeposit())
	cmd.AddCommand(CmdWithdraw())
	cmd.AddCommand(CmdTx())
	cmd.AddCommand(CmdNetworks())
	cmd.AddCommand(CmdUI())

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
