package main

import (
	"encoding/json"
	"fmt"

	"github.com/openweb3-io/bankclient/cmd/bank/setup"
	"github.com/openweb3-io/bankclient/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func printJSON(v interface{}) {
	bz, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(bz))
}

func CmdBalance() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Read the balance held by the bank contract.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := setup.UnwrapBank(cmd.Context())
			balance, err := client.FetchBalance(cmd.Context())
			if err != nil {
				return fmt.Errorf("could not fetch balance: %v", err)
			}
			printJSON(map[string]string{
				"contract": string(client.Contract()),
				"balance":  balance.Format(),
			})
			return nil
		},
	}
}

func CmdConnect() *cobra.Command {
	return &cobra.Command{
		Use:   "connect",
		Short: "Authorize the configured account.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := setup.UnwrapBank(cmd.Context())
			state, err := client.Connect(cmd.Context())
			if err != nil {
				return err
			}
			printJSON(state)

			bankFactory := setup.UnwrapFactory(cmd.Context())
			chain := setup.UnwrapChain(cmd.Context())
			balance, err := setup.AccountBalance(cmd.Context(), bankFactory, chain, state.Account)
			if err != nil {
				logrus.WithError(err).Warn("could not read account balance")
				return nil
			}
			logrus.WithField("balance", balance.Format()).Info("account balance")
			return nil
		},
	}
}

func cmdSubmit(kind types.OperationKind, short string) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s <amount>", kind),
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := setup.UnwrapBank(cmd.Context())
			submit := client.Deposit
			if kind == types.Withdraw {
				submit = client.Withdraw
			}

			receipt, err := submit(cmd.Context(), args[0])
			if err != nil {
				var xcErr *types.Error
				if errors.Is(err, types.ErrConfirmationTimeout) && errors.As(err, &xcErr) {
					logrus.WithField("tx_hash", xcErr.Details["tx_hash"]).
						Warn("transaction not confirmed yet, check it later with `bank tx <hash>`")
				}
				return err
			}
			printJSON(receipt)

			session := client.Session()
			if session.Balance.IsSet() {
				logrus.WithField("balance", session.Balance.Amount.Format()).Info("contract balance")
			}
			if session.LastError != "" {
				logrus.Warn(session.LastError)
			}
			return nil
		},
	}
}

func CmdDeposit() *cobra.Command {
	return cmdSubmit(types.Deposit, "Deposit ether into the bank contract.")
}

func CmdWithdraw() *cobra.Command {
	return cmdSubmit(types.Withdraw, "Withdraw ether from the bank contract.")
}

func CmdTx() *cobra.Command {
	return &cobra.Command{
		Use:     "tx <hash>",
		Aliases: []string{"check"},
		Short:   "Check the outcome of a submitted transaction.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := setup.UnwrapBank(cmd.Context())
			receipt, err := client.CheckTransaction(cmd.Context(), types.TxHash(args[0]))
			if err != nil {
				return fmt.Errorf("could not check transaction: %v", err)
			}
			printJSON(receipt)
			return nil
		},
	}
}

func CmdNetworks() *cobra.Command {
	return &cobra.Command{
		Use:   "networks",
		Short: "List the known networks.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			bankFactory := setup.UnwrapFactory(cmd.Context())
			chains := []*types.ChainConfig{}
			for _, name := range bankFactory.NetworkNames() {
				chain, err := bankFactory.GetNetwork(name)
				if err != nil {
					return err
				}
				chains = append(chains, chain)
			}
			printJSON(chains)
			return nil
		},
	}
}
