package main

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/openweb3-io/bankclient/bank"
	"github.com/openweb3-io/bankclient/cmd/bank/setup"
	"github.com/openweb3-io/bankclient/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	danger    = lipgloss.AdaptiveColor{Light: "#D7263D", Dark: "#FF5F87"}

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(highlight).
			Padding(0, 2).
			Bold(true).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().Foreground(subtle).Width(10)
	valueStyle = lipgloss.NewStyle().Foreground(special).Bold(true)

	errorStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(danger).
			Foreground(danger).
			Padding(0, 1).
			MarginTop(1)
)

const (
	actionBalance      = "balance"
	actionDeposit      = "deposit"
	actionWithdraw     = "withdraw"
	actionTransactions = "transactions"
	actionQuit         = "quit"
)

func CmdUI() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Interactive bank session.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			chain := setup.UnwrapChain(cmd.Context())
			client := setup.UnwrapBank(cmd.Context())
			return runUI(cmd.Context(), chain, client)
		},
	}
}

func runUI(ctx context.Context, chain *types.ChainConfig, client *bank.Client) error {
	// connect and read once up front, failures end up in the error panel
	if _, err := client.Connect(ctx); err != nil {
		logrus.WithError(err).Debug("connect")
	}
	readErr := refreshBalance(ctx, client)

	for {
		fmt.Print("\033[H\033[2J")
		fmt.Println(render(chain, client, readErr))

		action := actionBalance
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Action").
					Options(
						huh.NewOption("Get balance", actionBalance),
						huh.NewOption("Deposit", actionDeposit),
						huh.NewOption("Withdraw", actionWithdraw),
						huh.NewOption("Transactions", actionTransactions),
						huh.NewOption("Quit", actionQuit),
					).
					Value(&action),
			),
		).RunWithContext(ctx)
		if errors.Is(err, huh.ErrUserAborted) || action == actionQuit {
			return nil
		}
		if err != nil {
			return err
		}

		switch action {
		case actionBalance:
			readErr = refreshBalance(ctx, client)
		case actionDeposit, actionWithdraw:
			if err := submit(ctx, client, types.OperationKind(action)); err != nil {
				return err
			}
		case actionTransactions:
			fmt.Println(renderTransactions(client))
			pause(ctx, "Back")
		}
	}
}

func submit(ctx context.Context, client *bank.Client, kind types.OperationKind) error {
	session := client.Session()
	amount := session.DepositInput
	if kind == types.Withdraw {
		amount = session.WithdrawInput
	}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Amount to %s", kind)).
				Description("In ether, e.g. 1.5").
				Value(&amount),
		),
	).RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	if err != nil {
		return err
	}

	if kind == types.Deposit {
		client.SetDepositInput(amount)
	} else {
		client.SetWithdrawInput(amount)
	}

	withSpinner(ctx, fmt.Sprintf("Waiting for %s confirmation...", kind), func() {
		var receipt *types.TransactionReceipt
		if kind == types.Deposit {
			receipt, err = client.Deposit(ctx, amount)
		} else {
			receipt, err = client.Withdraw(ctx, amount)
		}
		if err == nil {
			logrus.WithField("tx_hash", receipt.TxHash).Debug("confirmed")
		}
	})
	var xcErr *types.Error
	if errors.Is(err, types.ErrInvalidAmount) && errors.As(err, &xcErr) {
		// rejected before anything was sent, nothing in the session records it
		fmt.Println(errorStyle.Render(xcErr.Context()))
		pause(ctx, "Continue")
	}
	return nil
}

// withSpinner runs action exactly once, without the spinner when there is no
// terminal to draw it on.
func withSpinner(ctx context.Context, title string, action func()) {
	var once sync.Once
	run := func() { once.Do(action) }
	if err := spinner.New().Context(ctx).Title(title).Action(run).Run(); err != nil {
		run()
	}
}

func pause(ctx context.Context, label string) {
	_ = huh.NewForm(
		huh.NewGroup(huh.NewNote().Title("").Next(true).NextLabel(label)),
	).RunWithContext(ctx)
}

// refreshBalance reads the contract balance and returns the message for the
// error panel, empty on success.
func refreshBalance(ctx context.Context, client *bank.Client) string {
	var err error
	withSpinner(ctx, "Fetching balance...", func() {
		_, err = client.FetchBalance(ctx)
	})
	if err != nil {
		logrus.WithError(err).Warn("could not fetch balance")
		return "error fetching balance: " + errorMessage(err)
	}
	return ""
}

func errorMessage(err error) string {
	var xcErr *types.Error
	if errors.As(err, &xcErr) {
		if detail := xcErr.Context(); detail != xcErr.Message {
			return xcErr.Message + ": " + detail
		}
		return xcErr.Message
	}
	return err.Error()
}

// render draws the session. readErr is the last balance read failure, which
// the session itself does not record.
func render(chain *types.ChainConfig, client *bank.Client, readErr string) string {
	session := client.Session()

	account := "not connected"
	if session.Connection.IsConnected() {
		account = string(session.Connection.Account)
	} else if session.Connection.Status == types.Connecting {
		account = "connecting..."
	}
	balance := "-"
	if session.Balance.IsSet() {
		balance = session.Balance.Amount.Format() + " ETH"
	}

	rows := []string{
		headerStyle.Render("BANK"),
		row("network", chain.Network),
		row("contract", string(client.Contract())),
		row("account", account),
		row("balance", balance),
	}
	if !session.Pending.IsIdle() {
		rows = append(rows, row("last op", session.Pending.String()))
	}
	if session.LastError != "" {
		rows = append(rows, errorStyle.Render(session.LastError))
	}
	if readErr != "" {
		rows = append(rows, errorStyle.Render(readErr))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func row(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
}

func renderTransactions(client *bank.Client) string {
	entries := client.Transactions()
	if len(entries) == 0 {
		return labelStyle.UnsetWidth().Render("no transactions in this session")
	}
	decimals := client.Decimals()
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("%3d  %-8s %12s  %-9s %s",
			entry.Seq,
			entry.Kind,
			types.FormatAmount(entry.Amount, decimals),
			entry.Status,
			entry.TxHash,
		))
	}
	return strings.Join(lines, "\n")
}
