package bank

import (
	"time"

	xc "github.com/openweb3-io/bankclient/types"
)

// BalanceSnapshot is the contract balance as of the last successful fetch.
type BalanceSnapshot struct {
	Units     xc.BigInt              `json:"units"`
	Amount    xc.AmountHumanReadable `json:"amount"`
	FetchedAt time.Time              `json:"fetched_at"`
}

// IsSet reports whether a balance was ever fetched.
func (b BalanceSnapshot) IsSet() bool {
	return !b.FetchedAt.IsZero()
}

// Session is the state of one user session: connection, pending operation,
// last balance, form inputs and the last error shown to the user.
type Session struct {
	ID            string              `json:"id"`
	Connection    xc.ConnectionState  `json:"connection"`
	Pending       xc.PendingOperation `json:"pending"`
	Balance       BalanceSnapshot     `json:"balance"`
	DepositInput  string              `json:"deposit_input,omitempty"`
	WithdrawInput string              `json:"withdraw_input,omitempty"`
	LastError     string              `json:"last_error,omitempty"`
}

// Busy reports whether controls should be disabled and a spinner shown.
func (s Session) Busy() bool {
	return s.Pending.IsInFlight()
}

func (s *Session) clearInput(kind xc.OperationKind) {
	switch kind {
	case xc.Deposit:
		s.DepositInput = ""
	case xc.Withdraw:
		s.WithdrawInput = ""
	}
}
