package bank

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	bankabi "github.com/openweb3-io/bankclient/blockchain/evm/abi/bank"
	xc "github.com/openweb3-io/bankclient/types"
	"github.com/openweb3-io/bankclient/wallet"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type options struct {
	contract xc.ContractAddress
	decimals int32
	now      func() time.Time
}

type Option func(*options)

// WithContract points the client at another deployment of the bank contract.
func WithContract(contract xc.ContractAddress) Option {
	return func(o *options) {
		if contract != "" {
			o.contract = contract
		}
	}
}

func WithDecimals(decimals int32) Option {
	return func(o *options) {
		if decimals > 0 {
			o.decimals = decimals
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// Client mediates between user actions and the wallet provider for one session.
// At most one deposit or withdraw runs at a time; balance reads are never blocked.
type Client struct {
	provider wallet.Provider
	opts     options
	log      *zap.SugaredLogger

	mu      sync.Mutex
	session Session
	journal *Journal
}

// NewClient starts a session. A nil provider is accepted: every operation then
// fails with ErrProviderUnavailable.
func NewClient(provider wallet.Provider, opts ...Option) *Client {
	o := options{
		contract: xc.DefaultContractAddress,
		decimals: xc.DefaultDecimals,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	id := uuid.NewString()
	return &Client{
		provider: provider,
		opts:     o,
		log:      zap.S().With("session", id),
		session: Session{
			ID:         id,
			Connection: xc.ConnectionState{Status: xc.Disconnected},
			Pending:    xc.IdleOperation(),
		},
		journal: NewJournal(),
	}
}

func (c *Client) Contract() xc.ContractAddress {
	return c.opts.contract
}

func (c *Client) Decimals() int32 {
	return c.opts.decimals
}

// Session returns a copy of the session state.
func (c *Client) Session() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

func (c *Client) SetDepositInput(amount string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.DepositInput = amount
}

func (c *Client) SetWithdrawInput(amount string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.WithdrawInput = amount
}

// Transactions returns every submitted transaction, oldest first.
func (c *Client) Transactions() []JournalEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.journal.Entries()
}

func (c *Client) providerUnavailable() error {
	return xc.WrapErr(xc.ErrProviderUnavailable, errors.New("no wallet provider configured"))
}

// Connect asks the wallet to authorize an account. The wallet may prompt the
// user; the connection is Connecting until it answers.
func (c *Client) Connect(ctx context.Context) (xc.ConnectionState, error) {
	if c.provider == nil {
		return c.Session().Connection, c.providerUnavailable()
	}

	c.mu.Lock()
	previous := c.session.Connection
	if !previous.IsConnected() {
		c.session.Connection = xc.ConnectionState{Status: xc.Connecting}
	}
	c.mu.Unlock()

	accounts, err := c.provider.RequestAccounts(ctx)
	if err == nil && len(accounts) == 0 {
		err = errors.New("wallet returned no accounts")
	}
	if err != nil {
		c.mu.Lock()
		if !previous.IsConnected() {
			previous = xc.ConnectionState{Status: xc.Disconnected}
		}
		c.session.Connection = previous
		c.mu.Unlock()
		c.log.Infow("account authorization failed", "error", err)
		return previous, xc.WrapErr(xc.ErrAuthorizationDenied, err)
	}

	state := xc.ConnectionState{Status: xc.Connected, Account: accounts[0]}
	c.mu.Lock()
	c.session.Connection = state
	c.mu.Unlock()
	c.log.Debugw("connected", "account", state.Account)
	return state, nil
}

// Disconnect forgets the authorized account.
func (c *Client) Disconnect() xc.ConnectionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.Connection = xc.ConnectionState{Status: xc.Disconnected}
	return c.session.Connection
}

// FetchBalance reads getBalance() through a read-only connection. No account
// authorization is needed. The snapshot only changes on success.
func (c *Client) FetchBalance(ctx context.Context) (xc.AmountHumanReadable, error) {
	if c.provider == nil {
		return xc.AmountHumanReadable{}, c.providerUnavailable()
	}
	conn, err := c.provider.ReadConnection(ctx)
	if err != nil {
		return xc.AmountHumanReadable{}, xc.WrapErr(xc.ErrProviderUnavailable, err)
	}
	data, err := bankabi.PackGetBalance()
	if err != nil {
		return xc.AmountHumanReadable{}, xc.WrapErr(xc.ErrReadError, err)
	}
	out, err := conn.Call(ctx, c.opts.contract, data)
	if err != nil {
		return xc.AmountHumanReadable{}, xc.WrapErr(xc.ErrReadError, err)
	}
	units, err := bankabi.UnpackBalance(out)
	if err != nil {
		return xc.AmountHumanReadable{}, xc.WrapErr(xc.ErrReadError, err)
	}

	amount := units.ToHuman(c.opts.decimals)
	c.mu.Lock()
	c.session.Balance = BalanceSnapshot{
		Units:     units,
		Amount:    amount,
		FetchedAt: c.opts.now(),
	}
	c.mu.Unlock()
	return amount, nil
}

// Deposit calls deposit(units) with units attached as value, waits for the
// receipt and refreshes the balance.
func (c *Client) Deposit(ctx context.Context, amount string) (*xc.TransactionReceipt, error) {
	return c.submit(ctx, xc.Deposit, amount)
}

// Withdraw calls withdraw(units) without value, waits for the receipt and
// refreshes the balance.
func (c *Client) Withdraw(ctx context.Context, amount string) (*xc.TransactionReceipt, error) {
	return c.submit(ctx, xc.Withdraw, amount)
}

func (c *Client) submit(ctx context.Context, kind xc.OperationKind, amount string) (*xc.TransactionReceipt, error) {
	// invalid input never touches the session
	units, err := xc.ParseAmount(amount, c.opts.decimals)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.session.Pending.IsInFlight() {
		inFlight := c.session.Pending
		c.mu.Unlock()
		return nil, xc.WrapErr(xc.ErrOperationInProgress, fmt.Errorf("%s is in flight", inFlight.Kind))
	}
	c.session.Pending = xc.InFlightOperation(kind)
	c.mu.Unlock()

	log := c.log.With("kind", kind, "amount", units.String())
	log.Debugw("operation started")

	receipt, err := c.execute(ctx, kind, units)
	if err != nil {
		message := fmt.Sprintf("error during %s: %s", noun(kind), describe(err))
		c.mu.Lock()
		c.session.Pending = xc.FailedOperation(kind, message)
		c.session.LastError = message
		c.mu.Unlock()
		log.Warnw("operation failed", "error", message)
		return nil, err
	}

	lastError := ""
	if _, err := c.FetchBalance(ctx); err != nil {
		lastError = fmt.Sprintf("error fetching balance: %s", describe(err))
		log.Warnw("balance refresh failed", "error", lastError)
	}
	c.mu.Lock()
	c.session.clearInput(kind)
	c.session.Pending = xc.IdleOperation()
	c.session.LastError = lastError
	c.mu.Unlock()
	log.Infow("operation confirmed", "tx_hash", receipt.TxHash, "block", receipt.BlockNumber)
	return receipt, nil
}

func (c *Client) execute(ctx context.Context, kind xc.OperationKind, units xc.BigInt) (*xc.TransactionReceipt, error) {
	state, err := c.Connect(ctx)
	if err != nil {
		return nil, err
	}
	conn, err := c.provider.SigningConnection(ctx, state.Account)
	if err != nil {
		if errors.Is(err, wallet.ErrRejected) {
			return nil, xc.WrapErr(xc.ErrAuthorizationDenied, err)
		}
		return nil, xc.WrapErr(xc.ErrProviderUnavailable, err)
	}

	data, err := bankabi.PackCall(kind, units)
	if err != nil {
		return nil, xc.WrapErr(xc.ErrTransactionFailed, err)
	}
	value := xc.NewBigIntFromUint64(0)
	if kind == xc.Deposit {
		value = units
	}

	hash, err := conn.SendTransaction(ctx, c.opts.contract, value, data)
	if err != nil {
		return nil, xc.WrapErr(xc.ErrTransactionFailed, err)
	}
	c.mu.Lock()
	c.journal.Record(JournalEntry{
		TxHash:      hash,
		Kind:        kind,
		Account:     state.Account,
		Amount:      units,
		SubmittedAt: c.opts.now(),
	})
	c.mu.Unlock()

	receipt, err := conn.WaitForReceipt(ctx, hash)
	if err != nil {
		// the tx was submitted, its outcome is unknown
		c.mu.Lock()
		c.journal.Update(hash, JournalTimedOut, nil, c.opts.now())
		c.mu.Unlock()
		return nil, xc.WrapErrWithDetails(xc.ErrConfirmationTimeout, err, map[string]any{
			"tx_hash": string(hash),
		})
	}
	receipt.Kind = kind
	receipt.Amount = units
	receipt.Value = value
	receipt.Contract = c.opts.contract
	if receipt.From == "" {
		receipt.From = state.Account
	}

	c.mu.Lock()
	c.journal.Update(hash, journalStatus(receipt), receipt, c.opts.now())
	c.mu.Unlock()

	if !receipt.Succeeded() {
		return nil, xc.WrapErrWithDetails(xc.ErrTransactionFailed, errors.Errorf("transaction %s reverted", hash), map[string]any{
			"tx_hash": string(hash),
		})
	}
	return receipt, nil
}

// CheckTransaction looks up the outcome of a submitted transaction, typically
// one whose confirmation wait timed out.
func (c *Client) CheckTransaction(ctx context.Context, hash xc.TxHash) (*xc.TransactionReceipt, error) {
	if c.provider == nil {
		return nil, c.providerUnavailable()
	}
	state := c.Session().Connection
	if !state.IsConnected() {
		var err error
		state, err = c.Connect(ctx)
		if err != nil {
			return nil, err
		}
	}
	conn, err := c.provider.SigningConnection(ctx, state.Account)
	if err != nil {
		return nil, xc.WrapErr(xc.ErrProviderUnavailable, err)
	}
	receipt, err := conn.TransactionReceipt(ctx, hash)
	if err != nil {
		return nil, xc.WrapErr(xc.ErrReadError, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.journal.Get(hash); ok {
		receipt.Kind = entry.Kind
		receipt.Amount = entry.Amount
		if entry.Kind == xc.Deposit {
			receipt.Value = entry.Amount
		}
		status := journalStatus(receipt)
		if status == JournalPending && entry.Status == JournalTimedOut {
			// still not mined
			status = JournalTimedOut
		}
		c.journal.Update(hash, status, receipt, c.opts.now())
	}
	return receipt, nil
}

func noun(kind xc.OperationKind) string {
	if kind == xc.Withdraw {
		return "withdrawal"
	}
	return string(kind)
}

// describe renders err for display, without the JSON form of *types.Error.
func describe(err error) string {
	var xcErr *xc.Error
	if errors.As(err, &xcErr) {
		if detail := xcErr.Context(); detail != xcErr.Message {
			return xcErr.Message + ": " + detail
		}
		return xcErr.Message
	}
	return err.Error()
}
