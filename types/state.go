package types

import "fmt"

type ConnectionStatus string

const (
	Disconnected ConnectionStatus = "disconnected"
	Connecting   ConnectionStatus = "connecting"
	Connected    ConnectionStatus = "connected"
)

// ConnectionState is the wallet connection of a session. Account is only set
// when Status is Connected.
type ConnectionState struct {
	Status  ConnectionStatus `json:"status"`
	Account Address          `json:"account,omitempty"`
}

func (s ConnectionState) IsConnected() bool {
	return s.Status == Connected && s.Account != ""
}

func (s ConnectionState) String() string {
	if s.Status == Connected {
		return fmt.Sprintf("connected(%s)", s.Account)
	}
	return string(s.Status)
}

// OperationKind is the mutating contract method an operation calls.
type OperationKind string

const (
	Deposit  OperationKind = "deposit"
	Withdraw OperationKind = "withdraw"
)

type PendingStatus string

const (
	Idle     PendingStatus = "idle"
	InFlight PendingStatus = "in_flight"
	Failed   PendingStatus = "failed"
)

// PendingOperation tracks the one mutating operation a session may run.
// Kind is set while InFlight, Message once Failed.
type PendingOperation struct {
	Status  PendingStatus `json:"status"`
	Kind    OperationKind `json:"kind,omitempty"`
	Message string        `json:"message,omitempty"`
}

func IdleOperation() PendingOperation {
	return PendingOperation{Status: Idle}
}

func InFlightOperation(kind OperationKind) PendingOperation {
	return PendingOperation{Status: InFlight, Kind: kind}
}

func FailedOperation(kind OperationKind, message string) PendingOperation {
	return PendingOperation{Status: Failed, Kind: kind, Message: message}
}

func (op PendingOperation) IsIdle() bool     { return op.Status == Idle || op.Status == "" }
func (op PendingOperation) IsInFlight() bool { return op.Status == InFlight }
func (op PendingOperation) IsFailed() bool   { return op.Status == Failed }

func (op PendingOperation) String() string {
	switch op.Status {
	case InFlight:
		return fmt.Sprintf("in_flight(%s)", op.Kind)
	case Failed:
		return fmt.Sprintf("failed(%s)", op.Message)
	}
	return string(Idle)
}
