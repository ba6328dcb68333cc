package types

// TxStatus is the status of a tx on chain.
type TxStatus uint8

// TxStatus values
const (
	TxStatusSuccess TxStatus = 0
	TxStatusFailure TxStatus = 1
	TxStatusPending TxStatus = 2
	// the confirmation wait gave up; the tx may still land
	TxStatusUnknown TxStatus = 3
)

func (s TxStatus) String() string {
	switch s {
	case TxStatusSuccess:
		return "success"
	case TxStatusFailure:
		return "failure"
	case TxStatusPending:
		return "pending"
	case TxStatusUnknown:
		return "unknown"
	}
	return "invalid"
}

type TxHash string

type TxSignature []byte

type TxDataToSign []byte

type Tx interface {
	Serialize() ([]byte, error)
	Hash() TxHash
	Sighashes() ([]TxDataToSign, error)
	AddSignatures(...TxSignature) error
	GetSignatures() []TxSignature
}

// TxInput is the chain state needed to build a tx: nonce, fees, limits.
type TxInput interface {
	SetGasFeePriority(priority GasFeePriority) error
}

type GasFeePriority string

const (
	Low        GasFeePriority = "low"
	Market     GasFeePriority = "market"
	Aggressive GasFeePriority = "aggressive"
)

// GetDefault returns the multiplier applied to the suggested fees.
func (p GasFeePriority) GetDefault() (float64, bool) {
	switch p {
	case Low:
		return 0.7, true
	case Market, "":
		return 1.0, true
	case Aggressive:
		return 1.5, true
	}
	return 0, false
}
