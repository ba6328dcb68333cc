package tx

import (
	"errors"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/openweb3-io/bankclient/blockchain/evm/abi/bank"
	xc_types "github.com/openweb3-io/bankclient/types"
)

type Tx struct {
	EthTx      *types.Transaction
	Signer     types.Signer
	Signatures []xc_types.TxSignature
}

var _ xc_types.Tx = &Tx{}

func (tx *Tx) Hash() xc_types.TxHash {
	if tx.EthTx != nil {
		return xc_types.TxHash(tx.EthTx.Hash().Hex())
	}
	return xc_types.TxHash("")
}

// Sighashes returns the tx payload to sign, aka sighash
func (tx *Tx) Sighashes() ([]xc_types.TxDataToSign, error) {
	if tx.EthTx == nil {
		return []xc_types.TxDataToSign{}, errors.New("transaction not initialized")
	}
	sighash := tx.Signer.Hash(tx.EthTx).Bytes()
	return []xc_types.TxDataToSign{sighash}, nil
}

// AddSignatures adds a signature to Tx
func (tx *Tx) AddSignatures(signatures ...xc_types.TxSignature) error {
	if tx.EthTx == nil {
		return errors.New("transaction not initialized")
	}
	if len(signatures) != 1 {
		return errors.New("expected exactly one signature")
	}

	signedTx, err := tx.EthTx.WithSignature(tx.Signer, signatures[0])
	if err != nil {
		return err
	}
	tx.EthTx = signedTx
	tx.Signatures = []xc_types.TxSignature{signatures[0]}
	return nil
}

func (tx *Tx) GetSignatures() []xc_types.TxSignature {
	return tx.Signatures
}

// Serialize returns the serialized tx
func (tx *Tx) Serialize() ([]byte, error) {
	if tx.EthTx == nil {
		return []byte{}, errors.New("transaction not initialized")
	}
	return tx.EthTx.MarshalBinary()
}

// IsContract returns whether a tx carries a contract call
func (tx *Tx) IsContract() bool {
	if tx.EthTx == nil {
		return false
	}
	if tx.EthTx.To() == nil {
		return false
	}
	payload := tx.EthTx.Data()
	return len(payload) > 0
}

// From is the sender of a signed tx
func (tx *Tx) From() xc_types.Address {
	if tx.EthTx == nil || tx.Signer == nil {
		return xc_types.Address("")
	}

	from, err := types.Sender(tx.Signer, tx.EthTx)
	if err != nil {
		return xc_types.Address("")
	}
	return xc_types.Address(from.String())
}

// ContractAddress returns the contract the tx calls
func (tx *Tx) ContractAddress() xc_types.ContractAddress {
	if tx.IsContract() {
		return xc_types.ContractAddress(tx.EthTx.To().String())
	}
	return xc_types.ContractAddress("")
}

// Value returns the native value attached to the tx
func (tx *Tx) Value() xc_types.BigInt {
	if tx.EthTx == nil {
		return xc_types.NewBigIntFromUint64(0)
	}
	return xc_types.BigInt(*tx.EthTx.Value())
}

// ParseBankCall decodes the deposit or withdraw carried by the tx
func (tx *Tx) ParseBankCall() (xc_types.OperationKind, xc_types.BigInt, error) {
	if !tx.IsContract() {
		return "", xc_types.BigInt{}, errors.New("tx is not a contract call")
	}
	return bank.ParseCall(tx.EthTx.Data())
}

// Fee returns the maximum fee the tx can be charged
func (tx *Tx) Fee() xc_types.BigInt {
	if tx.EthTx == nil {
		return xc_types.NewBigIntFromUint64(0)
	}
	gasFeeCap := xc_types.BigInt(*tx.EthTx.GasFeeCap())
	gas := xc_types.NewBigIntFromUint64(tx.EthTx.Gas())
	return gasFeeCap.Mul(&gas)
}
