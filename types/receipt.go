package types

// TransactionReceipt is the confirmed outcome of a deposit or withdraw.
type TransactionReceipt struct {
	TxHash            TxHash          `json:"tx_hash"`
	Kind              OperationKind   `json:"kind,omitempty"`
	From              Address         `json:"from,omitempty"`
	Contract          ContractAddress `json:"contract,omitempty"`
	Amount            BigInt          `json:"amount"`
	Value             BigInt          `json:"value"`
	BlockNumber       uint64          `json:"block_number"`
	BlockHash         string          `json:"block_hash,omitempty"`
	GasUsed           uint64          `json:"gas_used"`
	EffectiveGasPrice BigInt          `json:"effective_gas_price"`
	Status            TxStatus        `json:"status"`
}

// Fee is gas used times the effective gas price.
func (r *TransactionReceipt) Fee() BigInt {
	gasUsed := NewBigIntFromUint64(r.GasUsed)
	return gasUsed.Mul(&r.EffectiveGasPrice)
}

func (r *TransactionReceipt) Succeeded() bool {
	return r.Status == TxStatusSuccess
}
