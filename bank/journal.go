package bank

import (
	"time"

	xc "github.com/openweb3-io/bankclient/types"
	"github.com/tidwall/btree"
)

type JournalStatus string

const (
	JournalPending   JournalStatus = "pending"
	JournalConfirmed JournalStatus = "confirmed"
	JournalReverted  JournalStatus = "reverted"
	// the confirmation wait gave up, the outcome is unknown
	JournalTimedOut JournalStatus = "timed_out"
)

// JournalEntry is one submitted transaction.
type JournalEntry struct {
	Seq         uint64                 `json:"seq"`
	TxHash      xc.TxHash              `json:"tx_hash"`
	Kind        xc.OperationKind       `json:"kind"`
	Account     xc.Address             `json:"account"`
	Amount      xc.BigInt              `json:"amount"`
	Status      JournalStatus          `json:"status"`
	SubmittedAt time.Time              `json:"submitted_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
	Receipt     *xc.TransactionReceipt `json:"receipt,omitempty"`
}

// Journal keeps submitted transactions in submission order. It is not safe
// for concurrent use; the client serializes access.
type Journal struct {
	entries btree.Map[uint64, *JournalEntry]
	byHash  map[xc.TxHash]uint64
	next    uint64
}

func NewJournal() *Journal {
	return &Journal{byHash: map[xc.TxHash]uint64{}}
}

func (j *Journal) Record(entry JournalEntry) JournalEntry {
	j.next++
	entry.Seq = j.next
	if entry.Status == "" {
		entry.Status = JournalPending
	}
	if entry.UpdatedAt.IsZero() {
		entry.UpdatedAt = entry.SubmittedAt
	}
	j.entries.Set(entry.Seq, &entry)
	j.byHash[entry.TxHash] = entry.Seq
	return entry
}

// Update sets the status of hash, and its receipt when one is given.
func (j *Journal) Update(hash xc.TxHash, status JournalStatus, receipt *xc.TransactionReceipt, at time.Time) (JournalEntry, bool) {
	seq, ok := j.byHash[hash]
	if !ok {
		return JournalEntry{}, false
	}
	entry, ok := j.entries.Get(seq)
	if !ok {
		return JournalEntry{}, false
	}
	entry.Status = status
	entry.UpdatedAt = at
	if receipt != nil {
		copied := *receipt
		entry.Receipt = &copied
	}
	return *entry, true
}

func (j *Journal) Get(hash xc.TxHash) (JournalEntry, bool) {
	seq, ok := j.byHash[hash]
	if !ok {
		return JournalEntry{}, false
	}
	entry, ok := j.entries.Get(seq)
	if !ok {
		return JournalEntry{}, false
	}
	return *entry, true
}

// Entries returns copies of every entry, oldest first.
func (j *Journal) Entries() []JournalEntry {
	result := make([]JournalEntry, 0, j.entries.Len())
	j.entries.Scan(func(_ uint64, entry *JournalEntry) bool {
		result = append(result, *entry)
		return true
	})
	return result
}

func (j *Journal) Len() int {
	return j.entries.Len()
}

func journalStatus(receipt *xc.TransactionReceipt) JournalStatus {
	switch receipt.Status {
	case xc.TxStatusSuccess:
		return JournalConfirmed
	case xc.TxStatusFailure:
		return JournalReverted
	case xc.TxStatusUnknown:
		return JournalTimedOut
	}
	return JournalPending
}
