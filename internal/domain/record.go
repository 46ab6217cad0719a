package domain

// LedgerRecord is the persisted form of one account ledger.
type LedgerRecord struct {
	Account string
	Data    []byte
}
