// Package models defines the canonical transaction record shared by the
// importer, categorizer, summary and storage layers.
package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is the finalized, immutable record produced by the engine.
// The amount is signed: positive means income/credit, negative means
// expense/debit. Zero is permitted.
type Transaction struct {
	ID       string          `json:"id" csv:"ID"`
	Date     string          `json:"date" csv:"Date"`
	Name     string          `json:"name" csv:"Name"`
	Amount   decimal.Decimal `json:"amount" csv:"Amount"`
	Category string          `json:"category" csv:"Category"`
}

// NewTransaction creates a Transaction with a fresh identifier.
// Callers are expected to pass already-cleaned fields; no further
// normalization happens here.
func NewTransaction(date, name string, amount decimal.Decimal, category string) Transaction {
	return Transaction{
		ID:       uuid.New().String(),
		Date:     date,
		Name:     name,
		Amount:   amount,
		Category: category,
	}
}

// IsCredit reports whether the transaction represents incoming money.
func (t Transaction) IsCredit() bool {
	return t.Amount.IsPositive()
}

// IsDebit reports whether the transaction represents outgoing money.
// Zero-amount transactions are neither credits nor debits.
func (t Transaction) IsDebit() bool {
	return t.Amount.IsNegative()
}

// ImportResult is returned by the CSV import entry point. Transactions holds
// every successfully built record for the caller to append to its store;
// Sample holds at most the first five of them for display purposes.
type ImportResult struct {
	Imported     int           `json:"imported"`
	Sample       []Transaction `json:"sample"`
	Transactions []Transaction `json:"-"`
}
