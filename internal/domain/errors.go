// Package domain provides definitions of the bank entities: interest rates,
// transactions and the errors the ledger operations can return.
package domain

import "errors"

var (
	// ErrInvalidRate indicates an interest rate outside of [0, 1].
	ErrInvalidRate = errors.New("interest rate out of range")
	// ErrInvalidTransaction indicates a transaction that violates its variant rules.
	ErrInvalidTransaction = errors.New("invalid transaction")
	// ErrDuplicateTransaction indicates that an equal transaction is already in the ledger.
	ErrDuplicateTransaction = errors.New("transaction already exists")
	// ErrTransactionNotFound indicates that no equal transaction is in the ledger.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrAccountExists indicates that the account name is already taken.
	ErrAccountExists = errors.New("account already exists")
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrUnknownVariant indicates a persisted record with an unrecognized kind tag.
	ErrUnknownVariant = errors.New("unknown transaction kind")
	// ErrStorage indicates a failure of the underlying ledger storage.
	ErrStorage = errors.New("storage failure")
	// ErrInvalidCredentials indicates a failed operator login.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Reasons attached to ErrInvalidTransaction.
const (
	ReasonZeroAmount             = "zero amount"
	ReasonNegativeTransferAmount = "negative transfer amount"
	ReasonRateOutOfRange         = "interest rate out of range"
)
