// Package vault provides persistence for a character's bank balance. The
// balance is a single knut total; sickle and galleon breakdown is a
// presentation concern handled by the rulebook currency tables.
package vault

//go:generate mockgen -destination=mock/mock_repository.go -package=vaultmock github.com/wizarding-rpg/character-api/internal/repositories/vault Repository

import "context"

// Repository defines the interface for vault persistence.
//
// A character without a vault row has a balance of zero; that is a normal
// state, not an error. Balances can never go below zero: Spend rejects an
// overdraft with FailedPrecondition and leaves the balance untouched.
type Repository interface {
	// Get retrieves the current balance in knuts.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Deposit adds a positive amount of knuts and returns the new
	// balance.
	Deposit(ctx context.Context, input DepositInput) (*DepositOutput, error)

	// Spend removes a positive amount of knuts. Returns
	// FailedPrecondition when the balance would go below zero.
	Spend(ctx context.Context, input SpendInput) (*SpendOutput, error)
}

// GetInput defines the input for reading a balance.
type GetInput struct {
	CharacterID string
}

// GetOutput defines the output for reading a balance.
type GetOutput struct {
	Knuts int64
}

// DepositInput defines the input for a deposit.
type DepositInput struct {
	CharacterID string
	Knuts       int64
}

// DepositOutput defines the output for a deposit.
type DepositOutput struct {
	Knuts int64
}

// SpendInput defines the input for spending.
type SpendInput struct {
	CharacterID string
	Knuts       int64
}

// SpendOutput defines the output for spending.
type SpendOutput struct {
	Knuts int64
}
