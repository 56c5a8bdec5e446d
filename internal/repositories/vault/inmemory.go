package vault

import (
	"context"
	"sync"

	"github.com/wizarding-rpg/character-api/internal/errors"
)

// InMemoryRepository is a map-backed Repository for tests and local
// development.
type InMemoryRepository struct {
	mu       sync.Mutex
	balances map[string]int64
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates an empty in-memory vault repository.
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{balances: make(map[string]int64)}
}

func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return &GetOutput{Knuts: r.balances[input.CharacterID]}, nil
}

func (r *InMemoryRepository) Deposit(_ context.Context, input DepositInput) (*DepositOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}
	if input.Knuts <= 0 {
		return nil, errors.InvalidArgument("deposit amount must be positive")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.balances[input.CharacterID] += input.Knuts
	return &DepositOutput{Knuts: r.balances[input.CharacterID]}, nil
}

func (r *InMemoryRepository) Spend(_ context.Context, input SpendInput) (*SpendOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}
	if input.Knuts <= 0 {
		return nil, errors.InvalidArgument("spend amount must be positive")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	balance := r.balances[input.CharacterID]
	if balance < input.Knuts {
		return nil, errors.FailedPreconditionf(
			"insufficient funds: balance %d knuts, tried to spend %d",
			balance, input.Knuts)
	}
	r.balances[input.CharacterID] = balance - input.Knuts
	return &SpendOutput{Knuts: r.balances[input.CharacterID]}, nil
}
