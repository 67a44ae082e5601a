// Package memory keeps the checkout ledger in process memory for single-instance
// deployments that run without postgres.
package memory

import (
	"context"
	"sync"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type ledgerKey struct {
	userID entity.UserID
	key    string
}

// CheckoutRepository implements repository.CheckoutRepository. Records are
// kept until Sweep drops them.
type CheckoutRepository struct {
	mu      sync.Mutex
	records map[ledgerKey]entity.CheckoutRecord
	now     func() time.Time
}

var _ repository.CheckoutRepository = (*CheckoutRepository)(nil)

// NewCheckoutRepository is the constructor for CheckoutRepository.
func NewCheckoutRepository() *CheckoutRepository {
	return &CheckoutRepository{
		records: make(map[ledgerKey]entity.CheckoutRecord),
		now:     time.Now,
	}
}

// Reserve stores a pending attempt unless the user already used the key.
func (repo *CheckoutRepository) Reserve(_ context.Context, record *entity.CheckoutRecord) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	k := ledgerKey{userID: record.UserID, key: record.IdempotencyKey}
	if _, exists := repo.records[k]; exists {
		return repository.ErrDuplicateCheckoutKey
	}

	now := repo.now()
	record.CreatedAt = now
	record.UpdatedAt = now
	repo.records[k] = copyRecord(record)

	return nil
}

// FindByKey returns a copy of the attempt the user recorded under a key.
func (repo *CheckoutRepository) FindByKey(_ context.Context, userID entity.UserID, idempotencyKey string) (*entity.CheckoutRecord, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	record, exists := repo.records[ledgerKey{userID: userID, key: idempotencyKey}]
	if !exists {
		return nil, repository.ErrCheckoutRecordNotFound
	}
	found := copyRecord(&record)

	return &found, nil
}

// Complete stores the confirmation and marks the attempt completed.
func (repo *CheckoutRepository) Complete(_ context.Context, userID entity.UserID, idempotencyKey string, confirmation *entity.OrderConfirmation) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	k := ledgerKey{userID: userID, key: idempotencyKey}
	record, exists := repo.records[k]
	if !exists {
		return repository.ErrCheckoutRecordNotFound
	}

	record.Status = entity.CheckoutRecordCompleted
	record.UpdatedAt = repo.now()
	if confirmation != nil {
		stored := *confirmation
		record.Confirmation = &stored
		record.OrderID = confirmation.OrderID
	}
	repo.records[k] = record

	return nil
}

// Release drops a pending attempt. Completed attempts are kept.
func (repo *CheckoutRepository) Release(_ context.Context, userID entity.UserID, idempotencyKey string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	k := ledgerKey{userID: userID, key: idempotencyKey}
	if record, exists := repo.records[k]; exists && record.Status == entity.CheckoutRecordPending {
		delete(repo.records, k)
	}

	return nil
}

// Sweep drops attempts last updated before olderThan. A key replayed after
// that gets a fresh attempt.
func (repo *CheckoutRepository) Sweep(olderThan time.Time) int {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	removed := 0
	for k, record := range repo.records {
		if record.UpdatedAt.Before(olderThan) {
			delete(repo.records, k)
			removed++
		}
	}

	return removed
}

func (repo *CheckoutRepository) len() int {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	return len(repo.records)
}

func copyRecord(record *entity.CheckoutRecord) entity.CheckoutRecord {
	cloned := *record
	if record.Confirmation != nil {
		confirmation := *record.Confirmation
		cloned.Confirmation = &confirmation
	}

	return cloned
}
