package postgres

import (
	"context"
	"encoding/json"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// checkoutRepository implements the repository.CheckoutRepository interface.
type checkoutRepository struct {
	db *gorm.DB
}

// NewCheckoutRepository is the constructor for checkoutRepository.
func NewCheckoutRepository(db *gorm.DB) repository.CheckoutRepository {
	return &checkoutRepository{
		db: db,
	}
}

// Migrate creates the ledger table when it does not exist.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&model.CheckoutRecordModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate checkout records")
	}

	return nil
}

// Reserve persists a pending checkout attempt.
func (repo *checkoutRepository) Reserve(ctx context.Context, record *entity.CheckoutRecord) error {
	recordM, err := fromCheckoutDomain(record)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCheckoutKey
		}

		return domainerrors.NewLedgerExecuteError(err, "failed to reserve checkout key")
	}

	record.CreatedAt = recordM.CreatedAt
	record.UpdatedAt = recordM.UpdatedAt

	return nil
}

// FindByKey retrieves the attempt a user recorded under a key.
func (repo *checkoutRepository) FindByKey(ctx context.Context, userID entity.UserID, idempotencyKey string) (*entity.CheckoutRecord, error) {
	var recordM model.CheckoutRecordModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND idempotency_key = ?", int64(userID), idempotencyKey).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCheckoutRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find checkout record")
	}

	return toCheckoutDomain(&recordM)
}

// Complete stores the confirmation and marks the attempt completed.
func (repo *checkoutRepository) Complete(ctx context.Context, userID entity.UserID, idempotencyKey string, confirmation *entity.OrderConfirmation) error {
	payload, err := json.Marshal(confirmation)
	if err != nil {
		return errors.Wrap(err, "failed to encode confirmation")
	}
	confirmationJSON := string(payload)

	updates := map[string]any{
		"status":       string(entity.CheckoutRecordCompleted),
		"confirmation": confirmationJSON,
	}
	if confirmation != nil {
		updates["order_id"] = confirmation.OrderID
	}

	result := repo.db.WithContext(ctx).
		Model(&model.CheckoutRecordModel{}).
		Where("user_id = ? AND idempotency_key = ?", int64(userID), idempotencyKey).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewLedgerExecuteError(result.Error, "failed to complete checkout record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCheckoutRecordNotFound
	}

	return nil
}

// Release deletes a pending attempt. Completed attempts are kept.
func (repo *checkoutRepository) Release(ctx context.Context, userID entity.UserID, idempotencyKey string) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND idempotency_key = ? AND status = ?", int64(userID), idempotencyKey, string(entity.CheckoutRecordPending)).
		Delete(&model.CheckoutRecordModel{}).Error; err != nil {
		return domainerrors.NewLedgerExecuteError(err, "failed to release checkout record")
	}

	return nil
}

func fromCheckoutDomain(record *entity.CheckoutRecord) (*model.CheckoutRecordModel, error) {
	recordM := &model.CheckoutRecordModel{
		IdempotencyKey: record.IdempotencyKey,
		UserID:         int64(record.UserID),
		Status:         string(record.Status),
		CreatedAt:      record.CreatedAt,
		UpdatedAt:      record.UpdatedAt,
	}
	if record.OrderID != 0 {
		orderID := record.OrderID
		recordM.OrderID = &orderID
	}
	if record.Confirmation != nil {
		payload, err := json.Marshal(record.Confirmation)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode confirmation")
		}
		confirmationJSON := string(payload)
		recordM.Confirmation = &confirmationJSON
	}

	return recordM, nil
}

func toCheckoutDomain(recordM *model.CheckoutRecordModel) (*entity.CheckoutRecord, error) {
	record := &entity.CheckoutRecord{
		IdempotencyKey: recordM.IdempotencyKey,
		UserID:         entity.UserID(recordM.UserID),
		Status:         entity.CheckoutRecordStatus(recordM.Status),
		CreatedAt:      recordM.CreatedAt,
		UpdatedAt:      recordM.UpdatedAt,
	}
	if recordM.OrderID != nil {
		record.OrderID = *recordM.OrderID
	}
	if recordM.Confirmation != nil && *recordM.Confirmation != "" {
		var confirmation entity.OrderConfirmation
		if err := json.Unmarshal([]byte(*recordM.Confirmation), &confirmation); err != nil {
			return nil, errors.Wrap(err, "failed to decode confirmation")
		}
		record.Confirmation = &confirmation
	}

	return record, nil
}
