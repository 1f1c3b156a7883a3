package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ledgerhub/backend/internal/domain/ledger"
	"github.com/ledgerhub/backend/internal/domain/shared"
	"github.com/ledgerhub/backend/internal/infrastructure/persistence/models"
)

// GormAccountPayableRepository implements AccountPayableRepository using GORM
type GormAccountPayableRepository struct {
	db *gorm.DB
}

// NewGormAccountPayableRepository creates a new GormAccountPayableRepository
func NewGormAccountPayableRepository(db *gorm.DB) *GormAccountPayableRepository {
	return &GormAccountPayableRepository{db: db}
}

// FindByIDForTenant finds a payable by ID for a tenant.
// A missing row is a nil aggregate, not an error.
func (r *GormAccountPayableRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*ledger.AccountPayable, error) {
	var model models.AccountPayableModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForTenant finds all payables for a tenant with filtering
func (r *GormAccountPayableRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter ledger.AccountPayableFilter) ([]ledger.AccountPayable, error) {
	var payableModels []models.AccountPayableModel
	query := r.db.WithContext(ctx).Model(&models.AccountPayableModel{}).
		Where("tenant_id = ?", tenantID)
	query = applyPayableFilter(query, filter)
	query = applyPagination(query, filter.Filter, AccountPayableSortFields, "due_date")

	if err := query.Find(&payableModels).Error; err != nil {
		return nil, err
	}
	payables := make([]ledger.AccountPayable, len(payableModels))
	for i := range payableModels {
		payables[i] = *payableModels[i].ToDomain()
	}
	return payables, nil
}

// CountForTenant counts payables for a tenant with filtering
func (r *GormAccountPayableRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter ledger.AccountPayableFilter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.AccountPayableModel{}).
		Where("tenant_id = ?", tenantID)
	query = applyPayableFilter(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a payable with its installment schedule
func (r *GormAccountPayableRepository) Save(ctx context.Context, payable *ledger.AccountPayable) error {
	model := models.AccountPayableModelFromDomain(payable)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteForTenant deletes a payable for a tenant
func (r *GormAccountPayableRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AccountPayableModel{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func applyPayableFilter(query *gorm.DB, filter ledger.AccountPayableFilter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("description LIKE ?", "%"+filter.Search+"%")
	}
	if filter.RelatedPartyID != nil {
		query = query.Where("related_party_id = ?", *filter.RelatedPartyID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.DueFrom != nil {
		query = query.Where("due_date >= ?", *filter.DueFrom)
	}
	if filter.DueTo != nil {
		query = query.Where("due_date <= ?", *filter.DueTo)
	}
	if filter.Overdue != nil && *filter.Overdue {
		query = query.Where("due_date < ? AND status = ?", time.Now(), ledger.AccountStatusPending)
	}
	return query
}

// Ensure GormAccountPayableRepository implements AccountPayableRepository
var _ ledger.AccountPayableRepository = (*GormAccountPayableRepository)(nil)
