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

// GormAccountReceivableRepository implements AccountReceivableRepository using GORM
type GormAccountReceivableRepository struct {
	db *gorm.DB
}

// NewGormAccountReceivableRepository creates a new GormAccountReceivableRepository
func NewGormAccountReceivableRepository(db *gorm.DB) *GormAccountReceivableRepository {
	return &GormAccountReceivableRepository{db: db}
}

// FindByIDForTenant finds a receivable by ID for a tenant.
// A missing row is a nil aggregate, not an error.
func (r *GormAccountReceivableRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*ledger.AccountReceivable, error) {
	var model models.AccountReceivableModel
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

// FindByInvoiceNumber finds a receivable by invoice number for a tenant
func (r *GormAccountReceivableRepository) FindByInvoiceNumber(ctx context.Context, tenantID uuid.UUID, invoiceNumber string) (*ledger.AccountReceivable, error) {
	var model models.AccountReceivableModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND invoice_number = ?", tenantID, invoiceNumber).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForTenant finds all receivables for a tenant with filtering
func (r *GormAccountReceivableRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter ledger.AccountReceivableFilter) ([]ledger.AccountReceivable, error) {
	var receivableModels []models.AccountReceivableModel
	query := r.db.WithContext(ctx).Model(&models.AccountReceivableModel{}).
		Where("tenant_id = ?", tenantID)
	query = applyReceivableFilter(query, filter)
	query = applyPagination(query, filter.Filter, AccountReceivableSortFields, "due_date")

	if err := query.Find(&receivableModels).Error; err != nil {
		return nil, err
	}
	receivables := make([]ledger.AccountReceivable, len(receivableModels))
	for i := range receivableModels {
		receivables[i] = *receivableModels[i].ToDomain()
	}
	return receivables, nil
}

// CountForTenant counts receivables for a tenant with filtering
func (r *GormAccountReceivableRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter ledger.AccountReceivableFilter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.AccountReceivableModel{}).
		Where("tenant_id = ?", tenantID)
	query = applyReceivableFilter(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a receivable with its installment schedule.
// An invoice number collision inside the tenant surfaces as
// shared.ErrAlreadyExists.
func (r *GormAccountReceivableRepository) Save(ctx context.Context, receivable *ledger.AccountReceivable) error {
	model := models.AccountReceivableModelFromDomain(receivable)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// DeleteForTenant deletes a receivable for a tenant
func (r *GormAccountReceivableRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AccountReceivableModel{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func applyReceivableFilter(query *gorm.DB, filter ledger.AccountReceivableFilter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("description LIKE ? OR invoice_number LIKE ?", pattern, pattern)
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

// Ensure GormAccountReceivableRepository implements AccountReceivableRepository
var _ ledger.AccountReceivableRepository = (*GormAccountReceivableRepository)(nil)
