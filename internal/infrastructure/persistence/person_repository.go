package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ledgerhub/backend/internal/domain/party"
	"github.com/ledgerhub/backend/internal/domain/shared"
	"github.com/ledgerhub/backend/internal/infrastructure/persistence/models"
)

// GormPersonRepository implements PersonRepository using GORM
type GormPersonRepository struct {
	db *gorm.DB
}

// NewGormPersonRepository creates a new GormPersonRepository
func NewGormPersonRepository(db *gorm.DB) *GormPersonRepository {
	return &GormPersonRepository{db: db}
}

// FindByIDForTenant finds a person of either kind by ID for a tenant.
// A missing row is a nil record, not an error.
func (r *GormPersonRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*party.PersonRecord, error) {
	model, err := r.findModel(ctx, tenantID, id)
	if err != nil || model == nil {
		return nil, err
	}
	return model.ToRecord(), nil
}

// FindIndividualByID finds an individual person by ID for a tenant
func (r *GormPersonRepository) FindIndividualByID(ctx context.Context, tenantID, id uuid.UUID) (*party.IndividualPerson, error) {
	model, err := r.findModel(ctx, tenantID, id)
	if err != nil || model == nil {
		return nil, err
	}
	return model.ToIndividual(), nil
}

// FindLegalByID finds a legal person by ID for a tenant
func (r *GormPersonRepository) FindLegalByID(ctx context.Context, tenantID, id uuid.UUID) (*party.LegalPerson, error) {
	model, err := r.findModel(ctx, tenantID, id)
	if err != nil || model == nil {
		return nil, err
	}
	return model.ToLegal(), nil
}

// FindAllForTenant finds all persons for a tenant with filtering
func (r *GormPersonRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter party.PersonFilter) ([]party.PersonRecord, error) {
	var personModels []models.PersonModel
	query := r.db.WithContext(ctx).Model(&models.PersonModel{}).
		Where("tenant_id = ?", tenantID)
	query = applyPersonFilter(query, filter)
	query = applyPagination(query, filter.Filter, PersonSortFields, "name")

	if err := query.Find(&personModels).Error; err != nil {
		return nil, err
	}
	records := make([]party.PersonRecord, len(personModels))
	for i := range personModels {
		records[i] = *personModels[i].ToRecord()
	}
	return records, nil
}

// CountForTenant counts persons for a tenant with filtering
func (r *GormPersonRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter party.PersonFilter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.PersonModel{}).
		Where("tenant_id = ?", tenantID)
	query = applyPersonFilter(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SaveIndividual creates or updates an individual person
func (r *GormPersonRepository) SaveIndividual(ctx context.Context, person *party.IndividualPerson) error {
	model := models.PersonModelFromIndividual(person)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveLegal creates or updates a legal person
func (r *GormPersonRepository) SaveLegal(ctx context.Context, person *party.LegalPerson) error {
	model := models.PersonModelFromLegal(person)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteForTenant deletes a person for a tenant
func (r *GormPersonRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PersonModel{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormPersonRepository) findModel(ctx context.Context, tenantID, id uuid.UUID) (*models.PersonModel, error) {
	var model models.PersonModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &model, nil
}

func applyPersonFilter(query *gorm.DB, filter party.PersonFilter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR document LIKE ? OR email LIKE ?", pattern, pattern, pattern)
	}
	if filter.Type != nil {
		query = query.Where("kind = ?", *filter.Type)
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}
	return query
}

// applyPagination applies ordering and paging common to all list queries.
// The sort column goes through the whitelist before reaching the SQL.
func applyPagination(query *gorm.DB, filter shared.Filter, allowedFields map[string]bool, defaultOrder string) *gorm.DB {
	orderBy := ValidateSortField(filter.OrderBy, allowedFields, defaultOrder)
	orderDir := ValidateSortOrder(filter.OrderDir)
	query = query.Order(orderBy + " " + orderDir)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	return query
}

// Ensure GormPersonRepository implements PersonRepository
var _ party.PersonRepository = (*GormPersonRepository)(nil)
