package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/farmbasket/backend/internal/domain/partner"
	"github.com/farmbasket/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProducerRepository implements ProducerRepository using GORM
type GormProducerRepository struct {
	db *gorm.DB
}

// NewGormProducerRepository creates a new GormProducerRepository
func NewGormProducerRepository(db *gorm.DB) *GormProducerRepository {
	return &GormProducerRepository{db: db}
}

// FindByID finds a producer by its ID
func (r *GormProducerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Producer, error) {
	var producer partner.Producer
	if err := r.db.WithContext(ctx).First(&producer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &producer, nil
}

// FindByCode finds a producer by its code
func (r *GormProducerRepository) FindByCode(ctx context.Context, code string) (*partner.Producer, error) {
	var producer partner.Producer
	if err := r.db.WithContext(ctx).
		Where("code = ?", strings.ToUpper(code)).
		First(&producer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &producer, nil
}

// FindAll finds all producers matching the filter
func (r *GormProducerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Producer, error) {
	var producers []partner.Producer
	query := r.applyFilter(r.db.WithContext(ctx).Model(&partner.Producer{}), filter)

	if err := query.Find(&producers).Error; err != nil {
		return nil, err
	}
	return producers, nil
}

// FindActive finds all active producers
func (r *GormProducerRepository) FindActive(ctx context.Context, filter shared.Filter) ([]partner.Producer, error) {
	var producers []partner.Producer
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&partner.Producer{}).Where("status = ?", partner.ProducerStatusActive),
		filter,
	)

	if err := query.Find(&producers).Error; err != nil {
		return nil, err
	}
	return producers, nil
}

// Save creates or updates a producer
func (r *GormProducerRepository) Save(ctx context.Context, producer *partner.Producer) error {
	return r.db.WithContext(ctx).Save(producer).Error
}

// Delete deletes a producer
func (r *GormProducerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&partner.Producer{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts producers matching the filter
func (r *GormProducerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&partner.Producer{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByCode checks if a producer with the given code exists
func (r *GormProducerRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&partner.Producer{}).
		Where("code = ?", strings.ToUpper(code)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormProducerRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, ProducerSortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

func (r *GormProducerRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ? OR region ILIKE ?", searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "region":
			query = query.Where("region = ?", value)
		}
	}

	return query
}

// Ensure GormProducerRepository implements ProducerRepository
var _ partner.ProducerRepository = (*GormProducerRepository)(nil)
