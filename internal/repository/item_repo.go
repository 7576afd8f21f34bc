package repository

import (
	"context"

	"github.com/yossicon/shareit/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ItemRepository interface {
	Create(ctx context.Context, tx *gorm.DB, item *models.Item) error
	FindByID(ctx context.Context, id uint) (*models.Item, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Item, error)
	FindAllByOwnerID(ctx context.Context, ownerID uint) ([]models.Item, error)
	Search(ctx context.Context, text string) ([]models.Item, error)
	FindAllByRequestID(ctx context.Context, requestID uint) ([]models.Item, error)
	FindAllByRequestIDIn(ctx context.Context, requestIDs []uint) ([]models.Item, error)
	Save(ctx context.Context, tx *gorm.DB, item *models.Item) error
	GetDB() *gorm.DB
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *itemRepository) Create(ctx context.Context, tx *gorm.DB, item *models.Item) error {
	return tx.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) FindByID(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByIDForUpdate acquires a row-level lock on the item within the given transaction.
func (r *itemRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Item, error) {
	var item models.Item
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) FindAllByOwnerID(ctx context.Context, ownerID uint) ([]models.Item, error) {
	var items []models.Item
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Search matches the text case-insensitively against name or description,
// restricted to available items.
func (r *itemRepository) Search(ctx context.Context, text string) ([]models.Item, error) {
	var items []models.Item
	pattern := "%" + text + "%"
	if err := r.db.WithContext(ctx).
		Where("available = true AND (name ILIKE ? OR description ILIKE ?)", pattern, pattern).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) FindAllByRequestID(ctx context.Context, requestID uint) ([]models.Item, error) {
	var items []models.Item
	if err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) FindAllByRequestIDIn(ctx context.Context, requestIDs []uint) ([]models.Item, error) {
	if len(requestIDs) == 0 {
		return nil, nil
	}
	var items []models.Item
	if err := r.db.WithContext(ctx).
		Where("request_id IN ?", requestIDs).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) Save(ctx context.Context, tx *gorm.DB, item *models.Item) error {
	return tx.WithContext(ctx).Save(item).Error
}
