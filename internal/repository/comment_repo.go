package repository

import (
	"context"

	"github.com/yossicon/shareit/internal/models"
	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, comment *models.Comment) error
	FindAllByItemID(ctx context.Context, itemID uint) ([]models.Comment, error)
	FindAllByItemIDIn(ctx context.Context, itemIDs []uint) ([]models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, tx *gorm.DB, comment *models.Comment) error {
	return tx.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) FindAllByItemID(ctx context.Context, itemID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("item_id = ?", itemID).
		Order("created DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) FindAllByItemIDIn(ctx context.Context, itemIDs []uint) ([]models.Comment, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	var comments []models.Comment
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("item_id IN ?", itemIDs).
		Order("created DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
