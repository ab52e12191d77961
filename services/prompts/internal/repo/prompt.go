package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/vinyl_shop/services/prompts/internal/models"
)

type GormRepo struct {
	DB *gorm.DB
}

func (r *GormRepo) GetPrompts(ctx context.Context, skip, limit int) ([]models.Prompt, error) {
	var items []models.Prompt
	if err := r.DB.WithContext(ctx).Order("id ASC").Offset(skip).Limit(limit).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetPrompt(ctx context.Context, id string) (*models.Prompt, error) {
	var prompt models.Prompt
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&prompt).Error; err != nil {
		return nil, err
	}
	return &prompt, nil
}

func (r *GormRepo) SavePrompt(ctx context.Context, p *models.Prompt) error {
	return r.DB.WithContext(ctx).Save(p).Error
}

func (r *GormRepo) CreatePrompt(ctx context.Context, p *models.Prompt) error {
	return r.DB.WithContext(ctx).Create(p).Error
}
