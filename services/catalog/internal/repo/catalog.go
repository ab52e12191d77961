package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Skotchmaster/vinyl_shop/services/catalog/internal/models"
)

type GormRepo struct {
	DB *gorm.DB
}

func (r *GormRepo) GetRecord(ctx context.Context, id uint) (*models.VinylRecord, error) {
	var rec models.VinylRecord
	if err := r.DB.WithContext(ctx).Preload("Artist").First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *GormRepo) GetRecords(ctx context.Context) ([]models.VinylRecord, error) {
	var items []models.VinylRecord
	if err := r.DB.WithContext(ctx).Preload("Artist").Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) CreateRecord(ctx context.Context, rec *models.VinylRecord) (*models.VinylRecord, error) {
	if err := r.DB.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, err
	}
	return r.GetRecord(ctx, rec.ID)
}

func (r *GormRepo) SaveRecord(ctx context.Context, rec *models.VinylRecord) (*models.VinylRecord, error) {
	if err := r.DB.WithContext(ctx).Save(rec).Error; err != nil {
		return nil, err
	}
	return r.GetRecord(ctx, rec.ID)
}

func (r *GormRepo) DeleteRecord(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.VinylRecord{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) GetArtists(ctx context.Context) ([]models.Artist, error) {
	var items []models.Artist
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetArtist(ctx context.Context, id uint) (*models.Artist, error) {
	var artist models.Artist
	if err := r.DB.WithContext(ctx).First(&artist, id).Error; err != nil {
		return nil, err
	}
	return &artist, nil
}

// FindOrCreateArtist resolves an artist by name, inserting a row when
// the name is unknown. Matching ignores case and surrounding spaces.
func (r *GormRepo) FindOrCreateArtist(ctx context.Context, name string) (*models.Artist, error) {
	name = strings.TrimSpace(name)
	var artist models.Artist
	err := r.DB.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&artist).Error
	if err == nil {
		return &artist, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	artist = models.Artist{Name: name}
	if err := r.DB.WithContext(ctx).Create(&artist).Error; err != nil {
		return nil, err
	}
	return &artist, nil
}
