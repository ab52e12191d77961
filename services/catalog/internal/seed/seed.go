package seed

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Skotchmaster/vinyl_shop/services/catalog/internal/models"
)

// Run inserts the default artists and records when the records table is
// empty. Explicit ids are kept so external references to the original
// numbering stay stable.
func Run(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.VinylRecord{}).Count(&count).Error; err != nil {
		return fmt.Errorf("seed: count records: %w", err)
	}
	if count > 0 {
		return nil
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&defaultArtists).Error; err != nil {
			return fmt.Errorf("seed: artists: %w", err)
		}
		if err := tx.Create(&defaultCategories).Error; err != nil {
			return fmt.Errorf("seed: categories: %w", err)
		}
		if err := tx.Create(&defaultRecords).Error; err != nil {
			return fmt.Errorf("seed: records: %w", err)
		}
		for recID, catIDs := range defaultRecordCategories {
			for _, catID := range catIDs {
				link := map[string]any{"vinyl_record_id": recID, "category_id": catID}
				if err := tx.Table("vinyl_record_categories").Create(link).Error; err != nil {
					return fmt.Errorf("seed: record categories: %w", err)
				}
			}
		}
		return nil
	})
}
