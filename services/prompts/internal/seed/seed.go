package seed

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Skotchmaster/vinyl_shop/services/prompts/internal/defaults"
	"github.com/Skotchmaster/vinyl_shop/services/prompts/internal/models"
	"github.com/Skotchmaster/vinyl_shop/services/prompts/internal/repo"
)

// Run makes sure every compiled-in default has a row. Missing rows are
// inserted; rows seeded from an older default version get their template
// and version overwritten. Manual edits (same version, different text)
// are left alone.
func Run(ctx context.Context, r *repo.GormRepo) error {
	for _, d := range defaults.All() {
		stored, err := r.GetPrompt(ctx, d.ID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			p := &models.Prompt{ID: d.ID, Name: d.Name, Template: d.Template, Version: d.Version}
			if err := r.CreatePrompt(ctx, p); err != nil {
				return fmt.Errorf("seed prompt %s: %w", d.ID, err)
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("seed prompt %s: %w", d.ID, err)
		}

		if stored.Version < d.Version {
			stored.Template = d.Template
			stored.Version = d.Version
			if err := r.SavePrompt(ctx, stored); err != nil {
				return fmt.Errorf("refresh prompt %s: %w", d.ID, err)
			}
		}
	}
	return nil
}
