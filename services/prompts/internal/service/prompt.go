package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Skotchmaster/vinyl_shop/services/prompts/internal/defaults"
	"github.com/Skotchmaster/vinyl_shop/services/prompts/internal/models"
	"github.com/Skotchmaster/vinyl_shop/services/prompts/internal/repo"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNoDefault  = errors.New("prompt has no default to reset to")
)

type PromptService struct {
	Repo *repo.GormRepo
}

func (s *PromptService) GetPrompts(ctx context.Context, skip, limit int) ([]models.Prompt, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	return s.Repo.GetPrompts(ctx, skip, limit)
}

func (s *PromptService) GetPrompt(ctx context.Context, id string) (*models.Prompt, error) {
	return s.Repo.GetPrompt(ctx, id)
}

// UpdateTemplate replaces the template text. The stored version is kept,
// so a later default bump still wins over the manual edit.
func (s *PromptService) UpdateTemplate(ctx context.Context, id, template string) (*models.Prompt, error) {
	if strings.TrimSpace(template) == "" {
		return nil, fmt.Errorf("%w: template cannot be empty", ErrValidation)
	}

	prompt, err := s.Repo.GetPrompt(ctx, id)
	if err != nil {
		return nil, err
	}

	prompt.Template = template
	if err := s.Repo.SavePrompt(ctx, prompt); err != nil {
		return nil, err
	}
	return prompt, nil
}

// Reset restores the compiled-in default template and version.
func (s *PromptService) Reset(ctx context.Context, id string) (*models.Prompt, error) {
	prompt, err := s.Repo.GetPrompt(ctx, id)
	if err != nil {
		return nil, err
	}

	d, ok := defaults.ByID(id)
	if !ok {
		return nil, ErrNoDefault
	}

	prompt.Template = d.Template
	prompt.Version = d.Version
	if err := s.Repo.SavePrompt(ctx, prompt); err != nil {
		return nil, err
	}
	return prompt, nil
}
