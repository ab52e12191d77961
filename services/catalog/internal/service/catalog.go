package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Skotchmaster/vinyl_shop/pkg/events"
	"github.com/Skotchmaster/vinyl_shop/pkg/logging"
	"github.com/Skotchmaster/vinyl_shop/services/catalog/internal/models"
	"github.com/Skotchmaster/vinyl_shop/services/catalog/internal/repo"
	"github.com/Skotchmaster/vinyl_shop/services/catalog/internal/transport"
)

var ErrValidation = errors.New("validation failed")

const productEventsTopic = "product_events"

type CatalogService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

func flatten(rec *models.VinylRecord) *transport.Product {
	return &transport.Product{
		ID:          rec.ID,
		Name:        rec.Title,
		Artist:      rec.Artist.Name,
		ArtistID:    rec.ArtistID,
		Description: rec.Description,
		Price:       rec.Price,
		CoverURL:    rec.CoverURL,
	}
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*transport.Product, error) {
	rec, err := s.Repo.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	return flatten(rec), nil
}

func (s *CatalogService) GetProducts(ctx context.Context) ([]transport.Product, error) {
	recs, err := s.Repo.GetRecords(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]transport.Product, 0, len(recs))
	for i := range recs {
		out = append(out, *flatten(&recs[i]))
	}
	return out, nil
}

func (s *CatalogService) GetArtists(ctx context.Context) ([]models.Artist, error) {
	return s.Repo.GetArtists(ctx)
}

// resolveArtist picks the artist row for a create or update request.
// An explicit id wins over a name; an unknown name creates a new row.
func (s *CatalogService) resolveArtist(ctx context.Context, id *uint, name *string) (*models.Artist, error) {
	if id != nil {
		return s.Repo.GetArtist(ctx, *id)
	}
	if name != nil && strings.TrimSpace(*name) != "" {
		return s.Repo.FindOrCreateArtist(ctx, *name)
	}
	return nil, fmt.Errorf("%w: artist_id or artist_name is required", ErrValidation)
}

func (s *CatalogService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*transport.Product, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}

	artist, err := s.resolveArtist(ctx, req.ArtistID, req.ArtistName)
	if err != nil {
		return nil, err
	}

	rec := &models.VinylRecord{
		Title:       strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		ArtistID:    artist.ID,
	}
	if req.CoverURL != nil {
		rec.CoverURL = *req.CoverURL
	}

	created, err := s.Repo.CreateRecord(ctx, rec)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, "product_created", created.ID)
	return flatten(created), nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, req transport.UpdateProductRequest) (*transport.Product, error) {
	rec, err := s.Repo.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
		}
		rec.Title = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		rec.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
		}
		rec.Price = *req.Price
	}
	if req.CoverURL != nil {
		rec.CoverURL = *req.CoverURL
	}
	if req.ArtistID != nil || req.ArtistName != nil {
		artist, err := s.resolveArtist(ctx, req.ArtistID, req.ArtistName)
		if err != nil {
			return nil, err
		}
		rec.ArtistID = artist.ID
		rec.Artist = *artist
	}

	saved, err := s.Repo.SaveRecord(ctx, rec)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, "product_updated", saved.ID)
	return flatten(saved), nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteRecord(ctx, id); err != nil {
		return err
	}
	s.publishEvent(ctx, "product_deleted", id)
	return nil
}

func (s *CatalogService) publishEvent(ctx context.Context, eventType string, id uint) {
	event := map[string]any{"type": eventType, "product_id": id}
	if err := s.Producer.PublishEvent(ctx, productEventsTopic, fmt.Sprint(id), event); err != nil {
		logging.FromContext(ctx).Warn("event_publish_failed", "type", eventType, "error", err)
	}
}
