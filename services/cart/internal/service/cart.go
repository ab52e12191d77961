package service

import (
	"context"
	"strconv"

	"github.com/Skotchmaster/vinyl_shop/pkg/catalogclient"
	"github.com/Skotchmaster/vinyl_shop/pkg/logging"
	"github.com/Skotchmaster/vinyl_shop/services/cart/internal/transport"
)

// Catalog is the slice of the catalog client the cart needs.
type Catalog interface {
	ListProducts(ctx context.Context) ([]catalogclient.Product, error)
}

type CartService struct {
	Catalog Catalog
}

// Calculate prices the cart. Catalog data wins; the mock table covers
// ids the catalog does not know or a catalog that is down; ids found in
// neither are skipped.
func (s *CartService) Calculate(ctx context.Context, productIDs []string) transport.CartResponse {
	l := logging.FromContext(ctx)

	byID := map[string]catalogclient.Product{}
	if s.Catalog != nil {
		products, err := s.Catalog.ListProducts(ctx)
		if err != nil {
			l.Warn("catalog_unavailable", "error", err)
		}
		for _, p := range products {
			byID[strconv.FormatUint(uint64(p.ID), 10)] = p
		}
	}

	resp := transport.CartResponse{Items: []transport.CartItem{}}
	for _, id := range productIDs {
		if p, ok := byID[id]; ok {
			item := transport.CartItem{
				ID:       id,
				Title:    p.Name,
				Artist:   p.Artist,
				Price:    p.Price,
				ImageURL: p.CoverURL,
			}
			resp.Items = append(resp.Items, item)
			resp.Total += item.Price
			continue
		}
		if item, ok := mockProducts[id]; ok {
			resp.Items = append(resp.Items, item)
			resp.Total += item.Price
			continue
		}
		l.Warn("product_not_found", "product_id", id)
	}
	return resp
}
