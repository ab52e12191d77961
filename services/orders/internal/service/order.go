package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/Skotchmaster/vinyl_shop/pkg/catalogclient"
	"github.com/Skotchmaster/vinyl_shop/pkg/events"
	"github.com/Skotchmaster/vinyl_shop/pkg/logging"
	"github.com/Skotchmaster/vinyl_shop/services/orders/internal/models"
	"github.com/Skotchmaster/vinyl_shop/services/orders/internal/notify"
	"github.com/Skotchmaster/vinyl_shop/services/orders/internal/recclient"
	"github.com/Skotchmaster/vinyl_shop/services/orders/internal/transport"
)

const orderEventsTopic = "order_events"

type Repo interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrders(ctx context.Context) ([]models.Order, error)
}

type Catalog interface {
	ListProducts(ctx context.Context) ([]catalogclient.Product, error)
}

type Recommender interface {
	SimplePrompt(ctx context.Context, prompt string) (string, error)
	Recommendations(ctx context.Context, preferences string, max int) ([]recclient.Recommendation, error)
}

type OrderService struct {
	Repo        Repo
	Catalog     Catalog
	Recommender Recommender
	Mailer      *notify.Mailer
	Telegram    *notify.Telegram
	Producer    *events.Producer
}

// GetOrders returns all persisted orders, newest first.
func (s *OrderService) GetOrders(ctx context.Context) ([]models.Order, error) {
	orders, err := s.Repo.GetOrders(ctx)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// CreateOrder prices the requested items against the catalog, persists the
// order and fires off every notification. Only persistence can fail the
// request, notifications and telemetry are best-effort.
func (s *OrderService) CreateOrder(ctx context.Context, userEmail string, req transport.CreateOrderRequest) (transport.CreateOrderResponse, error) {
	log := logging.FromContext(ctx)

	lines := s.priceItems(ctx, req)

	order := &models.Order{
		OrderID:   uuid.NewString(),
		UserEmail: userEmail,
	}
	var total float64
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
		order.Items = append(order.Items, models.OrderItem{
			VinylID:         line.VinylID,
			Quantity:        line.Quantity,
			PriceAtPurchase: line.Price,
		})
	}
	order.TotalPrice = total

	if err := s.Repo.CreateOrder(ctx, order); err != nil {
		return transport.CreateOrderResponse{}, fmt.Errorf("create order: %w", err)
	}

	s.notify(ctx, order, lines)

	if s.Producer != nil {
		err := s.Producer.PublishEvent(ctx, orderEventsTopic, order.OrderID, map[string]any{
			"type":        "order_created",
			"order_id":    order.OrderID,
			"user_email":  order.UserEmail,
			"total_price": order.TotalPrice,
		})
		if err != nil {
			log.Warn("event_publish_failed", "topic", orderEventsTopic, "error", err.Error())
		}
	}

	totalItems := 0
	for _, q := range req.Quantities {
		totalItems += q
	}
	if totalItems == 0 {
		totalItems = len(req.ProductIDs)
	}

	quantities := req.Quantities
	if quantities == nil {
		quantities = map[string]int{}
	}

	return transport.CreateOrderResponse{
		OrderID:    order.OrderID,
		Message:    "Заказ успешно создан",
		CreatedAt:  order.CreatedAt,
		ProductIDs: req.ProductIDs,
		Quantities: quantities,
		TotalItems: totalItems,
	}, nil
}

type pricedLine struct {
	VinylID  uint
	Title    string
	Quantity int
	Price    float64
}

// priceItems resolves every requested id against the catalog. An
// unreachable catalog or an unknown id degrades to a placeholder line so
// the order can still be taken.
func (s *OrderService) priceItems(ctx context.Context, req transport.CreateOrderRequest) []pricedLine {
	log := logging.FromContext(ctx)

	byID := map[string]catalogclient.Product{}
	products, err := s.Catalog.ListProducts(ctx)
	if err != nil {
		log.Warn("catalog_unavailable", "error", err.Error())
	} else {
		for _, p := range products {
			byID[strconv.FormatUint(uint64(p.ID), 10)] = p
		}
	}

	lines := make([]pricedLine, 0, len(req.ProductIDs))
	for _, id := range req.ProductIDs {
		quantity := req.Quantities[id]
		if quantity <= 0 {
			quantity = 1
		}

		if p, ok := byID[id]; ok {
			lines = append(lines, pricedLine{VinylID: p.ID, Title: p.Name, Quantity: quantity, Price: p.Price})
			continue
		}

		log.Warn("product_not_found", "product_id", id)
		numeric, _ := strconv.ParseUint(id, 10, 32)
		lines = append(lines, pricedLine{
			VinylID:  uint(numeric),
			Title:    "Товар #" + id,
			Quantity: quantity,
		})
	}
	return lines
}

func (s *OrderService) notify(ctx context.Context, order *models.Order, lines []pricedLine) {
	log := logging.FromContext(ctx)

	n := notify.OrderNotification{
		OrderID:   order.OrderID,
		UserEmail: order.UserEmail,
		Total:     order.TotalPrice,
		CreatedAt: order.CreatedAt,
	}
	titles := make([]string, 0, len(lines))
	for _, line := range lines {
		titles = append(titles, line.Title)
		n.Items = append(n.Items, notify.OrderLine{Title: line.Title, Quantity: line.Quantity, Price: line.Price})
	}

	n.Praise = s.praise(ctx, titles)
	n.Recommendations = s.related(ctx, titles)

	if err := s.Mailer.SendBuyerEmail(n); err != nil {
		log.Warn("buyer_email_failed", "order_id", order.OrderID, "error", err.Error())
	}
	if err := s.Mailer.SendInternalCopy(n); err != nil {
		log.Warn("internal_email_failed", "order_id", order.OrderID, "error", err.Error())
	}
	if err := s.Telegram.SendOrderMessage(ctx, n); err != nil {
		log.Warn("telegram_failed", "order_id", order.OrderID, "error", err.Error())
	}
}

func (s *OrderService) praise(ctx context.Context, titles []string) string {
	if s.Recommender == nil {
		return ""
	}
	prompt := fmt.Sprintf(
		"Покупатель только что заказал пластинки: %s. Напиши короткий тёплый абзац, который хвалит его музыкальный вкус. Без markdown.",
		strings.Join(titles, ", "))
	text, err := s.Recommender.SimplePrompt(ctx, prompt)
	if err != nil {
		logging.FromContext(ctx).Warn("praise_failed", "error", err.Error())
		return ""
	}
	return text
}

// related fetches up to three structured picks, falling back to one more
// simple-prompt call when the structured endpoint misbehaves.
func (s *OrderService) related(ctx context.Context, titles []string) string {
	if s.Recommender == nil {
		return ""
	}
	preferences := "Покупателю нравятся: " + strings.Join(titles, ", ")

	recs, err := s.Recommender.Recommendations(ctx, preferences, 3)
	if err == nil && len(recs) > 0 {
		parts := make([]string, 0, len(recs))
		for _, r := range recs {
			parts = append(parts, fmt.Sprintf("%s (%s): %s", r.Name, r.Artist, r.Reason))
		}
		return strings.Join(parts, "; ")
	}
	if err != nil {
		logging.FromContext(ctx).Warn("recommendations_failed", "error", err.Error())
	}

	prompt := fmt.Sprintf(
		"Порекомендуй три виниловые пластинки тому, кто заказал: %s. Одним коротким абзацем, без markdown.",
		strings.Join(titles, ", "))
	text, err := s.Recommender.SimplePrompt(ctx, prompt)
	if err != nil {
		logging.FromContext(ctx).Warn("recommendations_fallback_failed", "error", err.Error())
		return ""
	}
	return text
}
