package transport

import (
	"time"

	"github.com/Skotchmaster/vinyl_shop/services/orders/internal/models"
)

type CreateOrderRequest struct {
	ProductIDs []string       `json:"product_ids"`
	Quantities map[string]int `json:"quantities,omitempty"`
}

type CreateOrderResponse struct {
	OrderID    string         `json:"order_id"`
	Message    string         `json:"message"`
	CreatedAt  time.Time      `json:"created_at"`
	ProductIDs []string       `json:"product_ids"`
	Quantities map[string]int `json:"quantities"`
	TotalItems int            `json:"total_items"`
}

type OrdersResponse struct {
	Orders []models.Order `json:"orders"`
}
