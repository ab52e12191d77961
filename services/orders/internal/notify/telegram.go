package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"
)

const telegramAPIBase = "https://api.telegram.org"

// Telegram posts order summaries to a staff chat through the Bot API.
// An empty token disables it.
type Telegram struct {
	token      string
	chatID     string
	baseURL    string
	httpClient *http.Client
}

func NewTelegram(token, chatID string) *Telegram {
	return &Telegram{
		token:   token,
		chatID:  chatID,
		baseURL: telegramAPIBase,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// NewTelegramWithBaseURL is used by tests to point the client at a stub.
func NewTelegramWithBaseURL(token, chatID, baseURL string) *Telegram {
	t := NewTelegram(token, chatID)
	t.baseURL = strings.TrimRight(baseURL, "/")
	return t
}

func (t *Telegram) Enabled() bool {
	return t != nil && t.token != "" && t.chatID != ""
}

// SendOrderMessage posts an HTML-formatted order summary.
func (t *Telegram) SendOrderMessage(ctx context.Context, n OrderNotification) error {
	if !t.Enabled() {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<b>Новый заказ %s</b>\n", html.EscapeString(n.OrderID))
	fmt.Fprintf(&b, "Покупатель: %s\n\n", html.EscapeString(n.UserEmail))
	for _, item := range n.Items {
		fmt.Fprintf(&b, "• %s x %d: %g₽\n", html.EscapeString(item.Title), item.Quantity, item.Price)
	}
	fmt.Fprintf(&b, "\nИтого: <b>%g₽</b>", n.Total)

	payload, err := json.Marshal(map[string]string{
		"chat_id":    t.chatID,
		"text":       b.String(),
		"parse_mode": "HTML",
	})
	if err != nil {
		return fmt.Errorf("marshal telegram message: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram responded with status %d", resp.StatusCode)
	}
	return nil
}
