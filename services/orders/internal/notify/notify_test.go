package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func sampleNotification() OrderNotification {
	return OrderNotification{
		OrderID:   "9f2c1a34-0000-0000-0000-000000000000",
		UserEmail: "buyer@example.com",
		Items: []OrderLine{
			{Title: "Abbey Road", Quantity: 2, Price: 29.99},
			{Title: "Товар #42", Quantity: 1, Price: 0},
		},
		Total:     59.98,
		Praise:    "Отличный вкус!",
		CreatedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
}

func TestMailerDisabledWithoutHost(t *testing.T) {
	m := NewMailer(EmailConfig{})
	require.False(t, m.Enabled())
	require.NoError(t, m.SendBuyerEmail(sampleNotification()))
	require.NoError(t, m.SendInternalCopy(sampleNotification()))
}

func TestBuyerEmailTemplate(t *testing.T) {
	body, err := render(buyerEmailTmpl, sampleNotification())
	require.NoError(t, err)
	require.Contains(t, body, "9f2c1a34")
	require.Contains(t, body, "Abbey Road")
	require.Contains(t, body, "Отличный вкус!")
	require.NotContains(t, body, "buyer@example.com")
}

func TestInternalEmailTemplateNamesBuyer(t *testing.T) {
	body, err := render(internalEmailTmpl, sampleNotification())
	require.NoError(t, err)
	require.Contains(t, body, "buyer@example.com")
	require.Contains(t, body, "30.08.2026")
}

func TestTelegramDisabledWithoutToken(t *testing.T) {
	require.NoError(t, NewTelegram("", "").SendOrderMessage(context.Background(), sampleNotification()))
}

func TestTelegramSendsHTMLMessage(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/bottest-token/sendMessage", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tg := NewTelegramWithBaseURL("test-token", "1001", srv.URL)
	require.NoError(t, tg.SendOrderMessage(context.Background(), sampleNotification()))

	require.Equal(t, "1001", got["chat_id"])
	require.Equal(t, "HTML", got["parse_mode"])
	require.Contains(t, got["text"], "Abbey Road")
	require.Contains(t, got["text"], "buyer@example.com")
}

func TestTelegramReportsAPIFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	tg := NewTelegramWithBaseURL("test-token", "1001", srv.URL)
	require.Error(t, tg.SendOrderMessage(context.Background(), sampleNotification()))
}
