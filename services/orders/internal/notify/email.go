// Package notify sends order confirmations to the buyer and the shop
// staff. Every send is best-effort: callers log failures and keep going.
package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"mime"
	"net/smtp"
	"time"
)

type EmailConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	CopyTo   string
}

// OrderNotification carries everything the templates need.
type OrderNotification struct {
	OrderID         string
	UserEmail       string
	Items           []OrderLine
	Total           float64
	Praise          string
	Recommendations string
	CreatedAt       time.Time
}

type OrderLine struct {
	Title    string
	Quantity int
	Price    float64
}

var buyerEmailTmpl = template.Must(template.New("buyer").Parse(`
<!DOCTYPE html>
<html>
<body>
	<h2>Спасибо за заказ!</h2>
	<p>Номер заказа: <b>{{.OrderID}}</b></p>
	<table border="1" cellpadding="6" cellspacing="0">
		<tr><th>Пластинка</th><th>Кол-во</th><th>Цена</th></tr>
		{{range .Items}}<tr><td>{{.Title}}</td><td>{{.Quantity}}</td><td>{{.Price}}₽</td></tr>
		{{end}}
	</table>
	<p>Итого: <b>{{.Total}}₽</b></p>
	{{if .Praise}}<p>{{.Praise}}</p>{{end}}
	{{if .Recommendations}}<h3>Вам может понравиться</h3><p>{{.Recommendations}}</p>{{end}}
	<p>С уважением,<br>Магазин виниловых пластинок</p>
</body>
</html>`))

var internalEmailTmpl = template.Must(template.New("internal").Parse(`
<!DOCTYPE html>
<html>
<body>
	<h2>Новый заказ {{.OrderID}}</h2>
	<p>Покупатель: {{.UserEmail}}</p>
	<table border="1" cellpadding="6" cellspacing="0">
		<tr><th>Пластинка</th><th>Кол-во</th><th>Цена</th></tr>
		{{range .Items}}<tr><td>{{.Title}}</td><td>{{.Quantity}}</td><td>{{.Price}}₽</td></tr>
		{{end}}
	</table>
	<p>Итого: <b>{{.Total}}₽</b></p>
	<p>Создан: {{.CreatedAt.Format "02.01.2006 15:04"}}</p>
</body>
</html>`))

// Mailer sends HTML mail over plain SMTP. A mailer with no host
// configured silently skips sending.
type Mailer struct {
	cfg EmailConfig
}

func NewMailer(cfg EmailConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) Enabled() bool {
	return m != nil && m.cfg.Host != ""
}

// SendBuyerEmail mails the order confirmation to the buyer.
func (m *Mailer) SendBuyerEmail(n OrderNotification) error {
	if !m.Enabled() {
		return nil
	}
	subject := fmt.Sprintf("Ваш заказ %s оформлен", n.OrderID)
	body, err := render(buyerEmailTmpl, n)
	if err != nil {
		return err
	}
	return m.send(n.UserEmail, subject, body)
}

// SendInternalCopy mails the staff copy, the subject names the buyer so
// orders are searchable in the shared inbox.
func (m *Mailer) SendInternalCopy(n OrderNotification) error {
	if !m.Enabled() || m.cfg.CopyTo == "" {
		return nil
	}
	subject := fmt.Sprintf("Новый заказ %s от %s", n.OrderID, n.UserEmail)
	body, err := render(internalEmailTmpl, n)
	if err != nil {
		return err
	}
	return m.send(m.cfg.CopyTo, subject, body)
}

func (m *Mailer) send(to, subject, body string) error {
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	encoded := mime.QEncoding.Encode("utf-8", subject)
	msg := []byte(fmt.Sprintf("To: %s\r\nFrom: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		to, m.cfg.From, encoded, body))
	addr := fmt.Sprintf("%s:%s", m.cfg.Host, m.cfg.Port)
	return smtp.SendMail(addr, auth, m.cfg.From, []string{to}, msg)
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render email template: %w", err)
	}
	return buf.String(), nil
}
