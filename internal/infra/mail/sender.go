package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/gomail.v2"

	"github.com/xavierca1/pix-checkout/internal/infra/queue"
)

var enrollmentTemplate = template.Must(template.New("enrollment").Parse(`<html>
<body>
<p>Olá, {{.Name}}!</p>
<p>Recebemos o pagamento da sua matrícula em <strong>{{.CourseTitle}}</strong>.</p>
<p>Valor: R$ {{.Amount}}<br>Transação: {{.TransactionID}}</p>
<p>Em breve você receberá as instruções de acesso ao curso.</p>
</body>
</html>`))

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// RenderEnrollment monta o corpo HTML da confirmação.
func RenderEnrollment(payload queue.EnrollmentPayload) (string, error) {
	data := EnrollmentEmailData{
		Name:          payload.CustomerName,
		CourseTitle:   payload.CourseTitle,
		TransactionID: payload.TransactionID,
		Amount:        formatBRL(payload.Amount),
	}

	var body bytes.Buffer
	if err := enrollmentTemplate.Execute(&body, data); err != nil {
		return "", fmt.Errorf("erro ao processar template: %w", err)
	}
	return body.String(), nil
}

func (s *EmailSender) SendEnrollmentConfirmation(ctx context.Context, payload queue.EnrollmentPayload) error {
	body, err := RenderEnrollment(payload)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", payload.CustomerEmail)
	m.SetHeader("Subject", fmt.Sprintf("Matrícula confirmada: %s", payload.CourseTitle))
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	// gomail não aceita contexto; só evita discar se a entrega já foi cancelada.
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}

// formatBRL: 78070 -> "780,70"
func formatBRL(cents int64) string {
	s := decimal.New(cents, -2).StringFixed(2)
	return strings.Replace(s, ".", ",", 1)
}
