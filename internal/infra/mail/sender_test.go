package mail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/pix-checkout/internal/infra/queue"
)

func TestRenderEnrollment(t *testing.T) {
	body, err := RenderEnrollment(queue.EnrollmentPayload{
		TransactionID: "tx_9",
		Amount:        78070,
		CustomerName:  "Maria Silva",
		CourseTitle:   "Biomedicina Hospitalar",
	})

	require.NoError(t, err)
	assert.Contains(t, body, "Olá, Maria Silva!")
	assert.Contains(t, body, "<strong>Biomedicina Hospitalar</strong>")
	assert.Contains(t, body, "R$ 780,70")
	assert.Contains(t, body, "tx_9")
}

func TestRenderEnrollmentEscapesName(t *testing.T) {
	body, err := RenderEnrollment(queue.EnrollmentPayload{CustomerName: "<script>x</script>"})

	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "780,70", formatBRL(78070))
	assert.Equal(t, "7806,96", formatBRL(780696))
	assert.Equal(t, "0,05", formatBRL(5))
}

func TestSendEnrollmentConfirmationCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sender := NewEmailSender("127.0.0.1", 1, "", "", "noreply@example.com")
	err := sender.SendEnrollmentConfirmation(ctx, queue.EnrollmentPayload{CustomerEmail: "maria@example.com"})

	assert.ErrorIs(t, err, context.Canceled)
}
