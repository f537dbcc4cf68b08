package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailerDisabledIsNoop(t *testing.T) {
	m := NewMailer(SMTPConfig{Sender: "no-reply@example.com"})
	assert.False(t, m.Enabled())
	assert.NoError(t, m.Send(context.Background(), "a@example.com", "hi", "<p>hi</p>"))
}

func TestMailerBuildMessage(t *testing.T) {
	m := NewMailer(SMTPConfig{Host: "smtp.example.com", Sender: "no-reply@example.com"})
	assert.True(t, m.Enabled())

	msg := m.BuildMessage("a@example.com", "Subject line", "<p>body</p>")
	assert.Equal(t, []string{"no-reply@example.com"}, msg.GetHeader("From"))
	assert.Equal(t, []string{"a@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Subject line"}, msg.GetHeader("Subject"))
}

func TestSMSClient(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		c := NewSMSClient("", "")
		assert.False(t, c.Enabled())
		assert.NoError(t, c.Send(context.Background(), "5125550100", "hi"))
	})

	t.Run("posts payload with bearer key", func(t *testing.T) {
		var got smsRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer key-123", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusAccepted)
		}))
		defer srv.Close()

		c := NewSMSClient(srv.URL, "key-123")
		require.NoError(t, c.Send(context.Background(), "5125550100", "hello"))
		assert.Equal(t, "5125550100", got.Phone)
		assert.Equal(t, "hello", got.Message)
	})

	t.Run("gateway error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()

		err := NewSMSClient(srv.URL, "").Send(context.Background(), "5125550100", "hello")
		assert.Error(t, err)
	})
}

func TestTemplates(t *testing.T) {
	lead := NewLeadEmail("Pat <b>Smith</b>", "pat@example.com", "5125550100", "Tax Preparation", "cookie")
	assert.Equal(t, "New lead: Pat <b>Smith</b>", lead.Subject)
	assert.Contains(t, lead.Body, "Pat &lt;b&gt;Smith&lt;/b&gt;")

	assert.Contains(t, ReferralLeadSMS("Jane", "Pat"), "Hi Jane")

	ticket := TicketCreatedEmail("TKT-000007", "Refund", "billing", "high")
	assert.Equal(t, "[TKT-000007] Refund", ticket.Subject)

	assert.Contains(t, CommissionApprovedEmail("Jane", 4500).Body, "$45.00")
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "$0.05", FormatCents(5))
	assert.Equal(t, "$123.45", FormatCents(12345))
	assert.Equal(t, "-$1.00", FormatCents(-100))
}
