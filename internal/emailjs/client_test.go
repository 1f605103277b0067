package emailjs

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClientSend(t *testing.T) {
	t.Parallel()

	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &got))
		_, _ = w.Write([]byte("OK"))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, zap.NewNop())
	c.Init("pk_test")

	resp, err := c.Send(context.Background(), "service_a", "template_b", TemplateParams{
		FromName:  "Ada",
		FromEmail: "ada@example.com",
		Message:   "hi",
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.Status)
	require.Equal(t, "OK", resp.Text)

	require.Equal(t, "service_a", got.ServiceID)
	require.Equal(t, "template_b", got.TemplateID)
	require.Equal(t, "pk_test", got.UserID)
	require.Equal(t, "ada@example.com", got.TemplateParams.FromEmail)
}

func TestClientSendRejected(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("The template ID is invalid\n"))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, zap.NewNop())
	c.Init("pk_test")

	_, err := c.Send(context.Background(), "service_a", "nope", TemplateParams{})
	var ee *Error
	require.True(t, errors.As(err, &ee))
	require.Equal(t, http.StatusBadRequest, ee.Status)
	require.Equal(t, "The template ID is invalid", ee.Error())
}

func TestClientSendRequiresInit(t *testing.T) {
	t.Parallel()

	c := NewClient("http://127.0.0.1:0", zap.NewNop())
	_, err := c.Send(context.Background(), "s", "t", TemplateParams{})
	require.EqualError(t, err, "The public key is required. Call init first.")
}

func TestSlot(t *testing.T) {
	t.Parallel()

	var s Slot
	require.False(t, s.Loaded())
	require.Nil(t, s.Get())

	c := NewClient("", zap.NewNop())
	s.Attach(c)
	require.True(t, s.Loaded())
	require.Same(t, c, s.Get())
}
