//go:build !js

package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio-widgets/internal/config"
	"github.com/Zachkp/portfolio-widgets/internal/contact"
)

type sendBody struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

func testConfig(endpoint string) config.Config {
	cfg := config.Default()
	cfg.EmailJS.Endpoint = endpoint
	cfg.EmailJS.PublicKey = "pk_test"
	cfg.EmailJS.ServiceID = "service_test"
	cfg.EmailJS.TemplateID = "template_test"
	return cfg
}

func TestRunSendsThroughConfiguredEndpoint(t *testing.T) {
	t.Parallel()

	var got sendBody
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &got)
		_, _ = w.Write([]byte("OK"))
	}))
	t.Cleanup(srv.Close)

	var out bytes.Buffer
	code := run(context.Background(), testConfig(srv.URL),
		[]string{"-name", " Ada ", "-email", "ada@example.com", "-message", "Hello"}, &out, zap.NewNop())

	require.Equal(t, 0, code)
	require.Contains(t, out.String(), contact.MsgSent)
	require.Equal(t, "service_test", got.ServiceID)
	require.Equal(t, "template_test", got.TemplateID)
	require.Equal(t, "pk_test", got.UserID)
	require.Equal(t, map[string]string{"from_name": "Ada", "from_email": "ada@example.com", "message": "Hello"}, got.TemplateParams)
}

func TestRunReportsRejection(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("The service ID is invalid"))
	}))
	t.Cleanup(srv.Close)

	var out bytes.Buffer
	code := run(context.Background(), testConfig(srv.URL),
		[]string{"-name", "Ada", "-email", "ada@example.com", "-message", "Hello"}, &out, zap.NewNop())

	require.Equal(t, 1, code)
	require.Contains(t, out.String(), "The service ID is invalid")
}

func TestRunValidatesBeforeSending(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	t.Cleanup(srv.Close)

	var out bytes.Buffer
	code := run(context.Background(), testConfig(srv.URL),
		[]string{"-name", "Ada", "-email", "a@b", "-message", "Hello"}, &out, zap.NewNop())

	require.Equal(t, 1, code)
	require.Contains(t, out.String(), contact.MsgInvalidEmail)
	require.Zero(t, hits.Load())
}

func TestRunBadFlag(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.Equal(t, 2, run(context.Background(), testConfig("http://127.0.0.1:0"), []string{"-bogus"}, &out, zap.NewNop()))
}
