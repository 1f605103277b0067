package emailjs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	DefaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"
	clientTimeout   = 15 * time.Second
)

type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams TemplateParams `json:"template_params"`
}

// Client is the REST flavour of the EmailJS SDK.
type Client struct {
	httpClient *http.Client
	endpoint   string
	publicKey  string
	logger     *zap.Logger
}

func NewClient(endpoint string, logger *zap.Logger) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		httpClient: &http.Client{Timeout: clientTimeout},
		endpoint:   endpoint,
		logger:     logger,
	}
}

// Init sets the public key sent with every request.
func (c *Client) Init(publicKey string) {
	c.publicKey = publicKey
}

func (c *Client) Send(ctx context.Context, serviceID, templateID string, params TemplateParams) (Response, error) {
	if c.publicKey == "" {
		return Response{}, &Error{Text: "The public key is required. Call init first."}
	}

	body, err := json.Marshal(sendRequest{
		ServiceID:      serviceID,
		TemplateID:     templateID,
		UserID:         c.publicKey,
		TemplateParams: params,
	})
	if err != nil {
		return Response{}, fmt.Errorf("encode send request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("build send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("emailjs request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return Response{}, fmt.Errorf("read emailjs response: %w", err)
	}
	text := strings.TrimSpace(string(raw))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("EmailJS rejected send",
			zap.Int("status", resp.StatusCode),
			zap.String("service", serviceID),
			zap.String("template", templateID),
			zap.String("body", text))
		return Response{}, &Error{Status: resp.StatusCode, Text: text}
	}

	c.logger.Debug("EmailJS send accepted",
		zap.String("service", serviceID),
		zap.String("template", templateID))
	return Response{Status: resp.StatusCode, Text: text}, nil
}
