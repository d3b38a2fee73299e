// ABOUTME: HTTP transport for the ask endpoint (one POST per submitted query)
// ABOUTME: Maps responses to Answered, Rejected or Unreachable outcomes

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/harper/infoflow/internal/conversation"
	apperrors "github.com/harper/infoflow/internal/errors"
	"github.com/harper/infoflow/internal/logger"
)

// AskClient posts queries to a fixed endpoint. It has no timeout and never retries.
type AskClient struct {
	url        string
	httpClient *http.Client
}

type Option func(*AskClient)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(ac *AskClient) {
		ac.httpClient = c
	}
}

func NewAskClient(url string, opts ...Option) *AskClient {
	ac := &AskClient{
		url:        url,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(ac)
	}
	return ac
}

func (c *AskClient) URL() string {
	return c.url
}

type askRequest struct {
	Query string `json:"query"`
}

// Ask sends query as {"query": ...}. A body that is not JSON is treated as a
// failed request whatever the status code.
func (c *AskClient) Ask(ctx context.Context, query string) conversation.Outcome {
	payload, err := json.Marshal(askRequest{Query: query})
	if err != nil {
		return c.unreachable("encode", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return c.unreachable("request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	logger.Debug("ask: POST %s (%d bytes)", c.url, len(payload))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.unreachable("request", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.unreachable("read", err)
	}

	if !gjson.ValidBytes(body) {
		return c.unreachable("decode", fmt.Errorf("status %d: response is not JSON", resp.StatusCode))
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		answer := gjson.GetBytes(body, "answer")
		if !answer.Exists() {
			logger.Warn("ask: status %d without an answer field", resp.StatusCode)
		}
		logger.Debug("ask: answered (%d bytes)", len(answer.String()))
		return conversation.Answered{Text: answer.String()}
	}

	message := gjson.GetBytes(body, "error").String()
	logger.Warn("ask: %v", apperrors.NewRemoteError(resp.StatusCode, c.url, message))
	return conversation.Rejected{Status: resp.StatusCode, Message: message}
}

func (c *AskClient) unreachable(op string, err error) conversation.Outcome {
	terr := apperrors.NewTransportError(op, c.url, err)
	logger.Warn("ask: %v", terr)
	return conversation.Unreachable{Err: terr}
}
