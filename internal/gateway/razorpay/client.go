package razorpay

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/aitools/internal/domain"
)

// MaxListCount is the gateway's page size cap for GET /v1/orders.
const MaxListCount = 100

type Sender interface {
	Send(ctx context.Context, method, url string, headers http.Header, body []byte) (int, []byte, http.Header, error)
}

type Client struct {
	baseURL string
	http    Sender
}

func NewClient(baseURL string, http Sender) *Client {
	return &Client{
		baseURL: baseURL,
		http:    http,
	}
}

func headers(creds domain.GatewayCredentials) http.Header {
	h := http.Header{}
	token := base64.StdEncoding.EncodeToString([]byte(creds.KeyID + ":" + creds.KeySecret))
	h.Set("Authorization", "Basic "+token)
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	return h
}

func (c *Client) do(ctx context.Context, method, path string, creds domain.GatewayCredentials, payload any, out any) error {
	var body []byte
	if payload != nil {
		var err error
		if body, err = json.Marshal(payload); err != nil {
			return fmt.Errorf("encode gateway request: %w", err)
		}
	}

	status, respBody, respHeaders, err := c.http.Send(ctx, method, c.baseURL+path, headers(creds), body)
	if err != nil {
		zap.L().Error("gateway request failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("gateway request: %w", err)
	}

	if status < 200 || status > 299 {
		return decodeError(status, respBody, respHeaders)
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode gateway response: %w", err)
	}
	return nil
}

func decodeError(status int, body []byte, h http.Header) error {
	gwErr := &Error{StatusCode: status}
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error.Description != "" {
		gwErr.Code = env.Error.Code
		gwErr.Description = env.Error.Description
	} else {
		gwErr.Description = fmt.Sprintf("payment gateway returned status %d", status)
	}
	if status == http.StatusTooManyRequests {
		gwErr.RetryAfter = retryAfter(h.Get("Retry-After"))
	}
	return gwErr
}

func retryAfter(v string) time.Duration {
	if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return time.Second
}

func (c *Client) CreateOrder(ctx context.Context, creds domain.GatewayCredentials, req OrderRequest) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodPost, "/v1/orders", creds, req, &order); err != nil {
		return nil, err
	}
	if order.ID == "" {
		return nil, errors.New("gateway returned an order without id")
	}
	return &order, nil
}

// ListOrders returns up to count orders created at or after from.
func (c *Client) ListOrders(ctx context.Context, creds domain.GatewayCredentials, from time.Time, count int) ([]Order, error) {
	if count <= 0 || count > MaxListCount {
		count = MaxListCount
	}
	q := url.Values{}
	q.Set("from", strconv.FormatInt(from.Unix(), 10))
	q.Set("count", strconv.Itoa(count))

	var collection orderCollection
	if err := c.do(ctx, http.MethodGet, "/v1/orders?"+q.Encode(), creds, nil, &collection); err != nil {
		return nil, err
	}
	return collection.Items, nil
}
