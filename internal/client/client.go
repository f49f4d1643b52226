// Package client is the HTTP consumer of the backend REST API, used by the
// cashier-side checkout workflow and the seeder.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"mbg-project/internal/config"
	"mbg-project/internal/models"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(cfg config.ClientConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/produk", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, "/produk/"+id, nil, &product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (c *Client) CreateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	var created models.Product
	if err := c.do(ctx, http.MethodPost, "/produk", p, &created); err != nil {
		return models.Product{}, err
	}
	return created, nil
}

func (c *Client) UpdateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	var updated models.Product
	if err := c.do(ctx, http.MethodPut, "/produk/"+p.ID, p, &updated); err != nil {
		return models.Product{}, err
	}
	return updated, nil
}

func (c *Client) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := c.do(ctx, http.MethodGet, "/pelanggan", nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (c *Client) CreateCustomer(ctx context.Context, cust models.Customer) (models.Customer, error) {
	var created models.Customer
	if err := c.do(ctx, http.MethodPost, "/pelanggan", cust, &created); err != nil {
		return models.Customer{}, err
	}
	return created, nil
}

func (c *Client) ListPayments(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	if err := c.do(ctx, http.MethodGet, "/pembayaran", nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (c *Client) CreatePayment(ctx context.Context, p models.Payment) (models.Payment, error) {
	var created models.Payment
	if err := c.do(ctx, http.MethodPost, "/pembayaran", p, &created); err != nil {
		return models.Payment{}, err
	}
	return created, nil
}

func (c *Client) DeletePayment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/pembayaran/"+id, nil, nil)
}

// do runs one JSON round trip. Any transport or non-2xx failure surfaces as a
// single wrapped error; callers treat them all as network failures.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building %s %s request: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}
