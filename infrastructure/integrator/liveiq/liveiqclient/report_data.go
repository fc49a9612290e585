package liveiqclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const maxErrorBody = 512

func (c *LiveIQClient) Fetch(ctx context.Context, endpoint Endpoint, creds Credentials, storeIDs []string, start, end string) ([]byte, error) {
	if !endpoint.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEndpoint, endpoint)
	}

	return c.get(ctx, endpoint, storeIDs, c.baseURL+endpoint.Path(storeIDs, start, end), creds)
}

// ListRestaurants consulta /api/Restaurants, usado para validar credenciais e carregar as lojas da conta
func (c *LiveIQClient) ListRestaurants(ctx context.Context, creds Credentials) ([]byte, error) {
	return c.get(ctx, "", nil, c.baseURL+restaurantsPath, creds)
}

func (c *LiveIQClient) get(ctx context.Context, endpoint Endpoint, storeIDs []string, url string, creds Credentials) ([]byte, error) {
	// Criar a requisição HTTP.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	c.setHeaders(req, creds)

	// Executar a requisição.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &RateLimitError{Endpoint: endpoint, StoreIDs: storeIDs}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	return body, nil
}
