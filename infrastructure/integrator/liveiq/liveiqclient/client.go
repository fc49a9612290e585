package liveiqclient

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/liveiq-reports/internal/config"
)

// Credentials é o par api-client / api-key de uma conta
type Credentials struct {
	ClientID  string
	ClientKey string
}

type Client interface {
	Fetch(ctx context.Context, endpoint Endpoint, creds Credentials, storeIDs []string, start, end string) ([]byte, error)
	ListRestaurants(ctx context.Context, creds Credentials) ([]byte, error)
}

type LiveIQClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(cfg *config.Config) Client {
	return &LiveIQClient{
		httpClient: &http.Client{
			Timeout: cfg.LiveIQ.Timeout,
		},
		baseURL: strings.TrimRight(cfg.LiveIQ.BaseURL, "/"),
	}
}

func (c *LiveIQClient) setHeaders(req *http.Request, creds Credentials) {
	req.Header.Set("api-client", creds.ClientID)
	req.Header.Set("api-key", creds.ClientKey)
	req.Header.Set("Accept", "application/json")
}
