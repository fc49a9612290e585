package liveiq

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
	liveiqdomain "github.com/vfg2006/liveiq-reports/infrastructure/integrator/liveiq/domain"
	"github.com/vfg2006/liveiq-reports/infrastructure/integrator/liveiq/liveiqclient"
	"github.com/vfg2006/liveiq-reports/internal/config"
	"github.com/vfg2006/liveiq-reports/pkg/utils"
)

var ErrNoInternet = errors.New("sem conexão com a internet")

type LiveIQIntegrator interface {
	Fetch(ctx context.Context, endpoint liveiqclient.Endpoint, creds liveiqclient.Credentials, storeIDs []string, start, end string) ([]byte, error)
	ListStores(ctx context.Context, creds liveiqclient.Credentials) ([]string, error)
	CheckConnection(ctx context.Context) error
}

type LiveIQService struct {
	cfg        *config.Config
	Client     liveiqclient.Client
	lookupHost func(ctx context.Context, host string) ([]string, error)
}

func New(cfg *config.Config, client liveiqclient.Client) LiveIQIntegrator {
	return &LiveIQService{
		cfg:        cfg,
		Client:     client,
		lookupHost: net.DefaultResolver.LookupHost,
	}
}

// Fetch chama o endpoint com retentativas exponenciais. Um 429 nunca é repetido.
func (s *LiveIQService) Fetch(ctx context.Context, endpoint liveiqclient.Endpoint, creds liveiqclient.Credentials, storeIDs []string, start, end string) ([]byte, error) {
	attempt := 0

	operation := func() ([]byte, error) {
		attempt++

		body, err := s.Client.Fetch(ctx, endpoint, creds, storeIDs, start, end)
		if err == nil {
			return body, nil
		}

		if liveiqclient.IsRateLimited(err) ||
			errors.Is(err, liveiqclient.ErrUnknownEndpoint) ||
			errors.Is(err, context.Canceled) {
			return nil, backoff.Permanent(err)
		}

		return nil, err
	}

	notify := func(err error, wait time.Duration) {
		logrus.WithFields(logrus.Fields{
			"endpoint": endpoint,
			"stores":   storeIDs,
			"attempt":  attempt,
			"wait":     wait.String(),
			"error":    err.Error(),
		}).Warn("Falha ao consultar LiveIQ, tentando novamente")
	}

	return backoff.RetryNotifyWithData(operation, s.retryPolicy(ctx), notify)
}

func (s *LiveIQService) retryPolicy(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = s.cfg.Fetch.MinBackoff
	exp.MaxInterval = s.cfg.Fetch.MaxBackoff
	exp.Multiplier = 2
	exp.RandomizationFactor = 0
	exp.MaxElapsedTime = 0

	retries := s.cfg.Fetch.MaxAttempts - 1
	if retries < 0 {
		retries = 0
	}

	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(retries)), ctx)
}

// ListStores devolve os números de loja acessíveis pelas credenciais, em ordem numérica
func (s *LiveIQService) ListStores(ctx context.Context, creds liveiqclient.Credentials) ([]string, error) {
	body, err := s.Client.ListRestaurants(ctx, creds)
	if err != nil {
		return nil, err
	}

	records, err := liveiqdomain.DecodeRecords(body)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(records))
	stores := make([]string, 0, len(records))
	for _, rec := range records {
		id := rec.String("restaurantNumber")
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		stores = append(stores, id)
	}

	utils.SortStoreIDs(stores)

	return stores, nil
}

// CheckConnection resolve o host configurado; falha de DNS significa sem internet
func (s *LiveIQService) CheckConnection(ctx context.Context) error {
	if !s.cfg.Connectivity.Enabled {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := s.lookupHost(ctx, s.cfg.Connectivity.Host); err != nil {
		return fmt.Errorf("%w: %v", ErrNoInternet, err)
	}

	return nil
}
