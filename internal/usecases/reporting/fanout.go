package reporting

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sourcegraph/conc/pool"
	liveiqdomain "github.com/vfg2006/liveiq-reports/infrastructure/integrator/liveiq/domain"
	"github.com/vfg2006/liveiq-reports/infrastructure/integrator/liveiq/liveiqclient"
	"github.com/vfg2006/liveiq-reports/internal/domain"
	"github.com/vfg2006/liveiq-reports/pkg/log"
)

var errAccountDisabled = errors.New("conta desativada por rate limit nesta execução")

// partialDataMessage acompanha lojas com rate limit que já tinham linhas agregadas
const partialDataMessage = "partial data: some fetches were skipped after the rate limit"

// FetchTask é uma chamada a um endpoint para uma ou mais lojas da mesma conta
type FetchTask struct {
	Endpoint    liveiqclient.Endpoint
	Account     string
	Credentials liveiqclient.Credentials
	StoreIDs    []string
	Start       string
	End         string
	Date        string
	Tag         string // diferencia chamadas do mesmo módulo a endpoints distintos
}

func (t FetchTask) storeLabel() string {
	return strings.Join(t.StoreIDs, ",")
}

type FetchResult struct {
	Task    FetchTask
	Payload []byte
	Err     error
}

// runOutcome guarda o que aconteceu com cada loja durante a execução
type runOutcome struct {
	mu          sync.RWMutex
	limited     map[string]bool
	rateLimited map[string]bool
	failed      map[string]string
	notices     []string
}

func newRunOutcome() *runOutcome {
	return &runOutcome{
		limited:     make(map[string]bool),
		rateLimited: make(map[string]bool),
		failed:      make(map[string]string),
	}
}

func (o *runOutcome) accountLimited(account string) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.limited[account]
}

// limitAccount marca a conta e devolve true apenas na primeira vez
func (o *runOutcome) limitAccount(account string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.limited[account] {
		return false
	}
	o.limited[account] = true
	return true
}

// fetchAll executa as tarefas em paralelo e entrega cada resposta ao
// acumulador a partir de uma única goroutine coletora.
func (s *Service) fetchAll(ctx context.Context, tasks []FetchTask, workers int, acc Accumulator, outcome *runOutcome) {
	if len(tasks) == 0 {
		return
	}

	if workers > len(tasks) {
		workers = len(tasks)
	}
	if workers < 1 {
		workers = 1
	}

	results := make(chan FetchResult, len(tasks))
	p := pool.New().WithMaxGoroutines(workers)

	for _, task := range tasks {
		task := task
		p.Go(func() {
			if outcome.accountLimited(task.Account) {
				results <- FetchResult{Task: task, Err: errAccountDisabled}
				return
			}

			payload, err := s.integrator.Fetch(ctx, task.Endpoint, task.Credentials, task.StoreIDs, task.Start, task.End)
			if liveiqclient.IsRateLimited(err) {
				// Bloqueia as próximas tarefas da conta antes mesmo do coletor processar o 429
				s.disableAccount(ctx, task.Account, outcome)
			}
			results <- FetchResult{Task: task, Payload: payload, Err: err}
		})
	}

	go func() {
		p.Wait()
		close(results)
	}()

	for res := range results {
		s.collect(ctx, res, acc, outcome)
	}
}

func (s *Service) collect(ctx context.Context, res FetchResult, acc Accumulator, outcome *runOutcome) {
	task := res.Task
	logger := log.L.WithContext(ctx).WithFields(log.Fields{
		"endpoint": string(task.Endpoint),
		"account":  task.Account,
		"stores":   task.storeLabel(),
		"date":     task.Date,
	})

	switch {
	case errors.Is(res.Err, errAccountDisabled) || liveiqclient.IsRateLimited(res.Err):
		for _, sid := range task.StoreIDs {
			outcome.rateLimited[sid] = true
		}
		logger.Warn("Chamada ignorada por rate limit")
		return

	case res.Err != nil:
		s.recordFailure(task, res.Err.Error(), outcome)
		logger.WithError(res.Err).Error("Erro ao buscar dados na LiveIQ")
		return
	}

	if err := acc.Fold(task, res.Payload); err != nil {
		var apiErr *liveiqdomain.APIError
		msg := err.Error()
		if errors.As(err, &apiErr) {
			msg = fmt.Sprintf("API error: %s", apiErr.Message)
		}
		s.recordFailure(task, msg, outcome)
		logger.WithError(err).Error("Resposta da LiveIQ não pôde ser agregada")
	}
}

func (s *Service) recordFailure(task FetchTask, msg string, outcome *runOutcome) {
	for _, sid := range task.StoreIDs {
		if _, ok := outcome.failed[sid]; !ok {
			outcome.failed[sid] = msg
		}
	}
	s.errorLog.Record(task.storeLabel(), string(task.Endpoint), msg)
}

// disableAccount persiste o status RATE LIMITED uma única vez por conta
func (s *Service) disableAccount(ctx context.Context, account string, outcome *runOutcome) {
	if !outcome.limitAccount(account) {
		return
	}

	logger := log.L.WithContext(ctx).WithField("account", account)
	s.errorLog.Record("", "", fmt.Sprintf("Rate limit hit for account %s; account disabled", account))

	changed, err := s.accountRepository.DisableRateLimited(account)
	if err != nil {
		logger.WithError(err).Error("Erro ao desativar conta com rate limit")
		return
	}
	if changed {
		logger.Warn("Conta desativada por rate limit")
	}

	outcome.mu.Lock()
	outcome.notices = append(outcome.notices,
		fmt.Sprintf("Account %s disabled due to rate limits. Clear via Check Rate Limits.", account))
	outcome.mu.Unlock()
}

// statuses monta o resultado de cada loja pedida, na ordem do relatório
func (o *runOutcome) statuses(stores []string, routes []Route, acc Accumulator) []domain.StoreStatus {
	accountOf := make(map[string]string, len(routes))
	for _, r := range routes {
		accountOf[r.StoreID] = r.Account
	}

	out := make([]domain.StoreStatus, 0, len(stores))
	for _, sid := range stores {
		st := domain.StoreStatus{StoreID: sid, Account: accountOf[sid]}

		switch {
		case st.Account == "":
			st.Outcome = domain.OutcomeNoData
			st.Message = "no account with credentials owns this store"
		case o.rateLimited[sid]:
			st.Outcome = domain.OutcomeRateLimited
			if acc.HasData(sid) {
				st.Message = partialDataMessage
			}
		case acc.HasData(sid):
			st.Outcome = domain.OutcomeOK
		case o.failed[sid] != "":
			st.Outcome = domain.OutcomeFailed
			st.Message = o.failed[sid]
		default:
			st.Outcome = domain.OutcomeNoData
		}

		out = append(out, st)
	}
	return out
}
