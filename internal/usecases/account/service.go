package account

import (
	"context"
	"errors"
	"strings"

	"github.com/sourcegraph/conc/pool"
	"github.com/vfg2006/liveiq-reports/infrastructure/integrator/liveiq"
	"github.com/vfg2006/liveiq-reports/infrastructure/integrator/liveiq/liveiqclient"
	"github.com/vfg2006/liveiq-reports/infrastructure/repository"
	"github.com/vfg2006/liveiq-reports/internal/config"
	"github.com/vfg2006/liveiq-reports/internal/domain"
	"github.com/vfg2006/liveiq-reports/pkg/apiErrors"
	"github.com/vfg2006/liveiq-reports/pkg/log"
	"github.com/vfg2006/liveiq-reports/pkg/utils"
)

const (
	maxWorkersLimit   = 64
	checkLogEndpoint  = "check_rate_limits"
	verifyLogEndpoint = "validate_credentials"
)

type AccountService interface {
	ListAccounts() ([]domain.AccountResponse, error)
	CreateAccount(ctx context.Context, request *domain.AccountRequest) (*domain.AccountResponse, error)
	UpdateAccount(ctx context.Context, name string, request *domain.AccountRequest) (*domain.AccountResponse, error)
	DeleteAccount(name string) error
	StoreTree() ([]domain.AccountNode, error)
	SaveSelection(selection domain.Selection) error
	CheckAll(ctx context.Context) ([]domain.AccountCheckResult, error)
	GetMaxWorkers() (int, error)
	SetMaxWorkers(n int) error
}

type Service struct {
	accountRepository     repository.AccountRepository
	preferencesRepository repository.PreferencesRepository
	integrator            liveiq.LiveIQIntegrator
	errorLog              *log.ErrorLog
	cfg                   *config.Config
}

func NewService(
	accountRepository repository.AccountRepository,
	preferencesRepository repository.PreferencesRepository,
	integrator liveiq.LiveIQIntegrator,
	errorLog *log.ErrorLog,
	cfg *config.Config,
) AccountService {
	return &Service{
		accountRepository:     accountRepository,
		preferencesRepository: preferencesRepository,
		integrator:            integrator,
		errorLog:              errorLog,
		cfg:                   cfg,
	}
}

func (s *Service) ListAccounts() ([]domain.AccountResponse, error) {
	accounts, err := s.accountRepository.ListAccounts()
	if err != nil {
		return nil, NewAccountError(ErrStorageOperation, apiErrors.ErrStorageOperation, "Falha ao listar contas")
	}

	selection, err := s.preferencesRepository.GetSelection()
	if err != nil {
		return nil, NewAccountError(ErrStorageOperation, apiErrors.ErrStorageOperation, "Falha ao ler a seleção")
	}
	selected := toSet(selection.Accounts)

	// Transforma as contas para o formato de resposta da API, sem a client key
	response := make([]domain.AccountResponse, 0, len(accounts))
	for _, acc := range accounts {
		_, isSelected := selected[acc.Name]
		response = append(response, toResponse(acc, isSelected))
	}

	return response, nil
}

func (s *Service) CreateAccount(ctx context.Context, request *domain.AccountRequest) (*domain.AccountResponse, error) {
	account, err := s.verifiedAccount(ctx, "", request)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepository.CreateAccount(*account); err != nil {
		return nil, repositoryError(err, account.Name)
	}

	log.L.WithContext(ctx).WithFields(log.Fields{
		"account": account.Name,
		"stores":  len(account.StoreIDs),
		"status":  account.Status,
	}).Info("Conta adicionada")

	response := toResponse(*account, true)
	return &response, nil
}

func (s *Service) UpdateAccount(ctx context.Context, name string, request *domain.AccountRequest) (*domain.AccountResponse, error) {
	current, err := s.accountRepository.GetAccount(name)
	if err != nil {
		return nil, NewAccountErrorWithName(ErrStorageOperation, apiErrors.ErrStorageOperation, name, "Erro ao buscar conta")
	}
	if current == nil {
		return nil, NewAccountErrorWithName(ErrAccountNotFound, apiErrors.ErrResourceNotFound, name, "Conta não encontrada")
	}

	account, err := s.verifiedAccount(ctx, name, request)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepository.UpdateAccount(name, *account); err != nil {
		return nil, repositoryError(err, name)
	}

	log.L.WithContext(ctx).WithFields(log.Fields{
		"account": name,
		"renamed": account.Name != name,
		"stores":  len(account.StoreIDs),
	}).Info("Conta atualizada")

	response := toResponse(*account, true)
	return &response, nil
}

// verifiedAccount valida os campos, rejeita credenciais repetidas e carrega as lojas
// da conta na LiveIQ. current é o nome da conta em edição ("" na criação).
func (s *Service) verifiedAccount(ctx context.Context, current string, request *domain.AccountRequest) (*domain.Account, error) {
	account := domain.Account{
		Name:      strings.TrimSpace(request.Name),
		ClientID:  strings.TrimSpace(request.ClientID),
		ClientKey: strings.TrimSpace(request.ClientKey),
	}
	if !account.HasCredentials() {
		return nil, NewAccountError(ErrAccountFieldsRequired, apiErrors.ErrMissingRequiredData, "")
	}

	accounts, err := s.accountRepository.ListAccounts()
	if err != nil {
		return nil, NewAccountError(ErrStorageOperation, apiErrors.ErrStorageOperation, "Falha ao listar contas")
	}
	for _, acc := range accounts {
		if acc.Name == current {
			continue
		}
		if acc.Name == account.Name {
			return nil, NewAccountErrorWithName(ErrAccountExists, apiErrors.ErrResourceConflict, account.Name, "")
		}
		if acc.SameCredentials(account.ClientID, account.ClientKey) {
			return nil, NewAccountErrorWithName(ErrDuplicateCredentials, apiErrors.ErrResourceConflict, account.Name, "")
		}
	}

	if err := s.integrator.CheckConnection(ctx); err != nil {
		return nil, NewAccountError(ErrNoInternet, apiErrors.ErrCommunication, "")
	}

	creds := liveiqclient.Credentials{ClientID: account.ClientID, ClientKey: account.ClientKey}
	stores, err := s.integrator.ListStores(ctx, creds)
	if err != nil {
		if liveiqclient.IsRateLimited(err) {
			return nil, NewAccountErrorWithName(ErrRateLimited, apiErrors.ErrRateLimited, account.Name, "")
		}

		s.errorLog.Recordf("", verifyLogEndpoint, "Credential validation failed: %v", err)
		return nil, NewAccountErrorWithName(ErrStoreListFailed, apiErrors.ErrExternalService, account.Name, err.Error())
	}

	account.StoreIDs = stores
	account.Status = statusForStores(stores)
	return &account, nil
}

func (s *Service) DeleteAccount(name string) error {
	if err := s.accountRepository.DeleteAccount(name); err != nil {
		return repositoryError(err, name)
	}

	log.L.WithField("account", name).Info("Conta removida")
	return nil
}

// StoreTree monta a árvore conta → lojas com as marcações da seleção salva
func (s *Service) StoreTree() ([]domain.AccountNode, error) {
	accounts, err := s.accountRepository.ListAccounts()
	if err != nil {
		return nil, NewAccountError(ErrStorageOperation, apiErrors.ErrStorageOperation, "Falha ao listar contas")
	}

	selection, err := s.preferencesRepository.GetSelection()
	if err != nil {
		return nil, NewAccountError(ErrStorageOperation, apiErrors.ErrStorageOperation, "Falha ao ler a seleção")
	}
	selectedAccounts := toSet(selection.Accounts)
	selectedStores := toSet(selection.Stores)

	tree := make([]domain.AccountNode, 0, len(accounts))
	for _, acc := range accounts {
		_, accSelected := selectedAccounts[acc.Name]

		ids := append([]string{}, acc.StoreIDs...)
		utils.SortStoreIDs(ids)

		node := domain.AccountNode{
			Name:     acc.Name,
			Status:   acc.Status,
			Selected: accSelected,
			Stores:   make([]domain.StoreNode, 0, len(ids)),
		}
		for _, id := range ids {
			_, storeSelected := selectedStores[id]
			node.Stores = append(node.Stores, domain.StoreNode{StoreID: id, Selected: storeSelected})
		}
		tree = append(tree, node)
	}

	return tree, nil
}

func (s *Service) SaveSelection(selection domain.Selection) error {
	if err := s.preferencesRepository.SaveSelection(selection); err != nil {
		return NewAccountError(ErrStorageOperation, apiErrors.ErrStorageOperation, "Falha ao salvar a seleção")
	}
	return nil
}

// CheckAll consulta /api/Restaurants para cada conta, atualiza lojas e status,
// grava tudo e volta a seleção para todas as lojas das contas OK.
func (s *Service) CheckAll(ctx context.Context) ([]domain.AccountCheckResult, error) {
	if err := s.integrator.CheckConnection(ctx); err != nil {
		s.errorLog.Record("", checkLogEndpoint, "No internet connection")
		return nil, NewAccountError(ErrNoInternet, apiErrors.ErrCommunication, "")
	}

	accounts, err := s.accountRepository.ListAccounts()
	if err != nil {
		return nil, NewAccountError(ErrStorageOperation, apiErrors.ErrStorageOperation, "Falha ao listar contas")
	}

	results := make([]domain.AccountCheckResult, len(accounts))

	p := pool.New().WithMaxGoroutines(s.checkConcurrency())
	for i := range accounts {
		p.Go(func() {
			results[i] = s.checkAccount(ctx, &accounts[i])
		})
	}
	p.Wait()

	if err := s.accountRepository.ApplyCheckResults(accounts); err != nil {
		return nil, NewAccountError(ErrStorageOperation, apiErrors.ErrStorageOperation, "Falha ao gravar contas verificadas")
	}
	if err := s.preferencesRepository.ResetSelection(); err != nil {
		return nil, NewAccountError(ErrStorageOperation, apiErrors.ErrStorageOperation, "Falha ao redefinir a seleção")
	}

	log.L.WithContext(ctx).WithField("accounts", len(accounts)).Info("Verificação de contas concluída")

	return results, nil
}

// checkAccount altera acc no lugar; cada goroutine mexe apenas na sua conta
func (s *Service) checkAccount(ctx context.Context, acc *domain.Account) domain.AccountCheckResult {
	creds := liveiqclient.Credentials{ClientID: acc.ClientID, ClientKey: acc.ClientKey}

	stores, err := s.integrator.ListStores(ctx, creds)
	switch {
	case err == nil:
		acc.StoreIDs = stores
		acc.Status = statusForStores(stores)
	case liveiqclient.IsRateLimited(err):
		acc.Status = domain.AccountStatusRateLimited
	default:
		acc.Status = domain.AccountStatusError
		s.errorLog.Recordf("", checkLogEndpoint, "Check failed for %s: %v", acc.Name, err)
	}

	result := domain.AccountCheckResult{
		Name:   acc.Name,
		Status: acc.Status,
		Stores: len(acc.StoreIDs),
	}
	if err != nil {
		result.Error = err.Error()
	}
	return result
}

func (s *Service) checkConcurrency() int {
	if s.cfg != nil && s.cfg.AccountCheck.MaxConcurrentJobs > 0 {
		return s.cfg.AccountCheck.MaxConcurrentJobs
	}
	return 1
}

func (s *Service) GetMaxWorkers() (int, error) {
	n, err := s.preferencesRepository.GetMaxWorkers()
	if err != nil {
		return 0, NewAccountError(ErrStorageOperation, apiErrors.ErrStorageOperation, "Falha ao ler a quantidade de workers")
	}
	return n, nil
}

func (s *Service) SetMaxWorkers(n int) error {
	if n < 1 || n > maxWorkersLimit {
		return NewAccountError(ErrInvalidMaxWorkers, apiErrors.ErrInvalidRequest, "")
	}
	if err := s.preferencesRepository.SetMaxWorkers(n); err != nil {
		return NewAccountError(ErrStorageOperation, apiErrors.ErrStorageOperation, "Falha ao gravar a quantidade de workers")
	}
	return nil
}

func statusForStores(stores []string) domain.AccountStatus {
	if len(stores) == 0 {
		return domain.AccountStatusEmpty
	}
	return domain.AccountStatusOK
}

func repositoryError(err error, name string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return NewAccountErrorWithName(ErrAccountNotFound, apiErrors.ErrResourceNotFound, name, "Conta não encontrada")
	case errors.Is(err, repository.ErrAlreadyExists):
		return NewAccountErrorWithName(ErrAccountExists, apiErrors.ErrResourceConflict, name, "")
	}
	return NewAccountErrorWithName(ErrStorageOperation, apiErrors.ErrStorageOperation, name, err.Error())
}

func toResponse(acc domain.Account, selected bool) domain.AccountResponse {
	stores := append([]string{}, acc.StoreIDs...)
	utils.SortStoreIDs(stores)

	return domain.AccountResponse{
		Name:     acc.Name,
		ClientID: acc.ClientID,
		StoreIDs: stores,
		Status:   acc.Status,
		Selected: selected,
	}
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
