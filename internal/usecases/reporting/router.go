package reporting

import (
	"sort"

	"github.com/vfg2006/liveiq-reports/infrastructure/integrator/liveiq/liveiqclient"
	"github.com/vfg2006/liveiq-reports/internal/domain"
	"github.com/vfg2006/liveiq-reports/pkg/utils"
)

// Route liga uma loja à conta que será usada para consultá-la
type Route struct {
	StoreID     string
	Account     string
	Credentials liveiqclient.Credentials
}

// AccountBatch agrupa as lojas roteadas para a mesma conta
type AccountBatch struct {
	Account     string
	Credentials liveiqclient.Credentials
	StoreIDs    []string
}

// BuildRoutes resolve a conta de cada loja selecionada. A primeira conta (na
// ordem do arquivo) que possui a loja vence. Contas sem credenciais ou com
// status RATE LIMITED são ignoradas. As lojas sem conta voltam em unrouted.
func BuildRoutes(accounts []domain.Account, selected []string) (routes []Route, unrouted []string) {
	seen := make(map[string]bool, len(selected))

	for _, storeID := range selected {
		if seen[storeID] {
			continue
		}
		seen[storeID] = true

		route, ok := routeFor(accounts, storeID)
		if !ok {
			unrouted = append(unrouted, storeID)
			continue
		}
		routes = append(routes, route)
	}

	sort.SliceStable(routes, func(i, j int) bool {
		return utils.StoreLess(routes[i].StoreID, routes[j].StoreID)
	})
	utils.SortStoreIDs(unrouted)

	return routes, unrouted
}

func routeFor(accounts []domain.Account, storeID string) (Route, bool) {
	for _, acc := range accounts {
		if !acc.HasCredentials() || acc.Status == domain.AccountStatusRateLimited {
			continue
		}
		if acc.OwnsStore(storeID) {
			return Route{
				StoreID: storeID,
				Account: acc.Name,
				Credentials: liveiqclient.Credentials{
					ClientID:  acc.ClientID,
					ClientKey: acc.ClientKey,
				},
			}, true
		}
	}
	return Route{}, false
}

// GroupByAccount agrupa as rotas por conta, começando pelas contas com menos lojas
func GroupByAccount(routes []Route) []AccountBatch {
	index := make(map[string]int)
	var batches []AccountBatch

	for _, r := range routes {
		i, ok := index[r.Account]
		if !ok {
			i = len(batches)
			index[r.Account] = i
			batches = append(batches, AccountBatch{Account: r.Account, Credentials: r.Credentials})
		}
		batches[i].StoreIDs = append(batches[i].StoreIDs, r.StoreID)
	}

	sort.SliceStable(batches, func(i, j int) bool {
		return len(batches[i].StoreIDs) < len(batches[j].StoreIDs)
	})

	return batches
}
