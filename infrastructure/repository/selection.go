package repository

import "github.com/vfg2006/liveiq-reports/internal/domain"

// resolveSelection materializa a seleção: nil significa todas as contas / todas as lojas
func resolveSelection(s *domain.Settings) domain.Selection {
	selection := domain.Selection{
		Accounts: s.SelectedAccounts,
		Stores:   s.SelectedStores,
	}

	if selection.Accounts == nil {
		selection.Accounts = []string{}
		for _, acc := range s.Accounts {
			selection.Accounts = append(selection.Accounts, acc.Name)
		}
	}

	if selection.Stores == nil {
		selection.Stores = []string{}
		for _, acc := range s.Accounts {
			selection.Stores = appendUnique(selection.Stores, acc.StoreIDs...)
		}
	}

	return selection
}

func appendUnique(list []string, values ...string) []string {
	seen := make(map[string]struct{}, len(list))
	for _, v := range list {
		seen[v] = struct{}{}
	}

	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		list = append(list, v)
	}

	return list
}

func removeValues(list []string, values ...string) []string {
	drop := make(map[string]struct{}, len(values))
	for _, v := range values {
		drop[v] = struct{}{}
	}

	out := []string{}
	for _, v := range list {
		if _, ok := drop[v]; !ok {
			out = append(out, v)
		}
	}

	return out
}

func replaceValue(list []string, old, next string) []string {
	out := make([]string, len(list))
	for i, v := range list {
		if v == old {
			v = next
		}
		out[i] = v
	}
	return out
}
