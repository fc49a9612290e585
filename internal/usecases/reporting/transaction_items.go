package reporting

import (
	liveiqdomain "github.com/vfg2006/liveiq-reports/infrastructure/integrator/liveiq/domain"
)

var nestedItemKeys = []string{"modifiers", "addons", "extras"}

// flattenItems devolve os itens de cada transação e, recursivamente, seus
// modificadores, adicionais e extras. Cada item aparece uma única vez.
func flattenItems(transactions []liveiqdomain.Record) []liveiqdomain.Record {
	var out []liveiqdomain.Record
	for _, txn := range transactions {
		out = appendItems(out, txn.Records("items"))
	}
	return out
}

func appendItems(out []liveiqdomain.Record, items []liveiqdomain.Record) []liveiqdomain.Record {
	for _, it := range items {
		out = append(out, it)
		for _, key := range nestedItemKeys {
			out = appendItems(out, it.Records(key))
		}
	}
	return out
}
