package liveiqclient

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownEndpoint = errors.New("endpoint da LiveIQ desconhecido")

// Endpoint é o nome de exibição de um endpoint de relatório da LiveIQ
type Endpoint string

const (
	SalesSummary                 Endpoint = "Sales Summary"
	DailySalesSummary            Endpoint = "Daily Sales Summary"
	DailyTimeclock               Endpoint = "Daily Timeclock"
	ThirdPartySalesSummary       Endpoint = "Third Party Sales Summary"
	ThirdPartyTransactionSummary Endpoint = "Third Party Transaction Summary"
	TransactionSummary           Endpoint = "Transaction Summary"
	TransactionDetails           Endpoint = "Transaction Details"
)

var endpointResources = map[Endpoint]string{
	SalesSummary:                 "SalesSummary",
	DailySalesSummary:            "DailySalesSummary",
	DailyTimeclock:               "DailyTimeclock",
	ThirdPartySalesSummary:       "ThirdPartySalesSummary",
	ThirdPartyTransactionSummary: "ThirdPartyTransactionSummary",
	TransactionSummary:           "TransactionSummary",
	TransactionDetails:           "TransactionDetails",
}

const restaurantsPath = "/api/Restaurants"

func Endpoints() []Endpoint {
	return []Endpoint{
		SalesSummary,
		DailySalesSummary,
		DailyTimeclock,
		ThirdPartySalesSummary,
		ThirdPartyTransactionSummary,
		TransactionSummary,
		TransactionDetails,
	}
}

// ParseEndpoint aceita o nome de exibição ("Daily Sales Summary") ou o recurso ("DailySalesSummary")
func ParseEndpoint(s string) (Endpoint, error) {
	s = strings.TrimSpace(s)
	for ep, resource := range endpointResources {
		if strings.EqualFold(s, string(ep)) || strings.EqualFold(s, resource) {
			return ep, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEndpoint, s)
}

func (e Endpoint) Valid() bool {
	_, ok := endpointResources[e]
	return ok
}

// Path monta /api/<Recurso>/<ids separados por vírgula>/startDate/<início>/endDate/<fim>
func (e Endpoint) Path(storeIDs []string, start, end string) string {
	return fmt.Sprintf("/api/%s/%s/startDate/%s/endDate/%s",
		endpointResources[e], strings.Join(storeIDs, ","), start, end)
}
