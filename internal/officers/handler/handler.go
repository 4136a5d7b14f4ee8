package handler

import (
	"github.com/corpscope/corpscope/pkg/jsonquery"
	"github.com/corpscope/corpscope/pkg/opencorporates"
)

const (
	searchResultsPath = "$.results.officers..officer"
	officerPath       = "$.results.officer"
	companiesPath     = "$.results.officer..company"
)

type Officers interface {
	Search(query string, params map[string]string) (*SearchResponse, error)
	Get(officerID string, params map[string]string) (*GetResponse, error)
}

type V1 struct {
	Client opencorporates.Client
}

func NewOfficersHandler(client opencorporates.Client) Officers {
	return &V1{
		Client: client,
	}
}

// Search forwards an officer search upstream, strips the sensitive key
// from the payload and flattens the wrapped officer records.
func (h *V1) Search(query string, params map[string]string) (*SearchResponse, error) {
	payload, err := h.Client.SearchOfficers(params)
	if err != nil {
		return nil, err
	}

	jsonquery.StripKey(payload, opencorporates.SensitiveKey)
	officers := jsonquery.Extract(payload, searchResultsPath)

	return &SearchResponse{
		Success:          true,
		Count:            len(officers),
		Data:             officers,
		Query:            query,
		JurisdictionCode: params["jurisdiction_code"],
	}, nil
}

// Get fetches a single officer record with its company relationships.
func (h *V1) Get(officerID string, params map[string]string) (*GetResponse, error) {
	payload, err := h.Client.GetOfficer(officerID, params)
	if err != nil {
		return nil, err
	}

	jsonquery.StripKey(payload, opencorporates.SensitiveKey)
	officer := jsonquery.First(payload, officerPath)
	relatedCompanies := jsonquery.Extract(payload, companiesPath)

	return &GetResponse{
		Success: true,
		Data: OfficerDetail{
			Officer:   officer,
			Companies: relatedCompanies,
			Counts: OfficerCounts{
				Companies: len(relatedCompanies),
			},
		},
		OfficerID: officerID,
	}, nil
}
