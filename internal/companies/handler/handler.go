package handler

import (
	"github.com/corpscope/corpscope/pkg/jsonquery"
	"github.com/corpscope/corpscope/pkg/opencorporates"
)

const (
	searchResultsPath    = "$.results.companies..company"
	companyPath          = "$.results.company"
	officersPath         = "$.results.company.officers..officer"
	filingsPath          = "$.results.company.filings..filing"
	beneficialOwnersPath = "$.results.company..beneficial_owner"
)

type Companies interface {
	Search(query string, params map[string]string) (*SearchResponse, error)
	Get(jurisdictionCode, companyNumber string, params map[string]string) (*GetResponse, error)
}

type V1 struct {
	Client opencorporates.Client
}

func NewCompaniesHandler(client opencorporates.Client) Companies {
	return &V1{
		Client: client,
	}
}

// Search forwards a company search upstream, strips the sensitive key
// from the payload and flattens the wrapped company records.
func (h *V1) Search(query string, params map[string]string) (*SearchResponse, error) {
	payload, err := h.Client.SearchCompanies(params)
	if err != nil {
		return nil, err
	}

	jsonquery.StripKey(payload, opencorporates.SensitiveKey)
	companies := jsonquery.Extract(payload, searchResultsPath)

	return &SearchResponse{
		Success:          true,
		Count:            len(companies),
		Data:             companies,
		Query:            query,
		JurisdictionCode: params["jurisdiction_code"],
	}, nil
}

// Get fetches a single company record with its related officer, filing
// and beneficial-owner lists.
func (h *V1) Get(jurisdictionCode, companyNumber string, params map[string]string) (*GetResponse, error) {
	payload, err := h.Client.GetCompany(jurisdictionCode, companyNumber, params)
	if err != nil {
		return nil, err
	}

	jsonquery.StripKey(payload, opencorporates.SensitiveKey)
	company := jsonquery.First(payload, companyPath)
	officers := jsonquery.Extract(payload, officersPath)
	filings := jsonquery.Extract(payload, filingsPath)
	owners := jsonquery.Extract(payload, beneficialOwnersPath)

	return &GetResponse{
		Success: true,
		Data: CompanyDetail{
			Company:          company,
			Officers:         officers,
			Filings:          filings,
			BeneficialOwners: owners,
			Counts: CompanyCounts{
				Officers:         len(officers),
				Filings:          len(filings),
				BeneficialOwners: len(owners),
			},
		},
		JurisdictionCode: jurisdictionCode,
		CompanyNumber:    companyNumber,
	}, nil
}
