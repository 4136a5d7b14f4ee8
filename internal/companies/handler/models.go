package handler

// SearchResponse is the envelope for GET /api/companies/search.
type SearchResponse struct {
	Success          bool          `json:"success"`
	Count            int           `json:"count"`
	Data             []interface{} `json:"data"`
	Query            string        `json:"query"`
	JurisdictionCode string        `json:"jurisdiction_code,omitempty"`
}

// CompanyCounts reports the sizes of the related lists on a company fetch.
type CompanyCounts struct {
	Officers         int `json:"officers"`
	Filings          int `json:"filings"`
	BeneficialOwners int `json:"beneficial_owners"`
}

// CompanyDetail groups the primary record with its related lists. Company
// is null when the upstream payload carries no company record.
type CompanyDetail struct {
	Company          interface{}   `json:"company"`
	Officers         []interface{} `json:"officers"`
	Filings          []interface{} `json:"filings"`
	BeneficialOwners []interface{} `json:"beneficial_owners"`
	Counts           CompanyCounts `json:"counts"`
}

// GetResponse is the envelope for GET /api/companies/:jurisdiction_code/:company_number.
type GetResponse struct {
	Success          bool          `json:"success"`
	Data             CompanyDetail `json:"data"`
	JurisdictionCode string        `json:"jurisdiction_code"`
	CompanyNumber    string        `json:"company_number"`
}
