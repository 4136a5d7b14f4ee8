package handler

import "github.com/corpscope/corpscope/internal/sandbox/repository"

// CompanyRequest is the write payload for sandbox company records.
type CompanyRequest struct {
	Name              string `json:"name"`
	CompanyNumber     string `json:"company_number"`
	JurisdictionCode  string `json:"jurisdiction_code"`
	CompanyType       string `json:"company_type"`
	CurrentStatus     string `json:"current_status"`
	IncorporationDate string `json:"incorporation_date"`
}

// ListResponse is the envelope for GET /api/sandbox/companies.
type ListResponse struct {
	Success bool                       `json:"success"`
	Count   int                        `json:"count"`
	Data    []repository.SampleCompany `json:"data"`
}

// CompanyResponse is the envelope for single-record sandbox operations.
type CompanyResponse struct {
	Success bool                      `json:"success"`
	Data    *repository.SampleCompany `json:"data"`
}

// GenerateRequest carries the number of records to generate.
type GenerateRequest struct {
	Count int `json:"count"`
}

// GenerateResponse is the envelope for POST /api/sandbox/companies/generate.
type GenerateResponse struct {
	Success bool                       `json:"success"`
	Count   int                        `json:"count"`
	Data    []repository.SampleCompany `json:"data"`
}
