package handler

import (
	"github.com/corpscope/corpscope/internal/sandbox/repository"
	"github.com/corpscope/corpscope/pkg/random"
)

type Sandbox interface {
	List() (*ListResponse, error)
	Get(id string) (*CompanyResponse, error)
	Create(request *CompanyRequest) (*CompanyResponse, error)
	Update(id string, request *CompanyRequest) (*CompanyResponse, error)
	Delete(id string) error
	Generate(count int) (*GenerateResponse, error)
}

type V1 struct {
	Store repository.Repository
}

func NewSandboxHandler(store repository.Repository) Sandbox {
	return &V1{
		Store: store,
	}
}

func (h *V1) List() (*ListResponse, error) {
	companies, err := h.Store.List()
	if err != nil {
		return nil, err
	}
	return &ListResponse{
		Success: true,
		Count:   len(companies),
		Data:    companies,
	}, nil
}

func (h *V1) Get(id string) (*CompanyResponse, error) {
	company, err := h.Store.GetByID(id)
	if err != nil {
		return nil, err
	}
	return &CompanyResponse{
		Success: true,
		Data:    company,
	}, nil
}

func (h *V1) Create(request *CompanyRequest) (*CompanyResponse, error) {
	id, err := h.Store.Create(toSampleCompany(request))
	if err != nil {
		return nil, err
	}
	created, err := h.Store.GetByID(id)
	if err != nil {
		return nil, err
	}
	return &CompanyResponse{
		Success: true,
		Data:    created,
	}, nil
}

func (h *V1) Update(id string, request *CompanyRequest) (*CompanyResponse, error) {
	company := toSampleCompany(request)
	company.ID = id
	if err := h.Store.Update(company); err != nil {
		return nil, err
	}
	updated, err := h.Store.GetByID(id)
	if err != nil {
		return nil, err
	}
	return &CompanyResponse{
		Success: true,
		Data:    updated,
	}, nil
}

func (h *V1) Delete(id string) error {
	return h.Store.Delete(id)
}

// Generate creates count random sample companies and stores them.
func (h *V1) Generate(count int) (*GenerateResponse, error) {
	companies := make([]repository.SampleCompany, 0, count)
	for i := 0; i < count; i++ {
		company := &repository.SampleCompany{
			Name:              random.GenerateCompanyName(),
			CompanyNumber:     random.GenerateCompanyNumber(),
			JurisdictionCode:  random.GenerateJurisdictionCode(),
			CompanyType:       random.GenerateCompanyType(),
			CurrentStatus:     random.GenerateCompanyStatus(),
			IncorporationDate: random.GenerateIncorporationDate(),
		}
		id, err := h.Store.Create(company)
		if err != nil {
			return nil, err
		}
		created, err := h.Store.GetByID(id)
		if err != nil {
			return nil, err
		}
		companies = append(companies, *created)
	}
	return &GenerateResponse{
		Success: true,
		Count:   len(companies),
		Data:    companies,
	}, nil
}

func toSampleCompany(request *CompanyRequest) *repository.SampleCompany {
	return &repository.SampleCompany{
		Name:              request.Name,
		CompanyNumber:     request.CompanyNumber,
		JurisdictionCode:  request.JurisdictionCode,
		CompanyType:       request.CompanyType,
		CurrentStatus:     request.CurrentStatus,
		IncorporationDate: request.IncorporationDate,
	}
}
