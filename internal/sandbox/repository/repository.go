package repository

import (
	"errors"
	"time"

	"github.com/corpscope/corpscope/pkg/metric"
)

// ErrNotFound is returned when no sample company exists for the given id.
var ErrNotFound = errors.New("sample company not found")

// SampleCompany is a synthetic company record served from the sandbox
// store instead of the registry.
type SampleCompany struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	CompanyNumber     string    `json:"company_number"`
	JurisdictionCode  string    `json:"jurisdiction_code"`
	CompanyType       string    `json:"company_type,omitempty"`
	CurrentStatus     string    `json:"current_status,omitempty"`
	IncorporationDate string    `json:"incorporation_date,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type Repository interface {
	List() ([]SampleCompany, error)
	GetByID(id string) (*SampleCompany, error)
	Create(company *SampleCompany) (string, error)
	Update(company *SampleCompany) error
	Delete(id string) error
}

func dbCallTags(store, operation string) []string {
	return metric.BuildTag(
		metric.NewTag(metric.TagStore, store),
		metric.NewTag(metric.TagOperation, operation),
	)
}
