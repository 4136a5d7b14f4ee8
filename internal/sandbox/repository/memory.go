package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps sample companies in process memory. It is the
// default backend and needs no external services.
type MemoryStore struct {
	mu        sync.RWMutex
	companies map[string]SampleCompany
}

func NewMemoryStore() Repository {
	return &MemoryStore{
		companies: make(map[string]SampleCompany),
	}
}

// List returns all records ordered by creation time.
func (s *MemoryStore) List() ([]SampleCompany, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	companies := make([]SampleCompany, 0, len(s.companies))
	for _, company := range s.companies {
		companies = append(companies, company)
	}
	sort.Slice(companies, func(i, j int) bool {
		if companies[i].CreatedAt.Equal(companies[j].CreatedAt) {
			return companies[i].ID < companies[j].ID
		}
		return companies[i].CreatedAt.Before(companies[j].CreatedAt)
	})
	return companies, nil
}

func (s *MemoryStore) GetByID(id string) (*SampleCompany, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	company, ok := s.companies[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &company, nil
}

func (s *MemoryStore) Create(company *SampleCompany) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if company.ID == "" {
		company.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	company.CreatedAt = now
	company.UpdatedAt = now
	s.companies[company.ID] = *company
	return company.ID, nil
}

func (s *MemoryStore) Update(company *SampleCompany) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.companies[company.ID]
	if !ok {
		return ErrNotFound
	}
	company.CreatedAt = existing.CreatedAt
	company.UpdatedAt = time.Now().UTC()
	s.companies[company.ID] = *company
	return nil
}

func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.companies[id]; !ok {
		return ErrNotFound
	}
	delete(s.companies, id)
	return nil
}
