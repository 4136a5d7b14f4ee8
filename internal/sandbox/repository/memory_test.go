package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_CreateAndGet(t *testing.T) {
	store := NewMemoryStore()

	id, err := store.Create(&SampleCompany{
		Name:             "Acme Trading Ltd",
		CompanyNumber:    "00123456",
		JurisdictionCode: "gb",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, id)

	company, err := store.GetByID(id)
	assert.NoError(t, err)
	assert.Equal(t, "Acme Trading Ltd", company.Name)
	assert.Equal(t, "00123456", company.CompanyNumber)
	assert.Equal(t, "gb", company.JurisdictionCode)
	assert.False(t, company.CreatedAt.IsZero())
	assert.Equal(t, company.CreatedAt, company.UpdatedAt)
}

func TestMemoryStore_GetMissingReturnsNotFound(t *testing.T) {
	store := NewMemoryStore()

	company, err := store.GetByID("no-such-id")
	assert.Nil(t, company)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemoryStore_ListOrdersByCreationTime(t *testing.T) {
	store := NewMemoryStore()

	names := []string{"First Ltd", "Second Ltd", "Third Ltd"}
	for _, name := range names {
		_, err := store.Create(&SampleCompany{Name: name, CompanyNumber: "1", JurisdictionCode: "gb"})
		assert.NoError(t, err)
	}

	companies, err := store.List()
	assert.NoError(t, err)
	assert.Len(t, companies, 3)

	seen := make([]string, 0, len(companies))
	for i, company := range companies {
		seen = append(seen, company.Name)
		if i > 0 {
			assert.False(t, company.CreatedAt.Before(companies[i-1].CreatedAt))
		}
	}
	assert.ElementsMatch(t, names, seen)
}

func TestMemoryStore_ListEmpty(t *testing.T) {
	store := NewMemoryStore()

	companies, err := store.List()
	assert.NoError(t, err)
	assert.NotNil(t, companies)
	assert.Empty(t, companies)
}

func TestMemoryStore_Update(t *testing.T) {
	store := NewMemoryStore()

	id, err := store.Create(&SampleCompany{Name: "Old Name", CompanyNumber: "1", JurisdictionCode: "gb"})
	assert.NoError(t, err)
	created, err := store.GetByID(id)
	assert.NoError(t, err)

	err = store.Update(&SampleCompany{
		ID:               id,
		Name:             "New Name",
		CompanyNumber:    "1",
		JurisdictionCode: "gb",
		CurrentStatus:    "Dissolved",
	})
	assert.NoError(t, err)

	updated, err := store.GetByID(id)
	assert.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "Dissolved", updated.CurrentStatus)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))
}

func TestMemoryStore_UpdateMissingReturnsNotFound(t *testing.T) {
	store := NewMemoryStore()

	err := store.Update(&SampleCompany{ID: "no-such-id", Name: "X", CompanyNumber: "1", JurisdictionCode: "gb"})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore()

	id, err := store.Create(&SampleCompany{Name: "Gone Ltd", CompanyNumber: "1", JurisdictionCode: "gb"})
	assert.NoError(t, err)

	assert.NoError(t, store.Delete(id))

	_, err = store.GetByID(id)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(store.Delete(id), ErrNotFound))
}
