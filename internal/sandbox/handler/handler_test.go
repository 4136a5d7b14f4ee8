package handler

import (
	"errors"
	"testing"
	"time"

	"github.com/corpscope/corpscope/internal/sandbox/repository"
	"github.com/stretchr/testify/assert"
)

func TestSandboxHandler_CreateAndList(t *testing.T) {
	h := NewSandboxHandler(repository.NewMemoryStore())

	created, err := h.Create(&CompanyRequest{
		Name:             "Acme Trading Ltd",
		CompanyNumber:    "00123456",
		JurisdictionCode: "gb",
		CurrentStatus:    "Active",
	})
	assert.NoError(t, err)
	assert.True(t, created.Success)
	assert.NotEmpty(t, created.Data.ID)
	assert.Equal(t, "Acme Trading Ltd", created.Data.Name)
	assert.False(t, created.Data.CreatedAt.IsZero())

	list, err := h.List()
	assert.NoError(t, err)
	assert.True(t, list.Success)
	assert.Equal(t, 1, list.Count)
	assert.Len(t, list.Data, 1)
	assert.Equal(t, created.Data.ID, list.Data[0].ID)
}

func TestSandboxHandler_UpdatePreservesCreationTime(t *testing.T) {
	h := NewSandboxHandler(repository.NewMemoryStore())

	created, err := h.Create(&CompanyRequest{Name: "Old Name", CompanyNumber: "1", JurisdictionCode: "gb"})
	assert.NoError(t, err)

	updated, err := h.Update(created.Data.ID, &CompanyRequest{
		Name:             "New Name",
		CompanyNumber:    "1",
		JurisdictionCode: "gb",
	})
	assert.NoError(t, err)
	assert.Equal(t, "New Name", updated.Data.Name)
	assert.Equal(t, created.Data.CreatedAt, updated.Data.CreatedAt)
}

func TestSandboxHandler_UpdateMissingReturnsNotFound(t *testing.T) {
	h := NewSandboxHandler(repository.NewMemoryStore())

	response, err := h.Update("no-such-id", &CompanyRequest{Name: "X", CompanyNumber: "1", JurisdictionCode: "gb"})
	assert.Nil(t, response)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestSandboxHandler_Delete(t *testing.T) {
	h := NewSandboxHandler(repository.NewMemoryStore())

	created, err := h.Create(&CompanyRequest{Name: "Gone Ltd", CompanyNumber: "1", JurisdictionCode: "gb"})
	assert.NoError(t, err)

	assert.NoError(t, h.Delete(created.Data.ID))
	assert.True(t, errors.Is(h.Delete(created.Data.ID), repository.ErrNotFound))
}

func TestSandboxHandler_Generate(t *testing.T) {
	h := NewSandboxHandler(repository.NewMemoryStore())

	response, err := h.Generate(5)
	assert.NoError(t, err)
	assert.True(t, response.Success)
	assert.Equal(t, 5, response.Count)
	assert.Len(t, response.Data, 5)

	for _, company := range response.Data {
		assert.NotEmpty(t, company.ID)
		assert.NotEmpty(t, company.Name)
		assert.NotEmpty(t, company.CompanyNumber)
		assert.NotEmpty(t, company.JurisdictionCode)
		assert.NotEmpty(t, company.CompanyType)
		assert.NotEmpty(t, company.CurrentStatus)
		_, parseErr := time.Parse("2006-01-02", company.IncorporationDate)
		assert.NoError(t, parseErr)
	}

	list, err := h.List()
	assert.NoError(t, err)
	assert.Equal(t, 5, list.Count)
}
