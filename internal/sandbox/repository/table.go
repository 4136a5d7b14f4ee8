package repository

import (
	"time"

	"gorm.io/gorm"
)

const (
	tableName = "sample_companies"
	createdAt = "CreatedAt"
	updatedAt = "UpdatedAt"
)

type Table struct {
	ID                string `gorm:"primaryKey;size:36"`
	Name              string `gorm:"not null"`
	CompanyNumber     string `gorm:"not null"`
	JurisdictionCode  string `gorm:"not null"`
	CompanyType       string
	CurrentStatus     string
	IncorporationDate string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (Table) TableName() string {
	return tableName
}

func (Table) BeforeCreate(tx *gorm.DB) (err error) {
	tx.Statement.SetColumn(createdAt, time.Now())
	return
}

func (Table) BeforeUpdate(tx *gorm.DB) (err error) {
	tx.Statement.SetColumn(updatedAt, time.Now())
	return
}

func toRecord(company *SampleCompany) Table {
	return Table{
		ID:                company.ID,
		Name:              company.Name,
		CompanyNumber:     company.CompanyNumber,
		JurisdictionCode:  company.JurisdictionCode,
		CompanyType:       company.CompanyType,
		CurrentStatus:     company.CurrentStatus,
		IncorporationDate: company.IncorporationDate,
		CreatedAt:         company.CreatedAt,
		UpdatedAt:         company.UpdatedAt,
	}
}

func toSampleCompany(record Table) SampleCompany {
	return SampleCompany{
		ID:                record.ID,
		Name:              record.Name,
		CompanyNumber:     record.CompanyNumber,
		JurisdictionCode:  record.JurisdictionCode,
		CompanyType:       record.CompanyType,
		CurrentStatus:     record.CurrentStatus,
		IncorporationDate: record.IncorporationDate,
		CreatedAt:         record.CreatedAt,
		UpdatedAt:         record.UpdatedAt,
	}
}
