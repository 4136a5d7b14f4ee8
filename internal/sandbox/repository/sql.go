package repository

import (
	"errors"
	"time"

	"github.com/corpscope/corpscope/pkg/infra"
	"github.com/corpscope/corpscope/pkg/metric"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SQLStore persists sample companies in MySQL.
type SQLStore struct {
	db     *gorm.DB
	dbName string
}

func NewSQLStore(connection *infra.SQLConnection) (Repository, error) {
	if connection == nil {
		return nil, errors.New("connection cannot be nil")
	}

	session, err := connection.GetConn()
	if err != nil {
		return nil, err
	}
	meta, err := connection.GetMeta()
	if err != nil {
		return nil, err
	}
	dbName := meta["db_name"].(string)

	return &SQLStore{
		db:     session.(*gorm.DB),
		dbName: dbName,
	}, nil
}

// List retrieves all sample companies ordered by creation time.
func (s *SQLStore) List() ([]SampleCompany, error) {
	tags := dbCallTags(string(infra.DBTypeMySQL), "list")
	metric.Incr(metric.DBCallCount, tags)
	defer metric.TimingWithStart(metric.DBCallLatency, time.Now(), tags)

	var records []Table
	result := s.db.Order("created_at").Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}
	companies := make([]SampleCompany, 0, len(records))
	for _, record := range records {
		companies = append(companies, toSampleCompany(record))
	}
	return companies, nil
}

// GetByID retrieves a sample company by its id.
func (s *SQLStore) GetByID(id string) (*SampleCompany, error) {
	tags := dbCallTags(string(infra.DBTypeMySQL), "get")
	metric.Incr(metric.DBCallCount, tags)
	defer metric.TimingWithStart(metric.DBCallLatency, time.Now(), tags)

	var record Table
	result := s.db.Where("id = ?", id).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	company := toSampleCompany(record)
	return &company, nil
}

// Create adds a new sample company.
func (s *SQLStore) Create(company *SampleCompany) (string, error) {
	tags := dbCallTags(string(infra.DBTypeMySQL), "create")
	metric.Incr(metric.DBCallCount, tags)
	defer metric.TimingWithStart(metric.DBCallLatency, time.Now(), tags)

	if company.ID == "" {
		company.ID = uuid.New().String()
	}
	record := toRecord(company)
	result := s.db.Create(&record)
	if result.Error != nil {
		return "", result.Error
	}
	company.CreatedAt = record.CreatedAt
	company.UpdatedAt = record.UpdatedAt
	return record.ID, nil
}

// Update rewrites the mutable columns of an existing sample company.
func (s *SQLStore) Update(company *SampleCompany) error {
	tags := dbCallTags(string(infra.DBTypeMySQL), "update")
	metric.Incr(metric.DBCallCount, tags)
	defer metric.TimingWithStart(metric.DBCallLatency, time.Now(), tags)

	var existing Table
	if err := s.db.Where("id = ?", company.ID).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Model(&existing).Updates(map[string]interface{}{
		"name":               company.Name,
		"company_number":     company.CompanyNumber,
		"jurisdiction_code":  company.JurisdictionCode,
		"company_type":       company.CompanyType,
		"current_status":     company.CurrentStatus,
		"incorporation_date": company.IncorporationDate,
	}).Error
}

// Delete removes a sample company by its id.
func (s *SQLStore) Delete(id string) error {
	tags := dbCallTags(string(infra.DBTypeMySQL), "delete")
	metric.Incr(metric.DBCallCount, tags)
	defer metric.TimingWithStart(metric.DBCallLatency, time.Now(), tags)

	result := s.db.Where("id = ?", id).Delete(&Table{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
