package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/corpscope/corpscope/pkg/infra"
	"github.com/corpscope/corpscope/pkg/metric"
	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

const (
	scyllaTableName = "sample_companies"

	selectColumns   = "id, name, company_number, jurisdiction_code, company_type, current_status, incorporation_date, created_at, updated_at"
	selectAllQuery  = "SELECT " + selectColumns + " FROM %s.%s"
	selectByIdQuery = "SELECT " + selectColumns + " FROM %s.%s WHERE id = ?"
	insertQuery     = "INSERT INTO %s.%s (" + selectColumns + ") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)"
	updateQuery     = "UPDATE %s.%s SET name = ?, company_number = ?, jurisdiction_code = ?, company_type = ?, current_status = ?, incorporation_date = ?, updated_at = ? WHERE id = ?"
	deleteQuery     = "DELETE FROM %s.%s WHERE id = ?"
)

// ScyllaStore persists sample companies in a Scylla keyspace.
type ScyllaStore struct {
	keySpace string
	session  *gocql.Session
}

func NewScyllaStore(connection *infra.ScyllaClusterConnection) (Repository, error) {
	meta, err := connection.GetMeta()
	if err != nil {
		return nil, err
	}
	keySpace := meta["keyspace"].(string)
	session, err := connection.GetConn()
	if err != nil {
		return nil, err
	}
	return &ScyllaStore{
		keySpace: keySpace,
		session:  session.(*gocql.Session),
	}, nil
}

func (s *ScyllaStore) List() ([]SampleCompany, error) {
	tags := dbCallTags(string(infra.DBTypeScylla), "list")
	metric.Incr(metric.DBCallCount, tags)
	defer metric.TimingWithStart(metric.DBCallLatency, time.Now(), tags)

	query := fmt.Sprintf(selectAllQuery, s.keySpace, scyllaTableName)
	iter := s.session.Query(query).Iter()

	companies := []SampleCompany{}
	var company SampleCompany
	for iter.Scan(&company.ID, &company.Name, &company.CompanyNumber, &company.JurisdictionCode,
		&company.CompanyType, &company.CurrentStatus, &company.IncorporationDate,
		&company.CreatedAt, &company.UpdatedAt) {
		companies = append(companies, company)
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return companies, nil
}

func (s *ScyllaStore) GetByID(id string) (*SampleCompany, error) {
	tags := dbCallTags(string(infra.DBTypeScylla), "get")
	metric.Incr(metric.DBCallCount, tags)
	defer metric.TimingWithStart(metric.DBCallLatency, time.Now(), tags)

	query := fmt.Sprintf(selectByIdQuery, s.keySpace, scyllaTableName)
	var company SampleCompany
	err := s.session.Query(query, id).Scan(&company.ID, &company.Name, &company.CompanyNumber,
		&company.JurisdictionCode, &company.CompanyType, &company.CurrentStatus,
		&company.IncorporationDate, &company.CreatedAt, &company.UpdatedAt)
	if err != nil {
		if errors.Is(err, gocql.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (s *ScyllaStore) Create(company *SampleCompany) (string, error) {
	tags := dbCallTags(string(infra.DBTypeScylla), "create")
	metric.Incr(metric.DBCallCount, tags)
	defer metric.TimingWithStart(metric.DBCallLatency, time.Now(), tags)

	if company.ID == "" {
		company.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	company.CreatedAt = now
	company.UpdatedAt = now
	query := fmt.Sprintf(insertQuery, s.keySpace, scyllaTableName)
	if err := s.session.Query(query, company.ID, company.Name, company.CompanyNumber,
		company.JurisdictionCode, company.CompanyType, company.CurrentStatus,
		company.IncorporationDate, company.CreatedAt, company.UpdatedAt).Exec(); err != nil {
		return "", err
	}
	return company.ID, nil
}

// Update rewrites an existing row. CQL UPDATE inserts missing rows, so
// existence is checked first.
func (s *ScyllaStore) Update(company *SampleCompany) error {
	tags := dbCallTags(string(infra.DBTypeScylla), "update")
	metric.Incr(metric.DBCallCount, tags)
	defer metric.TimingWithStart(metric.DBCallLatency, time.Now(), tags)

	existing, err := s.GetByID(company.ID)
	if err != nil {
		return err
	}
	company.CreatedAt = existing.CreatedAt
	company.UpdatedAt = time.Now().UTC()
	query := fmt.Sprintf(updateQuery, s.keySpace, scyllaTableName)
	return s.session.Query(query, company.Name, company.CompanyNumber, company.JurisdictionCode,
		company.CompanyType, company.CurrentStatus, company.IncorporationDate,
		company.UpdatedAt, company.ID).Exec()
}

// Delete removes a row. CQL DELETE is silent for missing rows, so
// existence is checked first.
func (s *ScyllaStore) Delete(id string) error {
	tags := dbCallTags(string(infra.DBTypeScylla), "delete")
	metric.Incr(metric.DBCallCount, tags)
	defer metric.TimingWithStart(metric.DBCallLatency, time.Now(), tags)

	if _, err := s.GetByID(id); err != nil {
		return err
	}
	query := fmt.Sprintf(deleteQuery, s.keySpace, scyllaTableName)
	return s.session.Query(query, id).Exec()
}
