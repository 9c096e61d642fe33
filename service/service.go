package service

import (
	"github.com/fulldump/studentdb/database"
	"github.com/fulldump/studentdb/query"
	"github.com/fulldump/studentdb/record"
)

type Service struct {
	db *database.Database
}

func NewService(db *database.Database) *Service {
	return &Service{
		db: db,
	}
}

func (s *Service) records() ([]record.Record, error) {
	if s.db.GetStatus() != database.StatusOperating {
		return nil, ErrDatabaseUnavailable
	}
	return s.db.Records()
}

func (s *Service) ListStudents(sortBy string, reverse bool) ([]record.Record, error) {

	var field record.Field
	if sortBy != "" {
		f, err := record.ParseField(sortBy)
		if err != nil {
			return nil, err
		}
		field = f
	}

	records, err := s.records()
	if err != nil {
		return nil, err
	}

	if sortBy == "" {
		return records, nil
	}

	return query.SortBy(records, field, reverse), nil
}

func (s *Service) FindByRange(field string, from, to float64) ([]record.Record, error) {

	f, err := record.ParseField(field)
	if err != nil {
		return nil, err
	}

	records, err := s.records()
	if err != nil {
		return nil, err
	}

	return query.FilterByRange(records, f, from, to), nil
}

func (s *Service) Match(options query.MatchOptions) ([]record.Record, error) {

	records, err := s.records()
	if err != nil {
		return nil, err
	}

	return query.Match(records, options)
}

func (s *Service) Stats() (*Stats, error) {

	records, err := s.records()
	if err != nil {
		return nil, err
	}

	info, err := s.db.Stat()
	if err != nil {
		return nil, err
	}

	return &Stats{
		File:    s.db.Path(),
		Disk:    info,
		Summary: query.Summarize(records),
	}, nil
}
