package service

import (
	"errors"

	"github.com/fulldump/studentdb/query"
	"github.com/fulldump/studentdb/record"
	"github.com/fulldump/studentdb/store"
)

var ErrDatabaseUnavailable = errors.New("database unavailable")

type Servicer interface {
	ListStudents(sortBy string, reverse bool) ([]record.Record, error)
	FindByRange(field string, from, to float64) ([]record.Record, error)
	Match(options query.MatchOptions) ([]record.Record, error)
	Stats() (*Stats, error)
}

type Stats struct {
	File    string        `json:"file"`
	Disk    *store.Info   `json:"disk"`
	Summary query.Summary `json:"summary"`
}
