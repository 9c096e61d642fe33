package database

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fulldump/studentdb/record"
	"github.com/fulldump/studentdb/store"
)

const (
	StatusOpening   = "opening"
	StatusOperating = "operating"
	StatusClosing   = "closing"
)

const DefaultFilename = "stu.csv"

type Config struct {
	Dir      string
	Filename string
	Policy   store.Policy
	Logger   *slog.Logger
}

// Database points to one backing file. It keeps no records in memory: every
// read is a fresh load.
type Database struct {
	Config     *Config
	status     string
	statusLock sync.RWMutex
	exit       chan struct{}
	stopOnce   sync.Once
}

func NewDatabase(config *Config) *Database {
	return &Database{
		Config: config,
		status: StatusOpening,
		exit:   make(chan struct{}),
	}
}

func (db *Database) GetStatus() string {
	db.statusLock.RLock()
	defer db.statusLock.RUnlock()
	return db.status
}

func (db *Database) setStatus(status string) {
	db.statusLock.Lock()
	db.status = status
	db.statusLock.Unlock()
}

// Path is the backing file location.
func (db *Database) Path() string {
	filename := db.Config.Filename
	if filename == "" {
		filename = DefaultFilename
	}
	return filepath.Join(db.Config.Dir, filename)
}

func (db *Database) logger() *slog.Logger {
	if db.Config.Logger == nil {
		return slog.Default()
	}
	return db.Config.Logger
}

// Load creates the backing file if needed and switches to operating.
func (db *Database) Load() error {

	filename := db.Path()
	db.logger().Info("opening database", "file", filename)

	created, err := store.Initialize(filename)
	if err != nil {
		db.setStatus(StatusClosing)
		return fmt.Errorf("initialize: %w", err)
	}
	if created {
		db.logger().Info("created new student data file", "file", filename)
	}

	info, err := store.Stat(filename)
	if err == nil {
		db.logger().Info("file size", "file", filename, "bytes", info.Size)
	}

	db.setStatus(StatusOperating)

	return nil
}

// Records loads the backing file.
func (db *Database) Records() ([]record.Record, error) {
	loader := &store.Loader{
		Policy: db.Config.Policy,
		Logger: db.logger(),
	}
	return loader.LoadAll(db.Path())
}

func (db *Database) Stat() (*store.Info, error) {
	return store.Stat(db.Path())
}

func (db *Database) Start() error {

	err := db.Load()
	if err != nil {
		return err
	}

	<-db.exit

	return nil
}

func (db *Database) Stop() error {
	db.stopOnce.Do(func() {
		db.setStatus(StatusClosing)
		close(db.exit)
	})
	return nil
}
