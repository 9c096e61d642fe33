package database

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fulldump/biff"

	"github.com/fulldump/studentdb/record"
)

func TestDatabase(t *testing.T) {

	biff.Alternative("New database", func(a *biff.A) {

		dir := filepath.Join(t.TempDir(), "data")
		db := NewDatabase(&Config{Dir: dir})
		biff.AssertEqual(db.GetStatus(), StatusOpening)
		biff.AssertEqual(db.Path(), filepath.Join(dir, DefaultFilename))

		a.Alternative("Load", func(a *biff.A) {
			biff.AssertNil(db.Load())
			biff.AssertEqual(db.GetStatus(), StatusOperating)

			content, err := os.ReadFile(db.Path())
			biff.AssertNil(err)
			biff.AssertEqual(string(content), record.Header+"\n")

			records, err := db.Records()
			biff.AssertNil(err)
			biff.AssertEqual(len(records), 0)

			a.Alternative("Records reflect the file on every call", func(a *biff.A) {
				f, _ := os.OpenFile(db.Path(), os.O_APPEND|os.O_WRONLY, 0666)
				f.WriteString("1,Alice,F,20,88.5,91.0,76.0\n")
				f.Close()

				records, err := db.Records()
				biff.AssertNil(err)
				biff.AssertEqual(len(records), 1)
				biff.AssertEqual(records[0].Name, "Alice")

				info, err := db.Stat()
				biff.AssertNil(err)
				biff.AssertEqual(info.Size, int64(len(content))+28)
			})
		})

		a.Alternative("Start and stop", func(a *biff.A) {
			done := make(chan error)
			go func() {
				done <- db.Start()
			}()

			for i := 0; i < 100 && db.GetStatus() != StatusOperating; i++ {
				time.Sleep(10 * time.Millisecond)
			}
			biff.AssertEqual(db.GetStatus(), StatusOperating)

			biff.AssertNil(db.Stop())
			biff.AssertNil(db.Stop())
			biff.AssertNil(<-done)
			biff.AssertEqual(db.GetStatus(), StatusClosing)
		})
	})
}

func TestDatabase_LoadError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "data")
	os.WriteFile(blocker, []byte("file"), 0666)

	db := NewDatabase(&Config{Dir: blocker})
	biff.AssertNotNil(db.Load())
	biff.AssertEqual(db.GetStatus(), StatusClosing)
}
