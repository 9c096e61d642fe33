package store

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// Environment gives f a filename inside a fresh temporary directory.
func Environment(t *testing.T, f func(filename string)) {
	filename := filepath.Join(t.TempDir(), "data", "stu.csv")
	f(filename)
}

func writeFile(filename, content string) {
	os.MkdirAll(filepath.Dir(filename), 0755)
	os.WriteFile(filename, []byte(content), 0666)
}

func newBufferLoader(policy Policy) (*Loader, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return &Loader{
		Policy: policy,
		Logger: slog.New(slog.NewTextHandler(buf, nil)),
	}, buf
}
