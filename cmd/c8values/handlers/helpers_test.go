package handlers

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// captureOutput captures stdout during function execution.
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

// writeTemp writes content to name inside a fresh temp dir.
func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

const webModelerAnswers = `products: [Web Modeler]
webmodeler_database: PostgreSQL
webmodeler_db_url: db.internal
webmodeler_db_host: db.internal
webmodeler_db_user: modeler
webmodeler_db_password: s3cret
`
