package local_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pazarlabs/pazar/internal/infrastructure/storage/local"
	"github.com/pazarlabs/pazar/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	testCases := []struct {
		Name     string
		Input    string
		Expected string
	}{
		{Name: "plain name", Input: "chair.png", Expected: "chair.png"},
		{Name: "spaces become underscores", Input: "my chair.png", Expected: "my_chair.png"},
		{Name: "path traversal stripped", Input: "../../etc/passwd", Expected: "passwd"},
		{Name: "windows separators stripped", Input: "..\\..\\boot.ini", Expected: "boot.ini"},
		{Name: "unsafe characters removed", Input: "ch@ir?*.png", Expected: "chir.png"},
		{Name: "leading dots trimmed", Input: ".hidden", Expected: "hidden"},
		{Name: "nothing left", Input: "../..", Expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, local.SanitizeFilename(tc.Input))
		})
	}
}

func TestPutStoresFileAndReturnsServedPath(t *testing.T) {
	dir := t.TempDir()
	storage, err := local.CreateNewStorage(dir)
	require.NoError(t, err)

	served, err := storage.Put("my chair.png", strings.NewReader("binary"))
	require.NoError(t, err)

	assert.Equal(t, "/static/uploads/my_chair.png", served)

	raw, err := os.ReadFile(filepath.Join(dir, "my_chair.png"))
	require.NoError(t, err)
	assert.Equal(t, "binary", string(raw))
}

func TestPutRejectsEmptySanitizedName(t *testing.T) {
	storage, err := local.CreateNewStorage(t.TempDir())
	require.NoError(t, err)

	_, err = storage.Put("../..", strings.NewReader("binary"))

	assert.ErrorIs(t, err, errs.ErrClient)
}
