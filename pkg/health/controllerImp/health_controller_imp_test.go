package controllerImp

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestHealth(t *testing.T) {
	run := func(t *testing.T, db *gorm.DB) *httptest.ResponseRecorder {
		t.Helper()
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, NewHealthCtrl(db).Health(e.NewContext(req, rec)))
		return rec
	}

	t.Run("healthy database answers 200", func(t *testing.T) {
		db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "h.db")), &gorm.Config{})
		require.NoError(t, err)

		rec := run(t, db)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"ok":true`)
	})

	t.Run("nil database answers 503", func(t *testing.T) {
		rec := run(t, nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
