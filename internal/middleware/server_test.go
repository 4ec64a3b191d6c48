package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"minivutto_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return db
}

// The pool handle backs ordinary requests, but a handle already present in
// the request context wins. The test suite relies on that to route every
// statement through its own transaction.
func TestDBMiddlewarePrefersContextHandle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	poolDB := openTestDB(t, "dbmw_pool")
	txDB := openTestDB(t, "dbmw_tx")

	var seen *gorm.DB
	router := gin.New()
	router.Use(DBMiddleware(poolDB))
	router.GET("/probe", func(c *gin.Context) {
		val, ok := c.Get(string(contextkeys.DBContextKey))
		require.True(t, ok)
		seen = val.(*gorm.DB)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)
	assert.Same(t, poolDB, seen)

	ctx := context.WithValue(context.Background(), contextkeys.DBContextKey, txDB)
	req = httptest.NewRequest(http.MethodGet, "/probe", nil).WithContext(ctx)
	router.ServeHTTP(httptest.NewRecorder(), req)
	assert.Same(t, txDB, seen)
}

func TestRequestIDMiddlewareSetsHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/probe", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
