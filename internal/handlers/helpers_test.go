package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"minivutto_backend/internal/auth"
	"minivutto_backend/internal/handlers"
	"minivutto_backend/internal/middleware"
	"minivutto_backend/internal/models"
	"minivutto_backend/internal/routes"
	"minivutto_backend/internal/services"
	"minivutto_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testJWTSecret = "test-secret-0123456789"

type sentOTP struct {
	To   string
	Code string
}

// mailerStub records dispatched codes instead of talking SMTP, and can be
// told to fail the next send.
type mailerStub struct {
	mu   sync.Mutex
	sent []sentOTP
	fail error
}

func (m *mailerStub) SendOTP(_ context.Context, to, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.sent = append(m.sent, sentOTP{To: to, Code: code})
	return nil
}

func (m *mailerStub) failWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fail = err
}

func (m *mailerStub) lastCode(t *testing.T) string {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	require.NotEmpty(t, m.sent, "no OTP was dispatched")
	return m.sent[len(m.sent)-1].Code
}

func (m *mailerStub) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

// testEnv is a fully wired router backed by a per-test in-memory database.
type testEnv struct {
	t      *testing.T
	router *gin.Engine
	db     *gorm.DB
	tokens *auth.TokenManager
	mailer *mailerStub
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.VerificationToken{},
		&models.Bike{},
	))

	tokens := auth.NewTokenManager(testJWTSecret, time.Hour)
	mailer := &mailerStub{}

	serviceContainer := services.NewServiceContainer(tokens, mailer)
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.DBMiddleware(db))
	routes.RegisterRoutes(router, appHandlers, tokens, serviceContainer.BikeRepo)

	return &testEnv{
		t:      t,
		router: router,
		db:     db,
		tokens: tokens,
		mailer: mailer,
	}
}

func (e *testEnv) request(method, path, token string, body any) *httptest.ResponseRecorder {
	e.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(e.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body: %s", w.Body.String())
	return body
}

func decodeJSONList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var body []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body: %s", w.Body.String())
	return body
}

// createUser inserts a user row directly, bypassing the registration flow.
func (e *testEnv) createUser(emailAddr, password string, role models.UserRole, verified bool) *models.User {
	e.t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(e.t, err)

	user := &models.User{
		Email:        emailAddr,
		PasswordHash: hash,
		Role:         role,
		IsVerified:   verified,
		LastName:     "Tester",
	}
	require.NoError(e.t, e.db.Create(user).Error)
	return user
}

func (e *testEnv) tokenFor(user *models.User) string {
	e.t.Helper()
	token, err := e.tokens.Generate(user.ID, user.Email, string(user.Role))
	require.NoError(e.t, err)
	return token
}

func (e *testEnv) createBike(seller *models.User, brand, model string, year int, price float64) *models.Bike {
	e.t.Helper()

	bike := &models.Bike{
		Brand:            brand,
		Model:            model,
		Year:             year,
		Price:            price,
		KilometersDriven: 12000,
		Location:         "Bengaluru",
		SellerID:         seller.ID,
	}
	require.NoError(e.t, e.db.Create(bike).Error)
	return bike
}

func (e *testEnv) countRows(model any) int64 {
	e.t.Helper()
	var count int64
	require.NoError(e.t, e.db.Model(model).Count(&count).Error)
	return count
}

func bikePayload() map[string]any {
	return map[string]any{
		"brand":             "Honda",
		"model":             "CB350",
		"year":              2021,
		"price":             185000.0,
		"kilometers_driven": 12000,
		"location":          "Bengaluru",
	}
}
