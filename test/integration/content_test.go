package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	_ "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/atelierweb/sitecms/internal/config"
	"github.com/atelierweb/sitecms/internal/handlers"
	"github.com/atelierweb/sitecms/internal/models"
	"github.com/atelierweb/sitecms/internal/repositories"
	"github.com/atelierweb/sitecms/internal/services"
)

var (
	testDB     *sql.DB
	testRouter chi.Router
	testLogger *zap.Logger
)

// cleanupContentData removes all settings and sections between tests
func cleanupContentData(t *testing.T, db *sql.DB) {
	t.Helper()
	_, err := db.Exec("DELETE FROM settings")
	require.NoError(t, err, "Failed to clear settings")
	_, err = db.Exec("DELETE FROM content_sections")
	require.NoError(t, err, "Failed to clear content sections")
}

// dropContentTables removes the lazily-created tables so a test can
// exercise schema bootstrap from a cold database
func dropContentTables(t *testing.T, db *sql.DB) {
	t.Helper()
	for _, table := range []string{"settings", "content_sections", "media_assets"} {
		_, err := db.Exec("DROP TABLE IF EXISTS " + table)
		require.NoError(t, err, "Failed to drop table %s", table)
	}
}

// setupTestRouter creates a test router with the settings and content handlers.
// Admin routes are registered without auth middleware so tests can write directly.
func setupTestRouter(db *sql.DB, logger *zap.Logger) chi.Router {
	settingsRepo := repositories.NewSettingsRepository(db)
	settingsSvc := services.NewSettingsService(settingsRepo)
	settingsHandler := handlers.NewSettingsHandler(settingsSvc, logger)

	contentRepo := repositories.NewContentSectionRepository(db)
	contentSvc := services.NewContentService(contentRepo)
	contentHandler := handlers.NewContentHandler(contentSvc, logger)

	r := chi.NewRouter()
	settingsHandler.RegisterPublicRoutes(r)
	settingsHandler.RegisterAdminRoutes(r)
	contentHandler.RegisterPublicRoutes(r)
	contentHandler.RegisterAdminRoutes(r)

	return r
}

// TestMain sets up and tears down the test environment
func TestMain(m *testing.M) {
	var err error
	testLogger, err = zap.NewDevelopment()
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	cfg, err := config.LoadTestConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load test config: %v", err))
	}
	dsn := cfg.DSN()
	if cfg.Database.Host == "" {
		// Default test database connection
		dsn = "root:password@tcp(localhost:3306)/sitecms_test?parseTime=true&charset=utf8mb4"
	}

	testDB, err = sql.Open("mysql", dsn)
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to test database: %v", err))
	}

	if err = testDB.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to ping test database: %v", err))
	}

	// The content tables are created lazily on first use; creating them
	// here keeps individual tests independent of execution order.
	if err = repositories.EnsureContentSchema(context.Background(), testDB); err != nil {
		panic(fmt.Sprintf("Failed to create test schema: %v", err))
	}

	testRouter = setupTestRouter(testDB, testLogger)

	code := m.Run()

	if testDB != nil {
		testDB.Close()
	}
	os.Exit(code)
}

func TestIntegration_LazySchemaBootstrap(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	dropContentTables(t, testDB)

	// First read against a cold database must create the tables and
	// return an empty list rather than a missing-table error
	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	rec := httptest.NewRecorder()
	testRouter.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var settings []models.Setting
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&settings))
	assert.Empty(t, settings)

	// All three tables exist afterwards, including the one the request
	// never touched
	for _, table := range []string{"settings", "content_sections", "media_assets"} {
		var name string
		err := testDB.QueryRow("SHOW TABLES LIKE '" + table + "'").Scan(&name)
		require.NoError(t, err, "table %s was not created", table)
		assert.Equal(t, table, name)
	}
}

func TestIntegration_SettingsUpsertAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	cleanupContentData(t, testDB)
	defer cleanupContentData(t, testDB)

	// Create
	body := `{"key": "site_title", "value": "Atelier Web", "category": "branding"}`
	req := httptest.NewRequest(http.MethodPut, "/settings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	testRouter.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	// Read back by key
	req = httptest.NewRequest(http.MethodGet, "/settings?key=site_title", nil)
	rec = httptest.NewRecorder()
	testRouter.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var setting models.Setting
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&setting))
	assert.Equal(t, "Atelier Web", setting.Value)
	assert.Equal(t, "branding", setting.Category)
	assert.Equal(t, models.SettingTypeText, setting.Type, "type defaults to text")

	// Update overwrites the value in place
	body = `{"key": "site_title", "value": "Atelier Web Studio"}`
	req = httptest.NewRequest(http.MethodPut, "/settings", strings.NewReader(body))
	rec = httptest.NewRecorder()
	testRouter.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var count int
	require.NoError(t, testDB.QueryRow("SELECT COUNT(*) FROM settings").Scan(&count))
	assert.Equal(t, 1, count, "upsert must not create a second row")

	req = httptest.NewRequest(http.MethodGet, "/settings?key=site_title", nil)
	rec = httptest.NewRecorder()
	testRouter.ServeHTTP(rec, req)

	require.NoError(t, json.NewDecoder(rec.Body).Decode(&setting))
	assert.Equal(t, "Atelier Web Studio", setting.Value)
}

func TestIntegration_SettingsBulkUpsert(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	cleanupContentData(t, testDB)
	defer cleanupContentData(t, testDB)

	body := `{"settings": [
		{"key": "site_title", "value": "Atelier Web"},
		{"key": "contact_email", "value": "hello@atelierweb.example", "category": "contact"},
		{"key": "", "value": "no key"}
	]}`
	req := httptest.NewRequest(http.MethodPut, "/settings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	testRouter.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.BulkUpsertResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 2, resp.Updated)
	assert.Equal(t, []string{""}, resp.Failed)

	// Category filter only returns the matching rows
	req = httptest.NewRequest(http.MethodGet, "/settings?category=contact", nil)
	rec = httptest.NewRecorder()
	testRouter.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var settings []models.Setting
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&settings))
	require.Len(t, settings, 1)
	assert.Equal(t, "contact_email", settings[0].Key)
}

func TestIntegration_ContentSectionLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	cleanupContentData(t, testDB)
	defer cleanupContentData(t, testDB)

	// Create on an explicit page
	body := `{"key": "about_intro", "content": "We build things.", "page": "about", "section_name": "Intro", "display_order": 3}`
	req := httptest.NewRequest(http.MethodPut, "/content", strings.NewReader(body))
	rec := httptest.NewRecorder()
	testRouter.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var section models.ContentSection
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&section))
	assert.Equal(t, "about", section.Page)
	assert.Equal(t, 3, section.DisplayOrder)

	// A later upsert with a different page does not move the section
	body = `{"key": "about_intro", "content": "Updated copy.", "page": "home"}`
	req = httptest.NewRequest(http.MethodPut, "/content", strings.NewReader(body))
	rec = httptest.NewRecorder()
	testRouter.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&section))
	assert.Equal(t, "about", section.Page, "page assignment is fixed at creation")
	assert.Equal(t, "Updated copy.", section.Content)
	assert.Equal(t, 3, section.DisplayOrder, "omitted display order keeps the stored value")

	// Clear deactivates but keeps the row
	req = httptest.NewRequest(http.MethodDelete, "/content/about_intro", nil)
	rec = httptest.NewRecorder()
	testRouter.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)

	var content string
	err := testDB.QueryRow("SELECT content FROM content_sections WHERE section_key = ?", "about_intro").Scan(&content)
	require.NoError(t, err)
	assert.Empty(t, content)

	// Permanent delete removes the row
	req = httptest.NewRequest(http.MethodDelete, "/content/about_intro?permanent=true", nil)
	rec = httptest.NewRecorder()
	testRouter.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)

	var count int
	require.NoError(t, testDB.QueryRow("SELECT COUNT(*) FROM content_sections").Scan(&count))
	assert.Zero(t, count)

	// Deleting again reports not found
	req = httptest.NewRequest(http.MethodDelete, "/content/about_intro?permanent=true", nil)
	rec = httptest.NewRecorder()
	testRouter.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIntegration_ContentListByPage(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	cleanupContentData(t, testDB)
	defer cleanupContentData(t, testDB)

	body := `{"sections": [
		{"key": "hero_text", "content": "<h1>Welcome</h1>", "display_order": 2},
		{"key": "hero_subtitle", "content": "We build websites.", "display_order": 1},
		{"key": "about_intro", "content": "About us.", "page": "about"}
	]}`
	req := httptest.NewRequest(http.MethodPut, "/content", strings.NewReader(body))
	rec := httptest.NewRecorder()
	testRouter.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	// Page filter returns only that page, ordered by display_order
	req = httptest.NewRequest(http.MethodGet, "/content?page=home", nil)
	rec = httptest.NewRecorder()
	testRouter.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var sections []models.ContentSection
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&sections))
	require.Len(t, sections, 2)
	assert.Equal(t, "hero_subtitle", sections[0].Key)
	assert.Equal(t, "hero_text", sections[1].Key)

	// No filter returns everything
	req = httptest.NewRequest(http.MethodGet, "/content", nil)
	rec = httptest.NewRecorder()
	testRouter.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&sections))
	assert.Len(t, sections, 3)
}
