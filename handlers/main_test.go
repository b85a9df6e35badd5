package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/wsulistia/kelasku/database"
	"github.com/wsulistia/kelasku/models"
	"github.com/wsulistia/kelasku/routes"
	"github.com/wsulistia/kelasku/storage"
)

// setupApp wires a fresh app against a throwaway SQLite file and a local
// upload dir. Tests share nothing; every call starts from an empty store.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "kelasku_test.db")), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Class{},
		&models.Material{},
		&models.AttendanceRecord{},
		&models.Notification{},
		&models.ForumPost{},
		&models.Test{},
		&models.Question{},
		&models.Attempt{},
		&models.Answer{},
	))
	database.DB = db

	files, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	storage.Files = files

	app := fiber.New(fiber.Config{CaseSensitive: true, StrictRouting: true})
	routes.AuthRoutes(app)
	routes.ClassRoutes(app)
	routes.MaterialRoutes(app)
	routes.AttendanceRoutes(app)
	routes.ForumRoutes(app)
	routes.NotificationRoutes(app)
	routes.TestRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func doMultipart(t *testing.T, app *fiber.App, path, token string, fields map[string]string, fileName string, fileContent []byte) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if fileName != "" {
		part, err := writer.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = part.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v), "body: %s", data)
}

// registerAndLogin creates a user through the API and returns a usable
// bearer token.
func registerAndLogin(t *testing.T, app *fiber.App, username, displayName, role, password string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"username":     username,
		"display_name": displayName,
		"role":         role,
		"password":     password,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
	}
	decodeJSON(t, resp, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}

func createClass(t *testing.T, app *fiber.App, token, name, accessCode string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/v1/classes", token, map[string]interface{}{
		"name":        name,
		"access_code": accessCode,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &body)
	require.NotEmpty(t, body.ID)
	return body.ID
}

func createTest(t *testing.T, app *fiber.App, token, classID, title string, isPretest bool) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/v1/classes/"+classID+"/tests", token, map[string]interface{}{
		"title":      title,
		"is_pretest": isPretest,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &body)
	require.NotEmpty(t, body.ID)
	return body.ID
}

func addQuestion(t *testing.T, app *fiber.App, token, testID, text, correct string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/v1/tests/"+testID+"/questions", token, map[string]interface{}{
		"text":           text,
		"option_a":       "option a",
		"option_b":       "option b",
		"option_c":       "option c",
		"option_d":       "option d",
		"option_e":       "option e",
		"correct_option": correct,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &body)
	require.NotEmpty(t, body.ID)
	return body.ID
}
