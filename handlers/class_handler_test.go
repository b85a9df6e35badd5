package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wsulistia/kelasku/database"
)

func TestEnterClassChecksCodeExactly(t *testing.T) {
	app := setupApp(t)
	teacher := registerAndLogin(t, app, "t1", "Bu Rina", "teacher", "guru-pass")
	student := registerAndLogin(t, app, "s1", "Sari", "student", "murid-pass")
	classID := createClass(t, app, teacher, "Kelas 7A", "KLS2025")

	cases := []struct {
		name     string
		code     string
		wantCode int
	}{
		{"correct code", "KLS2025", http.StatusOK},
		{"wrong case", "kls2025", http.StatusForbidden},
		{"trailing space", "KLS2025 ", http.StatusForbidden},
		{"empty code", "", http.StatusForbidden},
		{"wrong code", "BIO1", http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, "/api/v1/classes/"+classID+"/enter", student, map[string]interface{}{
				"access_code": tc.code,
			})
			assert.Equal(t, tc.wantCode, resp.StatusCode)
		})
	}
}

func TestEnterClassWithEmptyBodyIsDenied(t *testing.T) {
	app := setupApp(t)
	teacher := registerAndLogin(t, app, "t1", "Bu Rina", "teacher", "guru-pass")
	student := registerAndLogin(t, app, "s1", "Sari", "student", "murid-pass")
	classID := createClass(t, app, teacher, "Kelas 7A", "KLS2025")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/classes/"+classID+"/enter", student, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestEnterUnknownClass(t *testing.T) {
	app := setupApp(t)
	student := registerAndLogin(t, app, "s1", "Sari", "student", "murid-pass")

	// a malformed id and a well-formed id with no row both read as absent
	for _, id := range []string{"does-not-exist", uuid.NewString()} {
		resp := doJSON(t, app, http.MethodPost, "/api/v1/classes/"+id+"/enter", student, map[string]interface{}{
			"access_code": "KLS2025",
		})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, "class id %q", id)
	}
}

func TestStoreFailureSurfacesAsUnavailable(t *testing.T) {
	app := setupApp(t)
	teacher := registerAndLogin(t, app, "t1", "Bu Rina", "teacher", "guru-pass")
	classID := createClass(t, app, teacher, "Kelas 7A", "KLS2025")

	sqlDB, err := database.DB.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	resp := doJSON(t, app, http.MethodPost, "/api/v1/classes/"+classID+"/enter", teacher, map[string]interface{}{
		"access_code": "KLS2025",
	})
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/me", teacher, nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestCreateClassRequiresTeacherRole(t *testing.T) {
	app := setupApp(t)
	student := registerAndLogin(t, app, "s1", "Sari", "student", "murid-pass")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/classes", student, map[string]interface{}{
		"name":        "Kelas 7A",
		"access_code": "KLS2025",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestCreateClassGeneratesCodeWhenOmitted(t *testing.T) {
	app := setupApp(t)
	teacher := registerAndLogin(t, app, "t1", "Bu Rina", "teacher", "guru-pass")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/classes", teacher, map[string]interface{}{
		"name": "Kelas 8B",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		AccessCode string `json:"access_code"`
	}
	decodeJSON(t, resp, &created)
	require.Len(t, created.AccessCode, 8)
	for _, r := range created.AccessCode {
		assert.True(t, strings.ContainsRune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789", r), "unexpected rune %q", r)
	}
}

func TestCreateClassRejectsBlankName(t *testing.T) {
	app := setupApp(t)
	teacher := registerAndLogin(t, app, "t1", "Bu Rina", "teacher", "guru-pass")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/classes", teacher, map[string]interface{}{
		"name": "   ",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListClassesHidesAccessCodes(t *testing.T) {
	app := setupApp(t)
	teacher := registerAndLogin(t, app, "t1", "Bu Rina", "teacher", "guru-pass")
	student := registerAndLogin(t, app, "s1", "Sari", "student", "murid-pass")
	createClass(t, app, teacher, "Kelas 7A", "KLS2025")
	createClass(t, app, teacher, "Kelas 8B", "KLS2026")

	resp := doJSON(t, app, http.MethodGet, "/api/v1/classes", student, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var classes []map[string]interface{}
	decodeJSON(t, resp, &classes)
	require.Len(t, classes, 2)
	for _, class := range classes {
		assert.NotContains(t, class, "access_code")
		assert.NotEmpty(t, class["name"])
	}
}
