package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wsulistia/kelasku/database"
	"github.com/wsulistia/kelasku/models"
)

func TestRecordAndListAttendance(t *testing.T) {
	app := setupApp(t)
	teacher := registerAndLogin(t, app, "t1", "Bu Rina", "teacher", "guru-pass")
	student := registerAndLogin(t, app, "s1", "Sari", "student", "murid-pass")
	classID := createClass(t, app, teacher, "Kelas 7A", "KLS2025")
	path := "/api/v1/classes/" + classID + "/attendance"

	resp := doJSON(t, app, http.MethodPost, path, student, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// a second tap is a second row, not an update
	resp = doJSON(t, app, http.MethodPost, path, student, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, path, teacher, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var entries []struct {
		DisplayName string    `json:"display_name"`
		Timestamp   time.Time `json:"timestamp"`
	}
	decodeJSON(t, resp, &entries)
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, "Sari", entry.DisplayName)
		assert.False(t, entry.Timestamp.IsZero())
	}
	assert.False(t, entries[0].Timestamp.Before(entries[1].Timestamp))
}

func TestListAttendanceIsBounded(t *testing.T) {
	app := setupApp(t)
	teacher := registerAndLogin(t, app, "t1", "Bu Rina", "teacher", "guru-pass")
	registerAndLogin(t, app, "s1", "Sari", "student", "murid-pass")
	classID := createClass(t, app, teacher, "Kelas 7A", "KLS2025")

	var user models.User
	require.NoError(t, database.DB.First(&user, "username = ?", "s1").Error)
	classUUID, err := uuid.Parse(classID)
	require.NoError(t, err)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 25; i++ {
		record := models.AttendanceRecord{
			ClassID:   classUUID,
			UserID:    user.ID,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, database.DB.Create(&record).Error)
	}

	path := "/api/v1/classes/" + classID + "/attendance"

	var entries []struct {
		Timestamp time.Time `json:"timestamp"`
	}

	resp := doJSON(t, app, http.MethodGet, path, teacher, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &entries)
	assert.Len(t, entries, 20)

	resp = doJSON(t, app, http.MethodGet, path+"?limit=5", teacher, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &entries)
	require.Len(t, entries, 5)
	// newest of the seeded rows comes back first
	assert.WithinDuration(t, base.Add(24*time.Minute), entries[0].Timestamp, time.Second)
}

func TestRecordAttendanceUnknownClass(t *testing.T) {
	app := setupApp(t)
	student := registerAndLogin(t, app, "s1", "Sari", "student", "murid-pass")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/classes/"+uuid.NewString()+"/attendance", student, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
