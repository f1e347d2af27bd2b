package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type settingsJSON struct {
	Theme         string  `json:"theme"`
	BackgroundURL *string `json:"background_url"`
	ShowGreeting  bool    `json:"show_greeting"`
	Columns       int     `json:"columns"`
}

func getSettings(t *testing.T, router http.Handler, uid int64) settingsJSON {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	addAuthCookie(t, req, uid)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	var s settingsJSON
	_ = json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&s)
	return s
}

// Первый GET создаёт запись с дефолтами.
func TestSettings_GetCreatesDefaults(t *testing.T) {
	router, db := newTestRouter(t)
	uid := mustUser(t, db, "fresh")

	s := getSettings(t, router, uid)
	assert.Equal(t, "system", s.Theme)
	assert.Nil(t, s.BackgroundURL)
	assert.True(t, s.ShowGreeting)
	assert.Equal(t, 4, s.Columns)
}

func TestSettings_PartialUpdate(t *testing.T) {
	router, db := newTestRouter(t)
	uid := mustUser(t, db, "themer")
	getSettings(t, router, uid)

	req := httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(`{"theme":"dark"}`))
	req.Header.Set("Content-Type", "application/json")
	addAuthCookie(t, req, uid)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	s := getSettings(t, router, uid)
	assert.Equal(t, "dark", s.Theme)
	// не тронутые поля остаются прежними
	assert.True(t, s.ShowGreeting)
	assert.Equal(t, 4, s.Columns)
}

func TestSettings_InvalidTheme(t *testing.T) {
	router, db := newTestRouter(t)
	uid := mustUser(t, db, "badtheme")

	req := httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(`{"theme":"neon"}`))
	req.Header.Set("Content-Type", "application/json")
	addAuthCookie(t, req, uid)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// Пустой background_url сбрасывает фон в NULL.
func TestSettings_ClearBackground(t *testing.T) {
	router, db := newTestRouter(t)
	uid := mustUser(t, db, "bg")
	getSettings(t, router, uid)

	req := httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(`{"background_url":"https://example.com/bg.png"}`))
	req.Header.Set("Content-Type", "application/json")
	addAuthCookie(t, req, uid)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	s := getSettings(t, router, uid)
	if assert.NotNil(t, s.BackgroundURL) {
		assert.Equal(t, "https://example.com/bg.png", *s.BackgroundURL)
	}

	req = httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(`{"background_url":""}`))
	req.Header.Set("Content-Type", "application/json")
	addAuthCookie(t, req, uid)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Nil(t, getSettings(t, router, uid).BackgroundURL)
}
