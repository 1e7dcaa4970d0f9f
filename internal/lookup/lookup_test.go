package lookup

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	languages []Entry
	statuses  []Entry
	err       error
}

func (r *fakeRepo) Languages() ([]Entry, error) { return r.languages, r.err }
func (r *fakeRepo) Statuses() ([]Entry, error)  { return r.statuses, r.err }

func doRequest(t *testing.T, handler echo.HandlerFunc, path string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	return rec
}

func TestLanguages(t *testing.T) {
	repo := &fakeRepo{languages: []Entry{{ID: 1, Name: "English"}, {ID: 2, Name: "Spanish"}}}
	h := NewHandler(repo)

	rec := doRequest(t, h.Languages, "/api/languages")
	assert.Equal(t, http.StatusOK, rec.Code)

	var entries []Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	assert.Equal(t, repo.languages, entries)
}

func TestStatusesEmptyTableYieldsEmptyArray(t *testing.T) {
	h := NewHandler(&fakeRepo{})

	rec := doRequest(t, h.Statuses, "/api/statuses")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestLanguagesRepositoryError(t *testing.T) {
	h := NewHandler(&fakeRepo{err: errors.New("connection refused")})

	rec := doRequest(t, h.Languages, "/api/languages")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
