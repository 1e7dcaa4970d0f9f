package song

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/lingobeats/song-catalogue/pkg/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	nextID     int
	songs      map[int]*Song
	favourites map[[2]int]bool
	languages  map[int]string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		songs:      map[int]*Song{},
		favourites: map[[2]int]bool{},
		languages:  map[int]string{1: "English", 2: "Spanish"},
	}
}

func (r *fakeRepo) Create(s *Song) error {
	r.nextID++
	s.ID = r.nextID
	copied := *s
	r.songs[s.ID] = &copied
	return nil
}

func (r *fakeRepo) Update(id int, s *Song) (bool, error) {
	if _, ok := r.songs[id]; !ok {
		return false, nil
	}
	copied := *s
	copied.ID = id
	r.songs[id] = &copied
	return true, nil
}

func (r *fakeRepo) Delete(id int) (bool, error) {
	if _, ok := r.songs[id]; !ok {
		return false, nil
	}
	delete(r.songs, id)
	return true, nil
}

func (r *fakeRepo) List(f Filter) ([]ListItem, error) {
	var items []ListItem
	for _, s := range r.songs {
		if f.LanguageID != 0 && s.LanguageID != f.LanguageID {
			continue
		}
		if f.Search != "" {
			needle := strings.ToLower(f.Search)
			if !strings.Contains(strings.ToLower(s.Title), needle) &&
				!strings.Contains(strings.ToLower(s.Artist), needle) {
				continue
			}
		}
		item := ListItem{ID: s.ID, Title: s.Title, Artist: s.Artist, VideoURL: s.VideoURL, Language: r.languages[s.LanguageID]}
		if f.UserID != 0 {
			isFavourite := r.favourites[[2]int{f.UserID, s.ID}]
			item.IsFavourite = &isFavourite
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *fakeRepo) GetByID(id int) (*Detail, error) {
	s, ok := r.songs[id]
	if !ok {
		return nil, nil
	}
	return &Detail{
		ID:           s.ID,
		Title:        s.Title,
		Artist:       s.Artist,
		Lyrics:       s.Lyrics,
		Translation:  s.Translation,
		VideoURL:     s.VideoURL,
		LanguageID:   s.LanguageID,
		LanguageName: r.languages[s.LanguageID],
	}, nil
}

func (r *fakeRepo) Exists(id int) (bool, error) {
	_, ok := r.songs[id]
	return ok, nil
}

func newTestHandler() (*Handler, *fakeRepo) {
	repo := newFakeRepo()
	return NewHandler(NewService(repo), nil), repo
}

func doRequest(t *testing.T, handler echo.HandlerFunc, method, path, body string, params map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if len(params) > 0 {
		names := make([]string, 0, len(params))
		values := make([]string, 0, len(params))
		for name, value := range params {
			names = append(names, name)
			values = append(values, value)
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	require.NoError(t, handler(c))
	return rec
}

func addSong(t *testing.T, repo *fakeRepo, title, artist string, languageID int) int {
	t.Helper()
	s := &Song{Title: title, Artist: artist, Lyrics: "la", Translation: "la", VideoURL: "youtu.be/kJQP7kiw5Fk", LanguageID: languageID}
	require.NoError(t, repo.Create(s))
	return s.ID
}

func TestCreateSongReturnsID(t *testing.T) {
	h, repo := newTestHandler()

	body := `{"title":"Despacito","artist":"Luis Fonsi","lyrics":"...","translation":"...","videoUrl":"youtu.be/kJQP7kiw5Fk","languageId":2}`
	rec := doRequest(t, h.CreateSong, http.MethodPost, "/api/songs", body, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp["id"])
	assert.Len(t, repo.songs, 1)
}

func TestCreateSongCollectsValidationErrors(t *testing.T) {
	h, _ := newTestHandler()

	rec := doRequest(t, h.CreateSong, http.MethodPost, "/api/songs", `{"videoUrl":"https://vimeo.com/123456789"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "Title is required.")
	assert.Contains(t, resp.Errors, "Video URL is not valid.")
}

func TestUpdateSongNotFound(t *testing.T) {
	h, _ := newTestHandler()

	body := `{"title":"T","artist":"A","lyrics":"L","translation":"Tr","videoUrl":"youtu.be/kJQP7kiw5Fk","languageId":1}`
	rec := doRequest(t, h.UpdateSong, http.MethodPut, "/api/songs/9", body, map[string]string{"id": "9"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Song not found", resp["error"])
}

func TestDeleteSongNotFoundLeavesStoreUnchanged(t *testing.T) {
	h, repo := newTestHandler()
	addSong(t, repo, "Hello World", "Adele", 1)

	rec := doRequest(t, h.DeleteSong, http.MethodDelete, "/api/songs/9", "", map[string]string{"id": "9"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Len(t, repo.songs, 1)
}

func TestGetSongDetail(t *testing.T) {
	h, repo := newTestHandler()
	id := addSong(t, repo, "Hello World", "Adele", 1)

	rec := doRequest(t, h.GetSong, http.MethodGet, "/api/songs/1", "", map[string]string{"id": "1"})
	assert.Equal(t, http.StatusOK, rec.Code)

	var detail Detail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, id, detail.ID)
	assert.Equal(t, "Hello World", detail.Title)
	assert.Equal(t, "English", detail.LanguageName)
}

func TestGetSongNotFound(t *testing.T) {
	h, _ := newTestHandler()

	rec := doRequest(t, h.GetSong, http.MethodGet, "/api/songs/9", "", map[string]string{"id": "9"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListSongsSearchIsCaseInsensitiveSubstring(t *testing.T) {
	h, repo := newTestHandler()
	addSong(t, repo, "Hello World", "Adele", 1)
	addSong(t, repo, "Vivir Mi Vida", "Marc Anthony", 2)

	for _, term := range []string{"hello", "WORLD", "lo wo"} {
		rec := doRequest(t, h.ListSongs, http.MethodGet, "/api/songs?search="+strings.ReplaceAll(term, " ", "%20"), "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var items []ListItem
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
		require.Len(t, items, 1, "search %q", term)
		assert.Equal(t, "Hello World", items[0].Title)
	}
}

func TestListSongsLanguageFilter(t *testing.T) {
	h, repo := newTestHandler()
	addSong(t, repo, "Hello World", "Adele", 1)
	addSong(t, repo, "Vivir Mi Vida", "Marc Anthony", 2)

	rec := doRequest(t, h.ListSongs, http.MethodGet, "/api/songs?language=2", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var items []ListItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Vivir Mi Vida", items[0].Title)
}

func TestListSongsAnonymousHasNoFavouriteFlag(t *testing.T) {
	h, repo := newTestHandler()
	addSong(t, repo, "Hello World", "Adele", 1)

	rec := doRequest(t, h.ListSongs, http.MethodGet, "/api/songs", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "isFavourite")
}

func TestListSongsWithTokenCarriesFavouriteFlag(t *testing.T) {
	repo := newFakeRepo()
	h := NewHandler(NewService(repo), nil)
	favouriteID := addSong(t, repo, "Hello World", "Adele", 1)
	addSong(t, repo, "Vivir Mi Vida", "Marc Anthony", 2)
	repo.favourites[[2]int{7, favouriteID}] = true

	tokens := auth.NewTokenManager("secret", "reset")
	token, err := tokens.Generate(7, "x@y.com", "x", 1, 2)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/songs", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler := tokens.OptionalIdentity(h.ListSongs)
	require.NoError(t, handler(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	var items []ListItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 2)
	require.NotNil(t, items[0].IsFavourite)
	require.NotNil(t, items[1].IsFavourite)
	assert.True(t, *items[0].IsFavourite)
	assert.False(t, *items[1].IsFavourite)
}

func TestListSongsInvalidTokenSkipsPersonalisationOnly(t *testing.T) {
	h, repo := newTestHandler()
	addSong(t, repo, "Hello World", "Adele", 1)

	tokens := auth.NewTokenManager("secret", "reset")
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/songs", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	handler := tokens.OptionalIdentity(h.ListSongs)
	require.NoError(t, handler(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "isFavourite")
}
