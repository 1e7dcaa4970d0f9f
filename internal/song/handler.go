package song

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/lingobeats/song-catalogue/pkg/auth"

	"github.com/labstack/echo/v4"
)

// CoverStorage holds song cover images. Satisfied by storage.MinioStorage.
type CoverStorage interface {
	PutFile(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) error
	GetFile(ctx context.Context, objectName string) (io.ReadCloser, error)
}

type Handler struct {
	service *Service
	covers  CoverStorage
}

func NewHandler(service *Service, covers CoverStorage) *Handler {
	return &Handler{service: service, covers: covers}
}

func (h *Handler) CreateSong(c echo.Context) error {
	var req Request
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body."})
	}

	if validationErrors := Validate(req); len(validationErrors) > 0 {
		return c.JSON(http.StatusBadRequest, map[string][]string{"errors": validationErrors})
	}

	id, err := h.service.CreateSong(req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]int{"id": id})
}

func (h *Handler) UpdateSong(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid song id."})
	}

	var req Request
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body."})
	}

	if validationErrors := Validate(req); len(validationErrors) > 0 {
		return c.JSON(http.StatusBadRequest, map[string][]string{"errors": validationErrors})
	}

	if err := h.service.UpdateSong(id, req); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Song not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Song updated successfully"})
}

func (h *Handler) DeleteSong(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid song id."})
	}

	if err := h.service.DeleteSong(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Song not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Song deleted successfully"})
}

// ListSongs is public. A valid bearer token only adds the per-song
// favourite flag; a missing or bad token never fails the request.
func (h *Handler) ListSongs(c echo.Context) error {
	f := Filter{Search: c.QueryParam("search")}

	if language := c.QueryParam("language"); language != "" {
		languageID, err := strconv.Atoi(language)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid language filter."})
		}
		f.LanguageID = languageID
	}

	if claims := auth.ClaimsFrom(c); claims != nil {
		f.UserID = claims.ID
	}

	songs, err := h.service.ListSongs(f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if songs == nil {
		songs = []ListItem{}
	}
	return c.JSON(http.StatusOK, songs)
}

func (h *Handler) GetSong(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid song id."})
	}

	detail, err := h.service.GetSong(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Song not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, detail)
}

// UploadCover stores cover art for an existing song. Admin-only.
func (h *Handler) UploadCover(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid song id."})
	}

	exists, err := h.service.SongExists(id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if !exists {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Song not found"})
	}

	file, err := c.FormFile("cover")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Cover file is required."})
	}

	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if err := h.covers.PutFile(c.Request().Context(), coverObjectName(id), src, file.Size, contentType); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Cover uploaded successfully"})
}

// GetCover streams the stored cover art.
func (h *Handler) GetCover(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid song id."})
	}

	obj, err := h.covers.GetFile(c.Request().Context(), coverObjectName(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Cover not found"})
	}
	defer obj.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, obj); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Cover not found"})
	}

	return c.Blob(http.StatusOK, http.DetectContentType(buf.Bytes()), buf.Bytes())
}

func coverObjectName(id int) string {
	return fmt.Sprintf("song-%d", id)
}
