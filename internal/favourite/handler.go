package favourite

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/lingobeats/song-catalogue/pkg/auth"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// UpsertRating records or replaces a rating. The caller identity comes
// from the request body rather than a token.
func (h *Handler) UpsertRating(c echo.Context) error {
	var req UpsertRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body."})
	}

	if req.UserID == 0 || req.SongID == 0 || req.Rating == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "All fields are required."})
	}
	if req.Rating < 1 || req.Rating > 100 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Rating must be between 1 and 100."})
	}

	if err := h.service.UpsertRating(req.UserID, req.SongID, req.Rating); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "Favourite added successfully"})
}

func (h *Handler) Delete(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid user id."})
	}
	songID, err := strconv.Atoi(c.Param("songId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid song id."})
	}

	if err := h.service.Delete(userID, songID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Favourite not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Favourite deleted successfully"})
}

func (h *Handler) ListMine(c echo.Context) error {
	claims := auth.ClaimsFrom(c)

	songs, err := h.service.ListMine(claims.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if songs == nil {
		songs = []Song{}
	}
	return c.JSON(http.StatusOK, songs)
}

func (h *Handler) TopSongs(c echo.Context) error {
	claims := auth.ClaimsFrom(c)

	songs, err := h.service.TopSongs(claims.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if songs == nil {
		songs = []TopSong{}
	}
	return c.JSON(http.StatusOK, songs)
}

// Toggle adds or removes a favourite for the authenticated caller and
// reports the resulting state.
func (h *Handler) Toggle(c echo.Context) error {
	claims := auth.ClaimsFrom(c)

	songID, err := strconv.Atoi(c.Param("songId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid song id."})
	}

	// Body is optional; a missing rating defaults to 0.
	var req ToggleRequest
	if err := c.Bind(&req); err != nil {
		req = ToggleRequest{}
	}

	isFavourite, err := h.service.Toggle(claims.ID, songID, req.Rating)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	message := "Removed from favourites"
	if isFavourite {
		message = "Added to favourites"
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"message": message, "isFavourite": isFavourite})
}
