// Package lookup serves the static language and status tables.
package lookup

import (
	"database/sql"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Entry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Repository interface {
	Languages() ([]Entry, error)
	Statuses() ([]Entry, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Languages() ([]Entry, error) {
	return r.queryEntries(`SELECT id, name FROM languages ORDER BY id`)
}

func (r *repository) Statuses() ([]Entry, error) {
	return r.queryEntries(`SELECT id, name FROM statuses ORDER BY id`)
}

func (r *repository) queryEntries(query string) ([]Entry, error) {
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) Languages(c echo.Context) error {
	return h.respond(c, h.repo.Languages)
}

func (h *Handler) Statuses(c echo.Context) error {
	return h.respond(c, h.repo.Statuses)
}

func (h *Handler) respond(c echo.Context, fetch func() ([]Entry, error)) error {
	entries, err := fetch()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if entries == nil {
		entries = []Entry{}
	}
	return c.JSON(http.StatusOK, entries)
}
