package song

import (
	"database/sql"
	"errors"
	"fmt"
)

type Repository interface {
	Create(s *Song) error
	Update(id int, s *Song) (bool, error)
	Delete(id int) (bool, error)
	List(f Filter) ([]ListItem, error)
	GetByID(id int) (*Detail, error)
	Exists(id int) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(s *Song) error {
	query := `INSERT INTO songs (title, artist, lyrics, translation, video_url, language_id)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRow(query, s.Title, s.Artist, s.Lyrics, s.Translation, s.VideoURL, s.LanguageID).
		Scan(&s.ID)
}

func (r *repository) Update(id int, s *Song) (bool, error) {
	query := `
		UPDATE songs
		SET title = $1, artist = $2, lyrics = $3, translation = $4, video_url = $5, language_id = $6
		WHERE id = $7`
	res, err := r.db.Exec(query, s.Title, s.Artist, s.Lyrics, s.Translation, s.VideoURL, s.LanguageID, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *repository) Delete(id int) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM songs WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// List applies the optional language and search filters. When the
// filter carries a user id, each row also gets a correlated favourite
// flag for that user.
func (r *repository) List(f Filter) ([]ListItem, error) {
	query := `SELECT s.id, s.title, s.artist, s.video_url, COALESCE(l.name, '')`
	var args []interface{}

	withFavourite := f.UserID != 0
	if withFavourite {
		args = append(args, f.UserID)
		query += fmt.Sprintf(`,
			EXISTS (SELECT 1 FROM favourites f WHERE f.song_id = s.id AND f.user_id = $%d)`, len(args))
	}

	query += `
		FROM songs s
		LEFT JOIN languages l ON s.language_id = l.id
		WHERE 1 = 1`

	if f.LanguageID != 0 {
		args = append(args, f.LanguageID)
		query += fmt.Sprintf(" AND s.language_id = $%d", len(args))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		query += fmt.Sprintf(" AND (s.title ILIKE $%d OR s.artist ILIKE $%d)", len(args), len(args))
	}
	query += " ORDER BY s.id"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var songs []ListItem
	for rows.Next() {
		var item ListItem
		if withFavourite {
			var isFavourite bool
			if err := rows.Scan(&item.ID, &item.Title, &item.Artist, &item.VideoURL, &item.Language, &isFavourite); err != nil {
				return nil, err
			}
			item.IsFavourite = &isFavourite
		} else {
			if err := rows.Scan(&item.ID, &item.Title, &item.Artist, &item.VideoURL, &item.Language); err != nil {
				return nil, err
			}
		}
		songs = append(songs, item)
	}
	return songs, rows.Err()
}

func (r *repository) GetByID(id int) (*Detail, error) {
	var d Detail
	query := `
		SELECT s.id, s.title, s.artist, s.lyrics, s.translation, s.video_url, s.language_id, COALESCE(l.name, '')
		FROM songs s
		LEFT JOIN languages l ON s.language_id = l.id
		WHERE s.id = $1`
	err := r.db.QueryRow(query, id).
		Scan(&d.ID, &d.Title, &d.Artist, &d.Lyrics, &d.Translation, &d.VideoURL, &d.LanguageID, &d.LanguageName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) Exists(id int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM songs WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}
