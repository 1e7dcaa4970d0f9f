package favourite

import "database/sql"

type Repository interface {
	Upsert(f *Favourite) error
	Insert(f *Favourite) error
	Delete(userID, songID int) (bool, error)
	Exists(userID, songID int) (bool, error)
	ListByUser(userID int) ([]Song, error)
	TopByUser(userID, limit int) ([]TopSong, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Upsert inserts the rating or replaces an existing one for the same
// (user, song) pair.
func (r *repository) Upsert(f *Favourite) error {
	query := `
		INSERT INTO favourites (user_id, song_id, rating)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, song_id) DO UPDATE SET rating = EXCLUDED.rating`
	_, err := r.db.Exec(query, f.UserID, f.SongID, f.Rating)
	return err
}

func (r *repository) Insert(f *Favourite) error {
	query := `INSERT INTO favourites (user_id, song_id, rating) VALUES ($1, $2, $3)`
	_, err := r.db.Exec(query, f.UserID, f.SongID, f.Rating)
	return err
}

func (r *repository) Delete(userID, songID int) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM favourites WHERE user_id = $1 AND song_id = $2`, userID, songID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *repository) Exists(userID, songID int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM favourites WHERE user_id = $1 AND song_id = $2)`
	err := r.db.QueryRow(query, userID, songID).Scan(&exists)
	return exists, err
}

func (r *repository) ListByUser(userID int) ([]Song, error) {
	query := `
		SELECT s.id, s.title, s.artist, s.video_url, f.rating
		FROM favourites f
		INNER JOIN songs s ON f.song_id = s.id
		WHERE f.user_id = $1
		ORDER BY f.rating DESC`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var songs []Song
	for rows.Next() {
		var s Song
		if err := rows.Scan(&s.ID, &s.Title, &s.Artist, &s.VideoURL, &s.Rating); err != nil {
			return nil, err
		}
		songs = append(songs, s)
	}
	return songs, rows.Err()
}

func (r *repository) TopByUser(userID, limit int) ([]TopSong, error) {
	query := `
		SELECT s.id, s.title, s.artist, s.video_url, f.rating
		FROM favourites f
		INNER JOIN songs s ON f.song_id = s.id
		WHERE f.user_id = $1
		ORDER BY f.rating DESC
		LIMIT $2`
	rows, err := r.db.Query(query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var songs []TopSong
	for rows.Next() {
		var s TopSong
		if err := rows.Scan(&s.SongID, &s.Title, &s.Artist, &s.VideoURL, &s.Rating); err != nil {
			return nil, err
		}
		songs = append(songs, s)
	}
	return songs, rows.Err()
}
