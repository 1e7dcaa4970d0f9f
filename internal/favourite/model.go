package favourite

import "errors"

var ErrNotFound = errors.New("favourite not found")

// Favourite is one rating row, keyed by (user, song).
type Favourite struct {
	UserID int `json:"userId"`
	SongID int `json:"songId"`
	Rating int `json:"rating"`
}

type UpsertRequest struct {
	UserID int `json:"userId"`
	SongID int `json:"songId"`
	Rating int `json:"rating"`
}

type ToggleRequest struct {
	Rating int `json:"rating"`
}

// Song is a favourite joined with the song it rates.
type Song struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	VideoURL string `json:"videoUrl"`
	Rating   int    `json:"rating"`
}

// TopSong mirrors Song with the id keyed as songId, matching the
// top-songs response shape.
type TopSong struct {
	SongID   int    `json:"songId"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	VideoURL string `json:"videoUrl"`
	Rating   int    `json:"rating"`
}
