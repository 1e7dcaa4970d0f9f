package song

import "errors"

var ErrNotFound = errors.New("song not found")

type Song struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Lyrics      string `json:"lyrics"`
	Translation string `json:"translation"`
	VideoURL    string `json:"videoUrl"`
	LanguageID  int    `json:"languageId"`
}

type Request struct {
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Lyrics      string `json:"lyrics"`
	Translation string `json:"translation"`
	VideoURL    string `json:"videoUrl"`
	LanguageID  int    `json:"languageId"`
}

// ListItem is a catalogue row. IsFavourite is present only when the
// request carried a valid token.
type ListItem struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	VideoURL    string `json:"videoUrl"`
	Language    string `json:"language"`
	IsFavourite *bool  `json:"isFavourite,omitempty"`
}

// Detail is the full song view including lyrics and translation.
type Detail struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Artist       string `json:"artist"`
	Lyrics       string `json:"lyrics"`
	Translation  string `json:"translation"`
	VideoURL     string `json:"videoUrl"`
	LanguageID   int    `json:"languageId"`
	LanguageName string `json:"languageName"`
}

// Filter narrows the catalogue listing. A zero UserID means the caller
// is anonymous and no favourite flag is computed.
type Filter struct {
	LanguageID int
	Search     string
	UserID     int
}
