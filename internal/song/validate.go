package song

import (
	"regexp"
	"strings"
)

const (
	msgTitle       = "Title is required."
	msgArtist      = "Artist is required."
	msgLyrics      = "Lyrics are required."
	msgTranslation = "Translation is required."
	msgVideoURL    = "Video URL is required."
	msgLanguage    = "Language is required."
	msgBadVideoURL = "Video URL is not valid."
)

// Accepted hosts are youtube.com watch links and youtu.be short links,
// each ending in an 11-character video id.
var videoURLRegex = regexp.MustCompile(`^(https?://)?(www\.)?(youtube\.com/watch\?v=|youtu\.be/)[a-zA-Z0-9_-]{11}$`)

// Validate accumulates every violation rather than failing on the first.
func Validate(req Request) []string {
	var errs []string

	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, msgTitle)
	}
	if strings.TrimSpace(req.Artist) == "" {
		errs = append(errs, msgArtist)
	}
	if strings.TrimSpace(req.Lyrics) == "" {
		errs = append(errs, msgLyrics)
	}
	if strings.TrimSpace(req.Translation) == "" {
		errs = append(errs, msgTranslation)
	}
	if strings.TrimSpace(req.VideoURL) == "" {
		errs = append(errs, msgVideoURL)
	}
	if req.LanguageID == 0 {
		errs = append(errs, msgLanguage)
	}
	if strings.TrimSpace(req.VideoURL) != "" && !videoURLRegex.MatchString(req.VideoURL) {
		errs = append(errs, msgBadVideoURL)
	}

	return errs
}
