package favourite

const topSongsLimit = 5

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// UpsertRating records a rating, replacing any earlier rating the user
// gave the same song.
func (s *Service) UpsertRating(userID, songID, rating int) error {
	return s.repo.Upsert(&Favourite{UserID: userID, SongID: songID, Rating: rating})
}

func (s *Service) Delete(userID, songID int) error {
	deleted, err := s.repo.Delete(userID, songID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *Service) ListMine(userID int) ([]Song, error) {
	return s.repo.ListByUser(userID)
}

func (s *Service) TopSongs(userID int) ([]TopSong, error) {
	return s.repo.TopByUser(userID, topSongsLimit)
}

// Toggle flips the favourite state for (user, song) and reports the
// resulting state. The check and the write are separate statements, so
// two concurrent toggles from the same user can race.
func (s *Service) Toggle(userID, songID, rating int) (bool, error) {
	exists, err := s.repo.Exists(userID, songID)
	if err != nil {
		return false, err
	}

	if exists {
		if _, err := s.repo.Delete(userID, songID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := s.repo.Insert(&Favourite{UserID: userID, SongID: songID, Rating: rating}); err != nil {
		return false, err
	}
	return true, nil
}
