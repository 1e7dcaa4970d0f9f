package song

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateSong(req Request) (int, error) {
	song := fromRequest(req)
	if err := s.repo.Create(song); err != nil {
		return 0, err
	}
	return song.ID, nil
}

func (s *Service) UpdateSong(id int, req Request) error {
	updated, err := s.repo.Update(id, fromRequest(req))
	if err != nil {
		return err
	}
	if !updated {
		return ErrNotFound
	}
	return nil
}

func (s *Service) DeleteSong(id int) error {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *Service) ListSongs(f Filter) ([]ListItem, error) {
	return s.repo.List(f)
}

func (s *Service) GetSong(id int) (*Detail, error) {
	d, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrNotFound
	}
	return d, nil
}

func (s *Service) SongExists(id int) (bool, error) {
	return s.repo.Exists(id)
}

func fromRequest(req Request) *Song {
	return &Song{
		Title:       req.Title,
		Artist:      req.Artist,
		Lyrics:      req.Lyrics,
		Translation: req.Translation,
		VideoURL:    req.VideoURL,
		LanguageID:  req.LanguageID,
	}
}
