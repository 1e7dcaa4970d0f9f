package user

import (
	"database/sql"
	"errors"
)

type Repository interface {
	Create(u *User) error
	GetByEmail(email string) (*User, error)
	EmailTakenByOther(email string, id int) (bool, error)
	List() ([]Summary, error)
	Detail(id int) (*Detail, error)
	Update(id int, username, email, passwordHash, birthDate string, languageID, statusID int) (bool, error)
	UpdatePasswordByEmail(email, passwordHash string) (bool, error)
	Delete(id int) (bool, error)
	LanguageExists(id int) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(u *User) error {
	query := `INSERT INTO users (username, email, password_hash, birth_date, language_id, status_id)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRow(query, u.Username, u.Email, u.PasswordHash, u.BirthDate, u.LanguageID, u.StatusID).
		Scan(&u.ID)
}

func (r *repository) GetByEmail(email string) (*User, error) {
	var u User
	query := `SELECT id, username, email, password_hash, to_char(birth_date, 'YYYY-MM-DD'), language_id, status_id
		FROM users WHERE email = $1`
	err := r.db.QueryRow(query, email).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.BirthDate, &u.LanguageID, &u.StatusID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) EmailTakenByOther(email string, id int) (bool, error) {
	var taken bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND id != $2)`
	err := r.db.QueryRow(query, email, id).Scan(&taken)
	return taken, err
}

func (r *repository) List() ([]Summary, error) {
	query := `
		SELECT u.id, u.username, u.email, COALESCE(l.name, '')
		FROM users u
		LEFT JOIN languages l ON u.language_id = l.id
		ORDER BY u.id`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []Summary
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.ID, &s.Username, &s.Email, &s.Language); err != nil {
			return nil, err
		}
		users = append(users, s)
	}
	return users, rows.Err()
}

func (r *repository) Detail(id int) (*Detail, error) {
	var d Detail
	query := `
		SELECT u.id, u.username, u.email, to_char(u.birth_date, 'YYYY-MM-DD'),
			COALESCE(l.name, ''), COALESCE(s.name, '')
		FROM users u
		LEFT JOIN languages l ON u.language_id = l.id
		LEFT JOIN statuses s ON u.status_id = s.id
		WHERE u.id = $1`
	err := r.db.QueryRow(query, id).
		Scan(&d.ID, &d.Username, &d.Email, &d.BirthDate, &d.Language, &d.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Update rewrites the profile row. An empty passwordHash keeps the
// stored hash.
func (r *repository) Update(id int, username, email, passwordHash, birthDate string, languageID, statusID int) (bool, error) {
	query := `
		UPDATE users
		SET username = $1, email = $2,
			password_hash = COALESCE(NULLIF($3, ''), password_hash),
			birth_date = $4, language_id = $5, status_id = $6
		WHERE id = $7`
	res, err := r.db.Exec(query, username, email, passwordHash, birthDate, languageID, statusID, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *repository) UpdatePasswordByEmail(email, passwordHash string) (bool, error) {
	res, err := r.db.Exec(`UPDATE users SET password_hash = $1 WHERE email = $2`, passwordHash, email)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *repository) Delete(id int) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *repository) LanguageExists(id int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM languages WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}
