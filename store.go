package portfolio

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when an update or delete matches no row, so
// callers can distinguish "nothing there" from a backend failure.
var ErrNotFound = errors.New("portfolio: not found")

// Store wraps a SQLite database and provides CRUD operations for sections,
// content blocks, image rows, skills, and admin credentials.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// Enable WAL mode for concurrent read/write access, set a busy timeout
	// so writers wait instead of returning SQLITE_BUSY immediately, and tune
	// performance: synchronous=NORMAL is safe with WAL and avoids an fsync
	// per transaction; larger cache and mmap reduce disk I/O.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
		PRAGMA cache_size=-8000;
		PRAGMA mmap_size=268435456;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS sections (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    slug TEXT NOT NULL UNIQUE,
    description TEXT NOT NULL DEFAULT '',
    ord INTEGER NOT NULL DEFAULT 0,
    is_published INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS section_content (
    id TEXT PRIMARY KEY,
    section_id TEXT NOT NULL,
    heading TEXT NOT NULL DEFAULT '',
    body_text TEXT NOT NULL DEFAULT '',
    ord INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS images (
    id TEXT PRIMARY KEY,
    section_id TEXT NOT NULL,
    url TEXT NOT NULL,
    caption TEXT NOT NULL DEFAULT '',
    alt_text TEXT NOT NULL DEFAULT '',
    ord INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS skills (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    category TEXT NOT NULL CHECK (category IN ('core', 'tool')),
    ord INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS admin_credentials (
    email TEXT PRIMARY KEY,
    password_hash TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_section_content_section ON section_content(section_id);
CREATE INDEX IF NOT EXISTS idx_images_section ON images(section_id);
`)
	return err
}

// --- Sections ---

// ListPublishedSections returns normalized published sections ordered by
// their display order ascending.
func (s *Store) ListPublishedSections() ([]Section, error) {
	return s.listSections(`WHERE is_published = 1`)
}

// ListAllSections returns every section regardless of publish state (for admin).
func (s *Store) ListAllSections() ([]Section, error) {
	return s.listSections(``)
}

func (s *Store) listSections(where string) ([]Section, error) {
	rows, err := s.db.Query(`SELECT id, title, slug, description, ord, is_published FROM sections ` + where + ` ORDER BY ord ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sections := []Section{}
	for rows.Next() {
		var sec Section
		var published int
		if err := rows.Scan(&sec.ID, &sec.Title, &sec.Slug, &sec.Description, &sec.Order, &published); err != nil {
			return nil, err
		}
		sec.Published = published == 1
		sections = append(sections, sec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range sections {
		if err := s.loadSectionChildren(&sections[i]); err != nil {
			return nil, err
		}
		sections[i] = NormalizeSection(sections[i])
	}
	return sections, nil
}

func (s *Store) loadSectionChildren(sec *Section) error {
	rows, err := s.db.Query(`SELECT id, heading, body_text, ord FROM section_content WHERE section_id = ?`, sec.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var b ContentBlock
		if err := rows.Scan(&b.ID, &b.Heading, &b.BodyText, &b.Order); err != nil {
			return err
		}
		sec.Content = append(sec.Content, b)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	imgRows, err := s.db.Query(`SELECT id, url, caption, alt_text, ord FROM images WHERE section_id = ?`, sec.ID)
	if err != nil {
		return err
	}
	defer imgRows.Close()
	for imgRows.Next() {
		var img ImageAsset
		if err := imgRows.Scan(&img.ID, &img.URL, &img.Caption, &img.AltText, &img.Order); err != nil {
			return err
		}
		sec.Images = append(sec.Images, img)
	}
	return imgRows.Err()
}

// GetSectionBySlug returns a single section with its nested content.
func (s *Store) GetSectionBySlug(slug string) (Section, error) {
	var sec Section
	var published int
	err := s.db.QueryRow(`SELECT id, title, slug, description, ord, is_published FROM sections WHERE slug = ?`, slug).
		Scan(&sec.ID, &sec.Title, &sec.Slug, &sec.Description, &sec.Order, &published)
	if err == sql.ErrNoRows {
		return Section{}, ErrNotFound
	}
	if err != nil {
		return Section{}, err
	}
	sec.Published = published == 1
	if err := s.loadSectionChildren(&sec); err != nil {
		return Section{}, err
	}
	return NormalizeSection(sec), nil
}

// CreateSection inserts a new section. The slug must be unique.
func (s *Store) CreateSection(title, slug, description string, order int, published bool) (Section, error) {
	sec := Section{
		ID:          uuid.NewString(),
		Title:       title,
		Slug:        slug,
		Description: description,
		Order:       order,
		Published:   published,
		Content:     []ContentBlock{},
		Images:      []ImageAsset{},
	}
	pub := 0
	if published {
		pub = 1
	}
	_, err := s.db.Exec(`INSERT INTO sections (id, title, slug, description, ord, is_published) VALUES (?, ?, ?, ?, ?, ?)`,
		sec.ID, sec.Title, sec.Slug, sec.Description, sec.Order, pub)
	if err != nil {
		return Section{}, err
	}
	return sec, nil
}

// UpdateSectionMeta updates a section's title and description.
// Returns ErrNotFound when no section matches the id.
func (s *Store) UpdateSectionMeta(id, title, description string) error {
	res, err := s.db.Exec(`UPDATE sections SET title = ?, description = ? WHERE id = ?`, title, description, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteSectionContent removes every content block belonging to a section.
func (s *Store) DeleteSectionContent(sectionID string) error {
	_, err := s.db.Exec(`DELETE FROM section_content WHERE section_id = ?`, sectionID)
	return err
}

// InsertContentBlocks inserts submitted blocks with order assigned by their
// position in the slice.
func (s *Store) InsertContentBlocks(sectionID string, blocks []ContentBlockInput) error {
	for i, b := range blocks {
		_, err := s.db.Exec(`INSERT INTO section_content (id, section_id, heading, body_text, ord) VALUES (?, ?, ?, ?, ?)`,
			uuid.NewString(), sectionID, b.Heading, b.BodyText, i)
		if err != nil {
			return err
		}
	}
	return nil
}

// DeleteSection removes a section and its owned rows. Not exposed as a
// route; kept as a direct backend operation.
func (s *Store) DeleteSection(id string) error {
	if _, err := s.db.Exec(`DELETE FROM section_content WHERE section_id = ?`, id); err != nil {
		return err
	}
	if _, err := s.db.Exec(`DELETE FROM images WHERE section_id = ?`, id); err != nil {
		return err
	}
	res, err := s.db.Exec(`DELETE FROM sections WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Skills ---

// ListSkills returns all skills ordered ascending.
func (s *Store) ListSkills() ([]Skill, error) {
	rows, err := s.db.Query(`SELECT id, name, category, ord FROM skills ORDER BY ord ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	skills := []Skill{}
	for rows.Next() {
		var sk Skill
		if err := rows.Scan(&sk.ID, &sk.Name, &sk.Category, &sk.Order); err != nil {
			return nil, err
		}
		skills = append(skills, sk)
	}
	return skills, rows.Err()
}

// CreateSkill inserts a skill and returns the created row.
func (s *Store) CreateSkill(name, category string, order int) (Skill, error) {
	sk := Skill{ID: uuid.NewString(), Name: name, Category: category, Order: order}
	_, err := s.db.Exec(`INSERT INTO skills (id, name, category, ord) VALUES (?, ?, ?, ?)`,
		sk.ID, sk.Name, sk.Category, sk.Order)
	if err != nil {
		return Skill{}, err
	}
	return sk, nil
}

// UpdateSkill updates a skill row in place. Returns ErrNotFound when the id
// matches nothing.
func (s *Store) UpdateSkill(sk Skill) (Skill, error) {
	res, err := s.db.Exec(`UPDATE skills SET name = ?, category = ?, ord = ? WHERE id = ?`,
		sk.Name, sk.Category, sk.Order, sk.ID)
	if err != nil {
		return Skill{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return Skill{}, err
	}
	if n == 0 {
		return Skill{}, ErrNotFound
	}
	return sk, nil
}

// DeleteSkill removes a skill by id. Returns ErrNotFound when nothing matched.
func (s *Store) DeleteSkill(id string) error {
	res, err := s.db.Exec(`DELETE FROM skills WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Image rows ---

// InsertImage records an uploaded object's public URL against a section.
func (s *Store) InsertImage(sectionID, url, caption, altText string, order int) (ImageAsset, error) {
	img := ImageAsset{ID: uuid.NewString(), URL: url, Caption: caption, AltText: altText, Order: order}
	_, err := s.db.Exec(`INSERT INTO images (id, section_id, url, caption, alt_text, ord) VALUES (?, ?, ?, ?, ?, ?)`,
		img.ID, sectionID, img.URL, img.Caption, img.AltText, img.Order)
	if err != nil {
		return ImageAsset{}, err
	}
	return img, nil
}

// DeleteImageRow removes an image row by id. Returns ErrNotFound when
// nothing matched.
func (s *Store) DeleteImageRow(id string) error {
	res, err := s.db.Exec(`DELETE FROM images WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Admin credentials ---

// SetCredentials stores the bcrypt hash of password for email, replacing any
// previous credential for that address.
func (s *Store) SetCredentials(email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT OR REPLACE INTO admin_credentials (email, password_hash) VALUES (?, ?)`, email, string(hash))
	return err
}

// VerifyCredentials reports whether email/password match a stored credential.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (s *Store) VerifyCredentials(email, password string) (bool, error) {
	var hash string
	err := s.db.QueryRow(`SELECT password_hash FROM admin_credentials WHERE email = ?`, email).Scan(&hash)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return false, nil
	}
	return true, nil
}
