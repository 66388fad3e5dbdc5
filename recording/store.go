package recording

import (
	"bytes"
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/tin"

	// Pure-Go SQLite driver (CGO-free)
	_ "modernc.org/sqlite"
)

// ErrFrameNotFound is returned by Store.Load for unknown frame numbers.
var ErrFrameNotFound = errors.New("recording: frame not found")

// PrimitiveSchema is the JSON schema of the payload stored for each
// primitive.
//
//go:embed primitive.schema.json
var PrimitiveSchema []byte

// schemaVersion tracks the sqlite layout. Bump it on breaking changes.
const schemaVersion = 1

// Store persists recorded frames to a SQLite database.
//
// Each primitive is kept as one row whose data column holds the JSON
// encoding of the Primitive; images referenced by a frame are stored once
// as PNG.
type Store struct {
	db   *sql.DB
	path string
	log  *slog.Logger
}

// Open opens or creates the store at path.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("recording: create store dir: %w", err)
		}
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", filepath.ToSlash(path))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("recording: open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &Store{db: db, path: path, log: tin.Logger().With("store", path)}
	if err := s.ensureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	s.log.Debug("recording: store ready")
	return s, nil
}

func (s *Store) ensureSchema(ctx context.Context) error {
	ddl := []string{
		`PRAGMA journal_mode=WAL;`,
		`CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS frames (
			number     INTEGER PRIMARY KEY,
			width      INTEGER NOT NULL,
			height     INTEGER NOT NULL,
			primitives INTEGER NOT NULL,
			saved_at   TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS primitives (
			frame INTEGER NOT NULL REFERENCES frames(number) ON DELETE CASCADE,
			seq   INTEGER NOT NULL,
			kind  TEXT NOT NULL,
			data  TEXT NOT NULL,
			PRIMARY KEY (frame, seq)
		);`,
		`CREATE TABLE IF NOT EXISTS images (
			ref    INTEGER PRIMARY KEY,
			width  INTEGER NOT NULL,
			height INTEGER NOT NULL,
			png    BLOB NOT NULL
		);`,
	}
	for _, q := range ddl {
		if _, err := s.db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("recording: create schema: %w", err)
		}
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO meta (key, value) VALUES ('schema', ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		fmt.Sprint(schemaVersion))
	if err != nil {
		return fmt.Errorf("recording: write schema version: %w", err)
	}
	return nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes f, replacing any frame stored under the same number.
func (s *Store) Save(ctx context.Context, f *Frame) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("recording: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM primitives WHERE frame = ?`, f.Number); err != nil {
		return fmt.Errorf("recording: clear frame %d: %w", f.Number, err)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO frames (number, width, height, primitives, saved_at) VALUES (?, ?, ?, ?, ?)`,
		f.Number, f.Size.Width, f.Size.Height, len(f.Primitives), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("recording: insert frame %d: %w", f.Number, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO primitives (frame, seq, kind, data) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("recording: prepare: %w", err)
	}
	defer stmt.Close()

	saved := make(map[ImageRef]bool)
	for i := range f.Primitives {
		p := &f.Primitives[i]
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("recording: encode primitive %d: %w", i, err)
		}
		if _, err = stmt.ExecContext(ctx, f.Number, i, p.Kind.String(), string(data)); err != nil {
			return fmt.Errorf("recording: insert primitive %d: %w", i, err)
		}
		if p.Kind == tin.CallImage && !saved[p.Image] {
			saved[p.Image] = true
			if err = saveImage(ctx, tx, p.Image, f.Image(p.Image)); err != nil {
				return err
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("recording: commit frame %d: %w", f.Number, err)
	}
	s.log.Debug("recording: frame saved", "frame", f.Number, "primitives", len(f.Primitives))
	return nil
}

func saveImage(ctx context.Context, tx *sql.Tx, ref ImageRef, img *tin.Image) error {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img.Source()); err != nil {
		return fmt.Errorf("recording: encode image %d: %w", ref, err)
	}
	_, err := tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO images (ref, width, height, png) VALUES (?, ?, ?, ?)`,
		ref, img.Width(), img.Height(), buf.Bytes())
	if err != nil {
		return fmt.Errorf("recording: insert image %d: %w", ref, err)
	}
	return nil
}

// Load reads the frame stored under number.
func (s *Store) Load(ctx context.Context, number uint64) (*Frame, error) {
	f := &Frame{Number: number, pool: NewResourcePool()}
	err := s.db.QueryRowContext(ctx,
		`SELECT width, height FROM frames WHERE number = ?`, number).
		Scan(&f.Size.Width, &f.Size.Height)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrFrameNotFound, number)
	}
	if err != nil {
		return nil, fmt.Errorf("recording: load frame %d: %w", number, err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT data FROM primitives WHERE frame = ? ORDER BY seq`, number)
	if err != nil {
		return nil, fmt.Errorf("recording: load primitives: %w", err)
	}
	defer rows.Close()

	refs := make(map[ImageRef]bool)
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("recording: scan primitive: %w", err)
		}
		var p Primitive
		if err := json.Unmarshal([]byte(data), &p); err != nil {
			return nil, fmt.Errorf("recording: decode primitive: %w", err)
		}
		if p.Kind == tin.CallImage && p.Image.IsValid() {
			refs[p.Image] = true
		}
		f.Primitives = append(f.Primitives, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recording: load primitives: %w", err)
	}

	for ref := range refs {
		if err := s.loadImage(ctx, f.pool, ref); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (s *Store) loadImage(ctx context.Context, pool *ResourcePool, ref ImageRef) error {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT png FROM images WHERE ref = ?`, ref).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		s.log.Warn("recording: image missing from store", "ref", ref)
		return nil
	}
	if err != nil {
		return fmt.Errorf("recording: load image %d: %w", ref, err)
	}
	img, err := tin.DecodeImage(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("recording: decode image %d: %w", ref, err)
	}
	pool.setImage(ref, img)
	return nil
}

// Count returns the number of stored frames.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM frames`).Scan(&n); err != nil {
		return 0, fmt.Errorf("recording: count frames: %w", err)
	}
	return n, nil
}

// Numbers returns the stored frame numbers in ascending order.
func (s *Store) Numbers(ctx context.Context) ([]uint64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT number FROM frames ORDER BY number`)
	if err != nil {
		return nil, fmt.Errorf("recording: list frames: %w", err)
	}
	defer rows.Close()

	var numbers []uint64
	for rows.Next() {
		var n uint64
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("recording: scan frame number: %w", err)
		}
		numbers = append(numbers, n)
	}
	return numbers, rows.Err()
}
