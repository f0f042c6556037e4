package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/ncruces/go-sqlite3"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"golang.org/x/crypto/bcrypt"

	"github.com/zjrosen/signup/internal/log"
	"github.com/zjrosen/signup/internal/registration"
)

// Account is a stored registration. The password hash never leaves the store.
type Account struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Age       string
	Gender    registration.Gender
	CreatedAt time.Time
}

// Store persists accounts in a local SQLite database.
type Store struct {
	db   *sql.DB
	path string
	cost int
}

// OpenStore opens (creating if needed) the database at path and runs the
// embedded migrations. Use ":memory:" for a throwaway database.
func OpenStore(path string) (*Store, error) {
	dsn := ":memory:"
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
		dsn = "file:" + path
	}

	log.Debug(log.CatStore, "Opening database", "path", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.ErrorErr(log.CatStore, "Failed to open database", err, "path", path)
		return nil, err
	}
	// One connection keeps ":memory:" databases shared across calls.
	db.SetMaxOpenConns(1)

	if err := runMigrations(db); err != nil {
		log.ErrorErr(log.CatStore, "Migration failed", err, "path", path)
		_ = db.Close()
		return nil, err
	}
	log.Info(log.CatStore, "Connected to database", "path", path)
	return &Store{db: db, path: path, cost: bcrypt.DefaultCost}, nil
}

// Create stores the record with a bcrypt hash of its password.
func (s *Store) Create(ctx context.Context, in registration.Input) (Receipt, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return Receipt{}, fmt.Errorf("hashing password: %w", err)
	}

	receipt := Receipt{
		ID:        uuid.NewString(),
		Email:     normalizeEmail(in.Email),
		CreatedAt: time.Now().UTC(),
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO accounts (id, name, email, phone, age, gender, password_hash, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		receipt.ID, in.Name, receipt.Email, in.Phone, in.Age, string(in.Gender), hash,
		receipt.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		if errors.Is(err, sqlite3.CONSTRAINT_UNIQUE) {
			return Receipt{}, fmt.Errorf("%w: %s", ErrDuplicateEmail, receipt.Email)
		}
		log.ErrorErr(log.CatStore, "Insert failed", err, "email", receipt.Email)
		return Receipt{}, fmt.Errorf("inserting account: %w", err)
	}

	log.Info(log.CatStore, "Account stored", "id", receipt.ID)
	return receipt, nil
}

// FindByEmail returns the stored account for email, or sql.ErrNoRows.
func (s *Store) FindByEmail(ctx context.Context, email string) (Account, error) {
	var (
		acc       Account
		gender    string
		createdAt string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, email, phone, age, gender, created_at FROM accounts WHERE email = ?`,
		normalizeEmail(email),
	).Scan(&acc.ID, &acc.Name, &acc.Email, &acc.Phone, &acc.Age, &gender, &createdAt)
	if err != nil {
		return Account{}, err
	}
	acc.Gender = registration.Gender(gender)
	acc.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Account{}, fmt.Errorf("parsing created_at: %w", err)
	}
	return acc, nil
}

// CheckPassword reports whether password matches the stored hash for email.
func (s *Store) CheckPassword(ctx context.Context, email, password string) (bool, error) {
	var hash []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT password_hash FROM accounts WHERE email = ?`, normalizeEmail(email),
	).Scan(&hash)
	if err != nil {
		return false, err
	}
	err = bcrypt.CompareHashAndPassword(hash, []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return err == nil, err
}

// Count returns the number of stored accounts.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
