package commerce

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/validate/pkg/pg"
)

// User is a registered shopper.
type User struct {
	ID           uuid.UUID
	FullName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Users covers the user persistence the handlers need.
type Users interface {
	EmailTaken(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, fullName, email, password string) (*User, error)
}

// Catalog covers the catalog lookups the handlers need.
type Catalog interface {
	SKUExists(ctx context.Context, sku string) (bool, error)
	NameReserved(ctx context.Context, name string) (bool, error)
	AddSKU(ctx context.Context, sku string) error
}

// UserStore persists users in PostgreSQL.
type UserStore struct {
	pool       *pgxpool.Pool
	bcryptCost int
}

func NewUserStore(pool *pgxpool.Pool, bcryptCost int) *UserStore {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserStore{pool: pool, bcryptCost: bcryptCost}
}

// EmailTaken reports whether a user with the email already exists.
// Emails are stored lowercased.
func (s *UserStore) EmailTaken(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`,
		strings.ToLower(email),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return exists, nil
}

// CreateUser hashes the password and inserts the user. A duplicate
// email yields ErrEmailTaken even when the earlier uniqueness check
// raced with another registration.
func (s *UserStore) CreateUser(ctx context.Context, fullName, email, password string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &User{
		ID:           uuid.New(),
		FullName:     fullName,
		Email:        strings.ToLower(email),
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO users (id, full_name, email, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.FullName, user.Email, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

const (
	skuSetKey        = "catalog:skus"
	reservedNamesKey = "catalog:reserved-names"
)

// CatalogStore keeps the product catalog index in Redis sets.
type CatalogStore struct {
	client goredis.UniversalClient
}

func NewCatalogStore(client goredis.UniversalClient) *CatalogStore {
	return &CatalogStore{client: client}
}

// SKUExists reports whether the SKU is already registered.
func (s *CatalogStore) SKUExists(ctx context.Context, sku string) (bool, error) {
	ok, err := s.client.SIsMember(ctx, skuSetKey, sku).Result()
	if err != nil {
		return false, fmt.Errorf("check sku: %w", err)
	}
	return ok, nil
}

// NameReserved reports whether the product name is reserved. Names are
// compared case-insensitively.
func (s *CatalogStore) NameReserved(ctx context.Context, name string) (bool, error) {
	ok, err := s.client.SIsMember(ctx, reservedNamesKey, strings.ToLower(name)).Result()
	if err != nil {
		return false, fmt.Errorf("check reserved name: %w", err)
	}
	return ok, nil
}

// AddSKU registers a SKU in the catalog index.
func (s *CatalogStore) AddSKU(ctx context.Context, sku string) error {
	if err := s.client.SAdd(ctx, skuSetKey, sku).Err(); err != nil {
		return fmt.Errorf("add sku: %w", err)
	}
	return nil
}
