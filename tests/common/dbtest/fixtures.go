//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"quinta-booking/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const (
	AdminUsername = "admin"
	AdminPassword = "test-admin-pass"
)

var (
	adminHashOnce sync.Once
	adminHash     string
	adminHashErr  error
)

// bcrypt is slow on purpose; hash the fixture password once per process
func adminPasswordHash() (string, error) {
	adminHashOnce.Do(func() {
		adminHash, adminHashErr = password.Hash(AdminPassword)
	})
	if adminHashErr != nil {
		return "", fmt.Errorf("failed to hash fixture password: %w", adminHashErr)
	}
	return adminHash, nil
}

func CreateTestUser(t *testing.T, db DBLike, username string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	hash, err := adminPasswordHash()
	require.NoError(t, err)

	tag, err := db.Exec(ctx, "INSERT INTO users (id, username, password_hash, role, is_active) VALUES ($1, $2, $3, 'admin', true) ON CONFLICT (username) DO NOTHING",
		userID, username, hash)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE username = $1", username).Scan(&userID)
	}

	return userID
}

// inserts the singleton configuration rows and the admin account
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	hash, err := adminPasswordHash()
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, username, password_hash, role, is_active)
		VALUES (gen_random_uuid(), $1, $2, 'admin', true)
		ON CONFLICT (username) DO NOTHING;
	`, AdminUsername, hash)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO pricing_rules (id, daily_price, weekend_multiplier, guest_threshold, extra_guest_price, special_dates)
		VALUES (1, 60000, 1.3, 10, 5000, '{}')
		ON CONFLICT (id) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO property_config (id, name, address, max_capacity, description, rules_and_policies, assistant_instruction, images)
		VALUES (1, 'La Quinta Funes', 'Funes, Santa Fe, Argentina', 20, 'Quinta con pileta y parque', 'No se permiten fiestas despues de la 1am', '', '{}')
		ON CONFLICT (id) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
