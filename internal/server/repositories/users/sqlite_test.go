package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/migrations"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)", t.Name()))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	goose.SetBaseFS(migrations.FS)
	require.NoError(t, goose.SetDialect("sqlite3"))
	require.NoError(t, goose.Up(db, "sqlite"))
	return db
}

func TestSQLite_CreateAndFind(t *testing.T) {
	repo := NewSQLiteRepository(setupSQLite(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.User{Email: "ana@x.com", Name: "Ana", PasswordHash: "hash"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := repo.FindByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestSQLite_FindByEmail_Absent(t *testing.T) {
	repo := NewSQLiteRepository(setupSQLite(t))

	got, err := repo.FindByEmail(context.Background(), "ghost@x.com")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLite_Create_Duplicate(t *testing.T) {
	repo := NewSQLiteRepository(setupSQLite(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.User{Email: "ana@x.com", Name: "Ana", PasswordHash: "h1"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &models.User{Email: "ana@x.com", Name: "Other", PasswordHash: "h2"})
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestSQLite_Create_ConcurrentSameEmail(t *testing.T) {
	repo := NewSQLiteRepository(setupSQLite(t))
	ctx := context.Background()

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = repo.Create(ctx, &models.User{Email: "race@x.com", Name: "R", PasswordHash: "h"})
		}()
	}
	wg.Wait()

	created := 0
	for _, err := range errs {
		switch {
		case err == nil:
			created++
		case errors.Is(err, common.ErrorAlreadyExists):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, created)
}

func TestIsSQLiteUniqueViolation_IgnoresPlainErrors(t *testing.T) {
	assert.False(t, isSQLiteUniqueViolation(errors.New("UNIQUE constraint failed: users.email")))
	assert.False(t, isSQLiteUniqueViolation(fmt.Errorf("db error: %w", errors.New("unique constraint failed"))))
}
