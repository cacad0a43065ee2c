package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	insertQuery = `(?s)^INSERT\s+INTO\s+users\s*\(email,\s*name,\s*password_hash\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id\s*$`
	selectQuery = `(?s)^SELECT\s+id,\s*email,\s*name,\s*password_hash\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1\s*$`
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestPostgresCreate_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(insertQuery).
		WithArgs("ana@x.com", "Ana", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("42"))

	in := &models.User{Email: "ana@x.com", Name: "Ana", PasswordHash: "hash"}
	got, err := repo.Create(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, &models.User{ID: "42", Email: "ana@x.com", Name: "Ana", PasswordHash: "hash"}, got)
	assert.Empty(t, in.ID, "input must not be mutated")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreate_UniqueViolation(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(insertQuery).
		WithArgs("ana@x.com", "Ana", "hash").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	_, err := repo.Create(context.Background(), &models.User{Email: "ana@x.com", Name: "Ana", PasswordHash: "hash"})
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestPostgresCreate_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(insertQuery).
		WithArgs("ana@x.com", "Ana", "hash").
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{Email: "ana@x.com", Name: "Ana", PasswordHash: "hash"})
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`db error: .*db down`), err.Error())
	assert.NotErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestPostgresCreate_OtherPgError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(insertQuery).
		WillReturnError(&pgconn.PgError{Code: "23502"})

	_, err := repo.Create(context.Background(), &models.User{Email: "ana@x.com"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestPostgresFindByEmail_Found(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(selectQuery).
		WithArgs("ana@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "password_hash"}).
			AddRow("u-1", "ana@x.com", "Ana", "hash"))

	got, err := repo.FindByEmail(context.Background(), "ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, &models.User{ID: "u-1", Email: "ana@x.com", Name: "Ana", PasswordHash: "hash"}, got)
}

func TestPostgresFindByEmail_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(selectQuery).
		WithArgs("ghost@x.com").
		WillReturnError(sql.ErrNoRows)

	got, err := repo.FindByEmail(context.Background(), "ghost@x.com")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPostgresFindByEmail_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(selectQuery).
		WithArgs("ana@x.com").
		WillReturnError(errors.New("db err"))

	_, err := repo.FindByEmail(context.Background(), "ana@x.com")
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`db error: .*db err`), err.Error())
}
