package mysql_test

import (
	"context"
	"testing"
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql"
	driver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
)

func TestUserRepositoryInsert(t *testing.T) {
	t.Run("assigns a prefixed id", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := mysql.NewUserRepository(db, fixedID("123"))

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `users`").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		u := domain.User{Username: "johndoe", Password: "hashed", Fullname: "John Doe"}
		require.NoError(t, repo.Insert(context.Background(), &u))
		assert.Equal(t, "user-123", u.ID)
	})

	t.Run("taken username maps to conflict", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := mysql.NewUserRepository(db, fixedID("123"))

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `users`").
			WillReturnError(&driver.MySQLError{Number: 1062, Message: "Duplicate entry"})
		mock.ExpectRollback()

		u := domain.User{Username: "johndoe", Password: "hashed", Fullname: "John Doe"}
		err := repo.Insert(context.Background(), &u)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestUserRepositoryGetByUsername(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := mysql.NewUserRepository(db, fixedID("123"))

		createdAt := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows([]string{"id", "username", "password", "fullname", "created_at"}).
			AddRow("user-123", "johndoe", "hashed", "John Doe", createdAt)
		mock.ExpectQuery("SELECT (.+) FROM `users`").
			WillReturnRows(rows)

		u, err := repo.GetByUsername(context.Background(), "johndoe")

		require.NoError(t, err)
		assert.Equal(t, "user-123", u.ID)
		assert.Equal(t, "hashed", u.Password)
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := mysql.NewUserRepository(db, fixedID("123"))

		mock.ExpectQuery("SELECT (.+) FROM `users`").
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "fullname", "created_at"}))

		_, err := repo.GetByUsername(context.Background(), "nobody")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
