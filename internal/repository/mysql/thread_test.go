package mysql_test

import (
	"context"
	"testing"
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
)

func TestThreadRepositoryAdd(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysql.NewThreadRepository(db, fixedID("123"))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `threads`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	added, err := repo.Add(context.Background(), "user-123", domain.NewThread{Title: "a thread", Body: "the body"})

	require.NoError(t, err)
	assert.Equal(t, domain.AddedThread{ID: "thread-123", Title: "a thread", Owner: "user-123"}, added)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestThreadRepositoryVerifyExists(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := mysql.NewThreadRepository(db, fixedID("123"))

		mock.ExpectQuery("SELECT (.+) FROM `threads`").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("thread-123"))

		assert.NoError(t, repo.VerifyExists(context.Background(), "thread-123"))
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := mysql.NewThreadRepository(db, fixedID("123"))

		mock.ExpectQuery("SELECT (.+) FROM `threads`").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		err := repo.VerifyExists(context.Background(), "thread-999")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestThreadRepositoryGetByID(t *testing.T) {
	createdAt := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	t.Run("found with the owner username joined", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := mysql.NewThreadRepository(db, fixedID("123"))

		rows := sqlmock.NewRows([]string{"id", "title", "body", "owner", "created_at", "username"}).
			AddRow("thread-123", "a thread", "the body", "user-123", createdAt, "johndoe")
		mock.ExpectQuery("SELECT (.+) FROM `threads` JOIN users ON users.id = threads.owner").
			WillReturnRows(rows)

		thread, err := repo.GetByID(context.Background(), "thread-123")

		require.NoError(t, err)
		assert.Equal(t, "a thread", thread.Title)
		assert.Equal(t, "johndoe", thread.Username)
		assert.Equal(t, createdAt, thread.CreatedAt)
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := mysql.NewThreadRepository(db, fixedID("123"))

		mock.ExpectQuery("SELECT (.+) FROM `threads` JOIN users").
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "body", "owner", "created_at", "username"}))

		_, err := repo.GetByID(context.Background(), "thread-999")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestThreadRepositoryFetchIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysql.NewThreadRepository(db, fixedID("123"))

	mock.ExpectQuery("SELECT `id` FROM `threads`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("thread-123").AddRow("thread-456"))

	ids, err := repo.FetchIDs(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"thread-123", "thread-456"}, ids)
}
