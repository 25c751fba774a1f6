package mysql

import (
	"context"
	"errors"
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql/model"
	"gorm.io/gorm"
)

type threadRepository struct {
	DB         *gorm.DB
	generateID repository.IDGenerator
}

var _ domain.ThreadRepository = (*threadRepository)(nil)

func NewThreadRepository(db *gorm.DB, generateID repository.IDGenerator) *threadRepository {
	return &threadRepository{
		DB:         db,
		generateID: generateID,
	}
}

func (r *threadRepository) Add(ctx context.Context, ownerID string, t domain.NewThread) (domain.AddedThread, error) {
	row := model.Thread{
		ID:        "thread-" + r.generateID(),
		Title:     t.Title,
		Body:      t.Body,
		Owner:     ownerID,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.AddedThread{}, err
	}

	return domain.NewAddedThread(row.ID, row.Title, row.Owner)
}

func (r *threadRepository) VerifyExists(ctx context.Context, threadID string) error {
	var row model.Thread
	err := r.DB.WithContext(ctx).Select("id").First(&row, "id = ?", threadID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

func (r *threadRepository) GetByID(ctx context.Context, threadID string) (domain.Thread, error) {
	var row model.ThreadWithUsername
	err := r.DB.WithContext(ctx).
		Table("threads").
		Select("threads.id, threads.title, threads.body, threads.owner, threads.created_at, users.username").
		Joins("JOIN users ON users.id = threads.owner").
		Where("threads.id = ?", threadID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Thread{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Thread{}, err
	}

	return row.ToDomain(), nil
}

func (r *threadRepository) FetchIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.DB.WithContext(ctx).Model(&model.Thread{}).Pluck("id", &ids).Error
	return ids, err
}
