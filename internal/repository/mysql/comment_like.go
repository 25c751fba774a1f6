package mysql

import (
	"context"
	"errors"
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql/model"
	driver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const mysqlErrDuplicateEntry = 1062

type commentLikeRepository struct {
	DB         *gorm.DB
	generateID repository.IDGenerator
}

var _ domain.CommentLikeRepository = (*commentLikeRepository)(nil)

func NewCommentLikeRepository(db *gorm.DB, generateID repository.IDGenerator) *commentLikeRepository {
	return &commentLikeRepository{
		DB:         db,
		generateID: generateID,
	}
}

func (r *commentLikeRepository) Get(ctx context.Context, commentID, userID string) (domain.CommentLike, error) {
	var row model.CommentLike
	err := r.DB.WithContext(ctx).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.CommentLike{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.CommentLike{}, err
	}

	return row.ToDomain(), nil
}

// Add inserts the like row. The unique (comment_id, user_id) key is the
// backstop for concurrent toggles that both observed "absent".
func (r *commentLikeRepository) Add(ctx context.Context, commentID, userID string) (domain.CommentLike, error) {
	row := model.CommentLike{
		ID:        "like-" + r.generateID(),
		CommentID: commentID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		var mysqlErr *driver.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return domain.CommentLike{}, domain.ErrConflict
		}
		return domain.CommentLike{}, err
	}

	return row.ToDomain(), nil
}

func (r *commentLikeRepository) Delete(ctx context.Context, commentID, userID string) error {
	result := r.DB.WithContext(ctx).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Delete(&model.CommentLike{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.InvariantError{Message: "comment like was not deleted"}
	}
	return nil
}

func (r *commentLikeRepository) CountByCommentIDs(ctx context.Context, commentIDs []string) (map[string]int64, error) {
	if len(commentIDs) == 0 {
		return map[string]int64{}, nil
	}

	var rows []struct {
		CommentID string
		Total     int64
	}
	err := r.DB.WithContext(ctx).
		Model(&model.CommentLike{}).
		Select("comment_id, COUNT(*) AS total").
		Where("comment_id IN ?", commentIDs).
		Group("comment_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.CommentID] = row.Total
	}
	return counts, nil
}
