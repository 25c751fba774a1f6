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

type commentRepository struct {
	DB         *gorm.DB
	generateID repository.IDGenerator
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB, generateID repository.IDGenerator) *commentRepository {
	return &commentRepository{
		DB:         db,
		generateID: generateID,
	}
}

func (r *commentRepository) Add(ctx context.Context, ownerID, threadID string, c domain.NewComment) (domain.AddedComment, error) {
	row := model.Comment{
		ID:        "comment-" + r.generateID(),
		Content:   c.Content,
		ThreadID:  threadID,
		Owner:     ownerID,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.AddedComment{}, err
	}

	return domain.NewAddedComment(row.ID, row.Content, row.Owner)
}

// Delete soft-deletes: only a live row is stamped, so a repeated delete
// affects zero rows and surfaces as an invariant violation.
func (r *commentRepository) Delete(ctx context.Context, commentID string) error {
	result := r.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ? AND deleted_at IS NULL", commentID).
		Update("deleted_at", time.Now().UTC())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.InvariantError{Message: "comment was not deleted"}
	}
	return nil
}

func (r *commentRepository) VerifyExists(ctx context.Context, commentID string) error {
	var row model.Comment
	err := r.DB.WithContext(ctx).Select("id").First(&row, "id = ?", commentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

func (r *commentRepository) VerifyOwner(ctx context.Context, commentID, userID string) error {
	var row model.Comment
	err := r.DB.WithContext(ctx).
		Select("id").
		Where("id = ? AND owner = ?", commentID, userID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrForbidden
	}
	return err
}

func (r *commentRepository) FetchByThreadID(ctx context.Context, threadID string) ([]domain.Comment, error) {
	var rows []model.CommentWithUsername
	err := r.DB.WithContext(ctx).
		Table("comments").
		Select("comments.id, comments.thread, comments.owner, users.username, comments.content, comments.created_at, comments.deleted_at").
		Joins("JOIN users ON users.id = comments.owner").
		Where("comments.thread = ?", threadID).
		Order("comments.created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Comment, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}
