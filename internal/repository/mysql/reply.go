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

type replyRepository struct {
	DB         *gorm.DB
	generateID repository.IDGenerator
}

var _ domain.ReplyRepository = (*replyRepository)(nil)

func NewReplyRepository(db *gorm.DB, generateID repository.IDGenerator) *replyRepository {
	return &replyRepository{
		DB:         db,
		generateID: generateID,
	}
}

func (r *replyRepository) Add(ctx context.Context, commentID, ownerID string, reply domain.NewReply) (domain.AddedReply, error) {
	row := model.Reply{
		ID:        "reply-" + r.generateID(),
		Content:   reply.Content,
		CommentID: commentID,
		Owner:     ownerID,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.AddedReply{}, err
	}

	return domain.NewAddedReply(row.ID, row.Content, row.Owner)
}

func (r *replyRepository) FetchByCommentIDs(ctx context.Context, commentIDs []string) ([]domain.Reply, error) {
	if len(commentIDs) == 0 {
		return []domain.Reply{}, nil
	}

	var rows []model.ReplyWithUsername
	err := r.DB.WithContext(ctx).
		Table("replies").
		Select("replies.id, replies.comment, replies.owner, users.username, replies.content, replies.created_at, replies.deleted_at").
		Joins("JOIN users ON users.id = replies.owner").
		Where("replies.comment IN ?", commentIDs).
		Order("replies.created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Reply, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}

func (r *replyRepository) VerifyExists(ctx context.Context, replyID string) error {
	var row model.Reply
	err := r.DB.WithContext(ctx).Select("id").First(&row, "id = ?", replyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

func (r *replyRepository) VerifyOwner(ctx context.Context, replyID, userID string) error {
	var row model.Reply
	err := r.DB.WithContext(ctx).
		Select("id").
		Where("id = ? AND owner = ?", replyID, userID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrForbidden
	}
	return err
}

func (r *replyRepository) Delete(ctx context.Context, replyID string) error {
	result := r.DB.WithContext(ctx).
		Model(&model.Reply{}).
		Where("id = ? AND deleted_at IS NULL", replyID).
		Update("deleted_at", time.Now().UTC())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.InvariantError{Message: "reply was not deleted"}
	}
	return nil
}
