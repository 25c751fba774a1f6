package model

import (
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type CommentLike struct {
	ID        string    `gorm:"primaryKey;size:50"`
	CommentID string    `gorm:"column:comment_id;size:50;not null;uniqueIndex:uniq_comment_user"`
	UserID    string    `gorm:"column:user_id;size:50;not null;uniqueIndex:uniq_comment_user"`
	CreatedAt time.Time `gorm:"type:datetime(3)"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}

func (m *CommentLike) ToDomain() domain.CommentLike {
	return domain.CommentLike{
		ID:        m.ID,
		CommentID: m.CommentID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}
