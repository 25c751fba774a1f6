package model

import (
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type Reply struct {
	ID        string     `gorm:"primaryKey;size:50"`
	Content   string     `gorm:"type:text;not null"`
	CommentID string     `gorm:"column:comment;size:50;not null"`
	Owner     string     `gorm:"column:owner;size:50;not null"`
	CreatedAt time.Time  `gorm:"type:datetime(3)"`
	DeletedAt *time.Time `gorm:"column:deleted_at;type:datetime(3)"`
}

func (Reply) TableName() string {
	return "replies"
}

// ReplyWithUsername is the scan target for the thread-detail query.
type ReplyWithUsername struct {
	ID        string
	CommentID string `gorm:"column:comment"`
	Owner     string
	Username  string
	Content   string
	CreatedAt time.Time
	DeletedAt *time.Time
}

func (m *ReplyWithUsername) ToDomain() domain.Reply {
	return domain.Reply{
		ID:        m.ID,
		CommentID: m.CommentID,
		Owner:     m.Owner,
		Username:  m.Username,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		DeletedAt: m.DeletedAt,
	}
}
