package model

import (
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type Comment struct {
	ID        string     `gorm:"primaryKey;size:50"`
	Content   string     `gorm:"type:text;not null"`
	ThreadID  string     `gorm:"column:thread;size:50;not null"`
	Owner     string     `gorm:"column:owner;size:50;not null"`
	CreatedAt time.Time  `gorm:"type:datetime(3)"`
	DeletedAt *time.Time `gorm:"column:deleted_at;type:datetime(3)"`
}

func (Comment) TableName() string {
	return "comments"
}

// CommentWithUsername is the scan target for the thread-detail query.
type CommentWithUsername struct {
	ID        string
	ThreadID  string `gorm:"column:thread"`
	Owner     string
	Username  string
	Content   string
	CreatedAt time.Time
	DeletedAt *time.Time
}

func (m *CommentWithUsername) ToDomain() domain.Comment {
	return domain.Comment{
		ID:        m.ID,
		ThreadID:  m.ThreadID,
		Owner:     m.Owner,
		Username:  m.Username,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		DeletedAt: m.DeletedAt,
	}
}
