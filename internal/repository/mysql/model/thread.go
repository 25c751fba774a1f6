package model

import (
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type Thread struct {
	ID        string    `gorm:"primaryKey;size:50"`
	Title     string    `gorm:"type:text;not null"`
	Body      string    `gorm:"type:text;not null"`
	Owner     string    `gorm:"column:owner;size:50;not null"`
	CreatedAt time.Time `gorm:"type:datetime(3)"`
}

func (Thread) TableName() string {
	return "threads"
}

func (m *Thread) ToDomain() domain.Thread {
	return domain.Thread{
		ID:        m.ID,
		Title:     m.Title,
		Body:      m.Body,
		Owner:     m.Owner,
		CreatedAt: m.CreatedAt,
	}
}

// ThreadWithUsername is the scan target for the detail query that joins the
// owner's username in.
type ThreadWithUsername struct {
	ID        string
	Title     string
	Body      string
	Owner     string
	Username  string
	CreatedAt time.Time
}

func (m *ThreadWithUsername) ToDomain() domain.Thread {
	return domain.Thread{
		ID:        m.ID,
		Title:     m.Title,
		Body:      m.Body,
		Owner:     m.Owner,
		Username:  m.Username,
		CreatedAt: m.CreatedAt,
	}
}
