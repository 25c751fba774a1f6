package model

import (
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type User struct {
	ID        string    `gorm:"primaryKey;size:50"`
	Username  string    `gorm:"size:50;not null;uniqueIndex"`
	Password  string    `gorm:"type:text;not null"`
	Fullname  string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"type:datetime(3)"`
}

func (User) TableName() string {
	return "users"
}

func NewUserFromDomain(u *domain.User) *User {
	return &User{
		ID:        u.ID,
		Username:  u.Username,
		Password:  u.Password,
		Fullname:  u.Fullname,
		CreatedAt: u.CreatedAt,
	}
}

func (m *User) ToDomain() domain.User {
	return domain.User{
		ID:        m.ID,
		Username:  m.Username,
		Password:  m.Password,
		Fullname:  m.Fullname,
		CreatedAt: m.CreatedAt,
	}
}
