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

type userRepository struct {
	DB         *gorm.DB
	generateID repository.IDGenerator
}

var _ domain.UserRepository = (*userRepository)(nil)

// NewUserRepository will create an implementation of domain.UserRepository
func NewUserRepository(db *gorm.DB, generateID repository.IDGenerator) *userRepository {
	return &userRepository{
		DB:         db,
		generateID: generateID,
	}
}

func (r *userRepository) Insert(ctx context.Context, u *domain.User) error {
	if u.ID == "" {
		u.ID = "user-" + r.generateID()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}

	row := model.NewUserFromDomain(u)
	if err := r.DB.WithContext(ctx).Create(row).Error; err != nil {
		var mysqlErr *driver.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	var row model.User
	if err := r.DB.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}

	return row.ToDomain(), nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	var row model.User
	if err := r.DB.WithContext(ctx).First(&row, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}

	return row.ToDomain(), nil
}
