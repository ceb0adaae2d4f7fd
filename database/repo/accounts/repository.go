package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/anoixa/photo-album/database"
	"github.com/anoixa/photo-album/database/models"
	"github.com/anoixa/photo-album/utils"
	"github.com/anoixa/photo-album/utils/password"
	"gorm.io/gorm"
)

// DefaultUsername 首次启动时创建的默认用户
const DefaultUsername = "admin"

// Repository 账户仓库 - 封装所有账户相关的数据库操作
type Repository struct {
	db database.Provider
}

// NewRepository 创建新的账户仓库
func NewRepository(db database.Provider) *Repository {
	return &Repository{db: db}
}

// CreateDefaultUser 用户表为空时创建默认用户
// 返回生成的明文密码，已存在用户时返回空字符串
func (r *Repository) CreateDefaultUser() (string, error) {
	var count int64
	if err := r.db.DB().Model(&models.User{}).Count(&count).Error; err != nil {
		return "", fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return "", nil
	}

	plain, err := utils.GenerateRandomString(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate random password: %w", err)
	}
	hashed, err := password.Hash(plain)
	if err != nil {
		return "", fmt.Errorf("failed to hash default password: %w", err)
	}

	user := &models.User{Username: DefaultUsername, Password: hashed}
	if err := r.CreateUser(user); err != nil {
		return "", err
	}
	return plain, nil
}

// GetUserByUsername 通过用户名获取用户，不存在时返回 (nil, nil)
func (r *Repository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User

	err := r.db.DB().Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// GetUserByID 通过ID获取用户，不存在时返回 (nil, nil)
func (r *Repository) GetUserByID(id uint) (*models.User, error) {
	var user models.User

	err := r.db.DB().Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// CreateUser 创建用户
func (r *Repository) CreateUser(user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
}

// UpdatePassword 更新用户密码哈希，用户不存在时返回 gorm.ErrRecordNotFound
func (r *Repository) UpdatePassword(username, hashed string) error {
	result := r.db.DB().
		Model(&models.User{}).
		Where("username = ?", username).
		Update("password", hashed)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UserExists 检查用户是否存在
func (r *Repository) UserExists(username string) (bool, error) {
	var count int64
	err := r.db.DB().Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// WithContext 返回带上下文的仓库
func (r *Repository) WithContext(ctx context.Context) *Repository {
	return &Repository{db: &contextProvider{Provider: r.db, ctx: ctx}}
}

// contextProvider 包装 Provider 添加上下文
type contextProvider struct {
	database.Provider
	ctx context.Context
}

func (c *contextProvider) DB() *gorm.DB {
	return c.Provider.WithContext(c.ctx)
}

func (c *contextProvider) Transaction(fn database.TxFunc) error {
	return c.Provider.TransactionWithContext(c.ctx, fn)
}
