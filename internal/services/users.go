package services

// 用户服务：提供账号注册、查询与口令校验能力。

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bloglist/internal/storage"
)

// mysqlDupEntry 为 MySQL 唯一约束冲突的错误码（ER_DUP_ENTRY）。
const mysqlDupEntry = 1062

// UserService 提供基础用户 CRUD 与口令校验。
type UserService struct{ db *gorm.DB }

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

func (s *UserService) FindByUsername(ctx context.Context, username string) (*storage.User, error) {
	var u storage.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserService) FindByID(ctx context.Context, id uint64) (*storage.User, error) {
	var u storage.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// CheckPassword 校验用户口令（bcrypt）。
func (s *UserService) CheckPassword(u *storage.User, password string) bool {
	if u.Password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

// ValidateRegistration 校验注册输入：用户名与口令均必填且不少于 3 个字符（按字符数而非字节数）。
func ValidateRegistration(username, password string) error {
	if username == "" || password == "" {
		return validationError("username or password missing")
	}
	if utf8.RuneCountInString(username) < 3 {
		return validationError("username must be at least 3 characters long")
	}
	if utf8.RuneCountInString(password) < 3 {
		return validationError("password must be at least 3 characters long")
	}
	return nil
}

// Create 注册新账号：校验输入、哈希口令并写库。
// 用户名唯一性由数据库唯一索引保证，冲突映射为 ErrUsernameTaken。
func (s *UserService) Create(ctx context.Context, username, password, name string) (*storage.User, error) {
	if err := ValidateRegistration(username, password); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &storage.User{Username: username, Password: string(hash), Name: name}
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlDupEntry {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return u, nil
}

// List 返回全部账号及各自的文章（用于 GET /api/users 的摘要展示）。
func (s *UserService) List(ctx context.Context) ([]storage.User, error) {
	var users []storage.User
	if err := s.db.WithContext(ctx).Preload("Posts").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
