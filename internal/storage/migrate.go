package storage

import (
	"time"

	"gorm.io/gorm"
)

// 本文件定义服务使用的所有 GORM 模型，集中管理数据结构。

type User struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"size:190;uniqueIndex" json:"username"`
	Password  string    `gorm:"size:255" json:"-"` // 已哈希的口令
	Name      string    `gorm:"size:190" json:"name,omitempty"`
	Posts     []Post    `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type Post struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"size:255" json:"title"`
	Author    string    `gorm:"size:190;index" json:"author,omitempty"`
	URL       string    `gorm:"size:512" json:"url"`
	Likes     int       `gorm:"not null;default:0" json:"likes"`
	UserID    uint64    `gorm:"index" json:"-"` // 所有者账号 ID
	User      *User     `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// AuditRecord 记录关键操作的审计信息（注册、登录、文章变更）。
type AuditRecord struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	Timestamp   time.Time `gorm:"index"`
	Level       string    `gorm:"size:16;index"`
	Event       string    `gorm:"size:64;index"`
	UserID      *uint64   `gorm:"index"`
	PostID      *uint64   `gorm:"index"`
	Description string    `gorm:"size:255"`
	IPAddress   string    `gorm:"size:64"`
}

// autoMigrate 执行数据库自动迁移。
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{}, &Post{}, &AuditRecord{})
}
