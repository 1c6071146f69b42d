package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"bloglist/internal/storage"
)

// AuditService 将审计日志持久化到数据库。
type AuditService struct{ db *gorm.DB }

func NewAuditService(db *gorm.DB) *AuditService { return &AuditService{db: db} }

// Write 写入一条审计日志。写入失败不影响业务请求。
func (s *AuditService) Write(ctx context.Context, level, event string, userID, postID *uint64, desc, ip string) {
	_ = s.db.WithContext(ctx).Create(&storage.AuditRecord{
		Timestamp:   time.Now(),
		Level:       level,
		Event:       event,
		UserID:      userID,
		PostID:      postID,
		Description: desc,
		IPAddress:   ip,
	}).Error
}
