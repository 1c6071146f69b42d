package services

// 文章服务：封装文章的增删改查与所有权检查。

import (
	"context"

	"gorm.io/gorm"

	"bloglist/internal/storage"
)

// PostService 提供文章 CRUD 与删除时的所有权校验。
type PostService struct{ db *gorm.DB }

func NewPostService(db *gorm.DB) *PostService { return &PostService{db: db} }

// CreatePostInput 为新建文章的输入。Likes 使用指针以区分“未提供”与显式 0：
// 缺省时落库为 0，显式 0 原样保留。
type CreatePostInput struct {
	Title  string
	Author string
	URL    string
	Likes  *int
}

// UpdatePostInput 为部分更新的输入，nil 字段保持原值。
type UpdatePostInput struct {
	Title  *string
	Author *string
	URL    *string
	Likes  *int
}

// NewPostFromInput 校验输入并构造待持久化的文章记录。
// title 与 url 必填；likes 缺省为 0。
func NewPostFromInput(in CreatePostInput, ownerID uint64) (*storage.Post, error) {
	if in.Title == "" || in.URL == "" {
		return nil, validationError("title and url are required")
	}
	likes := 0
	if in.Likes != nil {
		likes = *in.Likes
	}
	return &storage.Post{
		Title:  in.Title,
		Author: in.Author,
		URL:    in.URL,
		Likes:  likes,
		UserID: ownerID,
	}, nil
}

// List 返回全部文章并预加载所有者账号。
func (s *PostService) List(ctx context.Context) ([]storage.Post, error) {
	var posts []storage.Post
	if err := s.db.WithContext(ctx).Preload("User").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostService) FindByID(ctx context.Context, id uint64) (*storage.Post, error) {
	var p storage.Post
	if err := s.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Create 校验并持久化新文章，文章归属 ownerID 对应的账号。
func (s *PostService) Create(ctx context.Context, in CreatePostInput, ownerID uint64) (*storage.Post, error) {
	p, err := NewPostFromInput(in, ownerID)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// Update 对文章做部分更新：仅覆盖调用方提供的字段。
// 提供但为空的 title/url 视为校验失败；目标不存在返回 gorm.ErrRecordNotFound。
func (s *PostService) Update(ctx context.Context, id uint64, in UpdatePostInput) (*storage.Post, error) {
	if in.Title != nil && *in.Title == "" {
		return nil, validationError("title must not be empty")
	}
	if in.URL != nil && *in.URL == "" {
		return nil, validationError("url must not be empty")
	}
	var p storage.Post
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Author != nil {
		p.Author = *in.Author
	}
	if in.URL != nil {
		p.URL = *in.URL
	}
	if in.Likes != nil {
		p.Likes = *in.Likes
	}
	if err := s.db.WithContext(ctx).Save(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// CheckOwnership 校验请求者是否为文章所有者，非所有者返回 ErrNotOwner。
func CheckOwnership(p *storage.Post, requesterID uint64) error {
	if p.UserID != requesterID {
		return ErrNotOwner
	}
	return nil
}

// Delete 删除文章。仅所有者可删除：requesterID 与文章 UserID 不一致时返回 ErrNotOwner，
// 文章保持不变；目标不存在返回 gorm.ErrRecordNotFound（由调用方决定如何呈现）。
func (s *PostService) Delete(ctx context.Context, id, requesterID uint64) error {
	var p storage.Post
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return err
	}
	if err := CheckOwnership(&p, requesterID); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&p).Error
}
