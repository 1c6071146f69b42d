package services

import "errors"

// ValidationError 表示请求数据未通过校验，应映射为 400 响应。
type ValidationError struct{ Reason string }

func (e *ValidationError) Error() string { return e.Reason }

func validationError(reason string) error { return &ValidationError{Reason: reason} }

var (
	// ErrUsernameTaken 表示用户名唯一约束冲突。
	ErrUsernameTaken = errors.New("username must be unique")
	// ErrNotOwner 表示请求者不是目标文章的所有者。
	ErrNotOwner = errors.New("only the owner may delete a post")
	// ErrInvalidToken 表示令牌缺失、签名无效、已过期或缺少身份声明。
	ErrInvalidToken = errors.New("invalid_token")
	// ErrBadCredentials 表示用户名不存在或口令错误。
	ErrBadCredentials = errors.New("invalid username or password")
)
