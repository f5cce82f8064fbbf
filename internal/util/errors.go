package util

import "errors"

var (
	ErrUserNotFound       = errors.New("用户不存在")
	ErrEmailRegistered    = errors.New("该邮箱已被注册")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPatternNotFound    = errors.New("pattern not found")
	ErrInvalidStatus      = errors.New("invalid learning status")
	ErrInvalidQuestion    = errors.New("invalid question type")
	ErrTokenRevoked       = errors.New("token revoked")
)
