package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"pattern_edu_backend/internal/model"
	"pattern_edu_backend/internal/repository"
	"pattern_edu_backend/internal/util"

	"gorm.io/gorm"
)

// UserService 处理用户资料相关的业务逻辑
type UserService struct {
	UserRepo *repository.UserRepository
	Storage  *StorageService
}

func NewUserService(userRepo *repository.UserRepository, storage *StorageService) *UserService {
	return &UserService{
		UserRepo: userRepo,
		Storage:  storage,
	}
}

func (s *UserService) GetUserByID(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

// ProfileUpdate 可更新的资料字段
type ProfileUpdate struct {
	Name     string `json:"name"`
	Language string `json:"language"`
}

func (s *UserService) UpdateProfile(userID uint, update ProfileUpdate) (*model.User, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if update.Name != "" {
		user.Name = update.Name
	}
	if update.Language != "" {
		user.Language = update.Language
	}
	user.UpdatedAt = time.Now()

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UploadAvatar 校验扩展名后存储头像并更新用户记录
func (s *UserService) UploadAvatar(ctx context.Context, userID uint, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	allowed := false
	for _, e := range util.AllowedAvatarExtensions {
		if e == ext {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", fmt.Errorf("unsupported avatar extension: %s", ext)
	}
	if size > util.MaxAvatarSize {
		return "", fmt.Errorf("avatar too large: %d bytes", size)
	}

	user, err := s.GetUserByID(userID)
	if err != nil {
		return "", err
	}

	object := fmt.Sprintf("avatars/%d%s", userID, ext)
	url, err := s.Storage.Upload(ctx, object, reader, size, contentType)
	if err != nil {
		return "", err
	}

	user.Avatar = url
	user.UpdatedAt = time.Now()
	if err := s.UserRepo.Update(user); err != nil {
		return "", err
	}

	return url, nil
}
