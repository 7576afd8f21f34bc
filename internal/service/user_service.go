package service

import (
	"context"
	"errors"

	"github.com/yossicon/shareit/internal/dto"
	"github.com/yossicon/shareit/internal/models"
	"github.com/yossicon/shareit/internal/repository"
	"gorm.io/gorm"
)

type UserService interface {
	AddUser(ctx context.Context, req dto.CreateUserRequest) (*models.User, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id uint, req dto.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) AddUser(ctx context.Context, req dto.CreateUserRequest) (*models.User, error) {
	user := &models.User{
		Name:  req.Name,
		Email: req.Email,
	}

	err := s.userRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.userRepo.FindByEmail(ctx, tx, req.Email)
		if err == nil {
			return ErrEmailInUse
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		// A concurrent insert can still slip past the lookup; the unique
		// index on email catches it.
		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrEmailInUse
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, foldGormNotFound(err, ErrUserNotFound)
	}
	return user, nil
}

func (s *userService) GetUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.FindAll(ctx)
}

func (s *userService) UpdateUser(ctx context.Context, id uint, req dto.UpdateUserRequest) (*models.User, error) {
	var result *models.User

	err := s.userRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.userRepo.FindByID(ctx, id)
		if err != nil {
			return foldGormNotFound(err, ErrUserNotFound)
		}

		if req.Email != "" {
			existing, err := s.userRepo.FindByEmail(ctx, tx, req.Email)
			switch {
			case err == nil && existing.ID != id:
				return ErrEmailInUse
			case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
				return err
			}
			user.Email = req.Email
		}
		if req.Name != "" {
			user.Name = req.Name
		}

		if err := s.userRepo.Save(ctx, tx, user); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrEmailInUse
			}
			return err
		}
		result = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		return foldGormNotFound(err, ErrUserNotFound)
	}
	return s.userRepo.Delete(ctx, id)
}
