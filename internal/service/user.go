package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/TahaKhan8899/goal-tracker/internal/model"
	"github.com/TahaKhan8899/goal-tracker/internal/repository"
	"github.com/TahaKhan8899/goal-tracker/internal/validation"
)

type UserService struct {
	userRepository repository.UserRepository
}

func NewUserService(userRepository repository.UserRepository) *UserService {
	return &UserService{
		userRepository: userRepository,
	}
}

func (s *UserService) ByEmail(email string) (*model.User, error) {
	return s.userRepository.ByEmail(email)
}

func (s *UserService) All() ([]*model.User, error) {
	return s.userRepository.All()
}

// Create provisions a user. There is no self-registration flow: login
// only recognizes existing users, so this is reached from the useradd
// CLI.
func (s *UserService) Create(email, name string) (*model.User, error) {
	err := validation.ValidateEmail(email)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:        uuid.New().String(),
		Email:     email,
		Name:      name,
		CreatedAt: time.Now(),
	}

	err = s.userRepository.Create(user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
