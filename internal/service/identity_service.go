package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/example/remindcal/internal/model"
	"github.com/example/remindcal/internal/store"
)

// Ошибки валидации регистрации.
var (
	ErrEmptyUsername = errors.New("username is required")
	ErrEmptyEmail    = errors.New("email is required")
	ErrEmptyPassword = errors.New("password is required")
)

// IdentityService отвечает за заведение пользователей. Конвейер
// напоминаний работает от имени одного неявного пользователя, но
// сущность и регистрация сохранены на вырост.
type IdentityService struct {
	store *store.Store
	log   *zap.Logger
}

func NewIdentityService(st *store.Store, log *zap.Logger) *IdentityService {
	return &IdentityService{store: st, log: log}
}

// Signup создаёт пользователя. Пароль хранится только как bcrypt-хеш.
// Дубликат username/email всплывает ошибкой ограничения уникальности.
func (s *IdentityService) Signup(ctx context.Context, username, email, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" {
		return nil, ErrEmptyUsername
	}
	if email == "" {
		return nil, ErrEmptyEmail
	}
	if password == "" {
		return nil, ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username: username,
		Email:    email,
		Password: string(hash),
	}
	userID, err := s.store.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	s.log.Info("user created", zap.Int64("user_id", userID), zap.String("username", username))
	return user, nil
}

// EnsureDefaultUser заводит неявного пользователя, от имени которого
// создаются записи notifications/schedules, если его ещё нет.
// Идемпотентен, вызывается из корня композиции после Initialize.
func (s *IdentityService) EnsureDefaultUser(ctx context.Context) error {
	_, err := s.store.FindUserByUsername(ctx, "default")
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("ensure default user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("default"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash default password: %w", err)
	}
	if _, err := s.store.CreateUser(ctx, &model.User{
		Username: "default",
		Email:    "default@localhost",
		Password: string(hash),
	}); err != nil {
		return fmt.Errorf("ensure default user: %w", err)
	}

	s.log.Info("default user created")
	return nil
}
