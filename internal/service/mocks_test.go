package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"madrasa/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) ListExcept(ctx context.Context, excludeID uint) ([]model.User, error) {
	args := m.Called(ctx, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) UsernameTaken(ctx context.Context, username string, excludeID uint) (bool, error) {
	args := m.Called(ctx, username, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (int64, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockTokenStore is a mock implementation of auth.TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uint, username, role string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, username, role, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uint, string, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uint), args.String(1), args.String(2), args.Error(3)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *MockTokenStore) BlacklistAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsAccessTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

// MockStudentRepository is a mock implementation of repository.StudentRepository.
type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) Create(ctx context.Context, student *model.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *MockStudentRepository) ListByAdmin(ctx context.Context, adminID uint) ([]model.Student, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Student), args.Error(1)
}

func (m *MockStudentRepository) ListRecent(ctx context.Context, adminID uint, limit int) ([]model.Student, error) {
	args := m.Called(ctx, adminID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Student), args.Error(1)
}

func (m *MockStudentRepository) CountByAdmin(ctx context.Context, adminID uint) (int64, error) {
	args := m.Called(ctx, adminID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStudentRepository) CountByGrade(ctx context.Context, adminID uint, grade string) (int64, error) {
	args := m.Called(ctx, adminID, grade)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStudentRepository) Update(ctx context.Context, adminID, id uint, fields map[string]interface{}) (int64, error) {
	args := m.Called(ctx, adminID, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStudentRepository) Delete(ctx context.Context, adminID, id uint) (int64, error) {
	args := m.Called(ctx, adminID, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockTeacherRepository is a mock implementation of repository.TeacherRepository.
type MockTeacherRepository struct {
	mock.Mock
}

func (m *MockTeacherRepository) Create(ctx context.Context, teacher *model.Teacher) error {
	args := m.Called(ctx, teacher)
	return args.Error(0)
}

func (m *MockTeacherRepository) ListByAdmin(ctx context.Context, adminID uint) ([]model.Teacher, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Teacher), args.Error(1)
}

func (m *MockTeacherRepository) CountByAdmin(ctx context.Context, adminID uint) (int64, error) {
	args := m.Called(ctx, adminID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTeacherRepository) Update(ctx context.Context, adminID, id uint, fields map[string]interface{}) (int64, error) {
	args := m.Called(ctx, adminID, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTeacherRepository) Delete(ctx context.Context, adminID, id uint) (int64, error) {
	args := m.Called(ctx, adminID, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockSubjectRepository is a mock implementation of repository.SubjectRepository.
type MockSubjectRepository struct {
	mock.Mock
}

func (m *MockSubjectRepository) Create(ctx context.Context, subject *model.Subject) error {
	args := m.Called(ctx, subject)
	return args.Error(0)
}

func (m *MockSubjectRepository) ListByAdmin(ctx context.Context, adminID uint) ([]model.Subject, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Subject), args.Error(1)
}

func (m *MockSubjectRepository) CountByAdmin(ctx context.Context, adminID uint) (int64, error) {
	args := m.Called(ctx, adminID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubjectRepository) Update(ctx context.Context, adminID, id uint, fields map[string]interface{}) (int64, error) {
	args := m.Called(ctx, adminID, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubjectRepository) Delete(ctx context.Context, adminID, id uint) (int64, error) {
	args := m.Called(ctx, adminID, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockSubscriptionRepository is a mock implementation of repository.SubscriptionRepository.
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, subscription *model.Subscription) error {
	args := m.Called(ctx, subscription)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) ListByAdmin(ctx context.Context, adminID uint) ([]model.Subscription, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) CountByAdmin(ctx context.Context, adminID uint) (int64, error) {
	args := m.Called(ctx, adminID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriptionRepository) Update(ctx context.Context, adminID, id uint, fields map[string]interface{}) (int64, error) {
	args := m.Called(ctx, adminID, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriptionRepository) Delete(ctx context.Context, adminID, id uint) (int64, error) {
	args := m.Called(ctx, adminID, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockLevelRepository is a mock implementation of repository.LevelRepository.
type MockLevelRepository struct {
	mock.Mock
}

func (m *MockLevelRepository) Create(ctx context.Context, level *model.Level) error {
	args := m.Called(ctx, level)
	return args.Error(0)
}

func (m *MockLevelRepository) ListByAdmin(ctx context.Context, adminID uint) ([]model.Level, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Level), args.Error(1)
}

func (m *MockLevelRepository) FindByID(ctx context.Context, adminID, id uint) (*model.Level, error) {
	args := m.Called(ctx, adminID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Level), args.Error(1)
}

func (m *MockLevelRepository) NameTaken(ctx context.Context, adminID uint, name string, excludeID uint) (bool, error) {
	args := m.Called(ctx, adminID, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLevelRepository) Update(ctx context.Context, adminID, id uint, fields map[string]interface{}) (int64, error) {
	args := m.Called(ctx, adminID, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLevelRepository) Delete(ctx context.Context, adminID, id uint) (int64, error) {
	args := m.Called(ctx, adminID, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockSettingRepository is a mock implementation of repository.SettingRepository.
type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) FindByAdmin(ctx context.Context, adminID uint) (*model.Setting, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Setting), args.Error(1)
}

func (m *MockSettingRepository) UpsertNotifications(ctx context.Context, adminID uint, notifications model.NotificationSettings) error {
	args := m.Called(ctx, adminID, notifications)
	return args.Error(0)
}

func (m *MockSettingRepository) UpsertSystem(ctx context.Context, adminID uint, system model.SystemSettings) error {
	args := m.Called(ctx, adminID, system)
	return args.Error(0)
}
