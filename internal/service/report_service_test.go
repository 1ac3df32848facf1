package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"madrasa/internal/model"
)

func price(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestBuildReports(t *testing.T) {
	studentRepo := new(MockStudentRepository)
	teacherRepo := new(MockTeacherRepository)
	subjectRepo := new(MockSubjectRepository)
	subscriptionRepo := new(MockSubscriptionRepository)
	svc := NewReportService(studentRepo, teacherRepo, subjectRepo, subscriptionRepo, nil)

	students := []model.Student{
		{Name: "Lina", Grade: "Grade 8", Status: model.StatusActive},
		{Name: "Yousef", Grade: "Grade 8", Status: model.StatusInactive},
		{Name: "Maha", Grade: "", Status: model.StatusActive},
	}
	teachers := []model.Teacher{
		{Name: "Sara", Subject: "Math"},
		{Name: "Omar", Subject: ""},
	}
	subjects := []model.Subject{
		{Name: "Math"},
	}
	subscriptions := []model.Subscription{
		{StudentName: "Lina", Subject: "Math", Teacher: "Sara", Price: price(300), PaymentStatus: model.PaymentPaid},
		{StudentName: "Yousef", Subject: "Math", Teacher: "Sara", Price: price(200), PaymentStatus: model.PaymentUnpaid},
	}

	studentRepo.On("ListByAdmin", mock.Anything, uint(1)).Return(students, nil)
	teacherRepo.On("ListByAdmin", mock.Anything, uint(1)).Return(teachers, nil)
	subjectRepo.On("ListByAdmin", mock.Anything, uint(1)).Return(subjects, nil)
	subscriptionRepo.On("ListByAdmin", mock.Anything, uint(1)).Return(subscriptions, nil)

	result, err := svc.BuildReports(context.Background(), 1)
	assert.NoError(t, err)

	// Grades sort alphabetically, "Grade 8" before "unspecified".
	assert.Len(t, result.StudentReport, 2)
	grade8 := result.StudentReport[0]
	assert.Equal(t, "Grade 8", grade8.Grade)
	assert.Equal(t, 2, grade8.TotalStudents)
	assert.Equal(t, 1, grade8.ActiveStudents)
	assert.Equal(t, 1, grade8.InactiveStudents)
	assert.InDelta(t, 50.0, grade8.Percentage, 0.001)
	assert.Equal(t, unspecifiedKey, result.StudentReport[1].Grade)

	assert.Len(t, result.TeacherReport, 2)
	omar, sara := result.TeacherReport[0], result.TeacherReport[1]
	assert.Equal(t, "Omar", omar.Teacher)
	assert.Equal(t, unspecifiedKey, omar.Subject)
	assert.Equal(t, 0, omar.StudentsCount)
	assert.True(t, omar.Revenue.IsZero())
	assert.Equal(t, "Sara", sara.Teacher)
	assert.Equal(t, 2, sara.StudentsCount)
	assert.True(t, sara.Revenue.Equal(price(500)))
	assert.InDelta(t, defaultTeacherRating, sara.Rating, 0.001)

	assert.Len(t, result.SubjectReport, 1)
	math := result.SubjectReport[0]
	assert.Equal(t, 2, math.StudentsCount)
	assert.True(t, math.Revenue.Equal(price(500)))
	assert.InDelta(t, defaultCompletion, math.CompletionRate, 0.001)

	assert.Equal(t, 3, result.Summary.TotalStudents)
	assert.True(t, result.Summary.TotalRevenue.Equal(price(500)))
	assert.InDelta(t, defaultTeacherRating, result.Summary.AverageRating, 0.001)
	assert.Equal(t, 2, result.Summary.TotalTeachers)
	assert.Equal(t, 1, result.Summary.TotalSubjects)
	assert.Equal(t, 2, result.Summary.TotalSubscriptions)
}

func TestBuildReportsEmptyTenant(t *testing.T) {
	studentRepo := new(MockStudentRepository)
	teacherRepo := new(MockTeacherRepository)
	subjectRepo := new(MockSubjectRepository)
	subscriptionRepo := new(MockSubscriptionRepository)
	svc := NewReportService(studentRepo, teacherRepo, subjectRepo, subscriptionRepo, nil)

	studentRepo.On("ListByAdmin", mock.Anything, uint(1)).Return([]model.Student{}, nil)
	teacherRepo.On("ListByAdmin", mock.Anything, uint(1)).Return([]model.Teacher{}, nil)
	subjectRepo.On("ListByAdmin", mock.Anything, uint(1)).Return([]model.Subject{}, nil)
	subscriptionRepo.On("ListByAdmin", mock.Anything, uint(1)).Return([]model.Subscription{}, nil)

	result, err := svc.BuildReports(context.Background(), 1)
	assert.NoError(t, err)

	assert.Empty(t, result.StudentReport)
	assert.Empty(t, result.TeacherReport)
	assert.Empty(t, result.SubjectReport)
	assert.Equal(t, 0, result.Summary.TotalStudents)
	assert.True(t, result.Summary.TotalRevenue.IsZero())
	assert.Zero(t, result.Summary.AverageRating)
}

func TestBuildRevenue(t *testing.T) {
	studentRepo := new(MockStudentRepository)
	teacherRepo := new(MockTeacherRepository)
	subjectRepo := new(MockSubjectRepository)
	subscriptionRepo := new(MockSubscriptionRepository)
	svc := NewReportService(studentRepo, teacherRepo, subjectRepo, subscriptionRepo, nil)

	subscriptions := []model.Subscription{
		{ID: 1, StudentName: "Lina", Subject: "Math", Price: price(300), PaymentStatus: model.PaymentPaid, PaymentMethod: "cash"},
		{ID: 2, StudentName: "Lina", Subject: "Math", Price: price(100), PaymentStatus: model.PaymentUnpaid, PaymentMethod: "card"},
		{ID: 3, StudentName: "Yousef", Subject: "Physics", Price: price(100), PaymentStatus: model.PaymentPaid, PaymentMethod: "cash"},
	}
	subscriptionRepo.On("ListByAdmin", mock.Anything, uint(1)).Return(subscriptions, nil)

	result, err := svc.BuildRevenue(context.Background(), 1)
	assert.NoError(t, err)

	assert.Len(t, result.RevenueData, 3)

	stats := result.Statistics
	assert.True(t, stats.TotalRevenue.Equal(price(500)))
	assert.True(t, stats.PaidRevenue.Equal(price(400)))
	assert.True(t, stats.PendingRevenue.Equal(price(100)))
	assert.True(t, stats.AverageRevenue.Equal(decimal.RequireFromString("166.67")))
	assert.Equal(t, 3, stats.TotalTransactions)

	assert.Len(t, result.PaymentMethodStats, 2)
	card, cash := result.PaymentMethodStats[0], result.PaymentMethodStats[1]
	assert.Equal(t, "card", card.Method)
	assert.Equal(t, 1, card.Count)
	assert.InDelta(t, 20.0, card.Percentage, 0.001)
	assert.Equal(t, "cash", cash.Method)
	assert.Equal(t, 2, cash.Count)
	assert.True(t, cash.Amount.Equal(price(400)))
	assert.InDelta(t, 80.0, cash.Percentage, 0.001)

	assert.Len(t, result.SubjectStats, 2)
	math := result.SubjectStats[0]
	assert.Equal(t, "Math", math.Subject)
	assert.True(t, math.Revenue.Equal(price(400)))
	assert.Equal(t, 1, math.Students)
}

func TestBuildRevenueEmptyTenant(t *testing.T) {
	studentRepo := new(MockStudentRepository)
	teacherRepo := new(MockTeacherRepository)
	subjectRepo := new(MockSubjectRepository)
	subscriptionRepo := new(MockSubscriptionRepository)
	svc := NewReportService(studentRepo, teacherRepo, subjectRepo, subscriptionRepo, nil)

	subscriptionRepo.On("ListByAdmin", mock.Anything, uint(1)).Return([]model.Subscription{}, nil)

	result, err := svc.BuildRevenue(context.Background(), 1)
	assert.NoError(t, err)

	assert.Empty(t, result.RevenueData)
	assert.True(t, result.Statistics.TotalRevenue.IsZero())
	assert.True(t, result.Statistics.AverageRevenue.IsZero())
	assert.Equal(t, 0, result.Statistics.TotalTransactions)
	assert.Empty(t, result.PaymentMethodStats)
	assert.Empty(t, result.SubjectStats)
}

func TestDashboardStats(t *testing.T) {
	studentRepo := new(MockStudentRepository)
	teacherRepo := new(MockTeacherRepository)
	subjectRepo := new(MockSubjectRepository)
	subscriptionRepo := new(MockSubscriptionRepository)
	svc := NewReportService(studentRepo, teacherRepo, subjectRepo, subscriptionRepo, nil)

	recent := []model.Student{{ID: 5, Name: "Lina"}}
	studentRepo.On("CountByAdmin", mock.Anything, uint(1)).Return(int64(12), nil)
	teacherRepo.On("CountByAdmin", mock.Anything, uint(1)).Return(int64(3), nil)
	subjectRepo.On("CountByAdmin", mock.Anything, uint(1)).Return(int64(4), nil)
	subscriptionRepo.On("ListByAdmin", mock.Anything, uint(1)).Return([]model.Subscription{
		{Price: price(300)}, {Price: price(200)},
	}, nil)
	studentRepo.On("ListRecent", mock.Anything, uint(1), recentStudentsLimit).Return(recent, nil)

	result, err := svc.DashboardStats(context.Background(), 1)
	assert.NoError(t, err)

	assert.Equal(t, int64(12), result.Stats.TotalStudents)
	assert.Equal(t, int64(3), result.Stats.TotalTeachers)
	assert.Equal(t, int64(4), result.Stats.TotalSubjects)
	assert.Equal(t, int64(2), result.Stats.TotalSubscriptions)
	assert.True(t, result.Stats.TotalRevenue.Equal(price(500)))
	assert.Equal(t, recent, result.RecentStudents)
}
