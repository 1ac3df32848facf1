package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"madrasa/internal/cache"
	"madrasa/internal/model"
	"madrasa/internal/repository"
)

const (
	dashboardCacheTTL    = time.Minute
	recentStudentsLimit  = 5
	defaultTeacherRating = 4.5
	defaultCompletion    = 75.0
	// unspecifiedKey groups rows whose classifying field was left empty.
	unspecifiedKey = "unspecified"
)

// GradeReport aggregates the tenant's students for one grade.
type GradeReport struct {
	Grade            string  `json:"grade"`
	TotalStudents    int     `json:"totalStudents"`
	ActiveStudents   int     `json:"activeStudents"`
	InactiveStudents int     `json:"inactiveStudents"`
	Percentage       float64 `json:"percentage"`
}

// TeacherReport aggregates subscriptions per teacher.
type TeacherReport struct {
	Teacher       string          `json:"teacher"`
	Subject       string          `json:"subject"`
	StudentsCount int             `json:"studentsCount"`
	Revenue       decimal.Decimal `json:"revenue"`
	Rating        float64         `json:"rating"`
}

// SubjectReport aggregates subscriptions per subject.
type SubjectReport struct {
	Subject        string          `json:"subject"`
	StudentsCount  int             `json:"studentsCount"`
	Revenue        decimal.Decimal `json:"revenue"`
	CompletionRate float64         `json:"completionRate"`
}

// ReportSummary holds the tenant-wide totals.
type ReportSummary struct {
	TotalStudents      int             `json:"totalStudents"`
	TotalRevenue       decimal.Decimal `json:"totalRevenue"`
	AverageRating      float64         `json:"averageRating"`
	TotalTeachers      int             `json:"totalTeachers"`
	TotalSubjects      int             `json:"totalSubjects"`
	TotalSubscriptions int             `json:"totalSubscriptions"`
}

// ReportsResult is the full reports payload.
type ReportsResult struct {
	StudentReport []GradeReport   `json:"studentReport"`
	TeacherReport []TeacherReport `json:"teacherReport"`
	SubjectReport []SubjectReport `json:"subjectReport"`
	Summary       ReportSummary   `json:"summary"`
}

// RevenueRow is one subscription flattened for the revenue table.
type RevenueRow struct {
	ID            uint            `json:"id"`
	Date          string          `json:"date"`
	StudentName   string          `json:"studentName"`
	Subject       string          `json:"subject"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	Status        string          `json:"status"`
	Teacher       string          `json:"teacher"`
	StartDate     string          `json:"startDate"`
	EndDate       string          `json:"endDate"`
}

// RevenueStatistics holds the revenue totals.
type RevenueStatistics struct {
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	PaidRevenue       decimal.Decimal `json:"paidRevenue"`
	PendingRevenue    decimal.Decimal `json:"pendingRevenue"`
	AverageRevenue    decimal.Decimal `json:"averageRevenue"`
	TotalTransactions int             `json:"totalTransactions"`
}

// PaymentMethodStat aggregates revenue per payment method.
type PaymentMethodStat struct {
	Method     string          `json:"method"`
	Count      int             `json:"count"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"`
}

// SubjectStat aggregates revenue and distinct students per subject.
type SubjectStat struct {
	Subject  string          `json:"subject"`
	Revenue  decimal.Decimal `json:"revenue"`
	Students int             `json:"students"`
}

// RevenueResult is the full revenue payload.
type RevenueResult struct {
	RevenueData        []RevenueRow        `json:"revenueData"`
	Statistics         RevenueStatistics   `json:"statistics"`
	PaymentMethodStats []PaymentMethodStat `json:"paymentMethodStats"`
	SubjectStats       []SubjectStat       `json:"subjectStats"`
}

// DashboardStats holds the per-collection counts for the dashboard.
type DashboardStats struct {
	TotalStudents      int64           `json:"totalStudents"`
	TotalTeachers      int64           `json:"totalTeachers"`
	TotalSubjects      int64           `json:"totalSubjects"`
	TotalSubscriptions int64           `json:"totalSubscriptions"`
	TotalRevenue       decimal.Decimal `json:"totalRevenue"`
}

// DashboardResult is the full dashboard payload.
type DashboardResult struct {
	Stats          DashboardStats  `json:"stats"`
	RecentStudents []model.Student `json:"recentStudents"`
}

// ReportService builds the read-only aggregations. All inputs are the
// tenant's own sets; the math is pure and guards empty denominators.
type ReportService interface {
	BuildReports(ctx context.Context, adminID uint) (*ReportsResult, error)
	BuildRevenue(ctx context.Context, adminID uint) (*RevenueResult, error)
	DashboardStats(ctx context.Context, adminID uint) (*DashboardResult, error)
}

type reportService struct {
	studentRepo      repository.StudentRepository
	teacherRepo      repository.TeacherRepository
	subjectRepo      repository.SubjectRepository
	subscriptionRepo repository.SubscriptionRepository
	cache            *cache.Client
}

// NewReportService builds a ReportService.
func NewReportService(
	studentRepo repository.StudentRepository,
	teacherRepo repository.TeacherRepository,
	subjectRepo repository.SubjectRepository,
	subscriptionRepo repository.SubscriptionRepository,
	cache *cache.Client,
) ReportService {
	return &reportService{
		studentRepo:      studentRepo,
		teacherRepo:      teacherRepo,
		subjectRepo:      subjectRepo,
		subscriptionRepo: subscriptionRepo,
		cache:            cache,
	}
}

// BuildReports fetches the tenant's sets and aggregates them. The reads are
// independent; no snapshot isolation is needed for reporting.
func (s *reportService) BuildReports(ctx context.Context, adminID uint) (*ReportsResult, error) {
	students, err := s.studentRepo.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	teachers, err := s.teacherRepo.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	subjects, err := s.subjectRepo.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	subscriptions, err := s.subscriptionRepo.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}

	teacherReport := buildTeacherReport(teachers, subscriptions)

	return &ReportsResult{
		StudentReport: buildStudentReport(students),
		TeacherReport: teacherReport,
		SubjectReport: buildSubjectReport(subjects, subscriptions),
		Summary: ReportSummary{
			TotalStudents:      len(students),
			TotalRevenue:       sumPrices(subscriptions),
			AverageRating:      averageRating(teacherReport),
			TotalTeachers:      len(teachers),
			TotalSubjects:      len(subjects),
			TotalSubscriptions: len(subscriptions),
		},
	}, nil
}

// BuildRevenue aggregates the tenant's subscriptions into the revenue payload.
func (s *reportService) BuildRevenue(ctx context.Context, adminID uint) (*RevenueResult, error) {
	subscriptions, err := s.subscriptionRepo.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}

	return &RevenueResult{
		RevenueData:        buildRevenueRows(subscriptions),
		Statistics:         buildRevenueStatistics(subscriptions),
		PaymentMethodStats: buildPaymentMethodStats(subscriptions),
		SubjectStats:       buildSubjectStats(subscriptions),
	}, nil
}

func (s *reportService) dashboardCacheKey(adminID uint) string {
	return fmt.Sprintf("dashboard:stats:%d", adminID)
}

// DashboardStats returns counts, total revenue and recent students, cached
// briefly per tenant.
func (s *reportService) DashboardStats(ctx context.Context, adminID uint) (*DashboardResult, error) {
	if data, _ := s.cache.Get(ctx, s.dashboardCacheKey(adminID)); data != nil {
		var cached DashboardResult
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	studentsCount, err := s.studentRepo.CountByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("count students: %w", err)
	}
	teachersCount, err := s.teacherRepo.CountByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("count teachers: %w", err)
	}
	subjectsCount, err := s.subjectRepo.CountByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("count subjects: %w", err)
	}
	subscriptions, err := s.subscriptionRepo.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	recent, err := s.studentRepo.ListRecent(ctx, adminID, recentStudentsLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent students: %w", err)
	}

	result := &DashboardResult{
		Stats: DashboardStats{
			TotalStudents:      studentsCount,
			TotalTeachers:      teachersCount,
			TotalSubjects:      subjectsCount,
			TotalSubscriptions: int64(len(subscriptions)),
			TotalRevenue:       sumPrices(subscriptions),
		},
		RecentStudents: recent,
	}

	if payload, err := json.Marshal(result); err == nil {
		_ = s.cache.Set(ctx, s.dashboardCacheKey(adminID), payload, dashboardCacheTTL)
	}
	return result, nil
}

// buildStudentReport groups students by grade with active/inactive counts.
func buildStudentReport(students []model.Student) []GradeReport {
	byGrade := map[string]*GradeReport{}
	for _, student := range students {
		grade := student.Grade
		if grade == "" {
			grade = unspecifiedKey
		}
		row, ok := byGrade[grade]
		if !ok {
			row = &GradeReport{Grade: grade}
			byGrade[grade] = row
		}
		row.TotalStudents++
		if student.Status == model.StatusActive {
			row.ActiveStudents++
		} else {
			row.InactiveStudents++
		}
	}

	report := make([]GradeReport, 0, len(byGrade))
	for _, row := range byGrade {
		if row.TotalStudents > 0 {
			row.Percentage = float64(row.ActiveStudents) / float64(row.TotalStudents) * 100
		}
		report = append(report, *row)
	}
	sort.Slice(report, func(i, j int) bool { return report[i].Grade < report[j].Grade })
	return report
}

// buildTeacherReport seeds one row per teacher, then accumulates student
// count and revenue from subscriptions referencing the teacher by name.
func buildTeacherReport(teachers []model.Teacher, subscriptions []model.Subscription) []TeacherReport {
	byTeacher := map[string]*TeacherReport{}
	for _, teacher := range teachers {
		if _, ok := byTeacher[teacher.Name]; ok {
			continue
		}
		subject := teacher.Subject
		if subject == "" {
			subject = unspecifiedKey
		}
		byTeacher[teacher.Name] = &TeacherReport{
			Teacher: teacher.Name,
			Subject: subject,
			Revenue: decimal.Zero,
			Rating:  defaultTeacherRating,
		}
	}

	for _, sub := range subscriptions {
		row, ok := byTeacher[sub.Teacher]
		if !ok {
			continue
		}
		row.StudentsCount++
		row.Revenue = row.Revenue.Add(sub.Price)
	}

	report := make([]TeacherReport, 0, len(byTeacher))
	for _, row := range byTeacher {
		report = append(report, *row)
	}
	sort.Slice(report, func(i, j int) bool { return report[i].Teacher < report[j].Teacher })
	return report
}

// buildSubjectReport mirrors buildTeacherReport keyed by subject name.
func buildSubjectReport(subjects []model.Subject, subscriptions []model.Subscription) []SubjectReport {
	bySubject := map[string]*SubjectReport{}
	for _, subject := range subjects {
		if _, ok := bySubject[subject.Name]; ok {
			continue
		}
		bySubject[subject.Name] = &SubjectReport{
			Subject:        subject.Name,
			Revenue:        decimal.Zero,
			CompletionRate: defaultCompletion,
		}
	}

	for _, sub := range subscriptions {
		row, ok := bySubject[sub.Subject]
		if !ok {
			continue
		}
		row.StudentsCount++
		row.Revenue = row.Revenue.Add(sub.Price)
	}

	report := make([]SubjectReport, 0, len(bySubject))
	for _, row := range bySubject {
		report = append(report, *row)
	}
	sort.Slice(report, func(i, j int) bool { return report[i].Subject < report[j].Subject })
	return report
}

func buildRevenueRows(subscriptions []model.Subscription) []RevenueRow {
	rows := make([]RevenueRow, 0, len(subscriptions))
	for _, sub := range subscriptions {
		rows = append(rows, RevenueRow{
			ID:            sub.ID,
			Date:          sub.CreatedAt.Format("2006-01-02"),
			StudentName:   sub.StudentName,
			Subject:       orUnspecified(sub.Subject),
			Amount:        sub.Price,
			PaymentMethod: orUnspecified(sub.PaymentMethod),
			Status:        orUnspecified(sub.PaymentStatus),
			Teacher:       orUnspecified(sub.Teacher),
			StartDate:     sub.StartDate,
			EndDate:       sub.EndDate,
		})
	}
	return rows
}

// buildRevenueStatistics sums totals; an empty set yields zeros, never a
// division fault.
func buildRevenueStatistics(subscriptions []model.Subscription) RevenueStatistics {
	stats := RevenueStatistics{
		TotalRevenue:      decimal.Zero,
		PaidRevenue:       decimal.Zero,
		PendingRevenue:    decimal.Zero,
		AverageRevenue:    decimal.Zero,
		TotalTransactions: len(subscriptions),
	}
	for _, sub := range subscriptions {
		stats.TotalRevenue = stats.TotalRevenue.Add(sub.Price)
		switch sub.PaymentStatus {
		case model.PaymentPaid:
			stats.PaidRevenue = stats.PaidRevenue.Add(sub.Price)
		default:
			stats.PendingRevenue = stats.PendingRevenue.Add(sub.Price)
		}
	}
	if len(subscriptions) > 0 {
		stats.AverageRevenue = stats.TotalRevenue.Div(decimal.NewFromInt(int64(len(subscriptions)))).Round(2)
	}
	return stats
}

func buildPaymentMethodStats(subscriptions []model.Subscription) []PaymentMethodStat {
	total := sumPrices(subscriptions)
	byMethod := map[string]*PaymentMethodStat{}
	for _, sub := range subscriptions {
		method := orUnspecified(sub.PaymentMethod)
		row, ok := byMethod[method]
		if !ok {
			row = &PaymentMethodStat{Method: method, Amount: decimal.Zero}
			byMethod[method] = row
		}
		row.Count++
		row.Amount = row.Amount.Add(sub.Price)
	}

	stats := make([]PaymentMethodStat, 0, len(byMethod))
	for _, row := range byMethod {
		if total.IsPositive() {
			row.Percentage = row.Amount.Div(total).Mul(decimal.NewFromInt(100)).InexactFloat64()
		}
		stats = append(stats, *row)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Method < stats[j].Method })
	return stats
}

// buildSubjectStats counts distinct students per subject by student name.
func buildSubjectStats(subscriptions []model.Subscription) []SubjectStat {
	type acc struct {
		revenue  decimal.Decimal
		students map[string]struct{}
	}
	bySubject := map[string]*acc{}
	for _, sub := range subscriptions {
		subject := orUnspecified(sub.Subject)
		row, ok := bySubject[subject]
		if !ok {
			row = &acc{revenue: decimal.Zero, students: map[string]struct{}{}}
			bySubject[subject] = row
		}
		row.revenue = row.revenue.Add(sub.Price)
		row.students[sub.StudentName] = struct{}{}
	}

	stats := make([]SubjectStat, 0, len(bySubject))
	for subject, row := range bySubject {
		stats = append(stats, SubjectStat{
			Subject:  subject,
			Revenue:  row.revenue,
			Students: len(row.students),
		})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Subject < stats[j].Subject })
	return stats
}

func averageRating(report []TeacherReport) float64 {
	if len(report) == 0 {
		return 0
	}
	var sum float64
	for _, row := range report {
		sum += row.Rating
	}
	return sum / float64(len(report))
}

func sumPrices(subscriptions []model.Subscription) decimal.Decimal {
	total := decimal.Zero
	for _, sub := range subscriptions {
		total = total.Add(sub.Price)
	}
	return total
}

func orUnspecified(v string) string {
	if v == "" {
		return unspecifiedKey
	}
	return v
}
