package main

import (
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"madrasa/internal/config"
	"madrasa/internal/db"
	"madrasa/internal/model"
)

const (
	demoUsername = "admin"
	demoPassword = "admin123"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Student{},
		&model.Teacher{},
		&model.Subject{},
		&model.Level{},
		&model.Subscription{},
		&model.Setting{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	admin, err := seedAdmin(gormDB)
	if err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}

	if err := seedTenantData(gormDB, admin.ID); err != nil {
		log.Fatalf("Failed to seed tenant data: %v", err)
	}

	log.Printf("Seed complete. Login with %s / %s", demoUsername, demoPassword)
}

// seedAdmin creates the demo admin account, or returns the existing one.
func seedAdmin(gormDB *gorm.DB) (*model.User, error) {
	var existing model.User
	err := gormDB.Where("username = ?", demoUsername).First(&existing).Error
	if err == nil {
		log.Printf("Admin %q already exists (id=%d), skipping", demoUsername, existing.ID)
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := model.User{
		Username:     demoUsername,
		Email:        "admin@madrasa.local",
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		IsActive:     true,
	}
	if err := gormDB.Create(&admin).Error; err != nil {
		return nil, err
	}
	log.Printf("Created admin %q (id=%d)", demoUsername, admin.ID)
	return &admin, nil
}

// seedTenantData fills the demo admin's tenant with sample rows. Existing
// data for the tenant is left untouched.
func seedTenantData(gormDB *gorm.DB, adminID uint) error {
	var count int64
	if err := gormDB.Model(&model.Student{}).Where("admin_id = ?", adminID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Tenant %d already has students, skipping sample data", adminID)
		return nil
	}

	levels := []model.Level{
		{AdminID: adminID, Name: "Grade 7", Description: "First intermediate grade", Order: 1, IsActive: true},
		{AdminID: adminID, Name: "Grade 8", Description: "Second intermediate grade", Order: 2, IsActive: true},
		{AdminID: adminID, Name: "Grade 9", Description: "Third intermediate grade", Order: 3, IsActive: true},
	}
	if err := gormDB.Create(&levels).Error; err != nil {
		return err
	}

	teachers := []model.Teacher{
		{AdminID: adminID, Name: "Sara Hassan", Email: "sara@madrasa.local", Phone: "0501000001", Subject: "Mathematics", Experience: "8 years", Status: model.StatusActive, JoinDate: "2023-09-01"},
		{AdminID: adminID, Name: "Omar Khalid", Email: "omar@madrasa.local", Phone: "0501000002", Subject: "Physics", Experience: "5 years", Status: model.StatusActive, JoinDate: "2024-01-15"},
	}
	if err := gormDB.Create(&teachers).Error; err != nil {
		return err
	}

	subjects := []model.Subject{
		{AdminID: adminID, Name: "Mathematics", Code: "MATH-8", Description: "Algebra and geometry", Teacher: "Sara Hassan", Grade: "Grade 8", Price: decimal.NewFromInt(300), Duration: "3 months", Status: model.StatusActive},
		{AdminID: adminID, Name: "Physics", Code: "PHY-9", Description: "Mechanics and optics", Teacher: "Omar Khalid", Grade: "Grade 9", Price: decimal.NewFromInt(350), Duration: "3 months", Status: model.StatusActive},
	}
	if err := gormDB.Create(&subjects).Error; err != nil {
		return err
	}

	students := []model.Student{
		{AdminID: adminID, Name: "Lina Ahmed", Email: "lina@example.com", Phone: "0502000001", Grade: "Grade 8", Subjects: []string{"Mathematics"}, Status: model.StatusActive, JoinDate: "2025-02-01"},
		{AdminID: adminID, Name: "Yousef Ali", Email: "yousef@example.com", Phone: "0502000002", Grade: "Grade 9", Subjects: []string{"Physics", "Mathematics"}, Status: model.StatusActive, JoinDate: "2025-03-10"},
		{AdminID: adminID, Name: "Maha Saleh", Email: "maha@example.com", Phone: "0502000003", Grade: "Grade 7", Subjects: nil, Status: model.StatusInactive, JoinDate: "2024-11-20"},
	}
	if err := gormDB.Create(&students).Error; err != nil {
		return err
	}

	subscriptions := []model.Subscription{
		{AdminID: adminID, StudentName: "Lina Ahmed", StudentEmail: "lina@example.com", Subject: "Mathematics", Teacher: "Sara Hassan", Price: decimal.NewFromInt(300), StartDate: "2025-02-01", EndDate: "2025-05-01", Status: model.StatusActive, PaymentStatus: model.PaymentPaid, PaymentMethod: "cash"},
		{AdminID: adminID, StudentName: "Yousef Ali", StudentEmail: "yousef@example.com", Subject: "Physics", Teacher: "Omar Khalid", Price: decimal.NewFromInt(350), StartDate: "2025-03-10", EndDate: "2025-06-10", Status: model.StatusActive, PaymentStatus: model.PaymentUnpaid, PaymentMethod: "bank transfer"},
	}
	if err := gormDB.Create(&subscriptions).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d levels, %d teachers, %d subjects, %d students, %d subscriptions for tenant %d",
		len(levels), len(teachers), len(subjects), len(students), len(subscriptions), adminID)
	return nil
}
