package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"powerlink/internal/database"
	"powerlink/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "powerlink.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Worker{},
		&domain.WorkerRating{},
		&domain.Service{},
		&domain.Booking{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM worker_ratings")
	db.Exec("DELETE FROM workers")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		FirstName:    "Platform",
		LastName:     "Admin",
		Email:        "admin@powerlink.dev",
		MobileNumber: "9000000001",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		IsVerified:   true,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@powerlink.dev / admin123")

	customers := []domain.User{}
	for i := 1; i <= 3; i++ {
		hash, _ := bcrypt.GenerateFromPassword([]byte("customer123"), bcrypt.DefaultCost)
		c := domain.User{
			FirstName:    fmt.Sprintf("Customer%d", i),
			LastName:     "Test",
			Email:        fmt.Sprintf("customer%d@powerlink.dev", i),
			MobileNumber: fmt.Sprintf("900000010%d", i),
			PasswordHash: string(hash),
			Role:         domain.RoleCustomer,
			IsVerified:   true,
			Address: domain.Address{
				State:   "Tamil Nadu",
				City:    "Chennai",
				Area:    fmt.Sprintf("Area %d", i),
				Pincode: fmt.Sprintf("60000%d", i),
			},
		}
		db.Create(&c)
		customers = append(customers, c)
	}

	// ================== WORKERS ==================
	log.Println("Creating workers...")

	categories := [][]string{
		{string(domain.CategoryElectrical), string(domain.CategoryElectronics)},
		{string(domain.CategoryPlumbing)},
		{string(domain.CategoryHomeAppliances), string(domain.CategoryOther)},
	}
	workerUsers := []domain.User{}
	for i := 1; i <= 3; i++ {
		hash, _ := bcrypt.GenerateFromPassword([]byte("worker123"), bcrypt.DefaultCost)
		u := domain.User{
			FirstName:    fmt.Sprintf("Worker%d", i),
			LastName:     "Pro",
			Email:        fmt.Sprintf("worker%d@powerlink.dev", i),
			MobileNumber: fmt.Sprintf("900000020%d", i),
			PasswordHash: string(hash),
			Role:         domain.RoleWorker,
			IsVerified:   true,
		}
		db.Create(&u)
		workerUsers = append(workerUsers, u)

		w := domain.Worker{
			UserID:            u.ID,
			ServiceCategories: categories[i-1],
			Skills:            []string{"wiring", "repair"},
			Experience:        2 + i,
			HourlyRate:        200 + float64(i)*50,
			IsAvailable:       true,
			Verification:      domain.VerificationVerified,
			Availability: domain.Availability{
				"monday":    {{Start: "09:00", End: "18:00"}},
				"tuesday":   {{Start: "09:00", End: "18:00"}},
				"wednesday": {{Start: "09:00", End: "18:00"}},
				"thursday":  {{Start: "09:00", End: "18:00"}},
				"friday":    {{Start: "09:00", End: "18:00"}},
			},
			AverageRating:   3.5 + rand.Float64()*1.5,
			ServiceRadiusKm: 10,
		}
		db.Create(&w)
	}

	// ================== SERVICES ==================
	log.Println("Creating services...")

	services := []domain.Service{
		{
			Name:          "Fan Installation",
			Category:      domain.CategoryElectrical,
			Subcategory:   "Installation",
			Description:   "Ceiling or wall fan installation with wiring check",
			BasePrice:     350,
			EstimatedTime: 60,
			IsPopular:     true,
			IsActive:      true,
		},
		{
			Name:          "Tap & Pipe Repair",
			Category:      domain.CategoryPlumbing,
			Subcategory:   "Repair",
			Description:   "Fixing leaking taps and damaged pipelines",
			BasePrice:     250,
			EstimatedTime: 45,
			IsPopular:     true,
			IsActive:      true,
		},
		{
			Name:          "TV Mounting",
			Category:      domain.CategoryElectronics,
			Description:   "Wall mounting for televisions up to 65 inches",
			BasePrice:     500,
			EstimatedTime: 90,
			IsActive:      true,
		},
		{
			Name:          "Washing Machine Service",
			Category:      domain.CategoryHomeAppliances,
			Subcategory:   "Maintenance",
			Description:   "Full service and descaling for washing machines",
			BasePrice:     600,
			EstimatedTime: 120,
			IsActive:      true,
		},
	}
	for i := range services {
		db.Create(&services[i])
	}

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")

	statuses := []domain.BookingStatus{
		domain.BookingPending,
		domain.BookingAssigned,
		domain.BookingCompleted,
	}
	for i := 0; i < 6; i++ {
		customer := customers[rand.Intn(len(customers))]
		svc := services[rand.Intn(len(services))]
		status := statuses[rand.Intn(len(statuses))]

		b := domain.Booking{
			UserID:        customer.ID,
			ServiceID:     svc.ID,
			ScheduledDate: time.Now().AddDate(0, 0, rand.Intn(14)-3).Truncate(24 * time.Hour),
			ScheduledTime: fmt.Sprintf("%02d:00", 9+rand.Intn(8)),
			Address:       customer.Address,
			Status:        status,
			TotalAmount:   svc.BasePrice,
			PaymentStatus: domain.PaymentPending,
			PaymentMethod: domain.PaymentCash,
			Notes:         fmt.Sprintf("Seed booking %d", i+1),
		}
		if status != domain.BookingPending {
			workerID := workerUsers[rand.Intn(len(workerUsers))].ID
			b.WorkerID = &workerID
		}
		if status == domain.BookingCompleted {
			now := time.Now()
			b.CompletedAt = &now
		}
		db.Create(&b)
	}

	log.Println("Seed completed!")
	log.Println("Test accounts:")
	log.Println("Admin: admin@powerlink.dev / mobile 9000000001")
	log.Println("Customers: customer1..3@powerlink.dev / mobiles 9000000101..103")
	log.Println("Workers: worker1..3@powerlink.dev / mobiles 9000000201..203")
}
