package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"classifieds/internal/database"
	"classifieds/internal/domain"
)

func main() {
	db, err := database.Connect("classifieds.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Company{},
		&domain.VehicleOffer{},
		&domain.RealEstateOffer{},
		&domain.CommercialOffer{},
		&domain.Report{},
		&domain.Message{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM messages")
	db.Exec("DELETE FROM reports")
	db.Exec("DELETE FROM vehicle_offers")
	db.Exec("DELETE FROM real_estate_offers")
	db.Exec("DELETE FROM commercial_offers")
	db.Exec("DELETE FROM companies")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		ID:           uuid.NewString(),
		Username:     "admin",
		FirstName:    "Site",
		LastName:     "Admin",
		Email:        "admin@classifieds.local",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Active:       true,
		City:         "Paris",
		Country:      "FR",
	}
	db.Create(&admin)
	log.Println("Admin created: admin@classifieds.local / admin123")

	members := []domain.User{}
	memberEmails := []string{"alice@mail.fr", "bruno@gmail.com", "chloe@yandex.com"}
	for i, email := range memberEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("member123"), bcrypt.DefaultCost)
		member := domain.User{
			ID:           uuid.NewString(),
			Username:     fmt.Sprintf("member%d", i+1),
			FirstName:    fmt.Sprintf("Member%d", i+1),
			LastName:     "Test",
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleMember,
			Active:       true,
			City:         "Lyon",
			Country:      "FR",
		}
		db.Create(&member)
		members = append(members, member)
	}

	log.Println("Creating companies...")
	companies := []domain.Company{}
	for i := 1; i <= 2; i++ {
		hash, _ := bcrypt.GenerateFromPassword([]byte("company123"), bcrypt.DefaultCost)
		company := domain.Company{
			ID:            uuid.NewString(),
			CompanyName:   fmt.Sprintf("AutoDealer %d", i),
			Email:         fmt.Sprintf("contact%d@autodealer.fr", i),
			PasswordHash:  string(hash),
			CompanyNumber: fmt.Sprintf("FR%09d", 100000000+i),
			Role:          domain.RoleMember,
			Active:        true,
			City:          "Marseille",
			Country:       "FR",
			Street:        fmt.Sprintf("%d Rue de la République", i*10),
		}
		db.Create(&company)
		companies = append(companies, company)
	}

	log.Println("Creating offers...")
	fuels := []domain.FuelType{domain.FuelPetrol, domain.FuelDiesel, domain.FuelElectric, domain.FuelHybrid}
	for i := 0; i < 8; i++ {
		owner := members[i%len(members)]
		ownerType := domain.EntityUser
		ownerID := owner.ID
		if i%3 == 0 {
			company := companies[i%len(companies)]
			ownerID = company.ID
			ownerType = domain.EntityCompany
		}

		db.Create(&domain.VehicleOffer{
			Title:       fmt.Sprintf("Used car %d", i+1),
			Description: "Well maintained, single owner, full service history available.",
			Price:       5000 + float64(rand.Intn(20000)),
			City:        "Lyon",
			Country:     "FR",
			Model:       fmt.Sprintf("Model %d", i+1),
			Year:        2015 + i,
			Mileage:     30000 + rand.Intn(120000),
			FuelType:    fuels[i%len(fuels)],
			Color:       "Grey",
			OwnerID:     ownerID,
			OwnerType:   ownerType,
		})
	}

	for i := 0; i < 4; i++ {
		db.Create(&domain.RealEstateOffer{
			Title:       fmt.Sprintf("Apartment %d", i+1),
			Description: "Bright apartment close to the city center and public transport.",
			Price:       150000 + float64(rand.Intn(200000)),
			City:        "Paris",
			Country:     "FR",
			Surface:     40 + rand.Intn(80),
			Rooms:       1 + rand.Intn(4),
			OwnerID:     members[i%len(members)].ID,
			OwnerType:   domain.EntityUser,
		})
	}

	for i := 0; i < 4; i++ {
		db.Create(&domain.CommercialOffer{
			Title:       fmt.Sprintf("Office space %d", i+1),
			Description: "Commercial premises available immediately, flexible lease terms.",
			Price:       2000 + float64(rand.Intn(5000)),
			City:        "Marseille",
			Country:     "FR",
			Category:    "office",
			OwnerID:     companies[i%len(companies)].ID,
			OwnerType:   domain.EntityCompany,
		})
	}

	log.Println("Creating reports...")
	vehicleID := int64(1)
	db.Create(&domain.Report{
		Reason:         "Suspected scam, price far below market",
		Status:         domain.ReportPending,
		VehicleOfferID: &vehicleID,
		ReporterUserID: &members[0].ID,
		ReporterType:   domain.ReporterUser,
	})
	db.Create(&domain.Report{
		Reason:            "Duplicate listing",
		Status:            domain.ReportPending,
		VehicleOfferID:    &vehicleID,
		ReporterCompanyID: &companies[0].ID,
		ReporterType:      domain.ReporterCompany,
	})

	log.Println("Creating messages...")
	db.Create(&domain.Message{
		ID:         uuid.NewString(),
		SenderID:   members[0].ID,
		ReceiverID: members[1].ID,
		Content:    "Hi, is the car still available?",
	})
	db.Create(&domain.Message{
		ID:         uuid.NewString(),
		SenderID:   members[1].ID,
		ReceiverID: members[0].ID,
		Content:    "Yes, you can come see it this weekend.",
	})

	log.Println("Seed completed!")
	log.Println("Test accounts:")
	log.Println("Admin: admin@classifieds.local / admin123")
	log.Println("Members: alice@mail.fr, bruno@gmail.com, chloe@yandex.com / member123")
	log.Println("Companies: contact1@autodealer.fr, contact2@autodealer.fr / company123")
}
