package bootstrap

import (
	"log"

	"anoa.com/noorautomobiles/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	adminEmail    = "admin@noor.com"
	adminPassword = "admin123"
)

// Migrate guarantees the full table set exists with its column constraints.
// It is safe to run on every start.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Car{},
		&model.Part{},
		&model.Inquiry{},
	)
}

// SeedAdminUser creates the well-known administrator account once. Re-running
// against a seeded database makes no additional writes.
func SeedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).
		Where("email = ?", adminEmail).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Admin user already exists, skipping seed")
		return nil
	}

	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	adminUser := model.User{
		Name:     "Muneeb Noor",
		Email:    adminEmail,
		Password: string(hashedPasswordBytes),
		Phone:    stringPtr("0324-1344368"),
		Role:     model.RoleAdmin,
	}

	if err := db.Create(&adminUser).Error; err != nil {
		return err
	}

	log.Println("✅ Admin user seeded successfully")
	log.Printf("   Email: %s", adminEmail)

	return nil
}

// SeedCars inserts a sample listing when the catalog is empty so the first
// run is not blank.
func SeedCars(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Car{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Printf("✅ %d cars exist, skipping seed", count)
		return nil
	}

	sampleCar := model.Car{
		Title:        "Toyota Supra MK4 Twin Turbo",
		Brand:        "Toyota",
		Model:        "Supra MK4",
		Year:         1998,
		Mileage:      stringPtr("45,000 km"),
		Engine:       stringPtr("2JZ-GTE 3.0L Twin Turbo"),
		Transmission: stringPtr("6-Speed Manual"),
		FuelType:     stringPtr("Petrol"),
		Color:        stringPtr("Super White"),
		BodyType:     stringPtr("Coupe"),
		Description:  stringPtr("Legendary JDM sports car in pristine condition."),
		Features:     model.StringList{"Leather Interior", "Targa Top"},
		Images:       model.StringList{"https://images.unsplash.com/photo-1632245889029-e406faaa34cd?w=800&q=80"},
		Videos:       model.StringList{},
		Status:       model.CarStatusAvailable,
		Featured:     true,
	}

	if err := db.Create(&sampleCar).Error; err != nil {
		return err
	}

	log.Println("✅ Sample car seeded successfully")
	return nil
}

// SeedParts inserts sample parts under the same zero-count rule as SeedCars.
func SeedParts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Part{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Printf("✅ %d parts exist, skipping seed", count)
		return nil
	}

	sampleParts := []model.Part{
		{
			Name:         "HKS Hi-Power Exhaust System",
			Category:     "Exhaust",
			Description:  stringPtr("Full stainless cat-back system for JDM platforms."),
			Images:       model.StringList{},
			Availability: model.PartInStock,
			Featured:     true,
		},
		{
			Name:         "Brembo GT Brake Kit",
			Category:     "Brakes",
			Description:  stringPtr("6-piston front brake kit with slotted rotors."),
			Images:       model.StringList{},
			Availability: model.PartComingSoon,
		},
	}

	if err := db.Create(&sampleParts).Error; err != nil {
		return err
	}

	log.Println("✅ Sample parts seeded successfully")
	return nil
}

func stringPtr(s string) *string {
	return &s
}
