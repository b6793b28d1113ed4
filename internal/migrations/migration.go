package migrations

import (
	"log"

	"restaurant_api/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunMigrations recreates the schema and seeds default data. Intended for
// development databases only.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	log.Println("Dropping existing tables...")
	err := db.Migrator().DropTable(
		&models.User{},
		&models.RoleAssignment{},
		&models.Category{},
		&models.MenuItem{},
		&models.CartEntry{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	log.Println("Creating tables...")
	err = db.AutoMigrate(
		&models.User{},
		&models.RoleAssignment{},
		&models.Category{},
		&models.MenuItem{},
		&models.CartEntry{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return err
	}

	if err := createDefaultData(db); err != nil {
		log.Printf("Warning: Failed to create default data: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

// createDefaultData seeds an admin account, a manager, a delivery crew
// member, and a starter menu.
func createDefaultData(db *gorm.DB) error {
	log.Println("Creating default data...")

	var existing models.User
	if err := db.Where("username = ?", "admin").First(&existing).Error; err == nil {
		log.Println("Admin user already exists")
		return nil
	}

	admin, err := seedUser(db, "admin", "admin@example.com", "admin123", true)
	if err != nil {
		return err
	}
	log.Printf("Admin user created (id %d)", admin.ID)

	manager, err := seedUser(db, "manager", "manager@example.com", "manager123", false)
	if err != nil {
		return err
	}
	if err := db.Create(&models.RoleAssignment{UserID: manager.ID, Role: models.RoleManager}).Error; err != nil {
		return err
	}

	crew, err := seedUser(db, "crew", "crew@example.com", "crew1234", false)
	if err != nil {
		return err
	}
	if err := db.Create(&models.RoleAssignment{UserID: crew.ID, Role: models.RoleDeliveryCrew}).Error; err != nil {
		return err
	}

	mains := models.Category{Title: "Mains"}
	desserts := models.Category{Title: "Desserts"}
	if err := db.Create(&mains).Error; err != nil {
		return err
	}
	if err := db.Create(&desserts).Error; err != nil {
		return err
	}

	items := []models.MenuItem{
		{Title: "Greek Salad", Price: 7.50, CategoryID: mains.ID, Featured: true},
		{Title: "Bruschetta", Price: 5.00, CategoryID: mains.ID},
		{Title: "Lemon Dessert", Price: 4.25, CategoryID: desserts.ID},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}

	log.Println("Default data created successfully!")
	return nil
}

func seedUser(db *gorm.DB, username, email, password string, superuser bool) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		IsSuperuser:  superuser,
	}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
