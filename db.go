package main

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var db *gorm.DB

func initDB(path string) error {
	var err error
	db, err = gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return err
	}

	return db.AutoMigrate(&User{}, &Contact{}, &Certificate{}, &Skill{}, &Project{}, &Experience{}, &Profile{})
}

// seedDemoUser makes sure the demo account exists so the admin forms are
// usable on a fresh database.
func seedDemoUser() {
	var count int64
	db.Model(&User{}).Where("username = ?", "demo").Count(&count)
	if count > 0 {
		logger.Info("default user exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("demo@1234"), bcrypt.DefaultCost)
	if err != nil {
		logger.Errorf("seeding default user: %v", err)
		return
	}

	if err := db.Create(&User{Username: "demo", Password: string(hashed)}).Error; err != nil {
		logger.Errorf("seeding default user: %v", err)
		return
	}
	logger.Info("default user created")
}
