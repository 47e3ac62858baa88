package database

import (
	"ecertify/api/src/model"
	"ecertify/pkg/logger"

	"gorm.io/gorm"
)

const (
	devInstituteAddress = "0x00000000000000000000000000000000000000a1"
	devStudentAddress   = "0x00000000000000000000000000000000000000b1"
)

// SeedDevData inserts one institute and one affiliated student for local runs.
func SeedDevData(db *gorm.DB) error {
	devLogger := logger.Default()

	institute := model.Institute{
		WalletAddress: devInstituteAddress,
		DisplayName:   "Demo Institute",
		ContactEmail:  "registrar@demo-institute.local",
	}
	if err := db.Where(model.Institute{WalletAddress: devInstituteAddress}).FirstOrCreate(&institute).Error; err != nil {
		devLogger.Error(err, "Error inserting demo institute")
		return err
	}

	student := model.Student{
		WalletAddress:      devStudentAddress,
		DisplayName:        "Demo Student",
		ContactEmail:       "student@demo-institute.local",
		CurrentInstituteId: &institute.Id,
	}
	if err := db.Where(model.Student{WalletAddress: devStudentAddress}).FirstOrCreate(&student).Error; err != nil {
		devLogger.Error(err, "Error inserting demo student")
		return err
	}

	devLogger.Infof("Seeded institute %s (id %d) and student %s (id %d)",
		institute.WalletAddress, institute.Id, student.WalletAddress, student.Id)
	return nil
}
