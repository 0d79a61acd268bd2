package models

import (
	"gorm.io/gorm"
)

// SeedServiceCatalog inserts the baseline billable services so a fresh
// install has something to sell. Real deployments extend the catalog through
// the database.
func SeedServiceCatalog(db *gorm.DB) error {
	initialServices := []ClinicService{
		{Name: "Cardiology consultation", Price: 50000, CategoryCode: "cardiology", RequiresProvider: true, IsConsultation: true},
		{Name: "ECG", Price: 20000, CategoryCode: "cardiology", QueueTag: "ecg"},
		{Name: "Echocardiography", Price: 80000, CategoryCode: "cardiology", QueueTag: "ecg", RequiresProvider: true},
		{Name: "Dermatology consultation", Price: 45000, CategoryCode: "dermatology", RequiresProvider: true, IsConsultation: true},
		{Name: "Dental examination", Price: 30000, CategoryCode: "dentistry", RequiresProvider: true, IsConsultation: true},
		{Name: "Complete blood count", Price: 25000, CategoryCode: "laboratory"},
		{Name: "Biochemistry panel", Price: 60000, CategoryCode: "laboratory"},
		{Name: "Intramuscular injection", Price: 10000, CategoryCode: "physiotherapy"},
		{Name: "Facial peeling", Price: 55000, CategoryCode: "cosmetology"},
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, service := range initialServices {
			if err := tx.FirstOrCreate(&service, ClinicService{Name: service.Name}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
