package seeders

import (
	"log"

	serviceTypeModel "bm-admin/models/service_type"

	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

// SeedServiceTypes backfills the fixed service catalog requests reference.
func SeedServiceTypes(db *gorm.DB) {
	log.Printf("🔍 Checking service type catalog integrity...")

	serviceTypes := []serviceTypeModel.ServiceType{
		{Name: "Cash In Transit", Description: strPtr("Armed escort for cash movement between sites")},
		{Name: "Cash Processing", Description: strPtr("Counting, verification and vault processing")},
		{Name: "ATM Replenishment", Description: strPtr("Scheduled ATM cash loading and first-line maintenance")},
		{Name: "Document Delivery", Description: strPtr("Secure transport of sensitive documents")},
		{Name: "Valuables Transport", Description: strPtr("Escorted movement of high-value goods")},
		{Name: "Guard Deployment", Description: strPtr("Static guard posting at client premises")},
	}

	// Get all existing names from database
	var existingNames []string
	if err := db.Model(&serviceTypeModel.ServiceType{}).Pluck("name", &existingNames).Error; err != nil {
		log.Printf("❌ Failed to fetch existing service types: %v", err)
		return
	}

	existingNamesMap := make(map[string]bool)
	for _, name := range existingNames {
		existingNamesMap[name] = true
	}

	var missing []serviceTypeModel.ServiceType
	for _, st := range serviceTypes {
		if !existingNamesMap[st.Name] {
			missing = append(missing, st)
		}
	}

	if len(missing) == 0 {
		log.Printf("✅ All service types are already present. No seeding needed.")
		return
	}

	log.Printf("🌱 Seeding %d missing service types...", len(missing))

	for _, st := range missing {
		if err := db.Create(&st).Error; err != nil {
			log.Printf("❌ Failed to seed service type %s: %v", st.Name, err)
		} else {
			log.Printf("✅ Added: %s", st.Name)
		}
	}
}
