package seeders

import (
	"log"

	roleModel "bm-admin/models/role"

	"gorm.io/gorm"
)

// SeedRoles backfills the staff role catalog.
func SeedRoles(db *gorm.DB) {
	roles := []roleModel.Role{
		{Name: "admin"},
		{Name: "branch_manager"},
		{Name: "supervisor"},
		{Name: "crew_commander"},
		{Name: "guard"},
		{Name: "driver"},
	}

	var existingNames []string
	if err := db.Model(&roleModel.Role{}).Pluck("name", &existingNames).Error; err != nil {
		log.Printf("❌ Failed to fetch existing roles: %v", err)
		return
	}

	existingNamesMap := make(map[string]bool)
	for _, name := range existingNames {
		existingNamesMap[name] = true
	}

	for _, r := range roles {
		if existingNamesMap[r.Name] {
			continue
		}
		if err := db.Create(&r).Error; err != nil {
			log.Printf("❌ Failed to seed role %s: %v", r.Name, err)
		}
	}
}
