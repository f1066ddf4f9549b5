package database

import (
	"fmt"

	branchModel "bm-admin/models/branch"
	clientModel "bm-admin/models/client"
	inquiryModel "bm-admin/models/inquiry"
	logModel "bm-admin/models/log"
	noticeModel "bm-admin/models/notice"
	requestModel "bm-admin/models/request"
	roleModel "bm-admin/models/role"
	serviceChargeModel "bm-admin/models/service_charge"
	serviceTypeModel "bm-admin/models/service_type"
	sosModel "bm-admin/models/sos"
	staffModel "bm-admin/models/staff"
	teamModel "bm-admin/models/team"

	"bm-admin/logger"

	"gorm.io/gorm"
)

// Migrate runs auto migration for all models in dependency order, then
// applies the extra indexes and constraints AutoMigrate does not cover.
func Migrate(db *gorm.DB) error {
	// Stage 1: catalog and foundation tables
	stage1Models := []interface{}{
		&roleModel.Role{},
		&clientModel.Client{},
		&serviceTypeModel.ServiceType{},
	}

	for _, model := range stage1Models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: tenant and staffing tables
	stage2Models := []interface{}{
		&branchModel.Branch{},
		&staffModel.Staff{},
		&teamModel.Team{},
	}

	for _, model := range stage2Models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 3: everything referencing the above
	remainingModels := []interface{}{
		&requestModel.Request{},
		&serviceChargeModel.ServiceCharge{},
		&noticeModel.Notice{},
		&inquiryModel.Inquiry{},
		&sosModel.SOS{},
		&logModel.Log{},
	}

	for _, model := range remainingModels {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	if err := createIndexes(db); err != nil {
		return err
	}

	createForeignKeyConstraints(db)

	return nil
}

// createIndexes creates additional indexes for better performance
func createIndexes(db *gorm.DB) error {
	statements := []string{
		"CREATE INDEX IF NOT EXISTS idx_requests_branch_status ON requests(branch_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_requests_my_status_pickup ON requests(my_status, pickup_date)",
		"CREATE INDEX IF NOT EXISTS idx_requests_created_at ON requests(created_at)",
		"CREATE INDEX IF NOT EXISTS idx_branches_client_id ON branches(client_id)",
		"CREATE INDEX IF NOT EXISTS idx_inquiries_status ON inquiries(status)",
		"CREATE INDEX IF NOT EXISTS idx_inquiries_inquiry_type ON inquiries(inquiry_type)",
		"CREATE INDEX IF NOT EXISTS idx_sos_created_at ON sos(created_at)",
		"CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)",
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// createForeignKeyConstraints adds the FKs AutoMigrate leaves out. Failures
// are logged and skipped so repeat startups stay idempotent.
func createForeignKeyConstraints(db *gorm.DB) {
	constraints := []struct {
		name string
		sql  string
	}{
		{
			name: "fk_requests_branch",
			sql: `ALTER TABLE requests ADD CONSTRAINT fk_requests_branch
				  FOREIGN KEY (branch_id) REFERENCES branches(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_requests_service_type",
			sql: `ALTER TABLE requests ADD CONSTRAINT fk_requests_service_type
				  FOREIGN KEY (service_type_id) REFERENCES service_types(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_inquiries_branch",
			sql: `ALTER TABLE inquiries ADD CONSTRAINT fk_inquiries_branch
				  FOREIGN KEY (user_id) REFERENCES branches(id)
				  ON UPDATE CASCADE ON DELETE CASCADE`,
		},
	}

	for _, constraint := range constraints {
		var exists bool
		checkSQL := `
			SELECT EXISTS (
				SELECT 1 FROM information_schema.table_constraints
				WHERE constraint_name = $1
			)
		`

		err := db.Raw(checkSQL, constraint.name).Scan(&exists).Error
		if err != nil {
			logger.Warning(fmt.Sprintf("Failed to check constraint existence: %s - Error: %v", constraint.name, err))
			continue
		}

		if !exists {
			if err := db.Exec(constraint.sql).Error; err != nil {
				logger.Warning(fmt.Sprintf("Failed to create constraint: %s - Error: %v", constraint.name, err))
			} else {
				logger.Success(fmt.Sprintf("Successfully created constraint: %s", constraint.name))
			}
		}
	}
}
