package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"dsback/models"
)

// openDB connects to the selected backend. PostgreSQL gets a sized
// connection pool; SQLite is capped to one open connection so every
// operation goes through the single shared handle.
func openDB(cfg Config, log *logrus.Logger) (*gorm.DB, error) {
	var dial gorm.Dialector
	if cfg.UsePostgres {
		if cfg.DatabaseDSN == "" {
			return nil, fmt.Errorf("DB_DSN is not set; USE_POSTGRES requires a Postgres DSN")
		}
		dial = postgres.Open(cfg.DatabaseDSN)
	} else {
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite dir: %w", err)
			}
		}
		dial = sqlite.Open(cfg.SQLitePath)
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.UsePostgres {
		sqlDB.SetMaxOpenConns(cfg.DBMaxOpen)
		sqlDB.SetMaxIdleConns(cfg.DBMaxIdle)
		sqlDB.SetConnMaxLifetime(time.Hour)
		log.Info("connected to postgres")
	} else {
		sqlDB.SetMaxOpenConns(1)
		log.WithField("path", cfg.SQLitePath).Info("connected to sqlite")
	}
	return db, nil
}

// migrateDB ensures the four tables exist, then applies the additive column
// backfills. Models are migrated individually so a failure on one doesn't
// block the others; warnings are logged and ignored.
func migrateDB(db *gorm.DB, log *logrus.Logger) {
	tables := []struct {
		name  string
		model any
	}{
		{"ds_vehicle", &models.Vehicle{}},
		{"ds_customer", &models.Customer{}},
		{"ds_contract", &models.Contract{}},
		{"ds_contract_image", &models.ContractImage{}},
	}
	for _, t := range tables {
		if err := db.AutoMigrate(t.model); err != nil {
			log.WithField("table", t.name).WithError(err).Warn("migration warning")
		}
	}
	backfillColumns(db, log)
}

// backfillColumns adds the columns introduced after the original schema.
// Each step is fire-and-forget: on an existing schema the ALTER fails with
// "duplicate column" and the step is skipped, the expected steady state. The
// outcome of every step is logged so schema drift stays diagnosable.
func backfillColumns(db *gorm.DB, log *logrus.Logger) {
	steps := []struct {
		table  string
		column string
		ddl    string
	}{
		{"ds_vehicle", "mileage", "ALTER TABLE ds_vehicle ADD COLUMN mileage bigint DEFAULT 0"},
		{"ds_vehicle", "price", "ALTER TABLE ds_vehicle ADD COLUMN price numeric DEFAULT 0"},
		{"ds_vehicle", "status", "ALTER TABLE ds_vehicle ADD COLUMN status varchar(16) DEFAULT 'available'"},
		{"ds_vehicle", "updated_at", "ALTER TABLE ds_vehicle ADD COLUMN updated_at timestamp"},
		{"ds_contract", "tax_amount", "ALTER TABLE ds_contract ADD COLUMN tax_amount numeric DEFAULT 0"},
		{"ds_contract", "updated_at", "ALTER TABLE ds_contract ADD COLUMN updated_at timestamp"},
	}
	for _, s := range steps {
		entry := log.WithFields(logrus.Fields{"table": s.table, "column": s.column})
		if err := db.Exec(s.ddl).Error; err != nil {
			entry.WithError(err).Debug("schema backfill skipped")
			continue
		}
		entry.Info("schema backfill applied")
	}
}

var sampleVehicles = []models.Vehicle{
	{VIN: "1HGCM82633A004352", Make: "Honda", Model: "Accord", Year: 2021, Color: "Silver", Mileage: 24210, Price: 21500, Status: models.VehicleAvailable},
	{VIN: "2T1BURHE5JC064213", Make: "Toyota", Model: "Corolla", Year: 2022, Color: "White", Mileage: 11840, Price: 19900, Status: models.VehicleAvailable},
	{VIN: "3FA6P0H73GR238751", Make: "Ford", Model: "Fusion", Year: 2019, Color: "Blue", Mileage: 46020, Price: 15400, Status: models.VehicleAvailable},
	{VIN: "1C4RJFBG5FC745981", Make: "Jeep", Model: "Grand Cherokee", Year: 2020, Color: "Black", Mileage: 38755, Price: 28900, Status: models.VehicleMaintenance},
	{VIN: "5YJ3E1EA8KF317829", Make: "Tesla", Model: "Model 3", Year: 2023, Color: "Red", Mileage: 8120, Price: 36700, Status: models.VehicleAvailable},
}

var sampleCustomers = []models.Customer{
	{FirstName: "Sarah", LastName: "Johnson", Phone: "555-0101", Email: "sarah.johnson@example.com", Address: "12 Elm St"},
	{FirstName: "Michael", LastName: "Chen", Phone: "555-0102", Email: "m.chen@example.com"},
	{FirstName: "Emily", LastName: "Rodriguez", Phone: "555-0103", Address: "450 Oak Ave"},
	{FirstName: "David", LastName: "Okafor", Phone: "555-0104", Email: "d.okafor@example.com"},
	{FirstName: "Anna", LastName: "Kowalski", Phone: "555-0105"},
}

// seedDB inserts the sample rows when the tables are empty. It runs on every
// start; the count guards make it idempotent after the first seed.
func seedDB(db *gorm.DB, log *logrus.Logger) {
	var vcount int64
	db.Model(&models.Vehicle{}).Count(&vcount)
	if vcount == 0 {
		for i := range sampleVehicles {
			v := sampleVehicles[i]
			if err := db.Create(&v).Error; err != nil {
				log.WithField("vin", v.VIN).WithError(err).Warn("seed vehicle failed")
			}
		}
		log.WithField("count", len(sampleVehicles)).Info("seeded sample vehicles")
	}

	var ccount int64
	db.Model(&models.Customer{}).Count(&ccount)
	if ccount == 0 {
		for i := range sampleCustomers {
			c := sampleCustomers[i]
			if err := db.Create(&c).Error; err != nil {
				log.WithField("phone", c.Phone).WithError(err).Warn("seed customer failed")
			}
		}
		log.WithField("count", len(sampleCustomers)).Info("seeded sample customers")
	}
}
