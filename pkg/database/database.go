package database

import (
	"fmt"

	"institute_backend/internal/config"
	"institute_backend/internal/model"
	applog "institute_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Models 需要自动迁移的表
func Models() []interface{} {
	return []interface{}{
		&model.Department{},
		&model.StudentProfile{},
		&model.TeacherProfile{},
		&model.Course{},
		&model.Enrollment{},
		&model.AttendanceRecord{},
		&model.StudentAttendance{},
		&model.FeeInvoice{},
		&model.Payment{},
	}
}

func DSN(cfg *config.DatabaseConfig) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)
}

func InitDB(cfg *config.DatabaseConfig, debug bool) (*gorm.DB, error) {
	logLevel := logger.Warn
	if debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.Open(DSN(cfg)), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	applog.L().Info("Database connection established",
		zap.String("host", cfg.Host),
		zap.String("database", cfg.DBName),
	)
	return db, nil
}

// Migrate 自动迁移报表相关的表
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	applog.L().Info("Database migration completed")
	return nil
}
