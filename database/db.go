package database

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path"
	"strings"

	"blogapi/config"
	"blogapi/database/model"
	"blogapi/util/crypto"
	"blogapi/util/random"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

const (
	defaultAdminUsername = "admin"
	defaultAdminEmail    = "admin@blog.local"
	defaultAdminName     = "Administrator"
)

func initModels() error {
	models := []any{
		&model.User{},
		&model.Role{},
		&model.Category{},
		&model.Post{},
		&model.Comment{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			log.Printf("Error auto migrating model: %v", err)
			return err
		}
	}
	return nil
}

// initRoles ensures the role reference table always carries the two
// well-known roles. Registration fails without ROLE_USER present.
func initRoles() error {
	for _, name := range []string{model.RoleUser, model.RoleAdmin} {
		var role model.Role
		err := db.Where("name = ?", name).First(&role).Error
		if err == nil {
			continue
		}
		if !IsNotFound(err) {
			return err
		}
		if err := db.Create(&model.Role{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}

func initUser() error {
	empty, err := isTableEmpty("users")
	if err != nil {
		log.Printf("Error checking if users table is empty: %v", err)
		return err
	}
	if !empty {
		return nil
	}

	password := config.GetAdminPassword()
	if password == "" {
		password = random.Seq(16)
		log.Printf("generated admin password: %s", password)
	}
	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return err
	}

	var roles []model.Role
	if err := db.Where("name IN ?", []string{model.RoleUser, model.RoleAdmin}).Find(&roles).Error; err != nil {
		return err
	}

	user := &model.User{
		Name:         defaultAdminName,
		Username:     defaultAdminUsername,
		Email:        defaultAdminEmail,
		PasswordHash: hash,
		Roles:        roles,
	}
	return db.Create(user).Error
}

func isTableEmpty(tableName string) (bool, error) {
	var count int64
	err := db.Table(tableName).Count(&count).Error
	return count == 0, err
}

func isMemoryDB(dbPath string) bool {
	return dbPath == ":memory:" || strings.Contains(dbPath, "mode=memory")
}

func InitDB(dbPath string) error {
	var gormLogger logger.Interface
	if config.IsDebug() {
		gormLogger = logger.Default
	} else {
		gormLogger = logger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		TranslateError:         true,
	}

	dsn := dbPath
	if !isMemoryDB(dbPath) {
		dir := path.Dir(dbPath)
		if err := os.MkdirAll(dir, fs.ModePerm); err != nil {
			return err
		}
		dsn = dbPath + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
	}

	var err error
	db, err = gorm.Open(sqlite.Open(dsn), c)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	if isMemoryDB(dbPath) {
		// Each pooled connection would otherwise see its own empty database.
		sqlDB.SetMaxOpenConns(1)
	} else {
		for _, pragma := range []string{
			"PRAGMA cache_size = -64000;",
			"PRAGMA temp_store = MEMORY;",
			"PRAGMA foreign_keys = ON;",
		} {
			if _, err = sqlDB.Exec(pragma); err != nil {
				return err
			}
		}
	}

	if err := initModels(); err != nil {
		return err
	}
	if err := initRoles(); err != nil {
		return err
	}
	return initUser()
}

func CloseDB() error {
	if db != nil {
		if err := Checkpoint(); err != nil {
			log.Printf("error executing checkpoint: %v", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

func GetDB() *gorm.DB {
	return db
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// Checkpoint flushes the WAL into the main database file.
func Checkpoint() error {
	return db.Exec("PRAGMA wal_checkpoint;").Error
}
