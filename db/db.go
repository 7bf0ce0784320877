package db

import (
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Instance *gorm.DB

// Init connects to MySQL when a DSN is configured, to SQLite otherwise.
func Init(mysqlDSN, sqliteFile string) {
	var (
		db  *gorm.DB
		err error
	)
	if mysqlDSN != "" {
		db, err = gorm.Open(mysql.Open(mysqlDSN), &gorm.Config{
			SkipDefaultTransaction: true,
			PrepareStmt:            true,
		})
	} else {
		db, err = gorm.Open(sqlite.Open(sqliteFile), &gorm.Config{})
	}
	if err != nil || db == nil {
		panic(err)
	}
	Instance = db
}
