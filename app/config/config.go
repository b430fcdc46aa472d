package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"
)

type Config struct {
	DB *sql.DB
}

var AppConfig *Config

// GetEnv returns the value of key, or def when the variable is unset.
func GetEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

// InitDB opens the database connection from environment configuration.
// The defaults are insecure and exist only so a development instance
// starts without any setup; production deployments must override them.
func InitDB() {
	host := GetEnv("DB_HOST", "localhost")
	user := GetEnv("DB_USER", "root")
	password := GetEnv("DB_PASSWORD", "123456")
	dbname := GetEnv("DB_NAME", "student_management")

	psqlInfo := fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=disable",
		host, user, password, dbname)

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}

	AppConfig = &Config{DB: db}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}
