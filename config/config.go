package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Company  CompanyConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	URL      string
}

// CompanyConfig seeds tbl_company_info on first start; the stored row is what
// GET /company and the invoice PDF use afterwards.
type CompanyConfig struct {
	Name    string `mapstructure:"company_name"`
	Address string `mapstructure:"company_address"`
	City    string `mapstructure:"company_city"`
	State   string `mapstructure:"company_state"`
	Pin     string `mapstructure:"company_pin"`
	Country string `mapstructure:"company_country"`
	Phone   string `mapstructure:"company_phone"`
	Email   string `mapstructure:"company_email"`
	Gstin   string `mapstructure:"company_gstin"`
	Website string `mapstructure:"company_website"`
}

// Load reads .env (if present) with OS environment variables as fallback/override.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, checking environment variables: %v", err)
	}

	// Enable reading from OS environment variables as fallback/override
	viper.AutomaticEnv()

	viper.BindEnv("SERVER_PORT", "PORT") // Fallback to PORT if SERVER_PORT is missing
	viper.BindEnv("DATABASE_URL")

	viper.SetDefault("SERVER_PORT", "5000")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "3306")
	viper.SetDefault("DB_USER", "root")
	viper.SetDefault("DB_NAME", "supriya-crm")
	viper.SetDefault("COMPANY_NAME", "Supriya Enterprises")
	viper.SetDefault("COMPANY_COUNTRY", "India")

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
			URL:      viper.GetString("DATABASE_URL"),
		},
		Company: CompanyConfig{
			Name:    viper.GetString("COMPANY_NAME"),
			Address: viper.GetString("COMPANY_ADDRESS"),
			City:    viper.GetString("COMPANY_CITY"),
			State:   viper.GetString("COMPANY_STATE"),
			Pin:     viper.GetString("COMPANY_PIN"),
			Country: viper.GetString("COMPANY_COUNTRY"),
			Phone:   viper.GetString("COMPANY_PHONE"),
			Email:   viper.GetString("COMPANY_EMAIL"),
			Gstin:   viper.GetString("COMPANY_GSTIN"),
			Website: viper.GetString("COMPANY_WEBSITE"),
		},
	}

	return cfg, nil
}
