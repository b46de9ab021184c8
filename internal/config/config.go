package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// AppConfig содержит конфигурацию приложения
type AppConfig struct {
	ServerPort  string
	KafkaBroker string
	KafkaTopic  string
	GinMode     string
	LLTF        LLTFConfig
	Database    DatabaseConfig
	Logging     LoggerConfig
}

// LLTFConfig содержит параметры подключения к фильтру и доменную политику
type LLTFConfig struct {
	// ConfigFile — путь к XML-конфигурации вендора (system.xml)
	ConfigFile string
	// SystemIndex — позиция системы в конфигурации
	SystemIndex int
	// ToleranceNM — допуск сравнения длин волн, нм (половина FWHM)
	ToleranceNM float64
	// HarmonicMinNM / HarmonicMaxNM — окно второй гармоники, нм
	HarmonicMinNM float64
	HarmonicMaxNM float64
}

// LoggerConfig содержит настройки логгера
type LoggerConfig struct {
	Enable     bool
	LogsDir    string
	Level      string
	SavingDays int
}

// DatabaseConfig содержит конфигурацию для подключения к базе данных
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
}

// LoadConfiguration загружает конфигурацию из .env файла или переменных окружения
func LoadConfiguration() (*AppConfig, error) {
	_ = godotenv.Load()

	config := &AppConfig{
		ServerPort:  getEnv("APP_PORT", "8082"),
		KafkaBroker: getEnv("KAFKA_BROKER", "localhost:9092"),
		KafkaTopic:  getEnv("KAFKA_TOPIC", "lltf_status"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		LLTF: LLTFConfig{
			ConfigFile:    getEnv("LLTF_CONFIG_FILE", `C:\Program Files (x86)\Photon etc\PHySpecV2\system.xml`),
			SystemIndex:   getEnvAsInt("LLTF_SYSTEM_INDEX", 0),
			ToleranceNM:   getEnvAsFloat("LLTF_TOLERANCE_NM", 2.5),
			HarmonicMinNM: getEnvAsFloat("LLTF_HARMONIC_MIN_NM", 500),
			HarmonicMaxNM: getEnvAsFloat("LLTF_HARMONIC_MAX_NM", 1000),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Username: getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "root"),
			DBName:   getEnv("DB_NAME", "lltf_db"),
		},
		Logging: LoggerConfig{
			Enable:     getEnvAsBool("LOGGER_ENABLE", true),
			LogsDir:    getEnv("LOGGER_LOGS_DIR", "./logs"),
			Level:      getEnv("LOGGER_LOG_LEVEL", "DEBUG"),
			SavingDays: getEnvAsInt("LOGGER_SAVING_DAYS", 7),
		},
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(name string, defaultValue int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(name string, defaultValue float64) float64 {
	valueStr := getEnv(name, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	val, _ := strconv.ParseBool(value)
	return val
}
