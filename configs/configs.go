package configs

import (
	"os"
	"strconv"
	"strings"
	"time"

	"anket.link/configs/configslog"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// AppConfig uygulamanın ortam değişkenlerinden okunan ayarlarıdır.
type AppConfig struct {
	Env            string
	Port           string
	AllowedOrigins []string

	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	DBMaxOpenConns int
	DBMaxIdleConns int

	JWTSecret string
	JWTTTL    time.Duration
}

// LoadEnv .env dosyasını (varsa) yükler ve AppConfig döndürür.
// .env bulunamazsa sistem ortam değişkenleri kullanılır.
func LoadEnv() *AppConfig {
	if err := godotenv.Load(); err != nil {
		configslog.SLog.Info(".env dosyası bulunamadı, sistem ortam değişkenleri kullanılıyor")
	}

	cfg := &AppConfig{
		Env:            GetEnv("APP_ENV", "development"),
		Port:           GetEnv("APP_PORT", "3000"),
		AllowedOrigins: splitCSV(GetEnv("ALLOWED_ORIGINS", "*")),
		DBHost:         GetEnv("DB_HOST", "localhost"),
		DBPort:         GetEnv("DB_PORT", "5432"),
		DBUser:         GetEnv("DB_USER", "postgres"),
		DBPassword:     GetEnv("DB_PASSWORD"),
		DBName:         GetEnv("DB_NAME", "anket"),
		DBSSLMode:      GetEnv("DB_SSLMODE", "disable"),
		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 20),
		DBMaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 10),
		JWTSecret:      GetEnv("JWT_SECRET"),
		JWTTTL:         getEnvDuration("JWT_TTL", time.Hour),
	}

	if cfg.JWTSecret == "" {
		configslog.Log.Warn("JWT_SECRET tanımlı değil, kimlik doğrulama gerektiren istekler reddedilecek")
	}
	return cfg
}

// GetEnv ortam değişkenini okur; tanımlı değilse varsa varsayılan değeri döndürür.
func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func getEnvInt(key string, def int) int {
	raw := GetEnv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		configslog.Log.Warn("Geçersiz sayısal ortam değişkeni, varsayılan kullanılıyor", zap.String("key", key), zap.String("value", raw))
		return def
	}
	return v
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	raw := GetEnv(key)
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		configslog.Log.Warn("Geçersiz süre ortam değişkeni, varsayılan kullanılıyor", zap.String("key", key), zap.String("value", raw))
		return def
	}
	return v
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
