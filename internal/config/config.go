package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	HTTPAddr     string
	MongoURI     string
	MongoDBName  string
	RedisAddr    string
	KafkaBrokers []string
	CORSOrigin   string
	StaticDir    string
	ServiceName  string
}

// MongoParts holds the pieces of the connection string. They arrive as
// separate settings so credentials never live in source.
type MongoParts struct {
	Prefix   string
	User     string
	Password string
	Host     string
	Name     string
	Params   string
}

// URI assembles prefix + user:password@host/name?params.
func (p MongoParts) URI() string {
	var b strings.Builder
	b.WriteString(p.Prefix)
	if p.User != "" {
		fmt.Fprintf(&b, "%s:%s@", p.User, p.Password)
	}
	b.WriteString(p.Host)
	b.WriteString("/")
	b.WriteString(p.Name)
	if p.Params != "" {
		b.WriteString("?")
		b.WriteString(p.Params)
	}
	return b.String()
}

func Load() Config {
	db := MongoParts{
		Prefix:   getenv("DB_PREFIX", "mongodb://"),
		User:     getenv("DB_USER", ""),
		Password: getenv("DB_PASSWORD", ""),
		Host:     getenv("DB_HOST", "localhost:27017"),
		Name:     getenv("DB_NAME", "webstore"),
		Params:   getenv("DB_PARAMS", ""),
	}
	return Config{
		HTTPAddr:     getenv("HTTP_ADDR", ":3000"),
		MongoURI:     db.URI(),
		MongoDBName:  db.Name,
		RedisAddr:    getenv("REDIS_ADDR", "redis:6379"),
		KafkaBrokers: splitCSV(getenv("KAFKA_BROKERS", "kafka:9092")),
		CORSOrigin:   getenv("CORS_ORIGIN", "https://sheisdumz.github.io"),
		StaticDir:    getenv("STATIC_DIR", "./public"),
		ServiceName:  getenv("SERVICE_NAME", "courses-api"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
