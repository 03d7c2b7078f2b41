package config

import (
	"os"
)

type Config struct {
	DBUrl       string
	JWTSecret   string
	Supabase    string
	SupabaseKey string
	Port        string
	AWSBucket   string
	AWSRegion   string
}

func LoadConfig() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return &Config{
		DBUrl:       os.Getenv("SUPABASE_DB_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		Supabase:    os.Getenv("NEXT_PUBLIC_SUPABASE_URL"),
		SupabaseKey: os.Getenv("SUPABASE_ANON_KEY"),
		Port:        port,
		AWSBucket:   os.Getenv("AWS_BUCKET_NAME"),
		AWSRegion:   os.Getenv("AWS_REGION"),
	}
}
