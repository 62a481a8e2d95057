package config

import (
	"os"
)

const defaultJWTSecret = "your-secret-key-change-this-in-production"

// JWTSecret verifies bearer tokens minted by the identity provider.
var JWTSecret []byte

func init() {
	LoadJWTSecret()
}

// LoadJWTSecret rereads JWT_SECRET, for use after godotenv has populated the environment.
func LoadJWTSecret() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = defaultJWTSecret
	}
	JWTSecret = []byte(secret)
}
