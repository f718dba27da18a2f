package config

import "github.com/joho/godotenv"

// envFiles are tried in order; values already in the process environment win.
var envFiles = []string{".env", ".env.local"}

func loadEnvFile() {
	for _, path := range envFiles {
		if err := godotenv.Load(path); err == nil {
			return
		}
	}
}
