package model

// Environment names accepted in environment.name.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// IsProduction reports whether env names the production environment.
func IsProduction(env string) bool {
	return env == EnvProduction
}
