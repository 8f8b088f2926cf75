package config

// AdminConfig holds the seed credentials for the admin account.
// When Password is empty a random one is generated and logged once.
type AdminConfig struct {
	FirstName string `env:"ADMIN_FIRST_NAME" env-default:"Admin"`
	LastName  string `env:"ADMIN_LAST_NAME" env-default:"User"`
	Password  string `env:"ADMIN_PASSWORD"`
}
