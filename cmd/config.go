package cmd

// Config carries the environment-driven settings for the application.
// StorageDriver selects the persistence adapter: "file" keeps JSON
// collections under DataDir, "postgres" uses the DB* connection settings.
type Config struct {
	HTTPPort      string
	StorageDriver string
	DataDir       string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string
}
