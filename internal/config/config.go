package config

import "os"

type Config struct {
	GradingFile     string
	RosterFile      string
	RosterSheet     string
	CredentialsFile string
}

func Load() Config {
	return Config{
		GradingFile:     getenv("LABREPORT_GRADING_FILE", "BE Lab Grading Sheet.xlsx"),
		RosterFile:      getenv("LABREPORT_ROSTER_FILE", "Quality Assurance.xlsx"),
		RosterSheet:     getenv("LABREPORT_ROSTER_SHEET", "QA Class List"),
		CredentialsFile: getenv("LABREPORT_CREDENTIALS_FILE", ".email_config.json"),
	}
}

func getenv(k, fallback string) string {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	return v
}
