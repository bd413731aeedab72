package gdocai

import (
	"fmt"
	"os"
	"strings"
)

// Config holds the Google Document AI processor settings
type Config struct {
	ProjectID   string `yaml:"project_id"`
	Location    string `yaml:"location"`
	ProcessorID string `yaml:"processor_id"`
}

// ConfigFromEnv builds a config from the GOOGLE_CLOUD_PROJECT_ID,
// GOOGLE_CLOUD_LOCATION and DOCUMENT_AI_PROCESSOR_ID environment variables.
// Location defaults to "eu" when unset.
func ConfigFromEnv() *Config {
	location := os.Getenv("GOOGLE_CLOUD_LOCATION")
	if location == "" {
		location = "eu"
	}
	return &Config{
		ProjectID:   os.Getenv("GOOGLE_CLOUD_PROJECT_ID"),
		Location:    location,
		ProcessorID: os.Getenv("DOCUMENT_AI_PROCESSOR_ID"),
	}
}

// Validate reports every missing required setting at once
func (c *Config) Validate() error {
	var missing []string
	if c.ProjectID == "" {
		missing = append(missing, "project ID (GOOGLE_CLOUD_PROJECT_ID)")
	}
	if c.ProcessorID == "" {
		missing = append(missing, "processor ID (DOCUMENT_AI_PROCESSOR_ID)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required Document AI configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}
