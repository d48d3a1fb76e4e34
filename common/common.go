package common

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	// ProjectID is the GCP project the service runs in.
	ProjectID string

	// GAEService is the app engine service name.
	GAEService string

	// Production flag indicating if app is running the production backend on appengine
	Production bool

	// IsLocalhost flag indicating if app is running on localhost
	IsLocalhost bool
)

const (
	productionProject = "ummah-orphan-care"

	TestProjectID = "ummah-orphan-care-dev"

	DayDuration = 24 * time.Hour
)

func init() {
	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", TestProjectID)
	GAEService = GetEnv("GAE_SERVICE", "donations")

	IsLocalhost = gin.Mode() != gin.ReleaseMode
	Production = ProjectID == productionProject
}

// GetEnv returns the value of the environment variable, or a fallback value
// when it is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}
