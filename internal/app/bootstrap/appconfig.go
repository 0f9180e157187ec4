// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers
// ports, TLS, logging, and CORS; everything below is VolunteerHub's own.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI            string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase       string // Database name within MongoDB
	MongoMaxPoolSize    uint64
	MongoMinPoolSize    uint64
	MongoConnectTimeout time.Duration

	// Session cookies are issued by the sign-in service, which shares the key.
	SessionKey    string
	SessionName   string // default: volunteerhub-session
	SessionDomain string // blank means current host

	// Volunteer map
	GazetteerPath string // JSON province list; blank uses the embedded default

	// Feed and dashboard
	SignupWindowDays int    // days shown by the signup chart
	FeedPageSize     int    // default activities per page
	TimeZone         string // IANA zone used to bucket signups into days
	DefaultLocale    string // mn | en

	// Database operation timeouts
	TimeoutPing   time.Duration
	TimeoutShort  time.Duration
	TimeoutMedium time.Duration
	TimeoutLong   time.Duration
}
