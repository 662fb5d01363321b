package model

// Scope carries the identity of the user behind a request.
// UserID doubles as the conversation session key: each user holds at most
// one pending parsed command at a time.
type Scope struct {
	UserID   string
	Username string
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
