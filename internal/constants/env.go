// Where: internal/constants/env.go
// What: Environment variable naming constants.
// Why: Centralize environment variable names to avoid typos and inconsistencies.
package constants

const (
	// Project Configuration
	EnvRoot       = "KEYPROPS_ROOT"
	EnvProperties = "KEYPROPS_PROPERTIES"
	EnvLogLevel   = "KEYPROPS_LOG_LEVEL"

	// Remote Source Configuration
	EnvS3Region    = "KEYPROPS_S3_REGION"
	EnvS3Endpoint  = "KEYPROPS_S3_ENDPOINT"
	EnvS3AccessKey = "KEYPROPS_S3_ACCESS_KEY"
	EnvS3SecretKey = "KEYPROPS_S3_SECRET_KEY"

	// Standard AWS fallbacks
	EnvAWSRegion = "AWS_REGION"
)
