package constants

// MaxKeys caps a listing at the first page of this many objects.
const MaxKeys int32 = 10

// Environment variables read by the handler's configuration.
const (
	EnvBucketName      = "S3_BUCKET_NAME"
	EnvCORSEnabled     = "CORS_ENABLED"
	EnvCORSAllowOrigin = "CORS_ALLOW_ORIGIN"
	EnvLogLevel        = "LOG_LEVEL"
)

// HelloMarker is the value of the "hello" field present on every response body.
const HelloMarker = "world"
