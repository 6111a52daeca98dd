package s3

import "fmt"

// ProviderError is a structured rejection returned by the S3 service itself
// (NoSuchBucket, AccessDenied, ...), as opposed to a transport or client fault.
type ProviderError struct {
	Op      string
	Bucket  string
	Code    string
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s(%s): %s: %s", e.Op, e.Bucket, e.Code, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
