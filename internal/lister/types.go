package lister

import (
	"context"

	awss3 "tasnim.dev/bucket-lister/internal/aws/s3"
)

// Request is the invocation event. Direct invocations send
// {"bucket_name": "..."}; API Gateway proxy events carry it as a query parameter.
type Request struct {
	BucketName            string            `json:"bucket_name,omitempty"`
	QueryStringParameters map[string]string `json:"queryStringParameters,omitempty"`
}

// ObjectLister is the storage capability the handler depends on.
type ObjectLister interface {
	ListObjects(ctx context.Context, bucket string, maxKeys int32) ([]awss3.S3Object, error)
}

type Options struct {
	// DefaultBucket is used when the request names no bucket.
	DefaultBucket string
	// CORS adds Access-Control-Allow-Origin to every response.
	CORS        bool
	AllowOrigin string
}

type ObjectSummary struct {
	Key          string `json:"key"`
	Size         int64  `json:"size"`
	LastModified string `json:"last_modified"`
}

// Body is the decoded form of any response body. Handlers never marshal it
// directly; see listingBody and errorBody for the exact shapes on the wire.
type Body struct {
	Message     string          `json:"message"`
	Bucket      string          `json:"bucket,omitempty"`
	ObjectCount int             `json:"object_count,omitempty"`
	Objects     []ObjectSummary `json:"objects,omitempty"`
	Error       string          `json:"error,omitempty"`
	Hello       string          `json:"hello"`
}

type listingBody struct {
	Message     string          `json:"message"`
	Bucket      string          `json:"bucket"`
	ObjectCount int             `json:"object_count"`
	Objects     []ObjectSummary `json:"objects"`
	Hello       string          `json:"hello"`
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Hello   string `json:"hello"`
}
