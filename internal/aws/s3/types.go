package s3

import "time"

type S3Object struct {
	Key          string
	Size         int64
	LastModified time.Time
}
