package s3

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

type S3API interface {
	ListObjectsV2(ctx context.Context, params *awss3.ListObjectsV2Input, optFns ...func(*awss3.Options)) (*awss3.ListObjectsV2Output, error)
}

type Client struct {
	api S3API
}

func NewClient(api S3API) *Client {
	return &Client{api: api}
}

// ListObjects reads the first page of bucket, at most maxKeys entries, in the
// order S3 returns them. No continuation token is ever sent.
func (c *Client) ListObjects(ctx context.Context, bucket string, maxKeys int32) ([]S3Object, error) {
	out, err := c.api.ListObjectsV2(ctx, &awss3.ListObjectsV2Input{
		Bucket:  aws.String(bucket),
		MaxKeys: aws.Int32(maxKeys),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return nil, &ProviderError{
				Op:      "ListObjectsV2",
				Bucket:  bucket,
				Code:    apiErr.ErrorCode(),
				Message: apiErr.ErrorMessage(),
				Err:     err,
			}
		}
		return nil, fmt.Errorf("ListObjectsV2: %w", err)
	}
	if out == nil {
		return nil, fmt.Errorf("ListObjectsV2(%s): empty response", bucket)
	}

	objects := make([]S3Object, 0, len(out.Contents))
	for _, obj := range out.Contents {
		var lastModified time.Time
		if obj.LastModified != nil {
			lastModified = *obj.LastModified
		}
		objects = append(objects, S3Object{
			Key:          aws.ToString(obj.Key),
			Size:         aws.ToInt64(obj.Size),
			LastModified: lastModified,
		})
	}

	return objects, nil
}
