// Package lister implements the bucket listing Lambda handler: resolve a
// bucket name, read the first page of its objects and report the outcome as
// an API Gateway style envelope. Every failure becomes a response; Handle
// never returns a non-nil error to the runtime.
package lister

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/rs/zerolog"

	awss3 "tasnim.dev/bucket-lister/internal/aws/s3"
	"tasnim.dev/bucket-lister/internal/constants"
	"tasnim.dev/bucket-lister/internal/logger"
	"tasnim.dev/bucket-lister/internal/utils"
)

const (
	MissingBucketMessage = "Error: No bucket name provided. Please specify bucket_name in event or " +
		constants.EnvBucketName + " environment variable."
	ProviderErrorPrefix = "Error reading from S3 bucket: "
	SuccessPrefix       = "Hello World! Successfully read from S3 bucket: "
	UnexpectedMessage   = "Unexpected error occurred"
)

type Handler struct {
	objects ObjectLister
	opts    Options
}

func NewHandler(objects ObjectLister, opts Options) *Handler {
	return &Handler{objects: objects, opts: opts}
}

func (h *Handler) Handle(ctx context.Context, req Request) (events.APIGatewayProxyResponse, error) {
	log := requestLogger(ctx)
	log.Info().Msg("Hello World! Starting S3 bucket read operation...")

	bucket := h.resolveBucket(req)
	if bucket == "" {
		log.Warn().Msg("no bucket name provided")
		return h.respond(http.StatusBadRequest, errorBody{
			Message: MissingBucketMessage,
			Hello:   constants.HelloMarker,
		}), nil
	}

	log = log.With().Str("bucket", bucket).Logger()
	ctx = logger.WithLogger(ctx, &log)
	log.Info().Msg("reading from S3 bucket")

	objects, err := h.list(ctx, bucket)
	if err != nil {
		var perr *awss3.ProviderError
		if errors.As(err, &perr) {
			log.Error().Str("code", perr.Code).Str("provider_message", perr.Message).Msg("error reading from S3 bucket")
			msg := perr.Message
			if msg == "" {
				msg = perr.Error()
			}
			return h.respond(http.StatusInternalServerError, errorBody{
				Message: ProviderErrorPrefix + perr.Code,
				Error:   msg,
				Hello:   constants.HelloMarker,
			}), nil
		}

		log.Error().Err(err).Msg("unexpected error")
		return h.respond(http.StatusInternalServerError, errorBody{
			Message: UnexpectedMessage,
			Error:   err.Error(),
			Hello:   constants.HelloMarker,
		}), nil
	}

	if len(objects) > int(constants.MaxKeys) {
		objects = objects[:constants.MaxKeys]
	}

	summaries := make([]ObjectSummary, 0, len(objects))
	var total int64
	for _, obj := range objects {
		summaries = append(summaries, ObjectSummary{
			Key:          obj.Key,
			Size:         obj.Size,
			LastModified: utils.ISOTimestamp(obj.LastModified),
		})
		total += obj.Size
	}

	message := SuccessPrefix + bucket
	log.Info().Int("object_count", len(summaries)).Str("total_size", utils.Size(total)).Msg(message)

	return h.respond(http.StatusOK, listingBody{
		Message:     message,
		Bucket:      bucket,
		ObjectCount: len(summaries),
		Objects:     summaries,
		Hello:       constants.HelloMarker,
	}), nil
}

// resolveBucket picks the request field, then the bucket_name query parameter,
// then the configured default.
func (h *Handler) resolveBucket(req Request) string {
	if b := strings.TrimSpace(req.BucketName); b != "" {
		return b
	}
	if b := strings.TrimSpace(req.QueryStringParameters["bucket_name"]); b != "" {
		return b
	}
	return strings.TrimSpace(h.opts.DefaultBucket)
}

// list calls the provider once. A panic inside the call is reported as an
// ordinary error so it still maps to a 500 response.
func (h *Handler) list(ctx context.Context, bucket string) (objects []awss3.S3Object, err error) {
	defer func() {
		if r := recover(); r != nil {
			objects = nil
			err = fmt.Errorf("panic listing %s: %v", bucket, r)
		}
	}()
	return h.objects.ListObjects(ctx, bucket, constants.MaxKeys)
}

func (h *Handler) respond(status int, body any) events.APIGatewayProxyResponse {
	headers := map[string]string{"Content-Type": "application/json"}
	if h.opts.CORS {
		origin := h.opts.AllowOrigin
		if origin == "" {
			origin = "*"
		}
		headers["Access-Control-Allow-Origin"] = origin
	}

	data, err := json.Marshal(body)
	if err != nil {
		status = http.StatusInternalServerError
		data, _ = json.Marshal(errorBody{Message: UnexpectedMessage, Error: err.Error(), Hello: constants.HelloMarker})
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       string(data),
	}
}

func requestLogger(ctx context.Context) zerolog.Logger {
	c := logger.Ctx(ctx).With().Str("function_name", lambdacontext.FunctionName)
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		c = c.Str("request_id", lc.AwsRequestID)
	}
	return c.Logger()
}
