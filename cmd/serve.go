package cmd

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/spf13/cobra"

	awsclient "tasnim.dev/bucket-lister/internal/aws"
	"tasnim.dev/bucket-lister/internal/config"
	"tasnim.dev/bucket-lister/internal/lister"
	"tasnim.dev/bucket-lister/internal/logger"
)

func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the bucket lister under the AWS Lambda runtime",
		Args:  cobra.NoArgs,
		RunE:  RunServe,
	}
}

// RunServe builds the handler once per cold start and hands it to the Lambda
// runtime loop. It only returns on setup failure.
func RunServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log := logger.Setup(cfg.LogLevel)

	profile, region := cfg.Merge("", "")
	client, err := awsclient.NewServiceClient(context.Background(), profile, region)
	if err != nil {
		return fmt.Errorf("initializing AWS client: %w", err)
	}

	handler := lister.NewHandler(client.S3, cfg.Options())
	log.Info().
		Str("default_bucket", cfg.DefaultBucket).
		Bool("cors", cfg.CORSEnabled).
		Msg("starting lambda handler")

	lambda.Start(handler.Handle)
	return nil
}
