package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	awsclient "tasnim.dev/bucket-lister/internal/aws"
	"tasnim.dev/bucket-lister/internal/config"
	"tasnim.dev/bucket-lister/internal/lister"
	"tasnim.dev/bucket-lister/internal/logger"
)

func NewInvokeCmd() *cobra.Command {
	var profile string
	var region string
	var bucket string
	var event string
	var cors bool

	cmd := &cobra.Command{
		Use:   "invoke",
		Short: "Run one local invocation against real S3 and print the response",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if cmd.Flags().Changed("cors") {
				cfg.CORSEnabled = cors
			}
			profile, region = cfg.Merge(profile, region)
			log := logger.Setup(cfg.LogLevel)

			req := lister.Request{BucketName: bucket}
			if event != "" {
				if err := json.Unmarshal([]byte(event), &req); err != nil {
					return fmt.Errorf("parsing --event: %w", err)
				}
			}

			ctx := context.Background()
			client, err := awsclient.NewServiceClient(ctx, profile, region)
			if err != nil {
				return fmt.Errorf("initializing AWS client: %w", err)
			}
			log.Debug().
				Str("account", awsclient.GetAccountID(ctx, client.Config)).
				Str("region", client.Config.Region).
				Msg("resolved AWS identity")

			ctx = lambdacontext.NewContext(ctx, &lambdacontext.LambdaContext{AwsRequestID: uuid.NewString()})
			resp, err := lister.NewHandler(client.S3, cfg.Options()).Handle(ctx, req)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(resp, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding response: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "Bucket to list (falls back to S3_BUCKET_NAME)")
	cmd.Flags().StringVarP(&event, "event", "e", "", `Raw JSON event, e.g. '{"bucket_name":"my-bucket"}'`)
	cmd.Flags().BoolVar(&cors, "cors", false, "Add Access-Control-Allow-Origin to the response")
	cmd.Flags().StringVarP(&profile, "profile", "p", "", "AWS profile to use")
	cmd.Flags().StringVarP(&region, "region", "r", "", "AWS region to use")

	return cmd
}
