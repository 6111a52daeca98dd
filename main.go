package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"tasnim.dev/bucket-lister/cmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bucket-lister",
		Short: "Lambda handler that lists the first objects of an S3 bucket",
		// Lambda runs the bootstrap binary with no arguments.
		RunE: cmd.RunServe,
	}

	rootCmd.AddCommand(cmd.NewServeCmd())
	rootCmd.AddCommand(cmd.NewInvokeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
