package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ec2inventory/internal/config"
	"ec2inventory/internal/credentials"
	"ec2inventory/internal/orchestrator"
	"ec2inventory/internal/ui"
	"ec2inventory/pkg/logging"
)

const regionPrompt = "Enter your Region Name : "

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ec2inventory",
		Short: "Export running and stopped EC2 instances of a region to an Excel inventory",
		Long: `ec2inventory lists the running and stopped EC2 instances of one AWS region
and writes them to <output-dir>/<Month>_INVENTORY_DATA_<Year>.xlsx.

Exit codes:
  0  report written
  1  configuration or filesystem error, or interrupted; no report written
  2  listing failed, report written without instance rows

Environment variables EC2INVENTORY_<FLAG> (e.g. EC2INVENTORY_OUTPUT_DIR)
mirror the flags.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runExport,
	}

	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newShowCmd())

	return rootCmd
}

// session is what every AWS-facing command resolves before doing work.
type session struct {
	cfg    *config.Config
	region string
	source credentials.Source
	logger logging.Logger
}

// resolveSession loads the configuration, prompts for the region when it is
// not configured, and builds the credential source.
func resolveSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, err
	}

	logger := logging.NewDefaultLogger()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(logging.StringToLogLevel(cfg.LogLevel))
	if cfg.File != "" {
		logger.Debug("Loaded configuration from %s", cfg.File)
	}

	prompter := credentials.NewPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())

	region := cfg.Region
	if region == "" {
		region, err = prompter.Ask(regionPrompt)
		if err != nil {
			return nil, fmt.Errorf("failed to read region: %w", err)
		}
		if region == "" {
			return nil, fmt.Errorf("region is required")
		}
	}

	source, err := credentials.NewSource(cfg.CredentialSource, credentials.Options{
		Prompter:  prompter,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
		SecretID:  cfg.SecretID,
		Region:    region,
	})
	if err != nil {
		return nil, err
	}

	return &session{cfg: cfg, region: region, source: source, logger: logger}, nil
}

func runExport(cmd *cobra.Command, _ []string) error {
	sess, err := resolveSession(cmd)
	if err != nil {
		return err
	}

	service, err := orchestrator.NewDefaultService(orchestrator.Config{
		Region:    sess.region,
		OutputDir: sess.cfg.OutputDir,
		Timeout:   sess.cfg.Timeout,
		Retries:   sess.cfg.Retries,
	}, sess.source, sess.logger)
	if err != nil {
		return fmt.Errorf("failed to initialize the service: %w", err)
	}

	result, err := service.Run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.RenderExportSummary(result.Path, result.Count, result.ListErr))

	if result.ListingFailed() {
		return &exitCodeError{code: exitListingFailed, err: result.ListErr}
	}
	return nil
}
