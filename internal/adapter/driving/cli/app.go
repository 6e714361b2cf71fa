package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/diillson/aws-cost-report-go/internal/adapter/driven/config"
	"github.com/diillson/aws-cost-report-go/internal/adapter/driving/lambda"
	"github.com/diillson/aws-cost-report-go/internal/domain/repository"
	"github.com/diillson/aws-cost-report-go/internal/shared/types"
	"github.com/diillson/aws-cost-report-go/pkg/version"
)

// UseCaseBuilder monta o caso de uso a partir da configuração resolvida.
type UseCaseBuilder func(cfg types.Config, args *types.CLIArgs, console types.ConsoleInterface) lambda.ReportRunner

// ConsoleFactory cria o console; interactive é falso no modo Lambda.
type ConsoleFactory func(interactive bool) types.ConsoleInterface

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd     *cobra.Command
	configRepo  repository.ConfigRepository
	build       UseCaseBuilder
	newConsole  ConsoleFactory
	startLambda func(*lambda.Handler)
	version     string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string, configRepo repository.ConfigRepository, build UseCaseBuilder, newConsole ConsoleFactory) *CLIApp {
	app := &CLIApp{
		configRepo:  configRepo,
		build:       build,
		newConsole:  newConsole,
		startLambda: lambda.Start,
		version:     versionStr,
	}

	rootCmd := &cobra.Command{
		Use:           "cost-report",
		Short:         "Weekly AWS cost report: Cost Explorer -> S3 -> SNS",
		Version:       version.FormatVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate(`{{printf "AWS Cost Report version: %s\n" .Version}}`)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Generate the report once and exit (status 500 exits with code 1)",
		Args:  cobra.NoArgs,
		RunE:  app.runCommand,
	}
	runCmd.Flags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	runCmd.Flags().StringP("bucket", "b", "", fmt.Sprintf("S3 bucket for the report (default %q)", types.DefaultBucket))
	runCmd.Flags().StringP("topic-arn", "t", "", "SNS topic ARN for notifications")
	runCmd.Flags().StringP("profile", "p", "", "AWS profile to use")
	runCmd.Flags().StringP("region", "r", "", "AWS region for S3 (Cost Explorer always uses us-east-1)")
	runCmd.Flags().String("key-prefix", "", fmt.Sprintf("Key prefix inside the bucket (default %q)", types.DefaultKeyPrefix))
	runCmd.Flags().Bool("dry-run", false, "Write the report to a local directory and print notifications instead of using S3/SNS")
	runCmd.Flags().StringP("dir", "d", "", "Directory for --dry-run reports (default: current directory)")

	lambdaCmd := &cobra.Command{
		Use:   "lambda",
		Short: "Start the AWS Lambda runtime loop (config file from $" + config.EnvConfigFile + ")",
		Args:  cobra.NoArgs,
		RunE:  app.lambdaCommand,
	}

	rootCmd.AddCommand(runCmd, lambdaCmd)
	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// ExecuteContext é como Execute, com contexto (usado para cancelar via sinal).
func (app *CLIApp) ExecuteContext(ctx context.Context) error {
	return app.rootCmd.ExecuteContext(ctx)
}

// parseArgs parses the run command flags into a CLIArgs struct.
func parseArgs(cmd *cobra.Command) (*types.CLIArgs, error) {
	configFile, _ := cmd.Flags().GetString("config-file")
	bucket, _ := cmd.Flags().GetString("bucket")
	topicARN, _ := cmd.Flags().GetString("topic-arn")
	profile, _ := cmd.Flags().GetString("profile")
	region, _ := cmd.Flags().GetString("region")
	keyPrefix, _ := cmd.Flags().GetString("key-prefix")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	dir, _ := cmd.Flags().GetString("dir")

	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	return &types.CLIArgs{
		ConfigFile: configFile,
		Bucket:     bucket,
		TopicARN:   topicARN,
		Profile:    profile,
		Region:     region,
		KeyPrefix:  keyPrefix,
		DryRun:     dryRun,
		Dir:        dir,
	}, nil
}

// runCommand executa o relatório uma única vez.
func (app *CLIApp) runCommand(cmd *cobra.Command, _ []string) error {
	displayWelcomeBanner(cmd.OutOrStdout())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	go version.CheckLatestVersion(ctx, app.version)

	cliArgs, err := parseArgs(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(app.configRepo, cliArgs.ConfigFile, cliArgs.Overrides())
	if err != nil {
		return err
	}

	console := app.newConsole(true)
	if cliArgs.DryRun {
		console.LogWarning("Dry run: report goes to the local filesystem and notifications to the terminal")
	}

	status := console.Status(fmt.Sprintf("Generating cost report for s3://%s ...", cfg.Bucket))
	resp, err := app.build(cfg, cliArgs, console).Run(ctx, "")
	status.Stop()

	fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", resp.StatusCode, resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("report run finished with status %d", resp.StatusCode)
	}
	return nil
}

// lambdaCommand resolve a configuração uma vez (cold start) e entrega o
// handler ao runtime.
func (app *CLIApp) lambdaCommand(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Resolve(app.configRepo, os.Getenv(config.EnvConfigFile), types.Config{})
	if err != nil {
		return err
	}

	console := app.newConsole(false)
	console.LogInfo("Starting Lambda handler (bucket %s, topic %s)", cfg.Bucket, cfg.TopicARN)

	runner := app.build(cfg, &types.CLIArgs{}, console)
	app.startLambda(lambda.NewHandler(runner, console))
	return nil
}
