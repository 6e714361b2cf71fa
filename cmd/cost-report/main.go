package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/diillson/aws-cost-report-go/internal/adapter/driven/aws"
	"github.com/diillson/aws-cost-report-go/internal/adapter/driven/config"
	"github.com/diillson/aws-cost-report-go/internal/adapter/driven/export"
	"github.com/diillson/aws-cost-report-go/internal/adapter/driving/cli"
	"github.com/diillson/aws-cost-report-go/internal/adapter/driving/lambda"
	"github.com/diillson/aws-cost-report-go/internal/application/usecase"
	"github.com/diillson/aws-cost-report-go/internal/domain/repository"
	"github.com/diillson/aws-cost-report-go/internal/shared/types"
	"github.com/diillson/aws-cost-report-go/pkg/console"
	"github.com/diillson/aws-cost-report-go/pkg/version"
)

// buildUseCase inicializa os repositórios e o caso de uso para a config resolvida.
func buildUseCase(cfg types.Config, args *types.CLIArgs, con types.ConsoleInterface) lambda.ReportRunner {
	awsRepo := aws.NewAWSRepository(cfg)

	var reportRepo repository.ReportRepository = awsRepo
	var notifyRepo repository.NotificationRepository = awsRepo
	if args.DryRun {
		// Cost Explorer continua sendo consultado de verdade
		reportRepo = export.NewExportRepository(args.Dir)
		notifyRepo = console.NewNotifier(os.Stdout)
	}

	return usecase.NewReportUseCase(awsRepo, reportRepo, notifyRepo, con, cfg)
}

func newConsole(interactive bool) types.ConsoleInterface {
	return console.NewConsole(interactive)
}

func main() {
	app := cli.NewCLIApp(version.Version, config.NewConfigRepository(), buildUseCase, newConsole)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
