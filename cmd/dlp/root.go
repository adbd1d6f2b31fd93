package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/StefanSilver/dtlpy/config"
	datasetRepo "github.com/StefanSilver/dtlpy/internal/dataset/repository"
	datasetRest "github.com/StefanSilver/dtlpy/internal/dataset/repository/rest"
	itemRepo "github.com/StefanSilver/dtlpy/internal/item/repository"
	itemRest "github.com/StefanSilver/dtlpy/internal/item/repository/rest"
	"github.com/StefanSilver/dtlpy/internal/model"
	"github.com/StefanSilver/dtlpy/internal/platform"
	projectRepo "github.com/StefanSilver/dtlpy/internal/project/repository"
	projectRest "github.com/StefanSilver/dtlpy/internal/project/repository/rest"
	"github.com/StefanSilver/dtlpy/pkg/log"
)

var (
	cfg    *config.Config
	logger log.Logger
	client *platform.Client

	projects projectRepo.ProjectRepository
	datasets datasetRepo.DatasetRepository
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:               "dlp",
	Short:             "Command line client for the dataset platform",
	Long:              "dlp manages projects, datasets and items on the hosted data platform.",
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(datasetsCmd)
	rootCmd.AddCommand(itemsCmd)
}

func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	client = platform.NewClient(platform.Options{
		BaseURL:     cfg.Platform.BaseURL,
		TokenSource: platform.TokenSource(cmd.Context(), cfg.Auth),
		RateLimit:   cfg.Platform.RateLimit,
		RateBurst:   cfg.Platform.RateBurst,
	}, logger)

	projects = projectRest.New(client, logger)
	datasets = datasetRest.New(client, logger)
	return nil
}

// resolveDataset resolves project and dataset names to a bound item repository.
func resolveDataset(ctx context.Context, projectName, datasetName string) (itemRepo.ItemRepository, model.Dataset, error) {
	project, err := projects.GetOne(ctx, projectRepo.GetOneProjectOptions{Name: projectName})
	if err != nil {
		return nil, model.Dataset{}, fmt.Errorf("resolve project %q: %w", projectName, err)
	}

	dataset, err := datasets.GetOne(ctx, datasetRepo.GetOneDatasetOptions{
		ProjectID: project.ID,
		Name:      datasetName,
	})
	if err != nil {
		return nil, model.Dataset{}, fmt.Errorf("resolve dataset %q: %w", datasetName, err)
	}

	return itemRest.New(client, dataset.ID, logger), dataset, nil
}
