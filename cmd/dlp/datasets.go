package main

import (
	"fmt"

	"github.com/spf13/cobra"

	datasetRepo "github.com/StefanSilver/dtlpy/internal/dataset/repository"
	projectRepo "github.com/StefanSilver/dtlpy/internal/project/repository"
)

var datasetProjectFlag string

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "Manage datasets within a project",
}

var datasetsCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a dataset in the given project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := projects.GetOne(cmd.Context(), projectRepo.GetOneProjectOptions{Name: datasetProjectFlag})
		if err != nil {
			return err
		}

		dataset, err := datasets.Create(cmd.Context(), datasetRepo.CreateDatasetOptions{
			ProjectID: project.ID,
			Name:      args[0],
		})
		if err != nil {
			return err
		}
		fmt.Printf("Created dataset %s (%s)\n", dataset.Name, dataset.ID)
		return nil
	},
}

var datasetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List datasets in the given project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := projects.GetOne(cmd.Context(), projectRepo.GetOneProjectOptions{Name: datasetProjectFlag})
		if err != nil {
			return err
		}

		all, err := datasets.List(cmd.Context(), project.ID)
		if err != nil {
			return err
		}
		for _, d := range all {
			fmt.Printf("%s\t%s\t%d items\n", d.ID, d.Name, d.ItemsCount)
		}
		return nil
	},
}

var datasetsDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a dataset by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := projects.GetOne(cmd.Context(), projectRepo.GetOneProjectOptions{Name: datasetProjectFlag})
		if err != nil {
			return err
		}

		dataset, err := datasets.GetOne(cmd.Context(), datasetRepo.GetOneDatasetOptions{
			ProjectID: project.ID,
			Name:      args[0],
		})
		if err != nil {
			return err
		}
		if err := datasets.Delete(cmd.Context(), dataset.ID); err != nil {
			return err
		}
		fmt.Printf("Deleted dataset %s\n", dataset.Name)
		return nil
	},
}

func init() {
	datasetsCmd.PersistentFlags().StringVarP(&datasetProjectFlag, "project", "p", "", "project name (required)")
	datasetsCmd.MarkPersistentFlagRequired("project")

	datasetsCmd.AddCommand(datasetsCreateCmd)
	datasetsCmd.AddCommand(datasetsListCmd)
	datasetsCmd.AddCommand(datasetsDeleteCmd)
}
