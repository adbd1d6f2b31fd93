package main

import (
	"fmt"

	"github.com/spf13/cobra"

	projectRepo "github.com/StefanSilver/dtlpy/internal/project/repository"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage platform projects",
}

var projectsCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a new project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := projects.Create(cmd.Context(), projectRepo.CreateProjectOptions{Name: args[0]})
		if err != nil {
			return err
		}
		fmt.Printf("Created project %s (%s)\n", project.Name, project.ID)
		return nil
	},
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		all, err := projects.List(cmd.Context())
		if err != nil {
			return err
		}
		for _, p := range all {
			fmt.Printf("%s\t%s\t%s\n", p.ID, p.Name, p.CreatedAt)
		}
		return nil
	},
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a project by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := projects.GetOne(cmd.Context(), projectRepo.GetOneProjectOptions{Name: args[0]})
		if err != nil {
			return err
		}
		if err := projects.Delete(cmd.Context(), project.ID); err != nil {
			return err
		}
		fmt.Printf("Deleted project %s\n", project.Name)
		return nil
	},
}

func init() {
	projectsCmd.AddCommand(projectsCreateCmd)
	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsDeleteCmd)
}
