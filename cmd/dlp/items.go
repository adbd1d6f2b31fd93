package main

import (
	"fmt"

	"github.com/spf13/cobra"

	itemRepo "github.com/StefanSilver/dtlpy/internal/item/repository"
)

var (
	itemProjectFlag string
	itemDatasetFlag string
	itemRemoteName  string
	itemDeleteID    string
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Manage items within a dataset",
}

var itemsUploadCmd = &cobra.Command{
	Use:   "upload PATH",
	Short: "Upload a local file to the dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items, _, err := resolveDataset(cmd.Context(), itemProjectFlag, itemDatasetFlag)
		if err != nil {
			return err
		}

		item, err := items.Upload(cmd.Context(), itemRepo.UploadItemOptions{
			LocalPath:  args[0],
			RemoteName: itemRemoteName,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Uploaded %s (%s), %d bytes\n", item.Name, item.ID, item.Size)
		return nil
	},
}

var itemsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List items in the dataset",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		items, dataset, err := resolveDataset(cmd.Context(), itemProjectFlag, itemDatasetFlag)
		if err != nil {
			return err
		}

		all, err := items.List(cmd.Context(), itemRepo.ListItemsOptions{})
		if err != nil {
			return err
		}
		fmt.Printf("Dataset %s: %d items\n", dataset.Name, len(all))
		for _, it := range all {
			fmt.Printf("%s\t%s\t%d bytes\n", it.ID, it.Name, it.Size)
		}
		return nil
	},
}

var itemsDeleteCmd = &cobra.Command{
	Use:   "delete [NAME]",
	Short: "Delete an item by name, or by id with --id",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if itemDeleteID == "" && len(args) == 0 {
			return fmt.Errorf("either NAME or --id is required")
		}

		items, _, err := resolveDataset(cmd.Context(), itemProjectFlag, itemDatasetFlag)
		if err != nil {
			return err
		}

		if itemDeleteID != "" {
			if err := items.DeleteByID(cmd.Context(), itemDeleteID); err != nil {
				return err
			}
			fmt.Printf("Deleted item %s\n", itemDeleteID)
			return nil
		}

		if err := items.DeleteByName(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted item %s\n", args[0])
		return nil
	},
}

func init() {
	itemsCmd.PersistentFlags().StringVarP(&itemProjectFlag, "project", "p", "", "project name (required)")
	itemsCmd.PersistentFlags().StringVarP(&itemDatasetFlag, "dataset", "d", "", "dataset name (required)")
	itemsCmd.MarkPersistentFlagRequired("project")
	itemsCmd.MarkPersistentFlagRequired("dataset")

	itemsUploadCmd.Flags().StringVar(&itemRemoteName, "remote-name", "", "name to store the item under (defaults to the file name)")
	itemsDeleteCmd.Flags().StringVar(&itemDeleteID, "id", "", "delete by item id instead of name")

	itemsCmd.AddCommand(itemsUploadCmd)
	itemsCmd.AddCommand(itemsListCmd)
	itemsCmd.AddCommand(itemsDeleteCmd)
}
