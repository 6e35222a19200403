package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/subtrack/internal/cli"
	"github.com/theirongolddev/subtrack/internal/model"
)

var (
	flagCatColor string
	flagCatIcon  string
)

var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"cat"},
	Short:   "List categories",
	RunE:    runCategories,
}

var categoriesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoriesAdd,
}

var categoriesRemoveCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Delete a category",
	Args:    cobra.ExactArgs(1),
	RunE:    runCategoriesRemove,
}

func init() {
	categoriesAddCmd.Flags().StringVar(&flagCatColor, "color", "#878580", "Hex color, #RRGGBB")
	categoriesAddCmd.Flags().StringVar(&flagCatIcon, "icon", "", "Display icon")
	categoriesCmd.AddCommand(categoriesAddCmd, categoriesRemoveCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	cats, err := e.categories.List()
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(cats))
	for _, c := range cats {
		rows = append(rows, []string{c.Icon, c.Name, c.Color, cli.FormatDate(c.CreatedAt)})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers:   []string{"", "Name", "Color", "Created"},
		Rows:      rows,
		AlignLeft: map[int]bool{0: true, 1: true, 2: true},
	}))
	fmt.Println()
	return nil
}

func runCategoriesAdd(_ *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	cat, err := e.categories.Create(model.Category{
		Name:  args[0],
		Color: flagCatColor,
		Icon:  flagCatIcon,
	})
	if err != nil {
		return err
	}
	fmt.Printf("\n  Added category %s (%s)\n\n", cat.Name, cat.Color)
	return nil
}

func runCategoriesRemove(_ *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	if err := e.categories.Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("\n  Removed category %s\n\n", args[0])
	return nil
}
