package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dylan/gitscribe/git"
	"github.com/dylan/gitscribe/journal"
	"github.com/dylan/gitscribe/ui"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent commits made by gitscribe in this repository",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, _, err := git.DetectRepo(repoPath)
		if err != nil {
			return err
		}

		j, err := journal.OpenExisting(root)
		if err != nil {
			return err
		}
		if j == nil {
			fmt.Println(ui.DimStyle.Render("No journal yet, run gitscribe in this repository first"))
			return nil
		}
		defer j.Close()

		entries, err := j.Recent(historyLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println(ui.DimStyle.Render("Journal is empty"))
			return nil
		}

		for _, e := range entries {
			line := fmt.Sprintf("%s  %s  %s %s",
				ui.MutedStyle.Render(e.CreatedAt.Format("2006-01-02 15:04")),
				ui.BranchStyle.Render(e.Branch),
				ui.ValueStyle.Render(e.Message),
				ui.DimStyle.Render(fmt.Sprintf("(%d files)", e.Files)))
			if e.Pushed {
				line += " " + ui.CommitStyle.Render("pushed")
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "number of entries to show")
	rootCmd.AddCommand(historyCmd)
}
