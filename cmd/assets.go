package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jbarone/django-skel/internal/tasks"
)

var collectstaticCmd = &cobra.Command{
	Use:   "collectstatic",
	Short: "Collect static files on the deployed application",
	Run: func(cmd *cobra.Command, args []string) {
		runTask(tasks.CollectStatic)
	},
}

var compressCmd = &cobra.Command{
	Use:   "compress",
	Short: "Compress css and javascript files on the deployed application",
	Run: func(cmd *cobra.Command, args []string) {
		runTask(tasks.Compress)
	},
}

func init() {
	rootCmd.AddCommand(collectstaticCmd)
	rootCmd.AddCommand(compressCmd)
}
