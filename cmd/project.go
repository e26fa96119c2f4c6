package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jbarone/django-skel/internal/config"
	"github.com/jbarone/django-skel/internal/confirm"
	"github.com/jbarone/django-skel/internal/tasks"
)

var initializeCmd = &cobra.Command{
	Use:   "initialize",
	Short: "One-time local setup after scaffolding a new project",
	Long: `Removes the scaffold docs, writes a .gitignore for generated
static files and makes the first git commit.`,
	Run: func(cmd *cobra.Command, args []string) {
		runTask(tasks.Initialize)
		successColor.Println("✅ Project initialized")
	},
}

var startappCmd = &cobra.Command{
	Use:   "startapp <app>",
	Short: "Scaffold a new application under the project's apps directory",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runTask(func(env *config.Context, ex *confirm.Executor) error {
			return tasks.StartApp(env, ex, args[0])
		})
	},
}

func init() {
	rootCmd.AddCommand(initializeCmd)
	rootCmd.AddCommand(startappCmd)
}
