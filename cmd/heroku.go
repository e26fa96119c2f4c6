package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jbarone/django-skel/internal/config"
	"github.com/jbarone/django-skel/internal/confirm"
	"github.com/jbarone/django-skel/internal/tasks"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the existing Heroku deployment",
	Long: `Pushes the current branch to Heroku, then syncs the database,
applies a site-wide migration, collects static files, compresses
assets and validates the New Relic configuration.`,
	Run: func(cmd *cobra.Command, args []string) {
		infoColor.Println("🚀 Updating deployment...")
		runTask(tasks.Update)
		successColor.Println("🎉 Deployment updated successfully!")
	},
}

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap [app]",
	Short: "Bootstrap a brand new Heroku deployment",
	Long: `Creates the Heroku application, installs every add-on from the
catalog, pushes every config variable, pushes the code and finishes
with a full update. Without an app argument the context's default
application name is used.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app := ""
		if len(args) > 0 {
			app = args[0]
		}
		infoColor.Println("🚀 Bootstrapping deployment...")
		runTask(func(env *config.Context, ex *confirm.Executor) error {
			return tasks.Bootstrap(env, ex, app)
		})
		successColor.Println("🎉 Deployment bootstrapped successfully!")
	},
}

var destroyCmd = &cobra.Command{
	Use:   "destroy [app]",
	Short: "Destroy the Heroku application. Think twice.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app := ""
		if len(args) > 0 {
			app = args[0]
		}
		runTask(func(env *config.Context, ex *confirm.Executor) error {
			return tasks.Destroy(env, ex, app)
		})
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(bootstrapCmd)
	rootCmd.AddCommand(destroyCmd)
}
