package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jbarone/django-skel/internal/config"
	"github.com/jbarone/django-skel/internal/confirm"
	"github.com/jbarone/django-skel/internal/tasks"
)

var syncdbCmd = &cobra.Command{
	Use:   "syncdb",
	Short: "Run a database sync on the deployed application",
	Run: func(cmd *cobra.Command, args []string) {
		runTask(tasks.SyncDB)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate [app]",
	Short: "Apply migrations; without an app, migrate the whole site",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app := ""
		if len(args) > 0 {
			app = args[0]
		}
		runTask(func(env *config.Context, ex *confirm.Executor) error {
			return tasks.Migrate(env, ex, app)
		})
	},
}

var southCmd = &cobra.Command{
	Use:   "south",
	Short: "South schema-migration helpers",
}

var southInitCmd = &cobra.Command{
	Use:   "init <app>",
	Short: "Create an initial schema migration for an app",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runTask(func(env *config.Context, ex *confirm.Executor) error {
			return tasks.SouthInit(ex, args[0])
		})
	},
}

var southUpdateCmd = &cobra.Command{
	Use:   "update <app>",
	Short: "Create an auto schema migration for an app",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runTask(func(env *config.Context, ex *confirm.Executor) error {
			return tasks.SouthUpdate(ex, args[0])
		})
	},
}

func init() {
	southCmd.AddCommand(southInitCmd)
	southCmd.AddCommand(southUpdateCmd)
	rootCmd.AddCommand(syncdbCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(southCmd)
}
