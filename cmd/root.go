package cmd

import (
	"errors"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jbarone/django-skel/internal/config"
	"github.com/jbarone/django-skel/internal/confirm"
	"github.com/jbarone/django-skel/internal/shell"
)

var (
	cfgFile   string
	envFile   string
	assumeYes bool

	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "skel",
	Short: "Deployment tasks for django-skel projects on Heroku",
	Long: `skel automates deploying a django-skel project to Heroku.

It wraps the management commands, git and the Heroku CLI into named
tasks: update an existing deployment, or bootstrap a new one from
scratch (create the app, install add-ons, push configuration, push
code, migrate and collect assets).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		errorColor.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"path to the context file (default is "+config.DefaultFile+")")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "",
		"dotenv file merged into the config-variable catalog")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false,
		"answer yes at every confirmation checkpoint")
}

// runTask loads the environment context, builds an executor wired to
// the terminal and runs fn, mapping errors to process exit status.
// An operator abort prints the fixed message and exits non-zero.
func runTask(fn func(*config.Context, *confirm.Executor) error) {
	env, err := config.Load(cfgFile)
	if err != nil {
		errorColor.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
	if envFile != "" {
		if err := env.MergeEnv(envFile); err != nil {
			errorColor.Fprintf(os.Stderr, "❌ %v\n", err)
			os.Exit(1)
		}
	}

	ex := confirm.New(shell.NewLocal(), os.Stdin, os.Stdout, assumeYes)
	if err := fn(env, ex); err != nil {
		if errors.Is(err, confirm.ErrAborted) {
			errorColor.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		errorColor.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}
