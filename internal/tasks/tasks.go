// Package tasks defines the deployment tasks. Each task is a fixed,
// linear sequence of shell commands; sequences stop at the first
// unwrapped failure or when the operator declines to continue past a
// confirmation checkpoint.
package tasks

import (
	"fmt"

	"github.com/jbarone/django-skel/internal/config"
	"github.com/jbarone/django-skel/internal/confirm"
)

// SyncDB runs a remote database sync.
func SyncDB(env *config.Context, ex *confirm.Executor) error {
	return ex.Run(fmt.Sprintf("%s syncdb --noinput", env.RunPrefix))
}

// Migrate applies migrations remotely. With an empty app it runs a
// site-wide migration.
func Migrate(env *config.Context, ex *confirm.Executor, app string) error {
	if app != "" {
		return ex.Run(fmt.Sprintf("%s migrate %s --noinput", env.RunPrefix, app))
	}
	return ex.Run(fmt.Sprintf("%s migrate --noinput", env.RunPrefix))
}

// SouthInit creates an initial schema migration for app locally.
func SouthInit(ex *confirm.Executor, app string) error {
	return ex.Run(fmt.Sprintf("python manage.py schemamigration %s --initial", app))
}

// SouthUpdate creates an auto schema migration for app locally.
func SouthUpdate(ex *confirm.Executor, app string) error {
	return ex.Run(fmt.Sprintf("python manage.py schemamigration %s --auto", app))
}

// CollectStatic collects static files remotely for production serving.
func CollectStatic(env *config.Context, ex *confirm.Executor) error {
	return ex.Run(fmt.Sprintf("%s collectstatic --noinput", env.RunPrefix))
}

// Compress compresses css and javascript files remotely.
func Compress(env *config.Context, ex *confirm.Executor) error {
	return ex.Run(fmt.Sprintf("%s compress", env.RunPrefix))
}

// Initialize performs one-time local setup after project scaffolding:
// drops the scaffold docs, writes a .gitignore and makes the first
// commit.
func Initialize(env *config.Context, ex *confirm.Executor) error {
	steps := []string{
		"rm -rf docs README.md",
		fmt.Sprintf("echo /%s/static > .gitignore", env.AppName),
		"git init",
		"git add .",
		"git commit -m 'First commit'",
	}
	for _, step := range steps {
		if err := ex.Run(step); err != nil {
			return err
		}
	}
	return nil
}

// StartApp scaffolds a new sub-application under the project's apps
// directory.
func StartApp(env *config.Context, ex *confirm.Executor, app string) error {
	dir := fmt.Sprintf("%s/apps/%s", env.AppName, app)
	if err := ex.Run(fmt.Sprintf("mkdir %s", dir)); err != nil {
		return err
	}
	return ex.Run(fmt.Sprintf("python manage.py startapp %s %s", app, dir))
}

// Update refreshes an existing deployment: push the code, then sync
// the database, apply a site-wide migration, collect and compress
// assets, and validate the monitoring add-on. The push and the
// monitoring check are confirmation checkpoints; everything else is
// fatal on failure.
func Update(env *config.Context, ex *confirm.Executor) error {
	err := ex.RunOrConfirm("git push heroku master",
		"Couldn't push your application to Heroku, continue anyway?")
	if err != nil {
		return err
	}

	if err := SyncDB(env, ex); err != nil {
		return err
	}
	if err := Migrate(env, ex, ""); err != nil {
		return err
	}
	if err := CollectStatic(env, ex); err != nil {
		return err
	}
	if err := Compress(env, ex); err != nil {
		return err
	}

	return ex.RunOrConfirm(
		fmt.Sprintf("%s newrelic-admin validate-config - stdout", env.RunPrefix),
		"Couldn't initialize New Relic, continue anyway?")
}

// Bootstrap provisions a brand new deployment: create the remote
// application, install every add-on and push every config variable in
// catalog order, then run a full Update. Every provisioning step is a
// confirmation checkpoint. An empty app falls back to the context's
// default name.
func Bootstrap(env *config.Context, ex *confirm.Executor, app string) error {
	if app == "" {
		app = env.AppName
	}

	err := ex.RunOrConfirm(fmt.Sprintf("heroku apps:create %s", app),
		"Couldn't create the Heroku app, continue anyway?")
	if err != nil {
		return err
	}

	for _, addon := range env.Addons {
		err := ex.RunOrConfirm(fmt.Sprintf("heroku addons:add %s", addon),
			fmt.Sprintf("Couldn't add %s to your Heroku app, continue anyway?", addon))
		if err != nil {
			return err
		}
	}

	for _, entry := range env.ConfigVars {
		err := ex.RunOrConfirm(fmt.Sprintf("heroku config:add %s", entry),
			fmt.Sprintf("Couldn't add %s to your Heroku app, continue anyway?", entry))
		if err != nil {
			return err
		}
	}

	return Update(env, ex)
}

// Destroy wipes the remote application. An empty app falls back to the
// context's default name. There is no confirmation checkpoint: the
// platform CLI asks for its own.
func Destroy(env *config.Context, ex *confirm.Executor, app string) error {
	if app == "" {
		app = env.AppName
	}
	return ex.Run(fmt.Sprintf("heroku apps:destroy --app %s", app))
}
