// Package config holds the environment context shared by every
// deployment task: the remote execution prefix, the default
// application name, and the add-on and config-variable catalogs.
//
// The context is assembled once at startup (defaults, then an optional
// YAML file, then an optional .env merge) and is read-only afterwards.
package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the context file looked up when none is given.
const DefaultFile = "skel.yml"

// Context is the environment context threaded into each task.
type Context struct {
	// RunPrefix is prepended to every remote management command.
	RunPrefix string `yaml:"run_prefix"`

	// AppName is the application name used when a task is invoked
	// without one. The default is the scaffolding placeholder token,
	// kept as opaque text for the project generator to substitute.
	AppName string `yaml:"app_name"`

	// Addons are the platform add-ons provisioned during bootstrap,
	// installed once each, in listed order.
	Addons []string `yaml:"addons"`

	// ConfigVars are KEY=VALUE pairs pushed to the platform during
	// bootstrap, once each, in listed order. Placeholder values are
	// opaque text, not templates this tool expands.
	ConfigVars []string `yaml:"config_vars"`
}

// Default returns the built-in context.
func Default() *Context {
	return &Context{
		RunPrefix: "heroku run python manage.py",
		AppName:   "{{ project_name }}",
		Addons: []string{
			"cloudamqp:lemur",
			"heroku-postgresql:dev",
			"scheduler:standard",
			"memcachier:dev",
			"newrelic:standard",
			"pgbackups:auto-month",
			"sentry:developer",
		},
		ConfigVars: []string{
			"BUILDPACK_URL=https://github.com/jbarone/heroku-buildpack-python-plus",
			"DJANGO_SETTINGS_MODULE={{ project_name }}.settings.prod",
			`SECRET_KEY="{{ secret_key }}"`,
			"AWS_ACCESS_KEY_ID=xxx",
			"AWS_SECRET_ACCESS_KEY=xxx",
			"AWS_STORAGE_BUCKET_NAME={{ project_name }}",
		},
	}
}

// Load builds a context from the defaults overlaid with the YAML file
// at path. A missing file is not an error: the defaults are returned
// so the tool works out of the box in a freshly scaffolded project.
func Load(path string) (*Context, error) {
	if path == "" {
		path = DefaultFile
	}

	env := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return env, nil
		}
		return nil, fmt.Errorf("reading context file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, env); err != nil {
		return nil, fmt.Errorf("invalid context file %s: %w", path, err)
	}
	return env, nil
}

// MergeEnv folds a dotenv file into the config-variable catalog.
// Entries whose key already appears in the catalog replace that
// entry's value in place, preserving catalog order; unknown keys are
// appended after the catalog, sorted so the result is deterministic.
func (c *Context) MergeEnv(path string) error {
	vars, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("reading env file %s: %w", path, err)
	}

	for i, entry := range c.ConfigVars {
		key, _, _ := strings.Cut(entry, "=")
		if value, ok := vars[key]; ok {
			c.ConfigVars[i] = key + "=" + value
			delete(vars, key)
		}
	}

	extra := make([]string, 0, len(vars))
	for key, value := range vars {
		extra = append(extra, key+"="+value)
	}
	sort.Strings(extra)
	c.ConfigVars = append(c.ConfigVars, extra...)
	return nil
}
