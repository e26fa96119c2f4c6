package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefaultCatalogs(t *testing.T) {
	env := Default()

	if env.RunPrefix != "heroku run python manage.py" {
		t.Fatalf("run prefix = %q", env.RunPrefix)
	}
	if env.AppName != "{{ project_name }}" {
		t.Fatalf("default app name = %q", env.AppName)
	}

	wantAddons := []string{
		"cloudamqp:lemur",
		"heroku-postgresql:dev",
		"scheduler:standard",
		"memcachier:dev",
		"newrelic:standard",
		"pgbackups:auto-month",
		"sentry:developer",
	}
	if !reflect.DeepEqual(env.Addons, wantAddons) {
		t.Fatalf("addons = %q", env.Addons)
	}

	if len(env.ConfigVars) != 6 {
		t.Fatalf("config vars = %q", env.ConfigVars)
	}
	for _, entry := range env.ConfigVars {
		if !strings.Contains(entry, "=") {
			t.Fatalf("catalog entry %q is not KEY=VALUE", entry)
		}
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	env, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(env, Default()) {
		t.Fatalf("missing file should yield defaults, got %+v", env)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skel.yml")
	content := strings.Join([]string{
		"app_name: mysite",
		"addons:",
		"  - heroku-postgresql:dev",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing context file: %v", err)
	}

	env, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.AppName != "mysite" {
		t.Fatalf("app name = %q", env.AppName)
	}
	if !reflect.DeepEqual(env.Addons, []string{"heroku-postgresql:dev"}) {
		t.Fatalf("addons = %q", env.Addons)
	}
	// Untouched fields keep their defaults.
	if env.RunPrefix != Default().RunPrefix {
		t.Fatalf("run prefix = %q", env.RunPrefix)
	}
	if !reflect.DeepEqual(env.ConfigVars, Default().ConfigVars) {
		t.Fatalf("config vars = %q", env.ConfigVars)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skel.yml")
	if err := os.WriteFile(path, []byte("app_name: [unclosed"), 0644); err != nil {
		t.Fatalf("writing context file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}

func TestMergeEnvReplacesInPlaceAndAppendsSorted(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := strings.Join([]string{
		"AWS_ACCESS_KEY_ID=AKIAREAL",
		"ZEBRA=stripes",
		"ANOTHER=value",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing env file: %v", err)
	}

	env := Default()
	if err := env.MergeEnv(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Replacement keeps catalog position.
	if env.ConfigVars[3] != "AWS_ACCESS_KEY_ID=AKIAREAL" {
		t.Fatalf("entry 3 = %q", env.ConfigVars[3])
	}
	// Unknown keys land after the catalog, sorted.
	tail := env.ConfigVars[len(Default().ConfigVars):]
	if !reflect.DeepEqual(tail, []string{"ANOTHER=value", "ZEBRA=stripes"}) {
		t.Fatalf("appended entries = %q", tail)
	}
}

func TestMergeEnvMissingFileFails(t *testing.T) {
	env := Default()
	if err := env.MergeEnv(filepath.Join(t.TempDir(), "absent.env")); err == nil {
		t.Fatal("expected an error for a missing env file")
	}
}
