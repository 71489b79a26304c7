package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/eringen/staticpress"
)

// configFiles are tried in order when --config is not given.
var configFiles = []string{"staticpress.yaml", "staticpress.yml", "staticpress.jsonc", "staticpress.json"}

// addConfigFlag registers --config on fs.
func addConfigFlag(fs *pflag.FlagSet) *string {
	return fs.StringP("config", "c", "", "site config file (default: staticpress.yaml in the current directory)")
}

// loadConfig reads the config file, if any, and applies SITE_* overrides.
// An explicit path must exist.
func loadConfig(path string) (staticpress.SiteConfig, error) {
	var cfg staticpress.SiteConfig
	if path == "" {
		for _, name := range configFiles {
			if _, err := os.Stat(name); err == nil {
				path = name
				break
			}
		}
	}
	if path != "" {
		var err error
		if cfg, err = staticpress.LoadConfigFile(path); err != nil {
			return cfg, err
		}
	}
	staticpress.ApplyEnv(&cfg)
	return cfg, nil
}

// parseFlags parses args, turning --help into usage output.
func parseFlags(fs *pflag.FlagSet, args []string) (bool, error) {
	help := fs.BoolP("help", "h", false, "show help")
	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return false, nil
		}
		return false, err
	}
	if *help {
		fmt.Fprintf(os.Stderr, "Usage of staticpress %s:\n", fs.Name())
		fs.PrintDefaults()
		return false, nil
	}
	return true, nil
}
