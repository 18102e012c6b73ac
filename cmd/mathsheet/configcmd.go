package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mathsheet/internal/yamlutil"
)

// runConfigCmd prints the effective configuration as YAML.
// It accepts the generate flags so a user can preview their effect.
func runConfigCmd(args []string, env *Environment) error {
	flags, positional, err := parseGenerateFlags(cmdConfig, args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, positional[0])
	}

	envCfg, err := loadEnvConfig()
	if err != nil {
		return err
	}
	warnUnknownEnvVars(env.Stderr)

	cfg, err := resolveConfig(flags, envCfg)
	if err != nil {
		return err
	}

	out, err := yamlutil.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = env.Stdout.Write(out)
	return err
}
