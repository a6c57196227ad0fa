package main

import "fmt"

// runConfig prints the effective configuration as YAML: the named config
// when given, otherwise the defaults.
func runConfig(args []string, env *Environment) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: config takes at most one name or path", ErrUsage)
	}

	nameOrPath := ""
	if len(args) == 1 {
		nameOrPath = args[0]
	}

	cfg, err := loadConfig(nameOrPath, env)
	if err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = env.Stdout.Write(data)
	return err
}
