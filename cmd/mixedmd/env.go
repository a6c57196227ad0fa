package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/alnah/go-mixedmd/internal/config"
	"github.com/alnah/go-mixedmd/internal/fixture"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, terminal detection and configuration.
type Environment struct {
	Now           func() time.Time
	Stdin         io.Reader
	Stdout        io.Writer
	Stderr        io.Writer
	StdinTerminal bool              // Stdin is interactive; bare invocation shows usage
	Color         bool              // Stdout is a terminal; enables colored dumps
	Confirmer     fixture.Confirmer // Used by "fixtures -i"
	Config        *config.Config    // Used when no --config is given
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:           time.Now,
		Stdin:         os.Stdin,
		Stdout:        os.Stdout,
		Stderr:        os.Stderr,
		StdinTerminal: isTerminal(os.Stdin),
		Color:         isTerminal(os.Stdout),
		Confirmer:     fixture.PromptConfirmer{},
		Config:        config.DefaultConfig(),
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// loadConfig returns the named config, or a copy of the environment's
// default when nameOrPath is empty.
func loadConfig(nameOrPath string, env *Environment) (*config.Config, error) {
	if nameOrPath == "" {
		if env.Config == nil {
			return config.DefaultConfig(), nil
		}
		cfg := *env.Config
		cfg.PostProcess.Rules = append([]config.RuleConfig(nil), env.Config.PostProcess.Rules...)
		return &cfg, nil
	}
	cfg, err := config.LoadConfig(nameOrPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
