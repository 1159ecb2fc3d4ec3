package dotenv

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const defaultEnvFile = ".env"

// Options - результат разбора общих флагов запуска.
type Options struct {
	EnvFile string
	Loaded  bool
}

// Load разбирает --env-file и --port, загружает файл окружения, если он есть,
// и применяет --port поверх переменной PORT. Незнакомые флаги пропускаются:
// их разбирает сама команда.
func Load(args []string) (Options, error) {
	fs := pflag.NewFlagSet("dotenv", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.Usage = func() {}

	var (
		opts     Options
		portFlag string
	)
	fs.StringVar(&opts.EnvFile, "env-file", defaultEnvFile, "Path to the environment file")
	fs.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")

	if err := fs.Parse(args); err != nil && !errors.Is(err, pflag.ErrHelp) {
		return opts, fmt.Errorf("parse flags: %w", err)
	}

	_, err := os.Stat(opts.EnvFile)
	switch {
	case err == nil:
		if err := godotenv.Load(opts.EnvFile); err != nil {
			return opts, fmt.Errorf("load %s: %w", opts.EnvFile, err)
		}
		opts.Loaded = true
	case !errors.Is(err, os.ErrNotExist):
		return opts, fmt.Errorf("stat %s: %w", opts.EnvFile, err)
	}

	if portFlag != "" {
		if err := os.Setenv("PORT", portFlag); err != nil {
			return opts, fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return opts, nil
}
