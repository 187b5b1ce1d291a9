package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"

	"github.com/eugenenazirov/mlconfig/internal/application"
	"github.com/eugenenazirov/mlconfig/internal/config"
	"github.com/eugenenazirov/mlconfig/internal/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "mlconfig: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	kingpinApp := kingpin.New("mlconfig", "Inspect layered configuration resolved from a JSON/YAML file and ML_ environment variables")
	configFile := kingpinApp.Flag("config", "Path to JSON or YAML configuration file").Short('c').String()
	envPrefix := kingpinApp.Flag("env-prefix", "Environment variable prefix treated as configuration").Default(config.DefaultEnvPrefix).String()
	logLevel := kingpinApp.Flag("log-level", "Log level (debug, info, warn, error)").Default("info").String()

	getCmd := kingpinApp.Command("get", "Print the value at a dotted key")
	getKey := getCmd.Arg("key", "Dotted key, e.g. database.pool.size").Required().String()
	getDefault := getCmd.Flag("default", "Value printed when the key is absent").String()

	dumpCmd := kingpinApp.Command("dump", "Print the whole resolved configuration")
	dumpFormat := dumpCmd.Flag("format", "Output format").Default(application.FormatYAML).Enum(application.FormatYAML, application.FormatJSON)

	pathsCmd := kingpinApp.Command("paths", "Print the database URL, data directory and output directory")

	command, err := kingpinApp.Parse(args)
	if err != nil {
		return err
	}

	logger, err := logging.New(*logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := application.LoadConfig(application.Options{
		ConfigFile: *configFile,
		EnvPrefix:  *envPrefix,
	}, logger)
	if err != nil {
		return err
	}

	app := application.New(cfg, logger, stdout)

	switch command {
	case getCmd.FullCommand():
		return app.Get(*getKey, *getDefault)
	case dumpCmd.FullCommand():
		return app.Dump(*dumpFormat)
	case pathsCmd.FullCommand():
		return app.Paths()
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
