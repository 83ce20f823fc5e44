package main

import (
	"os"
	"strings"

	"github.com/qzvr/vrinput/internal/config"
	"github.com/qzvr/vrinput/internal/configpaths"
	"github.com/qzvr/vrinput/internal/log"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

func main() {
	userCfg := findUserConfig(os.Args[1:])
	paths := configpaths.ConfigCandidatePaths(userCfg)

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("vrinput"),
		kong.Description("VR controller to game input mapper"),
		kong.UsageOnError(),
		// Load configuration from JSON/YAML/TOML in priority order; flags/env override config values.
		kong.Configuration(kong.JSON, paths.JSON...),
		kong.Configuration(kongyaml.Loader, paths.YAML...),
		kong.Configuration(kongtoml.Loader, paths.TOML...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log, os.Stdout, os.Stderr)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	var frameLogger log.FrameLogger
	switch {
	case cli.Log.FrameFile != "":
		f, err := os.OpenFile(cli.Log.FrameFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Error("failed to open frame log file", "file", cli.Log.FrameFile, "error", err)
			frameLogger = log.NewFrameLogger(nil)
		} else {
			frameLogger = log.NewFrameLogger(f)
			closeFiles = append(closeFiles, f)
		}
	case cli.Log.Level == "trace":
		frameLogger = log.NewFrameLogger(os.Stdout)
	default:
		frameLogger = log.NewFrameLogger(nil)
	}

	ctx.Bind(logger)
	ctx.BindTo(frameLogger, (*log.FrameLogger)(nil))

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("VRINPUT_CONFIG")
}
