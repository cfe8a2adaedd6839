package main

import (
	"fmt"
	"os"
	"shelf/internal/config"
	"time"

	"github.com/alecthomas/kong"
)

type CLI struct {
	List   ListCmd   `cmd:"" aliases:"ls" help:"List products in the terminal"`
	Render RenderCmd `cmd:"" help:"Write the product page as static HTML"`
	Serve  ServeCmd  `cmd:"" help:"Serve the product page over HTTP"`
	Browse BrowseCmd `cmd:"" aliases:"b" help:"Browse products interactively"`
	Export ExportCmd `cmd:"" help:"Export the catalog as YAML"`

	ConfigPath string         `name:"config" short:"c" help:"Path to config file"`
	Source     string         `help:"Catalog URL or file (overrides config)"`
	Timeout    *time.Duration `help:"Fetch timeout, 0 for none (overrides config)"`
	LogLevel   string         `name:"log-level" help:"Log level: trace, debug, info, warn, error"`
}

func (c *CLI) AfterApply(ctx *kong.Context) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	cfg, err := c.resolveConfig()
	if err != nil {
		return err
	}

	ctx.Bind(newGlobals(cfg, os.Stdout, os.Stderr))
	return nil
}

// resolveConfig layers the command line flags over the config file and the
// environment.
func (c *CLI) resolveConfig() (config.Config, error) {
	path := config.DefaultConfigPath()
	if c.ConfigPath != "" {
		expanded, err := config.ExpandPath(c.ConfigPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to resolve config path: %w", err)
		}
		path = expanded
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	if c.Source != "" {
		cfg.Source = c.Source
	}
	if c.Timeout != nil {
		cfg.Timeout = *c.Timeout
	}
	if c.LogLevel != "" {
		cfg.Log.Level = c.LogLevel
	}
	return cfg, cfg.Validate()
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("shelf"),
		kong.Description("Product catalog listing"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
