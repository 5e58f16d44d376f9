package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/chris/regnet/pkg/backend"
	"github.com/chris/regnet/pkg/config"
	"github.com/chris/regnet/pkg/ledger"
	"github.com/chris/regnet/pkg/middleware"
	"github.com/chris/regnet/pkg/registry"
	"github.com/urfave/cli"
)

type metadata struct {
	config *config.Config
	logger *slog.Logger
	w      io.Writer
}

var commandUsage = map[string]string{
	"requestNewUser":              "file a request for a new user account",
	"approveNewUser":              "approve a pending user request",
	"viewUser":                    "show an approved user",
	"rechargeAccount":             "credit upgradCoins using a bank transaction code",
	"propertyRegistrationRequest": "file a request to register a property",
	"approvePropertyRegistration": "approve a pending property request",
	"viewProperty":                "show an approved property",
	"updateProperty":              "change the sale status of a property",
	"purchaseProperty":            "buy a property that is on sale",
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "regnetctl"
	app.Usage = "operate a land registration ledger"
	app.Version = version
	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr
	app.Metadata = map[string]interface{}{}

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "ledger, l",
			Value: "",
			Usage: " ledger backend `NAME` [leveldb|dynamodb|redis|fabric] (default from LEDGER_BACKEND, else leveldb)",
		},
		cli.StringFlag{
			Name:  "db, d",
			Value: "",
			Usage: " leveldb `PATH` (default from LEVELDB_PATH)",
		},
		cli.StringFlag{
			Name:  "caller, c",
			Value: "",
			Usage: " submit transactions as identity `ID`",
		},
		cli.StringFlag{
			Name:  "msp, m",
			Value: "",
			Usage: " membership service provider `MSPID` of the caller",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " log transactions to stderr",
		},
	}

	app.Before = func(c *cli.Context) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if s := c.GlobalString("ledger"); s != "" {
			cfg.LedgerBackend = s
		}
		if s := c.GlobalString("db"); s != "" {
			cfg.LevelDBPath = s
		}
		if cfg.LedgerBackend == config.LedgerMemory {
			// Every run is a new process; a memory ledger would start empty each time.
			if c.GlobalString("ledger") != "" || os.Getenv("LEDGER_BACKEND") != "" {
				return fmt.Errorf("the %s ledger does not persist between regnetctl runs", config.LedgerMemory)
			}
			cfg.LedgerBackend = config.LedgerLevelDB
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		level := slog.LevelError
		if c.GlobalBool("verbose") {
			level = cfg.LogLevel
		}
		c.App.Metadata["config"] = &metadata{
			config: cfg,
			logger: slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: level})),
			w:      c.App.Writer,
		}
		return nil
	}

	names := make([]string, 0, len(registry.Functions))
	for name := range registry.Functions {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		app.Commands = append(app.Commands, cli.Command{
			Name:      name,
			Usage:     commandUsage[name],
			ArgsUsage: argsUsage(registry.Functions[name]),
			Action:    runInvoke(name),
		})
	}

	app.Commands = append(app.Commands, cli.Command{
		Name:  "token",
		Usage: "sign a bearer token for the HTTP API",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "secret, s",
				Value: "",
				Usage: " signing `SECRET` (default from JWT_SECRET)",
			},
			cli.DurationFlag{
				Name:  "ttl, t",
				Value: 24 * time.Hour,
				Usage: " token lifetime `DURATION`",
			},
		},
		Action: runToken,
	})

	return app
}

func argsUsage(params []string) string {
	s := ""
	for _, p := range params {
		s += "<" + p + "> "
	}
	return s
}

func runInvoke(name string) func(c *cli.Context) error {
	return func(c *cli.Context) error {
		m := c.App.Metadata["config"].(*metadata)

		b, err := backend.Open(context.Background(), m.config, m.logger)
		if err != nil {
			return err
		}
		defer b.Close()

		ctx := context.Background()
		if id := c.GlobalString("caller"); id != "" {
			ctx = ledger.WithCaller(ctx, ledger.Identity{ID: id, MSPID: c.GlobalString("msp")})
		}

		result, err := registry.Invoke(ctx, b.Registry, name, []string(c.Args()))
		if err != nil {
			return err
		}
		return printJSON(m.w, result)
	}
}

func runToken(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	secret := c.String("secret")
	if secret == "" {
		secret = m.config.JWTSecret
	}
	if secret == "" {
		return fmt.Errorf("no signing secret: set --secret or JWT_SECRET")
	}

	id := c.GlobalString("caller")
	if id == "" {
		return fmt.Errorf("--caller is required")
	}

	token, err := middleware.SignToken(secret, ledger.Identity{ID: id, MSPID: c.GlobalString("msp")}, c.Duration("ttl"))
	if err != nil {
		return err
	}
	fmt.Fprintln(m.w, token)
	return nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
