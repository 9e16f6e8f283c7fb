// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/patrolbook/patrolbook/cmd/app/commands"
)

const version = "1.0.0"

func main() {
	cmd := &cli.Command{
		Name:    "patrolbook",
		Usage:   "Police department administration portal auth service",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServer(ctx, version)
				},
			},
			{
				Name:  "migrate",
				Usage: "Run database migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunMigrations()
				},
			},
			{
				Name:  "create-identity",
				Usage: "Create a new identity",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "username",
						Aliases: []string{"u"},
						Value:   "",
						Usage:   "Login username (unique)",
					},
					&cli.StringFlag{
						Name:    "name",
						Aliases: []string{"n"},
						Value:   "",
						Usage:   "Display name",
					},
					&cli.StringFlag{
						Name:    "role",
						Aliases: []string{"r"},
						Value:   "officer",
						Usage:   "Coarse role (officer or admin)",
					},
					&cli.StringFlag{
						Name:    "password",
						Aliases: []string{"p"},
						Value:   "",
						Usage:   "Initial password (generated when empty)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunCreateIdentity(
						ctx,
						commands.DefaultIO(),
						cmd.String("username"),
						cmd.String("name"),
						cmd.String("role"),
						cmd.String("password"),
					)
				},
			},
			{
				Name:  "reset-password",
				Usage: "Reset an identity's password",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "username",
						Aliases: []string{"u"},
						Value:   "",
						Usage:   "Login username",
					},
					&cli.StringFlag{
						Name:    "password",
						Aliases: []string{"p"},
						Value:   "",
						Usage:   "New password (generated when empty)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunResetPassword(
						ctx,
						commands.DefaultIO(),
						cmd.String("username"),
						cmd.String("password"),
					)
				},
			},
			{
				Name:  "seed-permissions",
				Usage: "Insert the builtin permission catalogue",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunSeedPermissions(ctx, commands.DefaultIO())
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}
