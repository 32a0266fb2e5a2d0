package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/academica/registrar/internal/bootstrap"
	"github.com/academica/registrar/internal/console"
	"github.com/academica/registrar/internal/pkg/logger"
	"github.com/academica/registrar/internal/seed"
)

func main() {
	// Environment variables from .env override nothing already set.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "registrar",
		Usage: "file-backed academic record keeper",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.yaml",
				Usage:   "path to the configuration file",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "start the interactive console",
				Action: func(c *cli.Context) error {
					deps, err := bootstrap.Setup(c.String("config"))
					if err != nil {
						return err
					}

					ctx := context.Background()
					if deps.Config.Seed.Enabled {
						if err := seed.CreateSampleData(ctx, deps.CourseService, deps.InstructorService); err != nil {
							logger.Warn().Err(err).Msg("Sample data seeding finished with errors")
						}
					}

					ui := console.New(deps.CourseService, deps.InstructorService, os.Stdin, os.Stdout)
					return ui.Run(ctx)
				},
			},
			{
				Name:  "seed",
				Usage: "create sample courses and instructors, then exit",
				Action: func(c *cli.Context) error {
					deps, err := bootstrap.Setup(c.String("config"))
					if err != nil {
						return err
					}
					return seed.CreateSampleData(context.Background(), deps.CourseService, deps.InstructorService)
				},
			},
		},
		DefaultCommand: "run",
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("Registrar failed")
		os.Exit(1)
	}
}
