package main

import (
	"context"
	"fmt"
	"os"

	"bitbucket.org/crgw/ulez-hub/internal/platform/implementations/tfl"
	"bitbucket.org/crgw/ulez-hub/internal/report"
	"bitbucket.org/crgw/ulez-hub/internal/schema"
	"github.com/alexflint/go-arg"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type arguments struct {
	Vrm string `arg:"--vrm" help:"check a single VRM and exit instead of prompting"`
}

func main() {
	_ = godotenv.Load(".env")

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.WarnLevel).
		With().
		Timestamp().
		Logger()

	var args arguments
	arg.MustParse(&args)

	checker := tfl.New(nil)
	ctx := context.Background()

	if args.Vrm != "" {
		response, err := checker.CheckVrm(ctx, schema.CheckRequestParams{Vrm: args.Vrm}, &log)
		if err != nil {
			fmt.Println("An error occurred -", err)
			os.Exit(1)
		}

		fmt.Print(report.Format(*response.VehicleDetails))
		return
	}

	if err := report.Loop(ctx, os.Stdin, os.Stdout, checker, &log); err != nil {
		log.Error().Err(errors.Wrap(err, "reading input failed")).Msg("")
		os.Exit(1)
	}
}
