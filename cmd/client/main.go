// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/go-fit-tracker/internal/adapter"
	"github.com/MKhiriev/go-fit-tracker/internal/config"
	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: fit-client [flags] <command> [args]

commands:
  health                          check the server is up
  version                         print client and server build info
  register -email E -password P [-name N]
  login -email E -password P      print a token to pass via -token or FIT_TOKEN
  me
  profile get|delete
  profile create|update -f FILE   body is a JSON profile
  templates list [-category C]
  templates get|delete ID
  templates create -f FILE
  templates update ID -f FILE
  workouts list [-from DATE] [-to DATE]
  workouts get|delete ID
  workouts create -f FILE

flags:
`

func main() {
	log := logger.NewConsoleLogger("go-fit-tracker-client")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	flags := flag.NewFlagSet("fit-client", flag.ExitOnError)
	address := flags.String("address", cfg.Adapter.HTTPAddress, "server base URL")
	token := flags.String("token", os.Getenv("FIT_TOKEN"), "bearer token")
	timeout := flags.Duration("timeout", cfg.Adapter.RequestTimeout, "request timeout")
	flags.Usage = func() {
		fmt.Fprint(flags.Output(), usage)
		flags.PrintDefaults()
	}
	_ = flags.Parse(os.Args[1:])

	log = log.WithLevel(cfg.LogLevel)
	cfg.Adapter.HTTPAddress = *address
	cfg.Adapter.RequestTimeout = *timeout

	api, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}
	api.SetToken(*token)

	if flags.NArg() == 0 {
		flags.Usage()
		os.Exit(2)
	}

	if err = run(context.Background(), api, os.Stdout, flags.Args()); err != nil {
		var apiErr *adapter.APIError
		if errors.As(err, &apiErr) {
			for _, detail := range apiErr.Details {
				log.Error().Str("field", detail.Field).Msg(detail.Message)
			}
		}
		log.Fatal().Err(err).Msg("command failed")
	}
}

// run dispatches one command and prints its result to out as indented JSON.
func run(ctx context.Context, api adapter.ServerAdapter, out io.Writer, args []string) error {
	command, rest := args[0], args[1:]

	var result any
	var err error
	switch command {
	case "health":
		result, err = api.Health(ctx)
	case "version":
		var server models.AppInfo
		server, err = api.Version(ctx)
		result = map[string]models.AppInfo{
			"client": models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).AppInfo(),
			"server": server,
		}
	case "register":
		result, err = register(ctx, api, rest)
	case "login":
		result, err = login(ctx, api, rest)
	case "me":
		result, err = api.Me(ctx)
	case "profile":
		result, err = profile(ctx, api, rest)
	case "templates":
		result, err = templates(ctx, api, rest)
	case "workouts":
		result, err = workouts(ctx, api, rest)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func register(ctx context.Context, api adapter.ServerAdapter, args []string) (any, error) {
	var in models.RegisterInput
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.StringVar(&in.Email, "email", "", "account email")
	fs.StringVar(&in.Password, "password", "", "account password")
	fs.StringVar(&in.Name, "name", "", "display name")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return api.Register(ctx, in)
}

func login(ctx context.Context, api adapter.ServerAdapter, args []string) (any, error) {
	var in models.LoginInput
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.StringVar(&in.Email, "email", "", "account email")
	fs.StringVar(&in.Password, "password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return api.Login(ctx, in)
}

func profile(ctx context.Context, api adapter.ServerAdapter, args []string) (any, error) {
	action, rest, err := splitAction(args)
	if err != nil {
		return nil, err
	}

	switch action {
	case "get":
		return api.GetProfile(ctx)
	case "delete":
		return nil, api.DeleteProfile(ctx)
	case "create", "update":
		var in models.ProfileInput
		if err = decodeBodyFile(rest, &in); err != nil {
			return nil, err
		}
		if action == "create" {
			return api.CreateProfile(ctx, in)
		}
		return api.UpdateProfile(ctx, in)
	default:
		return nil, fmt.Errorf("unknown profile action %q", action)
	}
}

func templates(ctx context.Context, api adapter.ServerAdapter, args []string) (any, error) {
	action, rest, err := splitAction(args)
	if err != nil {
		return nil, err
	}

	switch action {
	case "list":
		fs := flag.NewFlagSet("templates list", flag.ContinueOnError)
		category := fs.String("category", "", "only templates of this category")
		if err = fs.Parse(rest); err != nil {
			return nil, err
		}
		var filter models.ExerciseTemplateFilter
		if *category != "" {
			c := models.Category(strings.ToUpper(*category))
			filter.Category = &c
		}
		return api.ListExerciseTemplates(ctx, filter)
	case "create":
		var in models.ExerciseTemplateInput
		if err = decodeBodyFile(rest, &in); err != nil {
			return nil, err
		}
		return api.CreateExerciseTemplate(ctx, in)
	}

	id, rest, err := splitAction(rest)
	if err != nil {
		return nil, fmt.Errorf("templates %s: missing id", action)
	}

	switch action {
	case "get":
		return api.GetExerciseTemplate(ctx, id)
	case "delete":
		return nil, api.DeleteExerciseTemplate(ctx, id)
	case "update":
		var patch models.ExerciseTemplatePatch
		if err = decodeBodyFile(rest, &patch); err != nil {
			return nil, err
		}
		return api.UpdateExerciseTemplate(ctx, id, patch)
	default:
		return nil, fmt.Errorf("unknown templates action %q", action)
	}
}

func workouts(ctx context.Context, api adapter.ServerAdapter, args []string) (any, error) {
	action, rest, err := splitAction(args)
	if err != nil {
		return nil, err
	}

	switch action {
	case "list":
		fs := flag.NewFlagSet("workouts list", flag.ContinueOnError)
		from := fs.String("from", "", "earliest workout date, YYYY-MM-DD")
		to := fs.String("to", "", "latest workout date, YYYY-MM-DD")
		if err = fs.Parse(rest); err != nil {
			return nil, err
		}
		var filter models.WorkoutFilter
		if filter.From, err = parseFlagDate(*from, false); err != nil {
			return nil, fmt.Errorf("-from: %w", err)
		}
		if filter.To, err = parseFlagDate(*to, true); err != nil {
			return nil, fmt.Errorf("-to: %w", err)
		}
		return api.ListWorkouts(ctx, filter)
	case "create":
		var in models.WorkoutInput
		if err = decodeBodyFile(rest, &in); err != nil {
			return nil, err
		}
		return api.CreateWorkout(ctx, in)
	}

	id, _, err := splitAction(rest)
	if err != nil {
		return nil, fmt.Errorf("workouts %s: missing id", action)
	}

	switch action {
	case "get":
		return api.GetWorkout(ctx, id)
	case "delete":
		return nil, api.DeleteWorkout(ctx, id)
	default:
		return nil, fmt.Errorf("unknown workouts action %q", action)
	}
}

func splitAction(args []string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, errors.New("missing action")
	}
	return args[0], args[1:], nil
}

// decodeBodyFile reads the JSON request body named by -f; "-" reads stdin.
func decodeBodyFile(args []string, dst any) error {
	fs := flag.NewFlagSet("body", flag.ContinueOnError)
	path := fs.String("f", "-", "JSON body file, - for stdin")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var r io.Reader = os.Stdin
	if *path != "-" {
		f, err := os.Open(*path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(dst); err != nil {
		return fmt.Errorf("decode %s: %w", *path, err)
	}
	return nil
}

// parseFlagDate parses a YYYY-MM-DD flag value in UTC. An end date covers the
// whole day.
func parseFlagDate(raw string, endOfDay bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	t, err := time.ParseInLocation(models.DateLayout, raw, time.UTC)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Microsecond)
	}
	return &t, nil
}
