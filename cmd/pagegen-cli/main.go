package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/rs/zerolog"

	pagegen "github.com/goliatone/go-pagegen"
	"github.com/goliatone/go-pagegen/pkg/config"
	"github.com/goliatone/go-pagegen/pkg/fragment"
)

func main() {
	componentType := flag.String("type", "", "component type path to render (prompted when empty)")
	uid := flag.String("uid", "", "uniqueness token for the cache key (generated when empty)")
	configPath := flag.String("config", "", "YAML configuration file")
	locale := flag.String("locale", "en", "locale for user-facing strings")
	output := flag.String("output", "", "output file (stdout if empty)")
	verbose := flag.Bool("verbose", false, "log engine activity to stderr")
	flag.Parse()

	ctx := context.Background()

	options := []pagegen.Option{}
	if *configPath != "" {
		store, err := config.LoadYAMLFile(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		options = append(options, pagegen.WithStore(store))
	}
	if *verbose {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		options = append(options, pagegen.WithLogger(logger))
	}

	engine, err := pagegen.New(options...)
	if err != nil {
		log.Fatalf("Failed to build engine: %v", err)
	}

	target := strings.TrimSpace(*componentType)
	if target == "" {
		target, err = promptComponentType(engine.Types())
		if err != nil {
			log.Fatalf("Failed to select component: %v", err)
		}
	}

	token := *uid
	if token == "" {
		token = fragment.NewUID()
	}

	result, err := engine.Render(ctx, pagegen.Request{
		Type:   target,
		UID:    token,
		Locale: *locale,
	})
	if err != nil {
		log.Fatalf("Failed to render component: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, result.HTML, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Fragment written to %s\n", *output)
	} else {
		fmt.Println(string(result.HTML))
	}
}

func promptComponentType(types []string) (string, error) {
	if len(types) == 0 {
		return "", errors.New("no components registered")
	}

	var selected string
	prompt := &survey.Select{
		Message: "Component type to render:",
		Options: types,
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", errors.New("aborted")
		}
		return "", err
	}
	return selected, nil
}
