package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/statily/statily/analysis"
	"github.com/statily/statily/config"
)

//RunApp assembles an analysis context from the configuration URL and resolves
//the supplied identifiers to stdout.
func RunApp(version string, args []string) error {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return err
	}
	if options.Version {
		log.Printf("statily: version: %v\n", version)
		return nil
	}
	ctx := context.Background()
	cfg, err := config.NewConfigFromURL(ctx, options.ConfigURL)
	if err != nil {
		return err
	}
	aContext, err := analysis.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer aContext.Dispose()
	for _, identifier := range options.Args.Identifiers {
		data, err := aContext.Resolve(ctx, identifier)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "%s", data)
	}
	return nil
}
