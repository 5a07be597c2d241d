package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func newURLsCommand() *cli.Command {
	return &cli.Command{
		Name:      "urls",
		Usage:     "Print the download URL of every matching granule",
		ArgsUsage: "<tile>",
		Flags:     searchFlags(),
		Action:    urlsAction,
	}
}

func urlsAction(ctx context.Context, cmd *cli.Command) error {
	setupLogging(cmd)

	args, err := parseSearchArgs(cmd)
	if err != nil {
		return err
	}

	client, err := newCatalogClient(cmd)
	if err != nil {
		return err
	}

	// The full result set is assembled before anything is printed, so a
	// failure mid-pagination produces no partial output.
	urls, err := client.URLs(ctx, args.query)
	if err != nil {
		return err
	}

	for _, u := range args.filter(urls) {
		fmt.Fprintln(cmd.Root().Writer, u)
	}
	return nil
}
