// Command mod09ga-urls queries the NASA ECHO catalog REST API for MOD09GA
// granules and prints their hdf download URLs, one per line. Typical use
// pipes the output into a text file for later downloading via wget:
//
//	$ mod09ga-urls urls h11v03 > h11v03-urls.txt
//	$ wget -i h11v03-urls.txt
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/apex/log"
	clihandler "github.com/apex/log/handlers/cli"
	"github.com/urfave/cli/v3"

	"github.com/cgoodale/echo-mod09ga/auth"
	"github.com/cgoodale/echo-mod09ga/pkg/echo"
)

var (
	baseURLFlag = &cli.StringFlag{
		Name:    "url",
		Usage:   "catalog granule search endpoint",
		Value:   echo.DefaultBaseURL,
		Sources: cli.EnvVars("ECHO_CATALOG_URL"),
	}
	timeoutFlag = &cli.DurationFlag{
		Name:    "timeout",
		Usage:   "HTTP client timeout (e.g. 30s, 1m)",
		Value:   30 * time.Second,
		Sources: cli.EnvVars("ECHO_TIMEOUT"),
	}
	pageSizeFlag = &cli.IntFlag{
		Name:  "page-size",
		Usage: "granules requested per catalog page",
		Value: echo.DefaultPageSize,
	}
	tokenFlag = &cli.StringFlag{
		Name:    "token",
		Usage:   "Earthdata bearer token",
		Sources: cli.EnvVars("EARTHDATA_TOKEN"),
	}
	verboseFlag = &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "enable debug logging on stderr",
	}
)

func main() {
	if err := newRootCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:      "mod09ga-urls",
		Usage:     "Query the NASA ECHO catalog for MOD09GA download URLs",
		ArgsUsage: "<tile>",
		Flags:     append([]cli.Flag{baseURLFlag, timeoutFlag, pageSizeFlag, tokenFlag, verboseFlag}, searchFlags()...),
		Commands: []*cli.Command{
			newURLsCommand(),
			newDownloadCommand(),
		},
		// The bare form `mod09ga-urls h11v03` behaves like the urls
		// command, keeping the tile as a positional argument.
		Action: urlsAction,
	}
}

func setupLogging(cmd *cli.Command) {
	// Logs go to stderr so stdout stays a clean URL stream.
	log.SetHandler(clihandler.New(os.Stderr))
	if cmd.Bool(verboseFlag.Name) {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}

func newCatalogClient(cmd *cli.Command) (*echo.Client, error) {
	httpClient := &http.Client{}
	if token := cmd.String(tokenFlag.Name); token != "" {
		httpClient.Transport = &auth.TokenTransport{Token: token}
	}

	return echo.NewClient(cmd.String(baseURLFlag.Name),
		echo.WithHTTPClient(httpClient),
		echo.WithTimeout(cmd.Duration(timeoutFlag.Name)),
		echo.WithPageSize(int(cmd.Int(pageSizeFlag.Name))),
		echo.WithLogger(log.Log),
	)
}
