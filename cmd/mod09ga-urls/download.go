package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/apex/log"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"

	"github.com/cgoodale/echo-mod09ga/pkg/echo"
)

var (
	dirFlag = &cli.StringFlag{
		Name:  "dir",
		Usage: "destination directory for downloaded granules",
		Value: ".",
	}
	progressFlag = &cli.BoolFlag{
		Name:  "progress",
		Usage: "render a per-file progress bar on stderr",
	}
)

func newDownloadCommand() *cli.Command {
	return &cli.Command{
		Name:      "download",
		Usage:     "Download every matching granule file",
		ArgsUsage: "<tile>",
		Flags:     append(searchFlags(), dirFlag, progressFlag),
		Action:    downloadAction,
	}
}

func downloadAction(ctx context.Context, cmd *cli.Command) error {
	setupLogging(cmd)

	args, err := parseSearchArgs(cmd)
	if err != nil {
		return err
	}

	client, err := newCatalogClient(cmd)
	if err != nil {
		return err
	}

	urls, err := client.URLs(ctx, args.query)
	if err != nil {
		return err
	}
	urls = args.filter(urls)

	dir := cmd.String(dirFlag.Name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating destination directory: %w", err)
	}

	for _, rawURL := range urls {
		dest, err := destPath(dir, rawURL)
		if err != nil {
			return err
		}

		log.Infof("downloading %s", filepath.Base(dest))
		if cmd.Bool(progressFlag.Name) {
			err = downloadWithBar(ctx, client, rawURL, dest)
		} else {
			err = client.Download(ctx, rawURL, dest)
		}
		if err != nil {
			return fmt.Errorf("downloading %s: %w", rawURL, err)
		}
	}

	log.Infof("downloaded %d granule(s)", len(urls))
	return nil
}

func destPath(dir, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing granule URL %q: %w", rawURL, err)
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" {
		return "", fmt.Errorf("granule URL %q has no file name", rawURL)
	}
	return filepath.Join(dir, name), nil
}

func downloadWithBar(ctx context.Context, client *echo.Client, rawURL, dest string) error {
	bar := progressbar.NewOptions64(-1,
		progressbar.OptionSetDescription(filepath.Base(dest)),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowBytes(true),
		progressbar.OptionClearOnFinish(),
	)
	defer bar.Finish()

	return client.DownloadWithProgress(ctx, rawURL, dest, func(downloaded, total int64) {
		if total > 0 {
			bar.ChangeMax64(total)
		}
		_ = bar.Set64(downloaded)
	})
}
