package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plantimetable/calstream/client"
	"github.com/plantimetable/calstream/compress"
	"github.com/plantimetable/calstream/errs"
	"github.com/plantimetable/calstream/format"
	"github.com/plantimetable/calstream/internal/config"
	"github.com/plantimetable/calstream/internal/log"
	"github.com/plantimetable/calstream/internal/pool"
	"github.com/plantimetable/calstream/stream"
)

// Set with -ldflags "-X main.version=...".
var version = "dev"

type app struct {
	logLevel   string
	configFile string
	conf       *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "calstream",
		Short: "calstream encodes, decodes and renders daily timetable counts",
		Long: `calstream works with the compact delta-of-delta text stream used to
publish how many timetables were created per day.
Version: ` + version,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.Load(a.configFile)
			if err != nil {
				return err
			}
			if a.logLevel != "" {
				conf.LogLevel = a.logLevel
			}
			log.Init(conf.LogLevel)
			a.conf = conf

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.logLevel, "log-level", "l", "", "Log level (debug, info, warn, error), overrides the config file")
	rootCmd.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "Path to a YAML config file")

	rootCmd.AddCommand(a.decodeCmd())
	rootCmd.AddCommand(a.renderCmd())
	rootCmd.AddCommand(a.encodeCmd())
	rootCmd.AddCommand(a.recordCmd())

	return rootCmd
}

func (a *app) newFetcher() (*client.Fetcher, error) {
	opts := []client.FetcherOption{
		client.WithTimeout(a.conf.Fetch.Timeout),
		client.WithUserAgent(a.conf.Fetch.UserAgent),
		client.WithLogger(log.NewLogger().WithField("component", "client")),
	}
	if len(a.conf.Fetch.AcceptEncoding) > 0 {
		opts = append(opts, client.WithAcceptEncoding(a.conf.Fetch.AcceptEncoding...))
	}

	return client.NewFetcher(opts...)
}

// target picks the stream location from the arguments or the config file.
func (a *app) target(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if a.conf.Fetch.URL != "" {
		return a.conf.Fetch.URL, nil
	}

	return "", fmt.Errorf("%w: no stream given and fetch.url is not set", errs.ErrInvalidConfig)
}

func isURL(target string) bool {
	return strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")
}

// loadPoints decodes the stream at target: a URL, a file, or "-" for stdin.
// Local bodies are decompressed with the named compression.
func (a *app) loadPoints(ctx context.Context, cmd *cobra.Command, target, compression string) ([]format.Point, error) {
	if isURL(target) {
		fetcher, err := a.newFetcher()
		if err != nil {
			return nil, err
		}

		return fetcher.Fetch(ctx, target)
	}

	body, err := readLocal(cmd.InOrStdin(), target, compression)
	if err != nil {
		return nil, err
	}

	return stream.Parse(body)
}

func readLocal(stdin io.Reader, target, compression string) (string, error) {
	t, err := format.ParseCompression(compression)
	if err != nil {
		return "", err
	}
	codec, err := compress.GetCodec(t)
	if err != nil {
		return "", err
	}

	buf := pool.GetBodyBuffer()
	defer pool.PutBodyBuffer(buf)

	in := stdin
	if target != "-" {
		f, err := os.Open(target)
		if err != nil {
			return "", fmt.Errorf("open stream: %w", err)
		}
		defer f.Close()
		in = f
	}

	if _, err := buf.ReadFrom(in); err != nil {
		return "", fmt.Errorf("read stream: %w", err)
	}

	body, err := codec.Decompress(buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("decompress %s stream: %w", t, err)
	}

	return string(body), nil
}
