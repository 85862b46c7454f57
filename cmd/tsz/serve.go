package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mohsen1/tsz-sub014/internal/driver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the §6.4 newline-delimited JSON server loop over stdin/stdout",
	Long: `serve starts a long-lived process that reads {type,id,files,options} requests
from stdin and writes {id,codes,elapsed_ms,...} responses to stdout, one JSON object per
line. Each "check" request's files map is treated as bound-program JSON payloads
(DecodeBoundFile), not raw source text.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("cache-app", "tsz", "disk cache namespace")
	serveCmd.Flags().Bool("no-cache", false, "disable the on-disk diagnostics cache")
}

func runServe(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	cacheApp, err := cmd.Flags().GetString("cache-app")
	if err != nil {
		return fmt.Errorf("failed to get cache-app flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}

	var cache *driver.DiskCache
	if !noCache {
		cache, err = driver.OpenDiskCache(cacheApp)
		if err != nil {
			return fmt.Errorf("failed to open disk cache: %w", err)
		}
	}

	server := driver.NewServer(os.Stdin, os.Stdout, jobs, cache)
	server.Resolve = driver.ResolveBoundJSON

	err = server.Run(cmd.Context())
	if err != nil && err != driver.ErrShutdown {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}
