// ABOUTME: Cache command group for the upload cache.
// ABOUTME: Provides stats and clear subcommands.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kyle-sutherland/slackdump2markdown/internal/ui"
	"github.com/kyle-sutherland/slackdump2markdown/internal/uploadcache"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the upload cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show upload cache statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := uploadcache.Open(cfg.CachePath)
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
		defer func() { _ = cache.Close() }()

		count, err := cache.Count()
		if err != nil {
			return fmt.Errorf("failed to count entries: %w", err)
		}

		fmt.Printf("Path:    %s\n", cfg.CachePath)
		fmt.Printf("Uploads: %d\n", count)
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all cached upload entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := uploadcache.Open(cfg.CachePath)
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
		defer func() { _ = cache.Close() }()

		removed, err := cache.Clear()
		if err != nil {
			return fmt.Errorf("failed to clear cache: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Removed %d cached uploads", removed)))
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}
