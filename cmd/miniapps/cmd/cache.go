package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"miniapps/internal/cache"
	"miniapps/internal/config"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the Valkey page cache",
}

var cacheFlushCmd = &cobra.Command{
	Use:   "flush",
	Short: "Remove every cached page",
	Args:  cobra.NoArgs,
	RunE:  runCacheFlush,
}

func init() {
	cacheCmd.AddCommand(cacheFlushCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheFlush(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if !cfg.CacheEnabled() {
		return fmt.Errorf("page cache is not configured (set VALKEY_HOST)")
	}

	client, err := cache.ConnectValkey(cmd.Context(), cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword, cfg.ValkeyDB)
	if err != nil {
		return fmt.Errorf("connect to valkey: %w", err)
	}
	defer client.Close()

	cache.NewPageCache(client, cfg.PageCacheTTL).InvalidateAll(cmd.Context())
	cmd.Println("Page cache flushed")
	return nil
}
