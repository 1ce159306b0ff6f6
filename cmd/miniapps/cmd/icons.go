package cmd

import (
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"miniapps/internal/config"
	"miniapps/internal/storage"
)

var iconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "Manage icon images in S3 storage",
}

var iconsPushCmd = &cobra.Command{
	Use:   "push DIR",
	Short: "Upload a local assets directory to S3",
	Long: `Upload every file under DIR to the configured S3 bucket, keeping paths
relative to DIR. Pushing ./web/miniapps stores images/openai.png under
S3_PREFIX/images/openai.png, which is where the server looks for it.`,
	Args: cobra.ExactArgs(1),
	RunE: runIconsPush,
}

func init() {
	iconsCmd.AddCommand(iconsPushCmd)
	rootCmd.AddCommand(iconsCmd)
}

func runIconsPush(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	client, err := storage.New(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3Prefix)
	if err != nil {
		return fmt.Errorf("initialize S3 storage: %w", err)
	}
	if client == nil {
		return fmt.Errorf("S3 storage is not configured (set S3_ENDPOINT, S3_ACCESS_KEY and S3_SECRET_KEY)")
	}

	root := args[0]
	count := 0
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)

		f, err := os.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return err
		}
		contentType := mime.TypeByExtension(filepath.Ext(p))
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		if err := client.Upload(cmd.Context(), name, contentType, f, info.Size()); err != nil {
			return err
		}
		cmd.Printf("  %s -> %s/%s\n", name, client.Bucket(), client.Key(name))
		count++
		return nil
	})
	if err != nil {
		return fmt.Errorf("push icons: %w", err)
	}

	cmd.Printf("Uploaded %d files\n", count)
	return nil
}
