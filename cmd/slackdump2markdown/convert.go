// ABOUTME: Convert command running the full export-to-document pipeline.
// ABOUTME: Reads messages, uploads attachments, submits one atomic batch.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/kyle-sutherland/slackdump2markdown/internal/docops"
	"github.com/kyle-sutherland/slackdump2markdown/internal/gdocs"
	"github.com/kyle-sutherland/slackdump2markdown/internal/gdrive"
	"github.com/kyle-sutherland/slackdump2markdown/internal/googleauth"
	"github.com/kyle-sutherland/slackdump2markdown/internal/transcript"
	"github.com/kyle-sutherland/slackdump2markdown/internal/ui"
	"github.com/kyle-sutherland/slackdump2markdown/internal/uploadcache"
)

var convertCmd = &cobra.Command{
	Use:   "convert <export-dir>",
	Short: "Convert a Slack export into a formatted Google Doc",
	Long: `Read the export directory's JSON files, upload attachments to Drive,
and build the document as a single atomic operation batch.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		ctx := cmd.Context()

		title, _ := cmd.Flags().GetString("title")
		if title == "" {
			title = cfg.DocTitle
		}
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		noCache, _ := cmd.Flags().GetBool("no-cache")
		folderID, _ := cmd.Flags().GetString("folder")
		if folderID == "" {
			folderID = cfg.DriveFolderID
		}

		msgs, err := transcript.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("failed to read export: %w", err)
		}
		if len(msgs) == 0 {
			return fmt.Errorf("no messages found in %s", dir)
		}
		logger.Info().Int("messages", len(msgs)).Str("dir", dir).Msg("export loaded")

		if dryRun {
			assembler := docops.NewAssembler(docops.LocalStore{}, dir, logger)
			batch, err := assembler.Assemble(ctx, title, msgs)
			if err != nil {
				return fmt.Errorf("failed to assemble batch: %w", err)
			}
			fmt.Print(ui.FormatBatchSummary(batch, len(msgs)))
			fmt.Print(ui.Separator())
			fmt.Print(batch.Dump())
			return nil
		}

		client, err := googleauth.Client(ctx, cfg.CredentialsFile, cfg.TokenFile)
		if err != nil {
			return fmt.Errorf("failed to authorize: %w", err)
		}

		driveSvc, err := drive.NewService(ctx, option.WithHTTPClient(client))
		if err != nil {
			return fmt.Errorf("failed to create drive service: %w", err)
		}
		docsSvc, err := docs.NewService(ctx, option.WithHTTPClient(client))
		if err != nil {
			return fmt.Errorf("failed to create docs service: %w", err)
		}

		var cache *uploadcache.Cache
		if !noCache {
			cache, err = uploadcache.Open(cfg.CachePath)
			if err != nil {
				logger.Warn().Err(err).Msg("upload cache unavailable, continuing without it")
			} else {
				defer func() { _ = cache.Close() }()
			}
		}

		store := gdrive.New(driveSvc, folderID, cache, logger)
		assembler := docops.NewAssembler(store, dir, logger)

		batch, err := assembler.Assemble(ctx, title, msgs)
		if err != nil {
			return fmt.Errorf("failed to assemble batch: %w", err)
		}
		fmt.Print(ui.FormatBatchSummary(batch, len(msgs)))

		backend := gdocs.New(docsSvc, logger)
		docURL, err := backend.Submit(ctx, batch)
		if err != nil {
			var be *gdocs.BackendError
			if errors.As(err, &be) {
				fmt.Fprintln(os.Stderr, ui.Error("batch rejected; offending operations:"))
				fmt.Fprint(os.Stderr, be.Dump())
			}
			return fmt.Errorf("failed to submit batch: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Document created: %s", docURL)))
		return nil
	},
}

func init() {
	convertCmd.Flags().StringP("title", "t", "", "document title (default from config)")
	convertCmd.Flags().String("folder", "", "Drive folder ID for uploaded attachments")
	convertCmd.Flags().Bool("dry-run", false, "assemble offline and print the operation dump")
	convertCmd.Flags().Bool("no-cache", false, "bypass the upload cache")
	rootCmd.AddCommand(convertCmd)
}
