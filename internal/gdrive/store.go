// ABOUTME: Resource store backed by Google Drive.
// ABOUTME: Uploads attachments, makes them public, memoizes by content hash.

package gdrive

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"google.golang.org/api/drive/v3"

	"github.com/kyle-sutherland/slackdump2markdown/internal/docops"
	"github.com/kyle-sutherland/slackdump2markdown/internal/uploadcache"
)

// UploadError reports an I/O or quota failure while uploading a resource. It
// propagates and aborts batch assembly; no partial batch is committed.
type UploadError struct {
	Path string
	Err  error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload %s: %v", e.Path, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// Store uploads local files to Drive and returns publicly resolvable URIs.
// The cache is optional; with one attached, files whose content hash was seen
// before are not uploaded again.
type Store struct {
	svc      *drive.Service
	folderID string
	cache    *uploadcache.Cache
	logger   zerolog.Logger
}

func New(svc *drive.Service, folderID string, cache *uploadcache.Cache, logger zerolog.Logger) *Store {
	return &Store{svc: svc, folderID: folderID, cache: cache, logger: logger}
}

// Upload sends the file to Drive and grants anyone-with-the-link read access.
// If the permission grant fails the result simply has no public URI and the
// caller degrades to a link line; only the upload itself is fatal.
func (s *Store) Upload(ctx context.Context, localPath string) (*docops.UploadResult, error) {
	var digest string
	if s.cache != nil {
		var err error
		digest, err = uploadcache.HashFile(localPath)
		if err != nil {
			return nil, &UploadError{Path: localPath, Err: err}
		}
		if entry, err := s.cache.Get(digest); err == nil {
			s.logger.Debug().Str("path", localPath).Str("resource", entry.ResourceID).
				Msg("upload cache hit")
			return &docops.UploadResult{
				ResourceID: entry.ResourceID,
				MediaType:  entry.MediaType,
				PublicURI:  entry.PublicURI,
				ViewerURI:  entry.ViewerURI,
			}, nil
		} else if !errors.Is(err, uploadcache.ErrNotFound) {
			s.logger.Warn().Err(err).Str("path", localPath).Msg("upload cache read failed")
		}
	}

	f, err := os.Open(localPath) //nolint:gosec // Attachment paths come from the export
	if err != nil {
		return nil, &UploadError{Path: localPath, Err: err}
	}
	defer func() { _ = f.Close() }()

	meta := &drive.File{Name: filepath.Base(localPath)}
	if s.folderID != "" {
		meta.Parents = []string{s.folderID}
	}

	created, err := s.svc.Files.Create(meta).
		Media(f).
		Fields("id", "mimeType", "webViewLink").
		Context(ctx).
		Do()
	if err != nil {
		return nil, &UploadError{Path: localPath, Err: err}
	}

	result := &docops.UploadResult{
		ResourceID: created.Id,
		MediaType:  created.MimeType,
		ViewerURI:  created.WebViewLink,
	}
	if result.ViewerURI == "" {
		result.ViewerURI = "https://drive.google.com/file/d/" + created.Id + "/view"
	}

	if err := s.makePublic(ctx, created.Id); err != nil {
		s.logger.Warn().Err(err).Str("resource", created.Id).
			Msg("could not make resource public, falling back to viewer link")
	} else {
		result.PublicURI = "https://drive.google.com/uc?id=" + created.Id
	}

	s.logger.Debug().Str("path", localPath).Str("resource", created.Id).
		Str("media_type", created.MimeType).Msg("uploaded attachment")

	if s.cache != nil {
		entry := &uploadcache.Entry{
			ResourceID: result.ResourceID,
			MediaType:  result.MediaType,
			PublicURI:  result.PublicURI,
			ViewerURI:  result.ViewerURI,
		}
		if err := s.cache.Put(digest, entry); err != nil {
			s.logger.Warn().Err(err).Str("path", localPath).Msg("upload cache write failed")
		}
	}

	return result, nil
}

func (s *Store) makePublic(ctx context.Context, resourceID string) error {
	_, err := s.svc.Permissions.Create(resourceID, &drive.Permission{
		Role: "reader",
		Type: "anyone",
	}).Context(ctx).Do()
	return err
}
