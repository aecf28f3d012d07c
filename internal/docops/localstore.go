// ABOUTME: Offline resource store for dry runs and planning.
// ABOUTME: Resolves media types by extension and never touches the network.

package docops

import (
	"context"
	"mime"
	"path/filepath"
)

// LocalStore satisfies Uploader without uploading anything. With no public
// URI every image takes the link-fallback path, so a dry-run stream contains
// only deterministic text. Media type falls back to extension sniffing since
// there is no uploaded resource to inspect.
type LocalStore struct{}

func (LocalStore) Upload(_ context.Context, localPath string) (*UploadResult, error) {
	mediaType := mime.TypeByExtension(filepath.Ext(localPath))
	if mediaType == "" {
		mediaType = "application/octet-stream"
	}
	return &UploadResult{
		ResourceID: localPath,
		MediaType:  mediaType,
		ViewerURI:  "file://" + filepath.ToSlash(localPath),
	}, nil
}
