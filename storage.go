package portfolio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BucketName is the single bucket holding portfolio images, organized into
// one top-level folder per section.
const BucketName = "portfolio-images"

// publicURLMarker is the path prefix under which bucket objects are served.
// Image URLs recorded in the database embed it; deletion derives the storage
// path by slicing everything after it.
const publicURLMarker = "/object/public/" + BucketName + "/"

// ObjectInfo describes one entry returned by a bucket listing. Folder
// placeholders carry no ID and no size; only real objects report SizeKnown.
type ObjectInfo struct {
	Name      string
	ID        string
	Size      int64
	SizeKnown bool
}

// IsFolder reports whether the entry is a folder placeholder rather than an
// object.
func (o ObjectInfo) IsFolder() bool {
	return o.ID == ""
}

// ObjectStore is the object storage surface the site depends on: flat
// uploads, prefix listings, removal, and public URL derivation.
type ObjectStore interface {
	// List enumerates entries directly under prefix ("" for the bucket
	// root), capped at limit entries.
	List(prefix string, limit int) ([]ObjectInfo, error)
	// Upload stores data at path. Existing objects are never overwritten.
	Upload(path string, data []byte) error
	// Remove deletes the object at path.
	Remove(path string) error
	// PublicURL returns the public URL serving the object at path.
	PublicURL(path string) string
}

// DiskStore is an ObjectStore backed by a local directory, the same place
// the HTTP server serves objects from.
type DiskStore struct {
	root    string // directory containing the bucket directory
	baseURL string
}

// NewDiskStore creates (if needed) the bucket directory under root and
// returns a store whose public URLs are rooted at baseURL.
func NewDiskStore(root, baseURL string) (*DiskStore, error) {
	dir := filepath.Join(root, BucketName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create bucket dir: %w", err)
	}
	return &DiskStore{root: root, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// BucketDir returns the directory objects are stored in, for static serving.
func (d *DiskStore) BucketDir() string {
	return filepath.Join(d.root, BucketName)
}

// List enumerates entries directly under prefix. Directories appear as
// folder placeholders (no ID, no size); files report their byte size.
func (d *DiskStore) List(prefix string, limit int) ([]ObjectInfo, error) {
	dir := d.BucketDir()
	if prefix != "" {
		dir = filepath.Join(dir, filepath.FromSlash(prefix))
	}
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var infos []ObjectInfo
	for _, e := range entries {
		if len(infos) >= limit {
			break
		}
		if e.IsDir() {
			infos = append(infos, ObjectInfo{Name: e.Name()})
			continue
		}
		fi, err := e.Info()
		if err != nil {
			return nil, err
		}
		id := e.Name()
		if prefix != "" {
			id = prefix + "/" + e.Name()
		}
		infos = append(infos, ObjectInfo{
			Name:      e.Name(),
			ID:        id,
			Size:      fi.Size(),
			SizeKnown: true,
		})
	}
	return infos, nil
}

// Upload writes data at path, creating parent folders. Refuses to overwrite.
func (d *DiskStore) Upload(path string, data []byte) error {
	full := filepath.Join(d.BucketDir(), filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Remove deletes the object at path.
func (d *DiskStore) Remove(path string) error {
	return os.Remove(filepath.Join(d.BucketDir(), filepath.FromSlash(path)))
}

// PublicURL returns the URL the object is served under.
func (d *DiskStore) PublicURL(path string) string {
	return d.baseURL + publicURLMarker + path
}

// StoragePathFromURL derives the bucket-relative object path from a public
// URL. The second return value is false when the URL lacks the public
// bucket marker and the path cannot be resolved.
func StoragePathFromURL(url string) (string, bool) {
	idx := strings.Index(url, publicURLMarker)
	if idx == -1 {
		return "", false
	}
	return url[idx+len(publicURLMarker):], true
}
