package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	LogoName  = "company-logo.png"
	MaxImages = 10
)

// Store persists uploads under a single directory that is also served
// statically. The logo lives at one fixed name inside the same directory.
type Store struct {
	Dir       string
	PublicURL string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{Dir: dir, PublicURL: "/uploads"}, nil
}

// SaveImages stores every file under a fresh uuid name and returns the names
// in upload order. On any failure the files already written for this call are
// removed, so a request either stores all its images or none.
func (s *Store) SaveImages(files []*multipart.FileHeader) ([]string, error) {
	if len(files) > MaxImages {
		return nil, fmt.Errorf("at most %d images per request", MaxImages)
	}
	names := make([]string, 0, len(files))
	for _, fh := range files {
		name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
		if err := s.save(fh, filepath.Join(s.Dir, name)); err != nil {
			s.Remove(names...)
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// ReplaceLogo writes the upload to a temporary name and renames it onto the
// fixed logo path, so readers never observe a missing logo mid-replace.
func (s *Store) ReplaceLogo(fh *multipart.FileHeader) (string, error) {
	tmp := filepath.Join(s.Dir, "."+uuid.NewString()+".tmp")
	if err := s.save(fh, tmp); err != nil {
		return "", err
	}
	if err := os.Rename(tmp, s.LogoPath()); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("replace logo: %w", err)
	}
	return s.PublicURL + "/" + LogoName, nil
}

func (s *Store) LogoPath() string {
	return filepath.Join(s.Dir, LogoName)
}

// LogoURL returns the public logo reference, or "" when no logo exists.
func (s *Store) LogoURL() string {
	if _, err := os.Stat(s.LogoPath()); err != nil {
		return ""
	}
	return s.PublicURL + "/" + LogoName
}

// Remove unlinks stored files by name, ignoring ones that are already gone.
func (s *Store) Remove(names ...string) {
	for _, n := range names {
		if n == "" {
			continue
		}
		_ = os.Remove(filepath.Join(s.Dir, n))
	}
}

func (s *Store) save(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		_ = os.Remove(dst)
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return out.Close()
}
