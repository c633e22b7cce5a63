package local

import (
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pazarlabs/pazar/pkg/errs"
	"github.com/rs/zerolog/log"
)

const ServePrefix = "/static/uploads"

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// Storage writes uploaded files beneath a fixed upload root and hands back
// the path they are served under.
type Storage struct {
	dir string
}

func CreateNewStorage(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Error().Err(err).Str("component", "CreateNewStorage").Msg("")
		return nil, errs.ErrStorage
	}

	return &Storage{dir: dir}, nil
}

// SanitizeFilename strips directory components and unsafe characters from a
// client-supplied filename. The result may be empty, which callers must treat
// as an unusable name.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeChars.ReplaceAllString(name, "")
	name = strings.Trim(name, "._")

	return name
}

// Put stores content under the sanitized form of filename and returns the
// served path for the stored file.
func (s *Storage) Put(filename string, content io.Reader) (string, error) {
	name := SanitizeFilename(filename)
	if name == "" {
		return "", errs.ErrClient
	}

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		log.Error().Err(err).Str("component", "Put").Str("filename", name).Msg("")
		return "", errs.ErrStorage
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		log.Error().Err(err).Str("component", "Put").Str("filename", name).Msg("")
		return "", errs.ErrStorage
	}

	return path.Join(ServePrefix, name), nil
}

// Dir returns the upload root, used by the app to mount the static route.
func (s *Storage) Dir() string {
	return s.dir
}
