package jsonfile

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pazarlabs/pazar/pkg/errs"
	"github.com/rs/zerolog/log"
)

// Store persists each collection as a pretty-printed JSON array at
// <dir>/<collection>.json. Every mutation rewrites the whole file; callers
// own the read-modify-write serialization.
type Store struct {
	dir string
}

func CreateNewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Error().Err(err).Str("component", "CreateNewStore").Msg("")
		return nil, errs.ErrStorage
	}

	return &Store{dir: dir}, nil
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// Load decodes the collection file into out. A missing file is the empty
// collection, not an error.
func (s *Store) Load(collection string, out interface{}) error {
	raw, err := os.ReadFile(s.path(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		log.Error().Err(err).Str("component", "Load").Str("collection", collection).Msg("")
		return errs.ErrStorage
	}

	if err := json.Unmarshal(raw, out); err != nil {
		log.Error().Err(err).Str("component", "Load").Str("collection", collection).Msg("")
		return errs.ErrCorruptStore
	}

	return nil
}

// Save replaces the collection file with records, written to a temp file in
// the same directory and renamed over the target so a crash mid-write never
// leaves a truncated file behind.
func (s *Store) Save(collection string, records interface{}) error {
	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		log.Error().Err(err).Str("component", "Save").Str("collection", collection).Msg("")
		return errs.ErrStorage
	}

	tmp, err := os.CreateTemp(s.dir, collection+"-*.json.tmp")
	if err != nil {
		log.Error().Err(err).Str("component", "Save").Str("collection", collection).Msg("")
		return errs.ErrStorage
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		log.Error().Err(err).Str("component", "Save").Str("collection", collection).Msg("")
		return errs.ErrStorage
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		log.Error().Err(err).Str("component", "Save").Str("collection", collection).Msg("")
		return errs.ErrStorage
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		log.Error().Err(err).Str("component", "Save").Str("collection", collection).Msg("")
		return errs.ErrStorage
	}

	if err := os.Rename(tmp.Name(), s.path(collection)); err != nil {
		os.Remove(tmp.Name())
		log.Error().Err(err).Str("component", "Save").Str("collection", collection).Msg("")
		return errs.ErrStorage
	}

	return nil
}
