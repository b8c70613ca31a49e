package source

import (
	"context"
	"errors"
	"fmt"
	"os"

	"dianjobs/internal"
	"dianjobs/internal/config"
	"dianjobs/internal/storage"
)

// ErrNoData means no source produced any rows at all. Consumers use it
// to tell "the pipeline could not run" apart from "zero matching rows".
var ErrNoData = errors.New("no data available from any source")

const (
	OriginRemote   = "remote"
	OriginSnapshot = "snapshot"
	OriginFile     = "file"
)

// Service resolves the raw table through the fallback chain:
// remote store, then the snapshot of the last good remote fetch, then
// the local spreadsheet. A successful remote fetch refreshes the
// snapshot as a side effect.
type Service struct {
	cfg    config.Config
	remote *RemoteClient
	db     *storage.DB
}

func NewService(cfg config.Config, db *storage.DB) *Service {
	return &Service{cfg: cfg, remote: NewRemoteClient(cfg), db: db}
}

func (s *Service) Load(ctx context.Context) ([]internal.RawRecord, string, error) {
	var firstErr error

	if s.cfg.RemoteConfigured() {
		records, err := s.remote.FetchAll(ctx)
		if err == nil {
			if s.db != nil {
				if serr := s.db.ReplaceSnapshot(records); serr != nil {
					fmt.Fprintf(os.Stderr, "warn: snapshot refresh failed: %v\n", serr)
				}
			}
			return records, OriginRemote, nil
		}
		firstErr = err
		fmt.Fprintf(os.Stderr, "warn: remote fetch failed, falling back: %v\n", err)
	}

	if s.db != nil {
		records, err := s.db.LoadSnapshot()
		if err == nil && len(records) > 0 {
			return records, OriginSnapshot, nil
		}
	}

	records, err := ReadXLSX(s.cfg.LocalXLSXPath, s.cfg.FilterIngreso)
	if err == nil {
		return records, OriginFile, nil
	}

	if firstErr != nil {
		return nil, "", fmt.Errorf("%w (remote: %v; file: %v)", ErrNoData, firstErr, err)
	}
	return nil, "", fmt.Errorf("%w (file: %v)", ErrNoData, err)
}
