package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alex-pricope/live-event-voting/logging"
)

// FileVoteStorage keeps one pretty-printed JSON file per vote id inside Dir.
// Used in local mode; writes go through a temp file and rename so a crashed
// write never leaves a half-written document behind.
type FileVoteStorage struct {
	Dir string
}

func (s *FileVoteStorage) path(id string) string {
	return filepath.Join(s.Dir, id+".json")
}

func (s *FileVoteStorage) Get(_ context.Context, id string) (*VoteDocument, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrVoteNotFound
		}
		logging.Log.Errorf("VOTE: failed to read document %s: %v", id, err)
		return nil, err
	}

	var doc VoteDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		logging.Log.Errorf("VOTE: failed to unmarshal document %s: %v", id, err)
		return nil, err
	}
	return &doc, nil
}

func (s *FileVoteStorage) Put(_ context.Context, doc *VoteDocument) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		logging.Log.Errorf("VOTE: failed to create data dir: %v", err)
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		logging.Log.Errorf("VOTE: failed to marshal document %s: %v", doc.Metadata.ID, err)
		return err
	}

	tmp, err := os.CreateTemp(s.Dir, doc.Metadata.ID+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), s.path(doc.Metadata.ID)); err != nil {
		_ = os.Remove(tmp.Name())
		logging.Log.Errorf("VOTE: failed to write document %s: %v", doc.Metadata.ID, err)
		return err
	}
	return nil
}

func (s *FileVoteStorage) Create(ctx context.Context, doc *VoteDocument) error {
	exists, err := s.Exists(ctx, doc.Metadata.ID)
	if err != nil {
		return err
	}
	if exists {
		return ErrVoteAlreadyExists
	}
	return s.Put(ctx, doc)
}

func (s *FileVoteStorage) Exists(_ context.Context, id string) (bool, error) {
	_, err := os.Stat(s.path(id))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// FilePrizeListStorage mirrors FileVoteStorage for wheel prize lists, with
// all lists in one directory separate from vote documents.
type FilePrizeListStorage struct {
	Dir string
}

func (s *FilePrizeListStorage) path(id string) string {
	return filepath.Join(s.Dir, id+".json")
}

func (s *FilePrizeListStorage) Get(_ context.Context, id string) (*PrizeList, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrPrizeListNotFound
		}
		logging.Log.Errorf("WHEEL: failed to read prize list %s: %v", id, err)
		return nil, err
	}

	var list PrizeList
	if err := json.Unmarshal(data, &list); err != nil {
		logging.Log.Errorf("WHEEL: failed to unmarshal prize list %s: %v", id, err)
		return nil, err
	}
	return &list, nil
}

func (s *FilePrizeListStorage) GetAll(ctx context.Context) ([]*PrizeList, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []*PrizeList{}, nil
		}
		logging.Log.Errorf("WHEEL: failed to list prize lists: %v", err)
		return nil, err
	}

	lists := make([]*PrizeList, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		list, err := s.Get(ctx, strings.TrimSuffix(e.Name(), ".json"))
		if err != nil {
			return nil, err
		}
		lists = append(lists, list)
	}
	return lists, nil
}

func (s *FilePrizeListStorage) Put(_ context.Context, list *PrizeList) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		logging.Log.Errorf("WHEEL: failed to create data dir: %v", err)
		return err
	}

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.Dir, list.ID+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), s.path(list.ID)); err != nil {
		_ = os.Remove(tmp.Name())
		logging.Log.Errorf("WHEEL: failed to write prize list %s: %v", list.ID, err)
		return err
	}
	return nil
}

func (s *FilePrizeListStorage) Delete(_ context.Context, id string) error {
	if err := os.Remove(s.path(id)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logging.Log.Errorf("WHEEL: failed to delete prize list %s: %v", id, err)
		return err
	}
	return nil
}
