package session

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/matheus3301/wppmock/internal/lock"
)

// Info describes a session directory on disk.
type Info struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Running bool   `json:"daemon_running"`
	PID     int    `json:"pid,omitempty"`
}

// List returns every session directory under the base dir, sorted by name.
// Directories with invalid session names are skipped.
func List() ([]Info, error) {
	root := filepath.Join(BaseDir(), "sessions")
	entries, err := os.ReadDir(root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var out []Info
	for _, e := range entries {
		if !e.IsDir() || ValidateName(e.Name()) != nil {
			continue
		}
		info := Info{Name: e.Name(), Path: Dir(e.Name())}
		info.PID, info.Running = lock.Holder(info.Path)
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
