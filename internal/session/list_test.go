package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matheus3301/wppmock/internal/lock"
)

func TestListSessions(t *testing.T) {
	t.Setenv(BaseDirEnv, t.TempDir())

	got, err := List()
	if err != nil || len(got) != 0 {
		t.Fatalf("List on empty base = %v, %v", got, err)
	}

	for _, name := range []string{"work", "main"} {
		if err := EnsureDir(name); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.MkdirAll(filepath.Join(BaseDir(), "sessions", "Bad Name"), 0o700); err != nil {
		t.Fatal(err)
	}

	l, err := lock.Acquire(Dir("work"))
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer func() { _ = l.Release() }()

	got, err = List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("sessions = %+v, want 2", got)
	}
	if got[0].Name != "main" || got[0].Running {
		t.Errorf("first = %+v, want stopped main", got[0])
	}
	if got[1].Name != "work" || !got[1].Running || got[1].PID != os.Getpid() {
		t.Errorf("second = %+v, want running work with our pid", got[1])
	}
}
