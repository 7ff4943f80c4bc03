package coffertest

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/boxmeout/coffer/store/iavl"
)

// TempDir creates a directory removed at the end of the test.
func TempDir(t testing.TB) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "coffertest-")
	if err != nil {
		t.Fatalf("cannot create a temporary directory: %s", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

// CommitKVStore opens the leveldb backed store kept in dir, the engine a
// node runs on. Opening the same dir again after Close sees everything
// committed before. The store is closed at the end of the test.
func CommitKVStore(t testing.TB, dir string) *iavl.CommitStore {
	t.Helper()
	db, err := iavl.NewCommitStore(dir, "coffer")
	if err != nil {
		t.Fatalf("cannot open a commit store in %s: %s", dir, err)
	}
	t.Cleanup(db.Close)
	return db
}
