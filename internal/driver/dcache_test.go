package driver_test

import (
	"os"
	"path/filepath"
	"testing"

	"litcast/internal/driver"
)

func TestCheckFileUsesCache(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "a.cs")
	if err := os.WriteFile(path, []byte("var x = (long)1;"), 0o644); err != nil {
		t.Fatal(err)
	}
	opts := driver.CheckOptions{Cache: cache}

	_, cold, err := driver.CheckFile(path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if cold.FromCache {
		t.Error("first run must analyze, not hit the cache")
	}

	_, warm, err := driver.CheckFile(path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !warm.FromCache {
		t.Fatal("second run must hit the cache")
	}
	if warm.Flagged != cold.Flagged {
		t.Errorf("cached flagged = %d, analyzed = %d", warm.Flagged, cold.Flagged)
	}

	// cached diagnostics must be equivalent, spans included
	cd, wd := cold.Bag.Items(), warm.Bag.Items()
	if len(cd) != len(wd) {
		t.Fatalf("cached %d diagnostics, analyzed %d", len(wd), len(cd))
	}
	for i := range cd {
		if cd[i].Code != wd[i].Code || cd[i].Primary.Start != wd[i].Primary.Start || cd[i].Primary.End != wd[i].Primary.End {
			t.Errorf("diagnostic %d differs: %+v vs %+v", i, cd[i], wd[i])
		}
		if len(cd[i].Fixes) != len(wd[i].Fixes) {
			t.Errorf("diagnostic %d fix count differs", i)
		}
	}
}

func TestCacheInvalidatedByEdit(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "a.cs")
	if err := os.WriteFile(path, []byte("var x = (long)1;"), 0o644); err != nil {
		t.Fatal(err)
	}
	opts := driver.CheckOptions{Cache: cache}

	if _, _, err := driver.CheckFile(path, opts); err != nil {
		t.Fatal(err)
	}

	// content change moves the hash, so the old entry must not be served
	if err := os.WriteFile(path, []byte("var x = (long)1; var y = (uint)2;"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, res, err := driver.CheckFile(path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if res.FromCache {
		t.Error("edited file must be re-analyzed")
	}
	if res.Flagged != 2 {
		t.Errorf("flagged %d, want 2", res.Flagged)
	}
}

func TestDiskCacheMissAndDrop(t *testing.T) {
	cacheDir := filepath.Join(t.TempDir(), "cache")
	cache, err := driver.OpenDiskCacheAt(cacheDir)
	if err != nil {
		t.Fatal(err)
	}

	var key driver.Digest
	key[0] = 1
	var payload driver.DiskPayload
	ok, err := cache.Get(key, &payload)
	if err != nil || ok {
		t.Fatalf("Get on empty cache = %v, %v", ok, err)
	}

	if err := cache.Put(key, &driver.DiskPayload{Schema: 1, Path: "x.cs"}); err != nil {
		t.Fatal(err)
	}
	ok, err = cache.Get(key, &payload)
	if err != nil || !ok {
		t.Fatalf("Get after Put = %v, %v", ok, err)
	}
	if payload.Path != "x.cs" {
		t.Errorf("payload path = %q", payload.Path)
	}

	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(cacheDir); !os.IsNotExist(err) {
		t.Error("DropAll left the cache directory behind")
	}
}
