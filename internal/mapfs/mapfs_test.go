/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mapfs

import (
	"errors"
	"io/fs"
	"testing"
)

func TestMapFileSystem_PathsAreRooted(t *testing.T) {
	m := New()
	m.AddFile("/project/tokens/tokens.json", "{}", 0644)

	for _, p := range []string{"/project/tokens/tokens.json", "project/tokens/tokens.json", "/project/./tokens/../tokens/tokens.json"} {
		if _, err := m.ReadFile(p); err != nil {
			t.Errorf("ReadFile(%q) error = %v", p, err)
		}
	}
	if !m.Exists("/project/tokens") {
		t.Error("implied directory should exist")
	}
	if m.Exists("/project/build") {
		t.Error("unexpected directory")
	}
}

func TestMapFileSystem_WriteFile(t *testing.T) {
	m := New()
	if err := m.MkdirAll("/out", 0755); err != nil {
		t.Fatal(err)
	}
	if err := m.WriteFile("/out/primitives.css", []byte(":root {\n}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	files := m.Files("/out")
	if len(files) != 1 || files["/out/primitives.css"] != ":root {\n}\n" {
		t.Errorf("Files() = %v", files)
	}

	entries, err := m.ReadDir("/out")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "primitives.css" {
		t.Errorf("ReadDir() = %v", entries)
	}
}

func TestMapFileSystem_WriteUnderFile(t *testing.T) {
	m := New()
	m.AddFile("/out", "not a dir", 0644)

	if err := m.WriteFile("/out/primitives.css", nil, 0644); !errors.Is(err, errNotDir) {
		t.Errorf("WriteFile() error = %v, want not a directory", err)
	}
	if err := m.MkdirAll("/out", 0755); !errors.Is(err, errNotDir) {
		t.Errorf("MkdirAll() error = %v, want not a directory", err)
	}
}

func TestMapFileSystem_DenyWrites(t *testing.T) {
	m := New()
	m.DenyWrites("/out/brand-b.alias.css")

	if err := m.WriteFile("/out/brand-b.alias.css", nil, 0644); !errors.Is(err, fs.ErrPermission) {
		t.Errorf("WriteFile() error = %v, want ErrPermission", err)
	}
	if err := m.WriteFile("/out/brand-a.alias.css", nil, 0644); err != nil {
		t.Errorf("WriteFile() outside denied prefix error = %v", err)
	}
}

func TestMapFileSystem_WalkDir(t *testing.T) {
	m := New()
	m.AddFile("/p/tokens/a.json", "", 0644)
	m.AddFile("/p/tokens/brands/b.json", "", 0644)

	var files []string
	err := fs.WalkDir(m, "/p/tokens", func(p string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			files = append(files, p)
		}
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 || files[0] != "/p/tokens/a.json" || files[1] != "/p/tokens/brands/b.json" {
		t.Errorf("walked %v", files)
	}
}
