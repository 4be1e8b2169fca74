/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mapfs provides an in-memory filesystem implementation for testing.
package mapfs

import (
	"errors"
	"io/fs"
	"path"
	"strings"
	"sync"
	"testing/fstest"
	"time"
)

var errNotDir = errors.New("not a directory")

// epoch is the modification time of every file, so listings are stable.
var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// MapFileSystem is an in-memory fs.FileSystem over fstest.MapFS. Paths
// may be absolute or relative; both name the same entry. Writes under a
// denied prefix fail with fs.ErrPermission so tests can exercise output
// write failures.
type MapFileSystem struct {
	mu     sync.RWMutex
	files  fstest.MapFS
	denied []string
}

// New returns an empty filesystem.
func New() *MapFileSystem {
	return &MapFileSystem{files: fstest.MapFS{}}
}

// key maps a host-style path to an fs.ValidPath name.
func key(p string) string {
	p = strings.TrimPrefix(path.Clean("/"+p), "/")
	if p == "" {
		return "."
	}
	return p
}

// AddFile stores content at p, replacing any existing file.
func (m *MapFileSystem) AddFile(p string, content string, mode fs.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[key(p)] = &fstest.MapFile{Data: []byte(content), Mode: mode, ModTime: epoch}
}

// DenyWrites makes every later write to a path under prefix fail.
func (m *MapFileSystem) DenyWrites(prefix string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.denied = append(m.denied, key(prefix))
}

func (m *MapFileSystem) isDenied(k string) bool {
	for _, prefix := range m.denied {
		if k == prefix || strings.HasPrefix(k, prefix+"/") {
			return true
		}
	}
	return false
}

// isFile reports whether k is stored as a regular file.
func (m *MapFileSystem) isFile(k string) bool {
	f, ok := m.files[k]
	return ok && !f.Mode.IsDir()
}

func (m *MapFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := key(name)
	if m.isDenied(k) {
		return &fs.PathError{Op: "write", Path: name, Err: fs.ErrPermission}
	}
	for dir := path.Dir(k); dir != "."; dir = path.Dir(dir) {
		if m.isFile(dir) {
			return &fs.PathError{Op: "write", Path: name, Err: errNotDir}
		}
	}
	m.files[k] = &fstest.MapFile{Data: append([]byte(nil), data...), Mode: perm, ModTime: epoch}
	return nil
}

// MkdirAll records an explicit directory entry. Parents are implied by
// fstest.MapFS.
func (m *MapFileSystem) MkdirAll(p string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := key(p)
	if m.isDenied(k) {
		return &fs.PathError{Op: "mkdir", Path: p, Err: fs.ErrPermission}
	}
	if m.isFile(k) {
		return &fs.PathError{Op: "mkdir", Path: p, Err: errNotDir}
	}
	if k != "." {
		m.files[k] = &fstest.MapFile{Mode: fs.ModeDir | perm.Perm(), ModTime: epoch}
	}
	return nil
}

func (m *MapFileSystem) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fs.ReadFile(m.files, key(name))
}

func (m *MapFileSystem) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fs.Stat(m.files, key(name))
}

func (m *MapFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fs.ReadDir(m.files, key(name))
}

func (m *MapFileSystem) Open(name string) (fs.File, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.files.Open(key(name))
}

// Exists reports whether p is a file or a directory, explicit or implied.
func (m *MapFileSystem) Exists(p string) bool {
	_, err := m.Stat(p)
	return err == nil
}

// Files returns the content of every regular file under dir, keyed by
// absolute path.
func (m *MapFileSystem) Files(dir string) map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	prefix := key(dir) + "/"
	result := make(map[string]string)
	for k, f := range m.files {
		if f.Mode.IsDir() {
			continue
		}
		if prefix != "./" && !strings.HasPrefix(k, prefix) {
			continue
		}
		result["/"+k] = string(f.Data)
	}
	return result
}
