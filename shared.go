// Copyright 2026 The go-quadmesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quadmesh

import "sync"

// SharedMesh serializes access to a mesh used from several goroutines.
// Readers such as Trace, Streamlines and the buffer exports go through View;
// ApplyHeight and ResetHeight go through Update.
type SharedMesh struct {
	mu sync.RWMutex
	m  *Mesh
}

// NewSharedMesh wraps m. m must not be used directly afterwards.
func NewSharedMesh(m *Mesh) *SharedMesh {
	return &SharedMesh{m: m}
}

// View calls fn with the mesh under a read lock.
func (s *SharedMesh) View(fn func(m *Mesh) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.m)
}

// Update calls fn with the mesh under the write lock.
func (s *SharedMesh) Update(fn func(m *Mesh) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.m)
}
