package storage

import (
	"bytes"
	"context"
	"io"
	"sync"
	"time"
)

// Attachment driver identifiers
const (
	DriverMemory = "memory"
	DriverS3     = "s3"
)

type memoryObject struct {
	info Object
	data []byte
}

// MemoryStore keeps attachments in process memory. Contents are lost on restart.
type MemoryStore struct {
	mu   sync.RWMutex
	objs map[string]memoryObject
}

// NewMemoryStore returns an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objs: make(map[string]memoryObject)}
}

// Driver returns the driver identifier
func (s *MemoryStore) Driver() string { return DriverMemory }

// Put stores the object, replacing any previous content under the same key
func (s *MemoryStore) Put(_ context.Context, key string, r io.Reader, contentType string) (Object, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Object{}, err
	}
	info := Object{Key: key, Size: int64(len(b)), ContentType: contentType, LastModified: time.Now().UTC()}

	s.mu.Lock()
	s.objs[key] = memoryObject{info: info, data: b}
	s.mu.Unlock()
	return info, nil
}

// Get returns a copy of the stored content
func (s *MemoryStore) Get(_ context.Context, key string) (Object, io.ReadCloser, error) {
	s.mu.RLock()
	obj, ok := s.objs[key]
	s.mu.RUnlock()
	if !ok {
		return Object{}, nil, ErrObjectNotFound
	}
	data := bytes.Clone(obj.data)
	return obj.info, io.NopCloser(bytes.NewReader(data)), nil
}

// Delete removes the object. Deleting a missing key is not an error.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.objs, key)
	s.mu.Unlock()
	return nil
}
