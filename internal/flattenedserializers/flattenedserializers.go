// Package flattenedserializers models the schema forest spec.md §3 and §6
// name as an external collaborator ("flattened-serializer construction from
// network schema messages"): a tree of FlattenedSerializerField nodes per
// networked class, looked up by the class's network_name_hash. Container
// caches that lookup behind an LRU, the same bounded-cache role
// github.com/hashicorp/golang-lru plays in the teacher's dependency graph.
package flattenedserializers

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"

	"github.com/blukai/hasted/internal/fielddecoder"
)

// ErrNotFound is returned when no serializer is registered under a hash.
var ErrNotFound = errors.New("flattenedserializers: serializer not found")

// Field is one node of a class's flattened schema tree.
type Field struct {
	VarName        string
	VarNameHash    uint64
	VarType        string
	Children       []*Field
	IsDynamicArray bool
	Decoder        fielddecoder.Decoder
}

// FlattenedSerializer is the root of one networked class's schema tree.
type FlattenedSerializer struct {
	NetworkName     string
	NetworkNameHash uint64
	Children        []*Field
}

// Container resolves a class's NetworkNameHash to its schema, backed by an
// LRU of bounded size: the pack carries thousands of classes across a
// replay's game builds, but a given replay only ever touches a few hundred.
type Container struct {
	cache *lru.Cache
}

// NewContainer returns a Container whose cache holds up to capacity entries.
func NewContainer(capacity int) (*Container, error) {
	cache, err := lru.New(capacity)
	if err != nil {
		return nil, errors.Wrap(err, "flattenedserializers: failed to construct lru cache")
	}
	return &Container{cache: cache}, nil
}

// Add registers a serializer, keyed by its NetworkNameHash.
func (c *Container) Add(fs *FlattenedSerializer) {
	c.cache.Add(fs.NetworkNameHash, fs)
}

// Get resolves a serializer by network-name hash.
func (c *Container) Get(networkNameHash uint64) (*FlattenedSerializer, bool) {
	v, ok := c.cache.Get(networkNameHash)
	if !ok {
		return nil, false
	}
	return v.(*FlattenedSerializer), true
}

// MustGet is a convenience wrapper for callers that treat a missing
// serializer as a hard decode error.
func (c *Container) MustGet(networkNameHash uint64) (*FlattenedSerializer, error) {
	fs, ok := c.Get(networkNameHash)
	if !ok {
		return nil, ErrNotFound
	}
	return fs, nil
}

// Len reports how many serializers are currently cached.
func (c *Container) Len() int {
	return c.cache.Len()
}
