// Package entityclasses resolves a wire class id to its network name and
// schema hash, the "entity classes" collaborator spec.md §6 describes.
// Classes builds its id->info lookup once up front, the same "build a
// lookup map once" shape as
// beacon-chain/core/transition/stateutils.ValidatorIndexMap.
package entityclasses

// ClassInfo describes one networked class.
type ClassInfo struct {
	ID              int32
	NetworkName     string
	NetworkNameHash uint64
}

// Classes holds the class-id bit width (spec.md §6: "class_id
// (entity_classes.bits bits)") and the id->info lookup.
type Classes struct {
	Bits int
	byID map[int32]*ClassInfo
}

// New returns an empty Classes with the given class-id bit width.
func New(bits int) *Classes {
	return &Classes{
		Bits: bits,
		byID: make(map[int32]*ClassInfo),
	}
}

// Add registers a class, keyed by id.
func (c *Classes) Add(info *ClassInfo) {
	c.byID[info.ID] = info
}

// ByID resolves a class by id.
func (c *Classes) ByID(id int32) (*ClassInfo, bool) {
	info, ok := c.byID[id]
	return info, ok
}

// Len reports how many classes are registered.
func (c *Classes) Len() int {
	return len(c.byID)
}
