// Package entities is the core described across spec.md §3-§9: the
// FieldState prefix tree, Entity, EntityContainer, DeltaHeader, and the
// handle helpers (re-exported from internal/handle) that together
// reconstruct authoritative entity state from a stream of per-entity delta
// records.
package entities

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"

	"github.com/pkg/errors"

	"github.com/blukai/hasted/internal/bitreader"
	"github.com/blukai/hasted/internal/entityclasses"
	"github.com/blukai/hasted/internal/fielddecoder"
	"github.com/blukai/hasted/internal/fieldpath"
	"github.com/blukai/hasted/internal/flattenedserializers"
	"github.com/blukai/hasted/internal/rangealloc"
)

// NumEntEntryBits is the width of the slot-index field a caller reads
// ahead of each per-entity record, per spec.md §6.
const NumEntEntryBits = 15

// ErrUnknownSlot is returned by HandleUpdate/HandleDelete when the
// targeted slot has no live entity. spec.md §9 flags the source's original
// behaviour here (assuming the slot is populated) as a principled
// reimplementation should instead surface.
var ErrUnknownSlot = errors.New("entities: unknown slot index")

// ErrUnknownClass is returned by HandleCreate when class_id doesn't
// resolve against the container's Classes table.
var ErrUnknownClass = errors.New("entities: unknown class id")

var log = logrus.WithField("prefix", "entities")

var (
	metricLiveEntities = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "entity_container_live_entities",
		Help: "Number of entities currently tracked by the container.",
	})
	metricArenaCapacity = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "node_arena_capacity",
		Help: "Total capacity of the shared field-state node arena.",
	})
	metricArenaInUse = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "node_arena_in_use",
		Help: "Number of field-state node arena slots currently allocated.",
	})
)

// BaselineSource is the instance-baseline lookup Container needs: the
// per-class baseline bytes, read at most once per class (spec.md §8
// invariant 6). *instancebaseline.InstanceBaseline satisfies this; tests
// wrap it to count reads.
type BaselineSource interface {
	MustGetData(classID int32) ([]byte, error)
}

// Container owns live and baseline entities, the shared node arena, and
// the field-path scratch buffer, per spec.md §3's EntityContainer.
type Container struct {
	Classes     *entityclasses.Classes
	Serializers *flattenedserializers.Container
	Baselines   BaselineSource

	entities         map[int32]Entity
	baselineEntities map[int32]Entity

	fieldPaths []fieldpath.FieldPath
	arena      Arena
	alloc      *rangealloc.Allocator
}

// NewContainer returns a Container with the given node-arena capacity and
// field-path scratch capacity. spec.md §3 defaults these to 128*1024 and
// 4096 respectively; cmd/hasted exposes both as flags.
func NewContainer(classes *entityclasses.Classes, serializers *flattenedserializers.Container, baselines BaselineSource, arenaCapacity, pathScratchCapacity int) *Container {
	c := &Container{
		Classes:          classes,
		Serializers:      serializers,
		Baselines:        baselines,
		entities:         make(map[int32]Entity),
		baselineEntities: make(map[int32]Entity),
		fieldPaths:       make([]fieldpath.FieldPath, pathScratchCapacity),
		arena:            make(Arena, arenaCapacity),
		alloc:            rangealloc.New(arenaCapacity),
	}
	metricArenaCapacity.Set(float64(arenaCapacity))
	return c
}

// HandleCreate implements spec.md §4.4's CREATE dispatch.
func (c *Container) HandleCreate(ctx *fielddecoder.Context, br *bitreader.BitReader, slotIndex int32) (*Entity, error) {
	classID := int32(br.ReadUBit64(c.Classes.Bits))
	_ = br.ReadUBit64(10)  // serial number, unused by the core
	_ = br.ReadUVarint32() // "unknown" field, consumed but unused

	classInfo, ok := c.Classes.ByID(classID)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownClass, "class id %d", classID)
	}
	serializer, err := c.Serializers.MustGet(classInfo.NetworkNameHash)
	if err != nil {
		return nil, errors.Wrapf(err, "class id %d", classID)
	}

	ent, err := c.entityFromBaseline(ctx, classID, serializer)
	if err != nil {
		return nil, err
	}
	ent.Index = slotIndex

	if err := ent.Parse(ctx, br, c.fieldPaths, c.arena, c.alloc); err != nil {
		return nil, errors.Wrap(err, "entities: failed to parse create delta")
	}

	c.entities[slotIndex] = ent
	stored := c.entities[slotIndex]

	metricLiveEntities.Set(float64(len(c.entities)))
	metricArenaInUse.Set(float64(len(c.arena) - c.alloc.FreeLen()))

	return &stored, nil
}

// entityFromBaseline returns a fresh clone of classID's cached baseline
// entity, parsing and caching it first if this is the class's first
// CREATE. spec.md §8 invariant 6: baseline bytes are read at most once per
// class.
func (c *Container) entityFromBaseline(ctx *fielddecoder.Context, classID int32, serializer *flattenedserializers.FlattenedSerializer) (Entity, error) {
	if baseline, ok := c.baselineEntities[classID]; ok {
		return baseline.Clone(), nil
	}

	data, err := c.Baselines.MustGetData(classID)
	if err != nil {
		return Entity{}, errors.Wrapf(err, "class id %d", classID)
	}

	fresh := Entity{Schema: serializer}
	tmpBr := bitreader.New(data)
	if err := fresh.Parse(ctx, tmpBr, c.fieldPaths, c.arena, c.alloc); err != nil {
		return Entity{}, errors.Wrapf(err, "entities: failed to parse baseline for class %d", classID)
	}
	if err := tmpBr.IsOverflowed(); err != nil {
		return Entity{}, errors.Wrapf(err, "entities: baseline bit reader overflowed for class %d", classID)
	}

	c.baselineEntities[classID] = fresh.Clone()
	return fresh.Clone(), nil
}

// HandleUpdate implements spec.md §4.4's UPDATE dispatch.
func (c *Container) HandleUpdate(ctx *fielddecoder.Context, br *bitreader.BitReader, slotIndex int32) error {
	ent, ok := c.entities[slotIndex]
	if !ok {
		return errors.Wrapf(ErrUnknownSlot, "slot %d", slotIndex)
	}
	if err := ent.Parse(ctx, br, c.fieldPaths, c.arena, c.alloc); err != nil {
		return errors.Wrapf(err, "entities: failed to parse update for slot %d", slotIndex)
	}
	c.entities[slotIndex] = ent
	return nil
}

// HandleDelete implements spec.md §4.4's DELETE dispatch.
func (c *Container) HandleDelete(slotIndex int32) (Entity, error) {
	ent, ok := c.entities[slotIndex]
	if !ok {
		return Entity{}, errors.Wrapf(ErrUnknownSlot, "slot %d", slotIndex)
	}
	delete(c.entities, slotIndex)
	metricLiveEntities.Set(float64(len(c.entities)))
	return ent, nil
}

// Get returns the entity at slotIndex, if any.
func (c *Container) Get(slotIndex int32) (Entity, bool) {
	ent, ok := c.entities[slotIndex]
	return ent, ok
}

// Iter calls fn for every live entity, in unspecified order, stopping
// early if fn returns false.
func (c *Container) Iter(fn func(slotIndex int32, ent Entity) bool) {
	for slot, ent := range c.entities {
		if !fn(slot, ent) {
			return
		}
	}
}

// GetBaseline returns the cached baseline entity for classID, if any.
func (c *Container) GetBaseline(classID int32) (Entity, bool) {
	ent, ok := c.baselineEntities[classID]
	return ent, ok
}

// IterBaselines calls fn for every cached baseline entity.
func (c *Container) IterBaselines(fn func(classID int32, ent Entity) bool) {
	for class, ent := range c.baselineEntities {
		if !fn(class, ent) {
			return
		}
	}
}

// Clear empties both entity maps and resets the arena allocator to its
// initial free state. Arena capacity is preserved, per spec.md §3.
func (c *Container) Clear() {
	c.entities = make(map[int32]Entity)
	c.baselineEntities = make(map[int32]Entity)
	c.alloc.Reset()

	metricLiveEntities.Set(0)
	metricArenaInUse.Set(0)

	log.Debug("container cleared")
}

// IsEmpty reports whether the container holds no live or baseline entities.
func (c *Container) IsEmpty() bool {
	return len(c.entities) == 0 && len(c.baselineEntities) == 0
}
