package entities

import (
	"github.com/pkg/errors"

	"github.com/blukai/hasted/internal/bitreader"
	"github.com/blukai/hasted/internal/fielddecoder"
	"github.com/blukai/hasted/internal/fieldpath"
	"github.com/blukai/hasted/internal/flattenedserializers"
	"github.com/blukai/hasted/internal/rangealloc"
)

// ErrSchemaResolution is returned when a field path walks off the end of
// an entity's schema tree (a component indexes past the end of Children).
var ErrSchemaResolution = errors.New("entities: field path does not resolve against schema")

// Entity binds a schema to a field-state root. Its State subtree lives in
// the container's shared Arena; per spec.md §3, an Entity is therefore not
// self-contained, and copying it (Clone) shares arena ranges with the
// original rather than duplicating them.
type Entity struct {
	Index  int32
	Schema *flattenedserializers.FlattenedSerializer
	State  FieldState
}

// Clone returns a shallow copy of e. The copy's State.children range, if
// any, still points at the same Arena slots as e's — spec.md §4.4's
// "instance-baseline cloning" invariant: the clone and the original share
// arena ranges, and only one of the two may be mutated afterwards.
func (e Entity) Clone() Entity {
	return e
}

// Parse is spec.md §4.3's Entity.parse: read a batch of field paths,
// resolve each against the schema, decode its payload, and write it into
// the field-state tree, in stream order.
func (e *Entity) Parse(ctx *fielddecoder.Context, br *bitreader.BitReader, pathScratch []fieldpath.FieldPath, arena Arena, alloc *rangealloc.Allocator) error {
	count, err := fieldpath.ReadFieldPaths(br, pathScratch)
	if err != nil {
		return errors.Wrap(err, "entities: failed to read field paths")
	}

	for i := 0; i < count; i++ {
		fp := &pathScratch[i]

		field, err := resolveField(e.Schema.Children, fp)
		if err != nil {
			return err
		}

		value, err := field.Decoder.Decode(ctx, br)
		if err != nil {
			return errors.Wrap(err, "entities: failed to decode field value")
		}

		if err := Set(&e.State, fp, value, arena, alloc); err != nil {
			return errors.Wrap(err, "entities: failed to set field state")
		}
	}

	return nil
}

// resolveField walks fp against a schema's top-level children, per
// spec.md §4.3's dynamic-array descent rule: a dynamic-array field
// consumes its single template child for every subsequent component,
// ignoring the path's numeric index for schema-resolution purposes.
func resolveField(roots []*flattenedserializers.Field, fp *fieldpath.FieldPath) (*flattenedserializers.Field, error) {
	first := int(fp.Get(0))
	if first < 0 || first >= len(roots) {
		return nil, ErrSchemaResolution
	}
	field := roots[first]

	for k := 1; k <= fp.Last(); k++ {
		if field.IsDynamicArray {
			if len(field.Children) == 0 {
				return nil, ErrSchemaResolution
			}
			field = field.Children[0]
			continue
		}
		idx := int(fp.Get(k))
		if idx < 0 || idx >= len(field.Children) {
			return nil, ErrSchemaResolution
		}
		field = field.Children[idx]
	}

	return field, nil
}
