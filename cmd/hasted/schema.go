package main

import (
	"github.com/blukai/hasted/internal/entityclasses"
	"github.com/blukai/hasted/internal/fielddecoder"
	"github.com/blukai/hasted/internal/flattenedserializers"
)

// Real flattened-serializer construction reads a replay's network-schema
// messages (spec.md §1, §6): out of scope here. This CLI demonstrates the
// core against one small, hardcoded class so a fixture stream can be
// decoded end to end without a schema source.
const demoClassID int32 = 0
const demoClassBits = 4
const demoNetworkNameHash uint64 = 0x68617374 // "hast" as a stand-in hash

func buildDemoSchema() (*entityclasses.Classes, *flattenedserializers.Container, error) {
	classes := entityclasses.New(demoClassBits)
	classes.Add(&entityclasses.ClassInfo{
		ID:              demoClassID,
		NetworkName:     "CHastedDemoEntity",
		NetworkNameHash: demoNetworkNameHash,
	})

	serializers, err := flattenedserializers.NewContainer(64)
	if err != nil {
		return nil, nil, err
	}
	serializers.Add(&flattenedserializers.FlattenedSerializer{
		NetworkName:     "CHastedDemoEntity",
		NetworkNameHash: demoNetworkNameHash,
		Children: []*flattenedserializers.Field{
			{VarName: "m_iHealth", VarType: "int32", Decoder: fielddecoder.Int32},
			{VarName: "m_vecOrigin", VarType: "Vector", Decoder: fielddecoder.Vector3},
			{
				VarName:        "m_items",
				IsDynamicArray: true,
				Children: []*flattenedserializers.Field{
					{VarName: "m_itemID", VarType: "uint32", Decoder: fielddecoder.Uint32},
				},
			},
		},
	})

	return classes, serializers, nil
}
