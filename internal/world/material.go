package world

import (
	"fmt"
	"image/color"
	"sort"

	"raycaster/internal/config"
)

// Material identifies what a solid tile is made of.
// It selects the wall texture and the minimap colour.
type Material int

const (
	MaterialNone Material = iota // Empty tile, nothing to draw
	MaterialTerracotta
	MaterialWeirdStone
	MaterialRedStone
	MaterialLeopard
	MaterialUnknown // Solid tile whose tag has no configured material
)

// firstDynamicMaterial is the first id handed to materials that exist only in yaml
const firstDynamicMaterial Material = 1000

var coreMaterials = map[Material]string{
	MaterialTerracotta: "terracotta",
	MaterialWeirdStone: "weird_stone",
	MaterialRedStone:   "red_stone",
	MaterialLeopard:    "leopard",
}

// UnknownMinimapColor is used for tags without a configured material
var UnknownMinimapColor = color.RGBA{0xff, 0x00, 0xff, 0xff}

// MaterialInfo is the resolved entry for one material
type MaterialInfo struct {
	Key          string
	Tag          Tag
	Texture      string
	MinimapColor color.RGBA
}

// MaterialTable maps grid tags to materials and materials to their
// texture and minimap colour. The raw tag stays a map-file detail.
type MaterialTable struct {
	tagToMaterial map[Tag]Material
	info          map[Material]MaterialInfo
	keyToMaterial map[string]Material
	nextDynamic   Material
}

// NewMaterialTable resolves yaml material definitions. Keys naming a core
// material keep its enum value; other keys get dynamic ids.
func NewMaterialTable(defs map[string]config.MaterialData) (*MaterialTable, error) {
	mt := &MaterialTable{
		tagToMaterial: make(map[Tag]Material),
		info:          make(map[Material]MaterialInfo),
		keyToMaterial: make(map[string]Material),
		nextDynamic:   firstDynamicMaterial,
	}

	for material, key := range coreMaterials {
		mt.keyToMaterial[key] = material
	}

	// Sorted so dynamic ids are stable between runs
	keys := make([]string, 0, len(defs))
	for key := range defs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		def := defs[key]
		if len(def.Letter) != 1 {
			return nil, fmt.Errorf("material %s: letter must be one character, got %q", key, def.Letter)
		}
		tag := Tag(def.Letter[0])
		if tag == TagEmpty || tag == TagStart {
			return nil, fmt.Errorf("material %s: letter %q is reserved", key, def.Letter)
		}
		if other, taken := mt.tagToMaterial[tag]; taken {
			return nil, fmt.Errorf("material %s: letter %q already used by %s", key, def.Letter, mt.info[other].Key)
		}

		material, known := mt.keyToMaterial[key]
		if !known {
			material = mt.nextDynamic
			mt.nextDynamic++
			mt.keyToMaterial[key] = material
		}

		texture := def.Texture
		if texture == "" {
			texture = key
		}

		mt.tagToMaterial[tag] = material
		mt.info[material] = MaterialInfo{
			Key:          key,
			Tag:          tag,
			Texture:      texture,
			MinimapColor: config.RGB(def.MinimapColor),
		}
	}

	return mt, nil
}

// Lookup resolves a grid tag. Solid tags without a definition resolve to
// MaterialUnknown rather than failing.
func (mt *MaterialTable) Lookup(tag Tag) Material {
	if tag == TagEmpty {
		return MaterialNone
	}
	if material, ok := mt.tagToMaterial[tag]; ok {
		return material
	}
	return MaterialUnknown
}

// Info returns the resolved entry for material. The second result is false
// for MaterialNone, MaterialUnknown and ids the table never issued.
func (mt *MaterialTable) Info(material Material) (MaterialInfo, bool) {
	info, ok := mt.info[material]
	return info, ok
}

// Texture returns the texture name for a tag. Unknown tags return "",
// which texture providers answer with their placeholder.
func (mt *MaterialTable) Texture(tag Tag) string {
	if info, ok := mt.info[mt.Lookup(tag)]; ok {
		return info.Texture
	}
	return ""
}

// MinimapColor returns the minimap colour for a tag; empty is black
func (mt *MaterialTable) MinimapColor(tag Tag, empty color.RGBA) color.RGBA {
	material := mt.Lookup(tag)
	if material == MaterialNone {
		return empty
	}
	if info, ok := mt.info[material]; ok {
		return info.MinimapColor
	}
	return UnknownMinimapColor
}

// Textures lists every texture name the table refers to
func (mt *MaterialTable) Textures() []string {
	names := make([]string, 0, len(mt.info))
	for _, info := range mt.info {
		names = append(names, info.Texture)
	}
	sort.Strings(names)
	return names
}
