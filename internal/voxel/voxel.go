package voxel

const (
	// Precision subdivides each world unit into Precision voxels per axis.
	Precision = 1
	// Size is the world-space edge length of a single voxel.
	Size = 1.0 / float32(Precision)
)

// Type identifies the material of a voxel.
type Type uint8

const (
	Air Type = iota
	Stone
	Dirt
	Grass
)

// IsSolid reports whether the type occupies space. Everything except Air does.
func (t Type) IsSolid() bool {
	return t != Air
}

func (t Type) String() string {
	switch t {
	case Air:
		return "air"
	case Stone:
		return "stone"
	case Dirt:
		return "dirt"
	case Grass:
		return "grass"
	default:
		return "unknown"
	}
}

// Voxel is a single cell of the world grid. Voxels are plain values embedded
// in a chunk's dense array; they carry no identity beyond their type.
type Voxel struct {
	Type Type
}

// New returns a voxel of the given type.
func New(t Type) Voxel {
	return Voxel{Type: t}
}

// IsSolid reports whether the voxel occupies space.
func (v Voxel) IsSolid() bool {
	return v.Type.IsSolid()
}
