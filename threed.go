package blinc

// Vec3 is a 3D vector used by camera, light and mesh-instance parameters.
type Vec3 struct {
	X, Y, Z float32
}

// Vec3Up is the +Y world up vector.
var Vec3Up = Vec3{Y: 1}

// CameraProjectionKind selects perspective or orthographic projection.
type CameraProjectionKind uint8

const (
	ProjectionPerspective CameraProjectionKind = iota
	ProjectionOrthographic
)

// CameraProjection holds projection parameters. Perspective uses FovY,
// Aspect, Near and Far; orthographic uses Left/Right/Bottom/Top, Near
// and Far.
type CameraProjection struct {
	Kind CameraProjectionKind

	FovY   float32
	Aspect float32

	Left, Right, Bottom, Top float32

	Near, Far float32
}

// Camera describes a 3D viewpoint recorded for downstream scene renderers.
type Camera struct {
	Position   Vec3
	Target     Vec3
	Up         Vec3
	Projection CameraProjection
}

// PerspectiveCamera returns a perspective camera at position looking at
// target with a vertical field of view in radians.
func PerspectiveCamera(position, target Vec3, fovY float32) Camera {
	return Camera{
		Position: position,
		Target:   target,
		Up:       Vec3Up,
		Projection: CameraProjection{
			Kind:   ProjectionPerspective,
			FovY:   fovY,
			Aspect: 16.0 / 9.0,
			Near:   0.1,
			Far:    1000,
		},
	}
}

// LightKind selects the light source model.
type LightKind uint8

const (
	LightDirectional LightKind = iota
	LightPoint
	LightSpot
)

// Light is a 3D light source. Directional lights use Direction; point
// lights use Position and Range; spot lights use both plus the cone angles.
type Light struct {
	Kind        LightKind
	Position    Vec3
	Direction   Vec3
	Color       Color
	Intensity   float32
	Range       float32
	InnerAngle  float32
	OuterAngle  float32
	CastShadows bool
}

// Environment describes image-based scene lighting and background.
type Environment struct {
	// HDRI is the path of an environment texture; empty means none.
	HDRI      string
	Intensity float32
	// Blur softens the background without affecting lighting.
	Blur float32
	// BackgroundColor is used when no HDRI is set; nil means transparent.
	BackgroundColor *Color
}

// MeshID is a handle to a mesh owned by an external 3D resource store.
type MeshID uint64

// MaterialID is a handle to a material owned by an external 3D resource
// store.
type MaterialID uint64

// MeshInstance positions one instance of a mesh for instanced draws.
type MeshInstance struct {
	Transform Mat4
	// Material overrides the mesh's default when non-zero.
	Material MaterialID
}

// LayerID identifies a layer in a scene graph. IDs are issued by the
// graph's monotonic generator and are unique for that graph's lifetime.
type LayerID uint64
