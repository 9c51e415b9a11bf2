package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Floor is the huge yellow sphere the other spheres rest above
var Floor = NewSphere(core.NewVec3(0, -5001, 0), 5000, core.NewVec3(255, 255, 0), 1000, 0.20)

// DefaultSpheres returns the spheres of the reference scene in declaration order
func DefaultSpheres() []Sphere {
	return []Sphere{
		NewSphere(core.NewVec3(0, -1, 3.5), 1.0, core.NewVec3(255, 0, 0), 60, 0.15),        // red
		NewSphere(core.NewVec3(2, 0, 5.0), 1.0, core.NewVec3(0, 0, 255), 700, 0.35),        // blue
		NewSphere(core.NewVec3(-2, 0.5, 4.5), 1.0, core.NewVec3(0, 255, 0), 400, 0.3),      // green
		Floor,                                                                              // yellow
		NewSphere(core.NewVec3(0, 3.0, 14.0), 2.0, core.NewVec3(255, 255, 255), 100, 0.55), // white
	}
}

// DefaultLights returns the lights of the reference scene
func DefaultLights() []Light {
	return []Light{
		NewAmbientLight(0.2),
		NewPointLight(0.6, core.NewVec3(2, 1, 0)),
		NewDirectionalLight(0.25, core.NewVec3(1, 4, 4)),
	}
}

// NewDefaultScene creates the reference scene: four spheres above a yellow floor,
// lit by an ambient, a point and a directional light
func NewDefaultScene() *Scene {
	return MustNew("default", DefaultSpheres(), DefaultLights())
}

// NewAmbientScene creates the reference spheres under ambient light only, so every
// lit surface shows its flat color scaled by the ambient intensity
func NewAmbientScene() *Scene {
	return MustNew("ambient", DefaultSpheres(), []Light{NewAmbientLight(0.2)})
}

// NewMirrorScene creates a row of strongly reflective spheres over the floor
func NewMirrorScene() *Scene {
	spheres := []Sphere{
		NewSphere(core.NewVec3(-2.2, 0, 5), 1.0, core.NewVec3(200, 200, 220), 1000, 0.8),
		NewSphere(core.NewVec3(0, 0, 6), 1.0, core.NewVec3(255, 80, 40), 500, 0.5),
		NewSphere(core.NewVec3(2.2, 0, 5), 1.0, core.NewVec3(40, 120, 255), 1000, 0.8),
		Floor,
	}
	lights := []Light{
		NewAmbientLight(0.15),
		NewPointLight(0.65, core.NewVec3(0, 4, 2)),
		NewDirectionalLight(0.2, core.NewVec3(-1, 3, -2)),
	}
	return MustNew("mirror", spheres, lights)
}
