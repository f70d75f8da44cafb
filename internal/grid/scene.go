package grid

import (
	"gridctl/internal/scene"
	"gridctl/pkg/logging"
)

const gridSubsystem = "Grid"

// Scene owns the rendered units of every cell, addressed by Coord.Key.
//
// A unit can be detached while its cell is edited: it leaves the stage (it is
// neither drawn nor hit-tested, and Find no longer sees it) but stays owned
// by the scene until it is destroyed.
type Scene struct {
	stage    *scene.Stage
	geom     Geometry
	detached map[string]*scene.Node
}

// NewScene wraps stage.
func NewScene(stage *scene.Stage, geom Geometry) *Scene {
	return &Scene{
		stage:    stage,
		geom:     geom,
		detached: make(map[string]*scene.Node),
	}
}

// Stage returns the underlying scene tree.
func (s *Scene) Stage() *scene.Stage {
	return s.stage
}

// Geometry returns the grid geometry.
func (s *Scene) Geometry() Geometry {
	return s.geom
}

// Populate creates and inserts a unit for every cell, with text supplied by
// textFor.
func (s *Scene) Populate(f *Factory, textFor func(Coord) string) {
	for col := 0; col < s.geom.Columns; col++ {
		for row := 0; row < s.geom.Rows; row++ {
			c := Coord{Column: col, Row: row}
			s.Insert(f.CreateCell(c, textFor(c)))
		}
	}
	logging.Debug(gridSubsystem, "Populated %d cells", s.stage.Len())
}

// Insert adds unit to the scene. A unit already stored under the same key,
// attached or detached, is destroyed first.
func (s *Scene) Insert(unit *scene.Node) {
	if old := s.stage.ChildByLabel(unit.Label); old != nil && old != unit {
		logging.Warn(gridSubsystem, "Replacing existing unit %s", unit.Label)
		old.Destroy()
	}
	if old, ok := s.detached[unit.Label]; ok {
		delete(s.detached, unit.Label)
		if old != unit {
			old.Destroy()
		}
	}
	s.stage.AddChild(unit)
}

// RemoveAndDestroy removes the unit stored under key, attached or detached,
// and releases it.
func (s *Scene) RemoveAndDestroy(key string) bool {
	if unit := s.stage.ChildByLabel(key); unit != nil {
		s.stage.RemoveChild(unit)
		unit.Destroy()
		return true
	}
	if unit, ok := s.detached[key]; ok {
		delete(s.detached, key)
		unit.Destroy()
		return true
	}
	return false
}

// Detach takes the unit stored under key off the stage without destroying it.
func (s *Scene) Detach(key string) bool {
	unit := s.stage.ChildByLabel(key)
	if unit == nil {
		return false
	}
	s.stage.RemoveChild(unit)
	s.detached[key] = unit
	return true
}

// IsDetached reports whether the unit under key is currently detached.
func (s *Scene) IsDetached(key string) bool {
	_, ok := s.detached[key]
	return ok
}

// Find returns the unit stored under key.
func (s *Scene) Find(key string) (*scene.Node, bool) {
	unit := s.stage.ChildByLabel(key)
	return unit, unit != nil
}

// Len returns the number of units on the stage.
func (s *Scene) Len() int {
	return s.stage.Len()
}
