package ecs

import "github.com/milk9111/fireworks/ecs/render"

type System interface {
	Update(w *World)
}

// Drawer is implemented by systems that also issue draw calls.
type Drawer interface {
	Draw(w *World, canvas render.Canvas)
}

type Scheduler struct {
	systems []System
	drawers []Drawer
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

// Add appends a system to the update order. Systems implementing Drawer are
// also drawn, in the same order.
func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
	if d, ok := system.(Drawer); ok {
		s.drawers = append(s.drawers, d)
	}
}

// AddDrawer registers a draw-only pass.
func (s *Scheduler) AddDrawer(d Drawer) {
	if d == nil {
		return
	}
	s.drawers = append(s.drawers, d)
}

func (s *Scheduler) Update(w *World) {
	for _, system := range s.systems {
		system.Update(w)
	}
}

func (s *Scheduler) Draw(w *World, canvas render.Canvas) {
	if canvas == nil {
		return
	}
	for _, d := range s.drawers {
		d.Draw(w, canvas)
	}
}
