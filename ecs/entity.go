package ecs

import "strconv"

// Entity is a handle packing a 32-bit id in the low bits and the id's
// generation in the high bits. Destroying an entity bumps the generation, so
// stale handles never match a recycled id.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

// String renders the id alone for a first-generation handle and "id@gen"
// once the id has been recycled. It keys log lines.
func (e Entity) String() string {
	id := strconv.FormatUint(uint64(e.id()), 10)
	if gen := e.generation(); gen > 0 {
		return id + "@" + strconv.FormatUint(uint64(gen), 10)
	}
	return id
}
