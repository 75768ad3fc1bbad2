// Package grid holds the authoritative occupancy map of the habitat: structures,
// floors, placed objects and the pending construction/deconstruction jobs.
package grid

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"habitat/pkg/engine/world"
	"habitat/pkg/game/entities"
)

// Params are the tunables of the ledger
type Params struct {
	AsteroidMatter int `yaml:"asteroid_matter"`
}

// DefaultParams returns the stock ledger tunables
func DefaultParams() Params {
	return Params{AsteroidMatter: entities.AsteroidMatter}
}

// Ledger is the grid occupancy index. Every mutation is reflected immediately
// in the job lists and occupancy queries.
type Ledger struct {
	params Params

	structures map[world.Cell]*entities.Structure
	floors     mapset.Set[world.Cell]
	objects    map[world.Cell]*entities.Object

	// byKind keeps placement order so searches over objects are deterministic
	byKind map[entities.ObjectKind][]*entities.Object

	construction   []*entities.Job
	deconstruction []*entities.Job

	// dirty collects cells whose neighbour-aware visuals need refreshing
	dirty mapset.Set[world.Cell]
}

// New creates an empty ledger
func New(p Params) *Ledger {
	if p.AsteroidMatter <= 0 {
		p.AsteroidMatter = entities.AsteroidMatter
	}
	return &Ledger{
		params:     p,
		structures: make(map[world.Cell]*entities.Structure),
		floors:     mapset.New[world.Cell](),
		objects:    make(map[world.Cell]*entities.Object),
		byKind:     make(map[entities.ObjectKind][]*entities.Object),
		dirty:      mapset.New[world.Cell](),
	}
}

// PlaceStructure puts an unfinished structure on the cell and queues its
// construction job. It fails if the cell already holds a structure or object.
func (l *Ledger) PlaceStructure(cell world.Cell, kind entities.StructureKind) (*entities.Job, bool) {
	if _, ok := l.structures[cell]; ok {
		return nil, false
	}
	if _, ok := l.objects[cell]; ok {
		return nil, false
	}
	s := entities.NewStructure(kind, cell)
	l.structures[cell] = s
	job := &entities.Job{Kind: entities.JobConstruct, Cell: cell, Structure: s}
	l.construction = append(l.construction, job)
	l.touch(cell)
	return job, true
}

// PlaceFloor lays a floor tile. Floors coexist with structures and objects.
func (l *Ledger) PlaceFloor(cell world.Cell) bool {
	if l.floors.Has(cell) {
		return false
	}
	l.floors.Put(cell)
	l.touch(cell)
	return true
}

// PlaceObject puts a freestanding object on the cell. It fails if the cell
// holds a structure or another object.
func (l *Ledger) PlaceObject(cell world.Cell, kind entities.ObjectKind) (*entities.Object, bool) {
	if _, ok := l.structures[cell]; ok {
		return nil, false
	}
	if _, ok := l.objects[cell]; ok {
		return nil, false
	}
	o := entities.NewObject(kind, cell)
	if kind == entities.ObjectAsteroid {
		o.Matter = l.params.AsteroidMatter
	}
	l.objects[cell] = o
	l.byKind[kind] = append(l.byKind[kind], o)
	l.touch(cell)
	return o, true
}

// MarkDeconstruct queues a deconstruction job for whatever can be torn down at
// the cell: a structure first, then a deconstructable object, then a bare floor.
// It fails if nothing qualifies or the cell is already marked.
func (l *Ledger) MarkDeconstruct(cell world.Cell) (*entities.Job, bool) {
	for _, j := range l.deconstruction {
		if j.Cell == cell {
			return nil, false
		}
	}
	target := false
	if _, ok := l.structures[cell]; ok {
		target = true
	} else if o, ok := l.objects[cell]; ok {
		target = entities.ObjectTypes[o.Kind].Deconstructable
	} else {
		target = l.floors.Has(cell)
	}
	if !target {
		return nil, false
	}
	job := &entities.Job{Kind: entities.JobDeconstruct, Cell: cell}
	l.deconstruction = append(l.deconstruction, job)
	l.touch(cell)
	return job, true
}

// RemoveAt clears every structure, floor and object at the cell and drops any
// job that targets it.
func (l *Ledger) RemoveAt(cell world.Cell) {
	delete(l.structures, cell)
	l.floors.Remove(cell)
	if o, ok := l.objects[cell]; ok {
		l.removeObject(o)
	}
	l.construction = dropJobsAt(l.construction, cell)
	l.deconstruction = dropJobsAt(l.deconstruction, cell)
	l.touch(cell)
}

// CompleteJob finishes a pending job. Construction marks the structure built;
// deconstruction removes the target. Returns false if the job is no longer pending.
func (l *Ledger) CompleteJob(job *entities.Job) bool {
	if job == nil || job.Complete {
		return false
	}
	switch job.Kind {
	case entities.JobConstruct:
		idx := indexOf(l.construction, job)
		if idx < 0 {
			return false
		}
		job.Complete = true
		if job.Structure != nil {
			job.Structure.Complete = true
		}
		l.construction = append(l.construction[:idx], l.construction[idx+1:]...)
		l.touch(job.Cell)
	case entities.JobDeconstruct:
		if indexOf(l.deconstruction, job) < 0 {
			return false
		}
		job.Complete = true
		l.RemoveAt(job.Cell)
	default:
		return false
	}
	return true
}

// IsBlocked returns true if agents cannot stand on the cell: any unfinished
// structure, or a finished wall. Finished doors and airlocks are walkable.
func (l *Ledger) IsBlocked(cell world.Cell) bool {
	return l.structures[cell].Blocks()
}

// IsSeal returns true if the cell stops atmosphere flow.
func (l *Ledger) IsSeal(cell world.Cell) bool {
	return l.structures[cell].Seals()
}

// IsOccupied returns true if anything at all has been placed on the cell.
func (l *Ledger) IsOccupied(cell world.Cell) bool {
	if _, ok := l.structures[cell]; ok {
		return true
	}
	if _, ok := l.objects[cell]; ok {
		return true
	}
	return l.floors.Has(cell)
}

// HasFloor returns true if the cell has a floor
func (l *Ledger) HasFloor(cell world.Cell) bool {
	return l.floors.Has(cell)
}

// StructureAt returns the structure on the cell, or nil
func (l *Ledger) StructureAt(cell world.Cell) *entities.Structure {
	return l.structures[cell]
}

// ObjectAt returns the object on the cell, or nil
func (l *Ledger) ObjectAt(cell world.Cell) *entities.Object {
	return l.objects[cell]
}

// Objects returns the objects of a kind in placement order
func (l *Ledger) Objects(kind entities.ObjectKind) []*entities.Object {
	objs := l.byKind[kind]
	out := make([]*entities.Object, len(objs))
	copy(out, objs)
	return out
}

// CountObjects returns how many objects of a kind are placed
func (l *Ledger) CountObjects(kind entities.ObjectKind) int {
	return len(l.byKind[kind])
}

// Extract mines up to amount matter from the asteroid on the cell and returns
// what was taken. A depleted asteroid is removed; the floor under it stays.
func (l *Ledger) Extract(cell world.Cell, amount int) int {
	o, ok := l.objects[cell]
	if !ok || o.Kind != entities.ObjectAsteroid || amount <= 0 {
		return 0
	}
	taken := amount
	if o.Matter < taken {
		taken = o.Matter
	}
	o.Matter -= taken
	if o.Depleted() {
		l.removeObject(o)
		l.touch(cell)
	}
	return taken
}

// ConstructionJobs returns the pending construction jobs in creation order
func (l *Ledger) ConstructionJobs() []*entities.Job {
	out := make([]*entities.Job, len(l.construction))
	copy(out, l.construction)
	return out
}

// DeconstructionJobs returns the pending deconstruction jobs in creation order
func (l *Ledger) DeconstructionJobs() []*entities.Job {
	out := make([]*entities.Job, len(l.deconstruction))
	copy(out, l.deconstruction)
	return out
}

// PendingJobs returns construction jobs followed by deconstruction jobs
func (l *Ledger) PendingJobs() []*entities.Job {
	out := make([]*entities.Job, 0, len(l.construction)+len(l.deconstruction))
	out = append(out, l.construction...)
	return append(out, l.deconstruction...)
}

// IsPending returns true if the job is still queued
func (l *Ledger) IsPending(job *entities.Job) bool {
	if job == nil || job.Complete {
		return false
	}
	if job.Kind == entities.JobConstruct {
		return indexOf(l.construction, job) >= 0
	}
	return indexOf(l.deconstruction, job) >= 0
}

// DeconstructMarked returns true if a deconstruction job targets the cell
func (l *Ledger) DeconstructMarked(cell world.Cell) bool {
	for _, j := range l.deconstruction {
		if j.Cell == cell {
			return true
		}
	}
	return false
}

// Connections returns which of the 4 neighbours hold a structure, for
// wall segments that join their neighbours.
func (l *Ledger) Connections(cell world.Cell) world.Connections {
	var mask world.Connections
	for _, d := range world.AllDirections() {
		if _, ok := l.structures[cell.Step(d)]; ok {
			mask = mask.With(d)
		}
	}
	return mask
}

// DrainDirty returns the cells changed since the last call, sorted, and resets the set.
func (l *Ledger) DrainDirty() []world.Cell {
	out := make([]world.Cell, 0, l.dirty.Size())
	l.dirty.Each(func(c world.Cell) {
		out = append(out, c)
	})
	l.dirty = mapset.New[world.Cell]()
	world.SortCells(out)
	return out
}

// Structures returns every structure sorted by cell
func (l *Ledger) Structures() []*entities.Structure {
	out := make([]*entities.Structure, 0, len(l.structures))
	for _, s := range l.structures {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Cell.Less(out[j].Cell) })
	return out
}

// Floors returns every floored cell, sorted
func (l *Ledger) Floors() []world.Cell {
	out := make([]world.Cell, 0, l.floors.Size())
	l.floors.Each(func(c world.Cell) {
		out = append(out, c)
	})
	world.SortCells(out)
	return out
}

// AllObjects returns every placed object sorted by cell
func (l *Ledger) AllObjects() []*entities.Object {
	out := make([]*entities.Object, 0, len(l.objects))
	for _, o := range l.objects {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Cell.Less(out[j].Cell) })
	return out
}

// touch marks the cell and its neighbours for a visual refresh
func (l *Ledger) touch(cell world.Cell) {
	l.dirty.Put(cell)
	for _, n := range cell.Neighbors() {
		l.dirty.Put(n)
	}
}

func (l *Ledger) removeObject(o *entities.Object) {
	delete(l.objects, o.Cell)
	list := l.byKind[o.Kind]
	for i, x := range list {
		if x == o {
			l.byKind[o.Kind] = append(list[:i], list[i+1:]...)
			break
		}
	}
}

func dropJobsAt(jobs []*entities.Job, cell world.Cell) []*entities.Job {
	kept := jobs[:0]
	for _, j := range jobs {
		if j.Cell != cell {
			kept = append(kept, j)
		}
	}
	for i := len(kept); i < len(jobs); i++ {
		jobs[i] = nil
	}
	return kept
}

func indexOf(jobs []*entities.Job, job *entities.Job) int {
	for i, j := range jobs {
		if j == job {
			return i
		}
	}
	return -1
}
