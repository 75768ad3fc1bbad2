package entities

import "habitat/pkg/engine/world"

// ObjectKind represents the freestanding things that can be placed on a cell
type ObjectKind int

const (
	ObjectFood      ObjectKind = iota // Food dispenser
	ObjectWater                       // Water dispenser
	ObjectO2                          // Oxygen generator
	ObjectSolar                       // Solar panel
	ObjectStorage                     // Storage pad for mined matter
	ObjectBed                         // Bed
	ObjectLounge                      // Lounge
	ObjectAsteroid                    // Asteroid deposit
)

// AsteroidMatter is the matter a freshly placed asteroid holds
const AsteroidMatter = 500

// ObjectInfo contains display and rule information for each object kind
type ObjectInfo struct {
	Name   string
	Icon   string
	Symbol rune // Single ASCII symbol for dumps

	// Deconstructable is false for things players cannot tear down (asteroids are mined instead)
	Deconstructable bool
}

// ObjectTypes maps object kinds to their information
var ObjectTypes = map[ObjectKind]ObjectInfo{
	ObjectFood:     {Name: "Food Dispenser", Icon: "♣", Symbol: 'f', Deconstructable: true},
	ObjectWater:    {Name: "Water Dispenser", Icon: "≈", Symbol: 'w', Deconstructable: true},
	ObjectO2:       {Name: "O2 Generator", Icon: "◆", Symbol: 'o', Deconstructable: true},
	ObjectSolar:    {Name: "Solar Panel", Icon: "☼", Symbol: 's', Deconstructable: true},
	ObjectStorage:  {Name: "Storage Pad", Icon: "▣", Symbol: 'k', Deconstructable: true},
	ObjectBed:      {Name: "Bed", Icon: "▬", Symbol: 'b', Deconstructable: true},
	ObjectLounge:   {Name: "Lounge", Icon: "♫", Symbol: 'l', Deconstructable: true},
	ObjectAsteroid: {Name: "Asteroid", Icon: "●", Symbol: 'A'},
}

func (k ObjectKind) String() string {
	if info, ok := ObjectTypes[k]; ok {
		return info.Name
	}
	return "Unknown"
}

// Object is a placed object occupying one cell
type Object struct {
	Kind ObjectKind
	Cell world.Cell

	// Matter is the remaining matter of an asteroid; zero for other kinds
	Matter int
}

// NewObject creates an object of the given kind at cell
func NewObject(kind ObjectKind, cell world.Cell) *Object {
	o := &Object{Kind: kind, Cell: cell}
	if kind == ObjectAsteroid {
		o.Matter = AsteroidMatter
	}
	return o
}

// Depleted returns true for an asteroid with no matter left
func (o *Object) Depleted() bool {
	return o.Kind == ObjectAsteroid && o.Matter <= 0
}
