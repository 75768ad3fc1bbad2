// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"habitat/pkg/engine/world"
	"habitat/pkg/game/behavior"
	"habitat/pkg/game/colonist"
	"habitat/pkg/game/entities"
	"habitat/pkg/game/renderer"
	"habitat/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// dumpMargin is the number of empty cells drawn around the occupied area
const dumpMargin = 1

// cellSymbol returns the single-character symbol for a cell with no colonist overlay.
func cellSymbol(cell world.Cell, structures map[world.Cell]state.StructureView, objects map[world.Cell]state.ObjectView, floors map[world.Cell]bool, marked map[world.Cell]bool) rune {
	if marked[cell] {
		return 'X'
	}
	if s, ok := structures[cell]; ok {
		if !s.Complete {
			return '+'
		}
		switch s.Kind {
		case entities.StructureDoor:
			return 'D'
		case entities.StructureAirlock:
			return 'L'
		default:
			return '#'
		}
	}
	if o, ok := objects[cell]; ok {
		return entities.ObjectTypes[o.Kind].Symbol
	}
	if floors[cell] {
		return '.'
	}
	return ' '
}

// writeMapGrid writes the occupied area of the snapshot with colonists overlaid.
func writeMapGrid(w io.Writer, snap state.Snapshot) {
	lo, hi, ok := snap.Bounds()
	if !ok {
		fmt.Fprintln(w, "(empty)")
		return
	}
	structures := make(map[world.Cell]state.StructureView)
	for _, s := range snap.Structures {
		structures[s.Cell] = s
	}
	objects := make(map[world.Cell]state.ObjectView)
	for _, o := range snap.Objects {
		objects[o.Cell] = o
	}
	floors := make(map[world.Cell]bool)
	for _, f := range snap.Floors {
		floors[f] = true
	}
	marked := renderer.Marked(snap)

	for z := lo.Z - dumpMargin*world.Pitch; z <= hi.Z+dumpMargin*world.Pitch; z += world.Pitch {
		for x := lo.X - dumpMargin*world.Pitch; x <= hi.X+dumpMargin*world.Pitch; x += world.Pitch {
			cell := world.Cell{X: x, Z: z}
			if a, ok := snap.AgentAt(cell); ok {
				if a.Emotion == colonist.EmotionDeceased {
					fmt.Fprint(w, "x")
				} else {
					fmt.Fprint(w, "@")
				}
				continue
			}
			fmt.Fprintf(w, "%c", cellSymbol(cell, structures, objects, floors, marked))
		}
		fmt.Fprintln(w)
	}
}

// stateCounts lists how many colonists are in each state, skipping empty states
func stateCounts(snap state.Snapshot) string {
	counts := make(map[behavior.State]int)
	for _, a := range snap.Agents {
		counts[a.State]++
	}
	out := ""
	for _, st := range behavior.AllStates() {
		if n := counts[st]; n > 0 {
			out += fmt.Sprintf(" %s=%d", st, n)
		}
	}
	if out == "" {
		return " (none)"
	}
	return out
}

// DumpSnapshot writes a full debug dump: metadata, legend, map, and detailed
// colonist/structure/object/job lists.
// Format is human- and LLM-readable (sections, key: value, consistent structure).
func DumpSnapshot(w io.Writer, snap state.Snapshot) {
	lo, hi, _ := snap.Bounds()

	// --- Metadata ---
	fmt.Fprintln(w, "=== COLONY DUMP DEBUG (layout, atmosphere, colonists) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "elapsed: %.2f\n", snap.Elapsed)
	fmt.Fprintf(w, "coordinate_system: x,z world units (cell centers, pitch %d, -z = north)\n", world.Pitch)
	fmt.Fprintf(w, "bounds: %s..%s\n", lo, hi)
	fmt.Fprintf(w, "matter: %.1f\n", snap.Resources.Matter)
	fmt.Fprintf(w, "energy: %.1f/%.1f\n", snap.Resources.Energy, snap.Resources.MaxEnergy)
	fmt.Fprintf(w, "oxygen: %.1f/%.1f\n", snap.Resources.Oxygen, snap.Resources.MaxOxygen)
	fmt.Fprintf(w, "credits: %.1f\n", snap.Resources.Credits)
	fmt.Fprintf(w, "powered: %v\n", snap.Powered)
	fmt.Fprintf(w, "sealed_cells: %d\n", len(snap.Sealed))
	fmt.Fprintf(w, "states:%s\n", stateCounts(snap))
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintln(w, ". = floor  # = wall  D = door  L = airlock  + = blueprint  X = marked for deconstruction  f = food  w = water  o = O2 generator  s = solar  k = storage  b = bed  l = lounge  A = asteroid  @ = colonist  x = dead colonist")
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map ---")
	writeMapGrid(w, snap)
	fmt.Fprintln(w, "")

	// --- Colonists ---
	fmt.Fprintln(w, "Colonists:")
	for _, a := range snap.Agents {
		fmt.Fprintf(w, "  id: %s name: %q role: %s trait: %s cell: %s state: %s en_route: %v emotion: %s happiness: %.1f suit: %.1f wearing_suit: %v cargo: %d grace: %v\n",
			a.ID, a.Name, a.Role, a.Trait, a.Cell, a.State, a.EnRoute, a.Emotion, a.Happiness, a.SuitOxygen, a.WearingSuit, a.Cargo, a.Grace)
		fmt.Fprint(w, "   ")
		for _, k := range colonist.AllNeeds() {
			fmt.Fprintf(w, " %s: %.1f", k, a.Needs[k])
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "")

	// --- Structures ---
	fmt.Fprintln(w, "Structures:")
	for _, s := range snap.Structures {
		fmt.Fprintf(w, "  cell: %s kind: %s complete: %v connections: %04b\n", s.Cell, s.Kind, s.Complete, s.Connections)
	}
	fmt.Fprintln(w, "")

	// --- Objects ---
	fmt.Fprintln(w, "Objects:")
	for _, o := range snap.Objects {
		if o.Kind == entities.ObjectAsteroid {
			fmt.Fprintf(w, "  cell: %s kind: %s matter: %d\n", o.Cell, o.Kind, o.Matter)
			continue
		}
		fmt.Fprintf(w, "  cell: %s kind: %s\n", o.Cell, o.Kind)
	}
	fmt.Fprintln(w, "")

	// --- Jobs ---
	fmt.Fprintln(w, "Pending jobs:")
	if len(snap.Jobs) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, j := range snap.Jobs {
		fmt.Fprintf(w, "  cell: %s kind: %s\n", j.Cell, j.Kind)
	}
	fmt.Fprintln(w, "")

	// --- Messages ---
	fmt.Fprintln(w, "Messages:")
	for _, m := range snap.Messages {
		fmt.Fprintf(w, "  %q\n", m)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "=== END COLONY DUMP ===")
}

// DumpToFile writes DumpSnapshot to path, or map.txt in the working
// directory when path is empty, and returns the absolute path written.
func DumpToFile(path string, snap state.Snapshot) (string, error) {
	if path == "" {
		path = mapDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	DumpSnapshot(f, snap)

	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
