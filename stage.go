package glshader

import "fmt"

// Stage identifies one unit of a graphics pipeline.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
	StageGeometry
)

var stageNames = [...]string{
	StageVertex:   "VERTEX",
	StageFragment: "FRAGMENT",
	StageGeometry: "GEOMETRY",
}

// String returns the upper-case stage name used in diagnostics.
func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("Stage(%d)", int(s))
	}
	return stageNames[s]
}

// Valid reports whether s is one of the defined stages.
func (s Stage) Valid() bool {
	return s >= StageVertex && s <= StageGeometry
}
