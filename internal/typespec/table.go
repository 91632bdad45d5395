package typespec

// Class is the numeric class of a primitive.
type Class string

const (
	ClassInt   Class = "int"
	ClassUint  Class = "uint"
	ClassFloat Class = "float"
)

// PointerWidth is the Width recorded for int and uint. Their size depends on
// the target and is resolved at build time.
const PointerWidth = 0

// Primitive is one row of the registration table.
type Primitive struct {
	Name       string `json:"name" yaml:"name"`
	Underlying string `json:"underlying" yaml:"underlying"`
	Class      Class  `json:"class" yaml:"class"`
	Width      int    `json:"width" yaml:"width"` // PointerWidth for int/uint
	Pair       string `json:"pair,omitempty" yaml:"pair,omitempty"`
}

// IsPointerWidth reports whether the primitive's width follows the target.
func (p Primitive) IsPointerWidth() bool {
	return p.Width == PointerWidth
}

// Table is the compiled registration table.
type Table struct {
	Package    string      `json:"package" yaml:"package"`
	Primitives []Primitive `json:"primitives" yaml:"primitives"`
}

// Lookup returns the primitive with the given name.
func (t *Table) Lookup(name string) (Primitive, bool) {
	for _, p := range t.Primitives {
		if p.Name == name {
			return p, true
		}
	}
	return Primitive{}, false
}
