package numtrait

import (
	"strings"
)

// Kind identifies a registered type. The Kind constants are generated in
// registration order; KindInvalid is the zero value.
type Kind int

// Described is implemented by every registered type.
type Described interface {
	Kind() Kind
}

// Cap is a set of capabilities held by a registered type.
type Cap uint16

const (
	CapFloat Cap = 1 << iota
	CapInteger
	CapSigned
	CapUnsigned
	CapAddSign
	CapDropSign
	CapArithmeticShr
	CapLogicalShr
)

var capNames = []string{
	"Float",
	"Integer",
	"Signed",
	"Unsigned",
	"AddSign",
	"DropSign",
	"ArithmeticShr",
	"LogicalShr",
}

// Has reports whether c contains every capability in other.
func (c Cap) Has(other Cap) bool {
	return c&other == other
}

// Names returns the names of the capabilities in c, in declaration order.
func (c Cap) Names() []string {
	var names []string
	for i, name := range capNames {
		if c&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return names
}

// String returns the capability names joined by '|'.
func (c Cap) String() string {
	if c == 0 {
		return "none"
	}
	return strings.Join(c.Names(), "|")
}

// derive adds the capabilities implied by the declared ones. Shift semantics
// follow from Integer plus polarity and are never declared.
func derive(c Cap) Cap {
	if c.Has(CapInteger | CapSigned) {
		c |= CapArithmeticShr
	}
	if c.Has(CapInteger | CapUnsigned) {
		c |= CapLogicalShr
	}
	return c
}

// Info describes a registered type.
type Info struct {
	Kind       Kind   `json:"kind"`
	Name       string `json:"name"`
	Underlying string `json:"underlying"`
	Width      int    `json:"width"`
	Caps       Cap    `json:"caps"`

	// Counterpart is the same-width type of the opposite polarity, or
	// KindInvalid for floats.
	Counterpart Kind `json:"counterpart,omitempty"`
}

// Info returns the descriptor for k.
func (k Kind) Info() (Info, bool) {
	if k <= KindInvalid || int(k) > len(registry) {
		return Info{}, false
	}
	info := registry[k-1]
	info.Caps = derive(info.Caps)
	return info, true
}

// String returns the registered type name, or "invalid".
func (k Kind) String() string {
	if info, ok := k.Info(); ok {
		return info.Name
	}
	return "invalid"
}

// Registered returns every registered type in registration order.
func Registered() []Info {
	infos := make([]Info, 0, len(registry))
	for _, info := range registry {
		info.Caps = derive(info.Caps)
		infos = append(infos, info)
	}
	return infos
}

// Lookup returns the descriptor for a registered type name ("I32") or
// builtin name ("int32").
func Lookup(name string) (Info, bool) {
	for _, info := range Registered() {
		if info.Name == name || info.Underlying == name {
			return info, true
		}
	}
	return Info{}, false
}

// InfoOf returns the descriptor of T.
func InfoOf[T Described]() Info {
	var z T
	info, _ := z.Kind().Info()
	return info
}

// MarshalText encodes k as its type name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// MarshalText encodes c as its '|'-joined names.
func (c Cap) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
