package resolve

import (
	"fmt"
	"maps"
	"slices"
)

// NamedValue is a resolved numeric value with its canonical name.
type NamedValue struct {
	Name  string
	Value int64
}

// Enum is an enumeration with its resolved constants.
type Enum struct {
	Name     string
	Kind     EnumKind
	BitWidth int
	// Guard is the compilation guard of the extension that requires this
	// enumeration, empty for portable enumerations.
	Guard string
	// MaxEnumName is the synthesized sentinel constant name.
	MaxEnumName string

	values    map[string]int64
	order     []string
	canonical map[int64]string
	// pending maps a not yet bound base name to the aliases waiting on it.
	pending map[string][]string
}

// binding is a (name, value) pair queued for declaration.
type binding struct {
	name  string
	value int64
}

func newEnum(name string, kind EnumKind, bitWidth int, maxEnumName string) *Enum {
	return &Enum{
		Name:        name,
		Kind:        kind,
		BitWidth:    bitWidth,
		MaxEnumName: maxEnumName,
		values:      make(map[string]int64),
		canonical:   make(map[int64]string),
		pending:     make(map[string][]string),
	}
}

// AddValue declares a constant. Alias sources whose base is not bound yet are
// parked until it is.
func (e *Enum) AddValue(name string, src ConstantSource) error {
	switch s := src.(type) {
	case Literal:
		return e.declare(name, s.Value)
	case BitPosition:
		return e.declare(name, s.Value())
	case ExtensionOffset:
		return e.declare(name, s.Value())
	case AliasOf:
		base, ok := e.values[s.Name]
		if !ok {
			e.pending[s.Name] = append(e.pending[s.Name], name)

			return nil
		}

		return e.declare(name, base)
	default:
		return fmt.Errorf("%s.%s: unsupported constant source %T", e.Name, name, src)
	}
}

// declare binds name to value and flushes every alias that was waiting on
// it, transitively. The worklist is a stack so aliases bind depth-first in
// the order they were registered.
func (e *Enum) declare(name string, value int64) error {
	work := []binding{{name: name, value: value}}

	for len(work) > 0 {
		b := work[len(work)-1]
		work = work[:len(work)-1]

		if err := e.bind(b.name, b.value); err != nil {
			return err
		}

		waiting, ok := e.pending[b.name]
		if !ok {
			continue
		}

		delete(e.pending, b.name)

		for i := len(waiting) - 1; i >= 0; i-- {
			work = append(work, binding{name: waiting[i], value: b.value})
		}
	}

	return nil
}

// bind records one (name, value) pair and updates the canonical name of value.
func (e *Enum) bind(name string, value int64) error {
	if old, ok := e.values[name]; ok {
		if old == value {
			return nil
		}

		return fmt.Errorf("%w: %s.%s redeclared as %d, previously %d",
			ErrInconsistent, e.Name, name, value, old)
	}

	e.values[name] = value
	e.order = append(e.order, name)

	if cur, ok := e.canonical[value]; !ok || len(name) < len(cur) {
		e.canonical[value] = name
	}

	return nil
}

// Value returns the value bound to name.
func (e *Enum) Value(name string) (int64, bool) {
	v, ok := e.values[name]

	return v, ok
}

// CanonicalName returns the display name chosen for value.
func (e *Enum) CanonicalName(value int64) (string, bool) {
	name, ok := e.canonical[value]

	return name, ok
}

// Names returns every bound name, aliases included, in registration order.
func (e *Enum) Names() []string {
	return slices.Clone(e.order)
}

// Constants returns every bound name with its value in registration order.
func (e *Enum) Constants() []NamedValue {
	out := make([]NamedValue, 0, len(e.order))
	for _, name := range e.order {
		out = append(out, NamedValue{Name: name, Value: e.values[name]})
	}

	return out
}

// Values returns one entry per distinct value, ordered by value, each
// carrying its canonical name.
func (e *Enum) Values() []NamedValue {
	keys := slices.Sorted(maps.Keys(e.canonical))

	out := make([]NamedValue, 0, len(keys))
	for _, v := range keys {
		out = append(out, NamedValue{Name: e.canonical[v], Value: v})
	}

	return out
}

// AllBits returns the bitwise OR of every distinct value. It is only
// meaningful once resolution has finished.
func (e *Enum) AllBits() uint64 {
	var bits uint64
	for v := range e.canonical {
		bits |= uint64(v)
	}

	return bits
}

// Unresolved returns the aliases still waiting on a base that was never
// bound, sorted by name.
func (e *Enum) Unresolved() []string {
	var out []string
	for _, aliases := range e.pending {
		out = append(out, aliases...)
	}

	slices.Sort(out)

	return out
}

// PendingBase returns the base an unresolved alias is waiting on.
func (e *Enum) PendingBase(alias string) (string, bool) {
	for base, aliases := range e.pending {
		if slices.Contains(aliases, alias) {
			return base, true
		}
	}

	return "", false
}

// IsBitmask reports whether the enumeration is a bitmask.
func (e *Enum) IsBitmask() bool {
	return e.Kind == EnumKindBitmask
}
