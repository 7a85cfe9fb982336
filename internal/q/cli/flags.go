package cli

import (
	"fmt"
	"sort"
	"strconv"
)

type flagKind uint8

const (
	flagBool flagKind = iota + 1
	flagString
	flagInt
)

// FlagSet is a typed flag registry. Each flag binds a pointer at
// registration time and records whether the user set it explicitly, so
// callers can layer flag values over configuration-file values.
type FlagSet struct {
	byLong  map[string]*flagDef
	byShort map[rune]*flagDef
}

type flagDef struct {
	name      string
	shorthand rune
	usage     string
	kind      flagKind
	set       bool

	boolPtr   *bool
	stringPtr *string
	intPtr    *int
}

func newFlagSet() *FlagSet {
	return &FlagSet{
		byLong:  map[string]*flagDef{},
		byShort: map[rune]*flagDef{},
	}
}

func (fs *FlagSet) Bool(name string, shorthand rune, def bool, usage string) *bool {
	ptr := new(bool)
	*ptr = def
	fs.add(&flagDef{name: name, shorthand: shorthand, usage: usage, kind: flagBool, boolPtr: ptr})
	return ptr
}

func (fs *FlagSet) String(name string, shorthand rune, def string, usage string) *string {
	ptr := new(string)
	*ptr = def
	fs.add(&flagDef{name: name, shorthand: shorthand, usage: usage, kind: flagString, stringPtr: ptr})
	return ptr
}

func (fs *FlagSet) Int(name string, shorthand rune, def int, usage string) *int {
	ptr := new(int)
	*ptr = def
	fs.add(&flagDef{name: name, shorthand: shorthand, usage: usage, kind: flagInt, intPtr: ptr})
	return ptr
}

// Changed reports whether the named flag was set explicitly on the command
// line during the last parse.
func (fs *FlagSet) Changed(name string) bool {
	def, ok := fs.byLong[name]
	return ok && def.set
}

func (fs *FlagSet) add(def *flagDef) {
	if def.name == "" {
		panic("cli: flag name must be non-empty")
	}
	if _, ok := fs.byLong[def.name]; ok {
		panic("cli: duplicate flag: --" + def.name)
	}
	fs.byLong[def.name] = def
	if def.shorthand != 0 {
		if _, ok := fs.byShort[def.shorthand]; ok {
			panic(fmt.Sprintf("cli: duplicate shorthand flag: -%c", def.shorthand))
		}
		fs.byShort[def.shorthand] = def
	}
}

func (fs *FlagSet) lookup(name string, shorthand rune) *flagDef {
	if name != "" {
		return fs.byLong[name]
	}
	return fs.byShort[shorthand]
}

// parseAndSet resolves one flag token against the set and assigns its value.
// It returns whether the next argv token was consumed as the flag's value.
func (fs *FlagSet) parseAndSet(token string, hasDashDash bool, name string, shorthand rune, value *string, nextValue *string) (bool, error) {
	def := fs.lookup(name, shorthand)
	if def == nil {
		return false, usageErrorf("unknown flag: %s", token)
	}

	consumeNext := false
	var raw string
	if value != nil {
		raw = *value
	} else if def.kind == flagBool {
		// A bool flag only consumes the next token when it parses as a bool
		// (ex: "--color false"); otherwise a bare flag means true.
		if nextValue != nil {
			if _, err := strconv.ParseBool(*nextValue); err == nil {
				raw = *nextValue
				consumeNext = true
			} else {
				raw = "true"
			}
		} else {
			raw = "true"
		}
	} else {
		if nextValue == nil {
			if hasDashDash {
				return false, usageErrorf("flag needs a value before --: %s", token)
			}
			return false, usageErrorf("flag needs a value: %s", token)
		}
		raw = *nextValue
		consumeNext = true
	}

	if err := def.setValue(raw); err != nil {
		return false, usageErrorf("invalid value for %s: %v", def.display(), err)
	}
	return consumeNext, nil
}

func (def *flagDef) setValue(raw string) error {
	switch def.kind {
	case flagBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		*def.boolPtr = v
	case flagString:
		*def.stringPtr = raw
	case flagInt:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return err
		}
		*def.intPtr = v
	default:
		return fmt.Errorf("unknown flag kind")
	}
	def.set = true
	return nil
}

func (def *flagDef) display() string {
	if def.shorthand != 0 {
		return fmt.Sprintf("-%c/--%s", def.shorthand, def.name)
	}
	return "--" + def.name
}

func (def *flagDef) kindLabel() string {
	switch def.kind {
	case flagBool:
		return "bool"
	case flagString:
		return "string"
	case flagInt:
		return "int"
	default:
		return ""
	}
}

func (fs *FlagSet) sortedDefs() []*flagDef {
	defs := make([]*flagDef, 0, len(fs.byLong))
	for _, def := range fs.byLong {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].name < defs[j].name })
	return defs
}
