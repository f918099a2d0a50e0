package unchecked

import (
	"errors"
	"fmt"
	"reflect"
)

// Kind identifies a declared error kind for a classified adapter.
// Match reports whether err belongs to the kind.
type Kind interface {
	Match(err error) bool
	String() string
}

type typeKind[E error] struct{}

func (typeKind[E]) Match(err error) bool {
	var target E
	return errors.As(err, &target)
}

func (typeKind[E]) String() string {
	return reflect.TypeFor[E]().String()
}

// KindOf returns a Kind matching any error whose chain contains an E,
// as determined by errors.As.
//
// Example:
//
//	read := unchecked.Function(os.ReadFile, unchecked.Expect(unchecked.KindOf[*fs.PathError]()))
func KindOf[E error]() Kind {
	return typeKind[E]{}
}

type sentinelKind struct {
	target error
}

func (k sentinelKind) Match(err error) bool { return errors.Is(err, k.target) }
func (k sentinelKind) String() string       { return fmt.Sprintf("sentinel(%v)", k.target) }

// Sentinel returns a Kind matching any error whose chain contains target,
// as determined by errors.Is.
func Sentinel(target error) Kind {
	return sentinelKind{target: target}
}

type funcKind struct {
	name  string
	match func(error) bool
}

func (k funcKind) Match(err error) bool { return k.match(err) }
func (k funcKind) String() string       { return k.name }

// KindFunc returns a Kind backed by an arbitrary predicate.
func KindFunc(name string, match func(error) bool) Kind {
	if match == nil {
		panic("unchecked: KindFunc requires a match function")
	}
	return funcKind{name: name, match: match}
}

// firstMatch returns the first kind in declaration order that matches err.
func firstMatch(kinds []Kind, err error) (Kind, bool) {
	for _, k := range kinds {
		if k.Match(err) {
			return k, true
		}
	}
	return nil, false
}
