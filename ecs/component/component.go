package component

import (
	"errors"
	"reflect"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID identifies a component type within the process. Zero is
// never handed out.
type ComponentID uint32

var nextComponentID atomic.Uint32

// Kind is the type-erased view of a ComponentKind, used by queries that mix
// component types.
type Kind interface {
	ID() ComponentID
	Name() string
}

// ComponentKind is the typed key for one component store.
type ComponentKind[T any] struct {
	id   ComponentID
	name string
}

func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{
		id:   ComponentID(nextComponentID.Add(1)),
		name: reflect.TypeFor[T]().String(),
	}
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

// Name is the Go type name of T, used in error messages and debug output.
func (k ComponentKind[T]) Name() string { return k.name }

func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

// ComponentHandle is what component files export; Kind gives the key.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] { return h.kind }
