// Package guard implements the constructor-guard pattern for domain objects.
// Embedding a ConstructorGuard in a struct lets its Validate method detect
// zero-value instances that bypassed the designated constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is provided and the object was not constructed properly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and entities are only created through
// their designated constructor functions. A zero-value guard fails validation,
// so any struct that embeds one can distinguish proper construction from
// direct struct initialization.
//
// Example:
//
//	type Item struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewItem(name string) (Item, error) {
//	    if name == "" {
//	        return Item{}, errors.New("name is required")
//	    }
//	    return Item{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (i Item) Validate() error {
//	    return i.guard.Validate(ErrItemIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly constructed.
// Call it inside the constructor of the guarded domain object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was created through its
// constructor. Otherwise it returns validationError, falling back to
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
