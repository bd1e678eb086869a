package domain

import (
	"fmt"
)

// Kind classifies a domain error. Kinds form a tree rooted at KindDomain so
// callers can match narrowly (KindInsufficientQuantity) or broadly (KindStock,
// KindDomain) with errors.Is.
//
//	domain
//	├── validation
//	├── not_found
//	├── duplicate_name
//	├── invalid_operation
//	└── stock
//	    └── insufficient_quantity
type Kind string

const (
	KindDomain               Kind = "domain"
	KindValidation           Kind = "validation"
	KindNotFound             Kind = "not_found"
	KindDuplicateName        Kind = "duplicate_name"
	KindInvalidOperation     Kind = "invalid_operation"
	KindStock                Kind = "stock"
	KindInsufficientQuantity Kind = "insufficient_quantity"
)

var parentKinds = map[Kind]Kind{
	KindValidation:           KindDomain,
	KindNotFound:             KindDomain,
	KindDuplicateName:        KindDomain,
	KindInvalidOperation:     KindDomain,
	KindStock:                KindDomain,
	KindInsufficientQuantity: KindStock,
}

// Parent returns the parent kind, or "" for the root.
func (k Kind) Parent() Kind {
	return parentKinds[k]
}

// IsA reports whether k equals target or descends from it.
func (k Kind) IsA(target Kind) bool {
	for cur := k; cur != ""; cur = cur.Parent() {
		if cur == target {
			return true
		}
	}
	return false
}

// Entity names the registry or ledger an error originates from.
type Entity string

const (
	EntityItem         Entity = "item"
	EntityStock        Entity = "stock"
	EntityArtist       Entity = "artist"
	EntityCamarim      Entity = "camarim"
	EntityRequest      Entity = "request"
	EntityShoppingList Entity = "shopping list"
)

// Error is the common domain error.
type Error struct {
	Kind    Kind
	Entity  Entity
	Message string
}

func (e *Error) Error() string {
	if e.Entity == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Entity, e.Message)
}

// Is matches when e's kind descends from the target's kind and, if the target
// names an entity, the entities agree. Messages are ignored.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return matches(e.Kind, e.Entity, t)
}

func matches(kind Kind, entity Entity, target *Error) bool {
	if !kind.IsA(target.Kind) {
		return false
	}
	return target.Entity == "" || target.Entity == entity
}

// Sentinels for errors.Is. Only Kind and Entity take part in matching.
var (
	ErrDomain               = &Error{Kind: KindDomain, Message: "domain error"}
	ErrValidation           = &Error{Kind: KindValidation, Message: "validation failed"}
	ErrNotFound             = &Error{Kind: KindNotFound, Message: "not found"}
	ErrDuplicateName        = &Error{Kind: KindDuplicateName, Message: "duplicate name"}
	ErrInvalidOperation     = &Error{Kind: KindInvalidOperation, Message: "operation not permitted"}
	ErrStock                = &Error{Kind: KindStock, Message: "stock error"}
	ErrInsufficientQuantity = &Error{Kind: KindInsufficientQuantity, Message: "insufficient quantity"}

	ErrItemNotFound         = &Error{Kind: KindNotFound, Entity: EntityItem, Message: "not found"}
	ErrStockItemNotFound    = &Error{Kind: KindNotFound, Entity: EntityStock, Message: "not found"}
	ErrArtistNotFound       = &Error{Kind: KindNotFound, Entity: EntityArtist, Message: "not found"}
	ErrCamarimNotFound      = &Error{Kind: KindNotFound, Entity: EntityCamarim, Message: "not found"}
	ErrRequestNotFound      = &Error{Kind: KindNotFound, Entity: EntityRequest, Message: "not found"}
	ErrShoppingListNotFound = &Error{Kind: KindNotFound, Entity: EntityShoppingList, Message: "not found"}
)

// Validation returns a validation failure.
func Validation(format string, args ...any) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFound returns a not-found error scoped to entity.
func NotFound(entity Entity, format string, args ...any) error {
	return &Error{Kind: KindNotFound, Entity: entity, Message: fmt.Sprintf(format, args...)}
}

// DuplicateName returns a duplicate-name error scoped to entity.
func DuplicateName(entity Entity, name string) error {
	return &Error{Kind: KindDuplicateName, Entity: entity, Message: fmt.Sprintf("name %q already in use", name)}
}

// InvalidOperation returns an operation-not-permitted error scoped to entity.
func InvalidOperation(entity Entity, format string, args ...any) error {
	return &Error{Kind: KindInvalidOperation, Entity: entity, Message: fmt.Sprintf(format, args...)}
}

// InsufficientQuantityError reports a subtraction larger than what is on hand.
// It matches ErrInsufficientQuantity, ErrStock and ErrDomain.
type InsufficientQuantityError struct {
	Entity    Entity
	ItemID    int
	Available int
	Requested int
}

func (e *InsufficientQuantityError) Error() string {
	return fmt.Sprintf("%s: insufficient quantity for item %d: available %d, requested %d",
		e.Entity, e.ItemID, e.Available, e.Requested)
}

func (e *InsufficientQuantityError) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return matches(KindInsufficientQuantity, e.Entity, t)
}
