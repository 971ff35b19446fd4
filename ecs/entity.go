package ecs

import "strconv"

// EntityId is the process-unique handle of an entity. Handles start at 1,
// increase monotonically and are never reused.
type EntityId uint64

func (e EntityId) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

// Components is the bag of named component records attached to an entity.
// Keys are component kind names; values are normally pointers to records so
// every system that admits the entity shares the same data.
type Components map[string]any
