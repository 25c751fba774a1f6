package repository

import "github.com/google/uuid"

// IDGenerator supplies a process-unique suffix. Repositories prefix it per
// entity kind (thread-, comment-, reply-, like-, user-) to form the final id.
type IDGenerator func() string

// UUIDGenerator is the production suffix source.
func UUIDGenerator() string {
	return uuid.NewString()
}
