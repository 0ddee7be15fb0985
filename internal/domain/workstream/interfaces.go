package workstream

import "context"

// Repository provides persistence for workstreams. Implementations keep the
// in-memory index and the backing file in lockstep: Put and a removing Delete
// return only after the new state is durable.
type Repository interface {
	Get(ctx context.Context, id string) (*Workstream, error)
	Put(ctx context.Context, ws *Workstream) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]*Workstream, error)
}
