package ecs

// World is the top-level ECS container. It owns the entity pool, the component
// registry, and a deferred release queue flushed by CleanupSystem each tick.
//
// Despawn takes an entity out of every store immediately; only the id release
// is deferred, so a stale id seen later in the same tick can never alias a
// freshly spawned entity.
type World struct {
	pool         *EntityPool
	registry     *Registry
	releaseQueue []EntityID
}

func NewWorld() *World {
	return &World{
		pool:         NewEntityPool(),
		registry:     NewRegistry(),
		releaseQueue: make([]EntityID, 0, 16),
	}
}

func (w *World) Pool() *EntityPool   { return w.pool }
func (w *World) Registry() *Registry { return w.registry }

func (w *World) CreateEntity() EntityID {
	return w.pool.Create()
}

// Alive reports whether id is allocated and not yet despawned.
func (w *World) Alive(id EntityID) bool {
	if !w.pool.Alive(id) {
		return false
	}
	for _, q := range w.releaseQueue {
		if q == id {
			return false
		}
	}
	return true
}

// Despawn removes id from every store and queues its release. It reports
// false, and does nothing, when id was already despawned.
func (w *World) Despawn(id EntityID) bool {
	if !w.Alive(id) {
		return false
	}
	w.registry.RemoveAll(id)
	w.releaseQueue = append(w.releaseQueue, id)
	return true
}

// Pending returns how many despawned ids wait for the next flush.
func (w *World) Pending() int { return len(w.releaseQueue) }

// FlushReleaseQueue returns all despawned ids to the pool.
// Called by CleanupSystem at the end of each tick.
func (w *World) FlushReleaseQueue() {
	for _, id := range w.releaseQueue {
		w.pool.Release(id)
	}
	w.releaseQueue = w.releaseQueue[:0]
}
