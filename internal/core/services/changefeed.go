package services

import (
	"context"
	"sync"
)

// Collection names the record sets a live query can observe.
type Collection string

const (
	CollectionTasks        Collection = "tasks"
	CollectionTransactions Collection = "transactions"
	CollectionInventory    Collection = "inventory"
)

// Changefeed is the in-process broker behind the live queries. Services call
// Publish after every successful create; each subscriber whose owner id
// matches is nudged to re-query and push a complete replacement snapshot.
//
// Notifications are coalescing: a subscriber that has not drained its pending
// nudge gets at most one more, which is fine because consumers always re-read
// the whole collection.
type Changefeed struct {
	mu     sync.Mutex
	nextID int
	subs   map[Collection]map[int]*subscriber
}

type subscriber struct {
	ownerID string
	notify  chan struct{}
}

// NewChangefeed creates an empty broker.
func NewChangefeed() *Changefeed {
	return &Changefeed{
		subs: make(map[Collection]map[int]*subscriber),
	}
}

// Subscribe registers interest in creates into col owned by ownerID.
// The returned channel receives a signal per relevant create; cancel must be
// called exactly once to tear the subscription down.
func (f *Changefeed) Subscribe(col Collection, ownerID string) (<-chan struct{}, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.subs[col] == nil {
		f.subs[col] = make(map[int]*subscriber)
	}
	id := f.nextID
	f.nextID++

	sub := &subscriber{
		ownerID: ownerID,
		notify:  make(chan struct{}, 1),
	}
	f.subs[col][id] = sub

	cancel := func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.subs[col], id)
	}
	return sub.notify, cancel
}

// Publish signals every subscriber of col whose owner id equals ownerID.
func (f *Changefeed) Publish(col Collection, ownerID string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, sub := range f.subs[col] {
		if sub.ownerID != ownerID {
			continue
		}
		select {
		case sub.notify <- struct{}{}:
		default: // a nudge is already pending
		}
	}
}

// watchCollection is the shared live-query loop: push a full snapshot now,
// then a replacement snapshot after every relevant create, until ctx is done.
// A failed re-query ends the stream; there is no retry policy.
func watchCollection[T any](
	ctx context.Context,
	feed *Changefeed,
	col Collection,
	ownerID string,
	query func(ctx context.Context, ownerID string) ([]T, error),
) (<-chan []T, error) {
	initial, err := query(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	notify, cancel := feed.Subscribe(col, ownerID)
	out := make(chan []T, 1)
	out <- initial

	go func() {
		defer cancel()
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case <-notify:
				snapshot, err := query(ctx, ownerID)
				if err != nil {
					return
				}
				select {
				case <-ctx.Done():
					return
				case out <- snapshot:
				}
			}
		}
	}()
	return out, nil
}
