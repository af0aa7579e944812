package buffer

// Change describes one effective replacement.
type Change struct {
	VersionBefore uint64
	VersionAfter  uint64
	CaretBefore   int
	CaretAfter    int

	// Offset is where Deleted was removed and Inserted was placed.
	Offset   int
	Deleted  string
	Inserted string
}

type observer struct {
	id int
	fn func(Change)
}

// Subscribe registers fn to run after every effective text change. The
// returned func removes the subscription.
func (b *Buffer) Subscribe(fn func(Change)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	id := b.nextObsID
	b.nextObsID++
	b.observers = append(b.observers, observer{id: id, fn: fn})
	return func() {
		for i, o := range b.observers {
			if o.id == id {
				b.observers = append(b.observers[:i:i], b.observers[i+1:]...)
				return
			}
		}
	}
}

func (b *Buffer) notify(c Change) {
	if len(b.observers) == 0 {
		return
	}
	// Observers may unsubscribe while being notified.
	obs := append([]observer(nil), b.observers...)
	for _, o := range obs {
		o.fn(c)
	}
}
