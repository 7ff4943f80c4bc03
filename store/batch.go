package store

/////////////////////////////////////////////////////
// Empty KVStore

// EmptyKVStore never holds any data, used as a base layer to test caching
type EmptyKVStore struct{}

var _ KVStore = EmptyKVStore{}

// Get always returns nil
func (EmptyKVStore) Get(key []byte) ([]byte, error) { return nil, nil }

// Has always returns false
func (EmptyKVStore) Has(key []byte) (bool, error) { return false, nil }

// Set is a noop
func (EmptyKVStore) Set(key, value []byte) error { return nil }

// Delete is a noop
func (EmptyKVStore) Delete(key []byte) error { return nil }

// NewBatch returns a batch that writes nowhere
func (e EmptyKVStore) NewBatch() Batch { return NewNonAtomicBatch(e) }

////////////////////////////////////////////////////
// Non-atomic batch

// Op is a single pending write. Delete ops carry no value.
type Op struct {
	Key    []byte
	Value  []byte
	Delete bool
}

// SetOp returns an op writing value under key.
func SetOp(key, value []byte) Op {
	return Op{Key: key, Value: value}
}

// DelOp returns an op removing key.
func DelOp(key []byte) Op {
	return Op{Key: key, Delete: true}
}

// Apply performs the op on a writable store.
func (o Op) Apply(out SetDeleter) error {
	if o.Delete {
		return out.Delete(o.Key)
	}
	return out.Set(o.Key, o.Value)
}

// NonAtomicBatch collects ops and applies them one by one on Write. A
// failure in the middle leaves the ops before it applied, so only use it
// where the output is itself a cache or an in-memory tree that is
// committed as a whole.
type NonAtomicBatch struct {
	out SetDeleter
	ops []Op
}

var _ Batch = (*NonAtomicBatch)(nil)

// NewNonAtomicBatch creates an empty batch writing to out.
func NewNonAtomicBatch(out SetDeleter) *NonAtomicBatch {
	return &NonAtomicBatch{out: out}
}

// Set queues a write.
func (b *NonAtomicBatch) Set(key, value []byte) error {
	b.ops = append(b.ops, SetOp(key, value))
	return nil
}

// Delete queues a removal.
func (b *NonAtomicBatch) Delete(key []byte) error {
	b.ops = append(b.ops, DelOp(key))
	return nil
}

// Write applies all queued ops in order and empties the batch.
func (b *NonAtomicBatch) Write() error {
	ops := b.ops
	b.ops = nil
	for _, op := range ops {
		if err := op.Apply(b.out); err != nil {
			return err
		}
	}
	return nil
}

// Ops returns the queued ops, in order.
func (b *NonAtomicBatch) Ops() []Op {
	return b.ops
}
