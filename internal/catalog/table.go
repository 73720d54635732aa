package catalog

import "slices"

// Table maps subject -> topic label -> ordered entries. Topic labels are
// case-sensitive and iterate in insertion order.
type Table[T any] struct {
	subjects map[Subject]*topicIndex[T]
}

type topicIndex[T any] struct {
	order   []string
	entries map[string][]T
}

// NewTable returns an empty table.
func NewTable[T any]() *Table[T] {
	return &Table[T]{subjects: make(map[Subject]*topicIndex[T])}
}

// Put stores items under (subject, topic). Re-putting a topic replaces its
// entries but keeps its original position.
func (t *Table[T]) Put(subject Subject, topic string, items []T) {
	idx, ok := t.subjects[subject]
	if !ok {
		idx = &topicIndex[T]{entries: make(map[string][]T)}
		t.subjects[subject] = idx
	}
	if _, exists := idx.entries[topic]; !exists {
		idx.order = append(idx.order, topic)
	}
	idx.entries[topic] = slices.Clone(items)
}

// Get returns a copy of the entries stored under (subject, topic).
func (t *Table[T]) Get(subject Subject, topic string) ([]T, bool) {
	idx, ok := t.subjects[subject]
	if !ok {
		return nil, false
	}
	items, ok := idx.entries[topic]
	if !ok {
		return nil, false
	}
	return slices.Clone(items), true
}

// Has reports whether (subject, topic) has an entry.
func (t *Table[T]) Has(subject Subject, topic string) bool {
	idx, ok := t.subjects[subject]
	if !ok {
		return false
	}
	_, ok = idx.entries[topic]
	return ok
}

// Topics returns the topic labels of subject in insertion order.
func (t *Table[T]) Topics(subject Subject) []string {
	idx, ok := t.subjects[subject]
	if !ok {
		return nil
	}
	return slices.Clone(idx.order)
}

// Len returns the number of topic entries across all subjects.
func (t *Table[T]) Len() int {
	n := 0
	for _, idx := range t.subjects {
		n += len(idx.order)
	}
	return n
}
