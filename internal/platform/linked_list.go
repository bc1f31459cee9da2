package platform

import (
	"fmt"
	"iter"
	"slices"

	errors "single-linked-list/internal/platform/error"
	"single-linked-list/internal/platform/helper"
)

type (
	EqFunc[T any]   func(a, b T) bool
	CmpFunc[T any]  func(a, b T) int
	CopyFunc[T any] func(v T) (T, error)
	MakeFunc[T any] func() (T, error)

	node[T any] struct {
		val  T
		next *node[T]
	}

	// LinkedList is a forward list. head is a value-less sentinel whose next link is the
	// first element, so every insertion and removal happens "after" some node.
	//
	// The zero value is an empty list ready to use. A LinkedList must not be copied by
	// assignment once it holds elements; use Clone or Assign.
	LinkedList[T any] struct {
		head  node[T]
		count int
	}
)

// NewLinkedList returns a list holding values in the given order.
func NewLinkedList[T any](values ...T) *LinkedList[T] {
	l := &LinkedList[T]{}
	for i := len(values) - 1; i >= 0; i-- {
		l.PushFront(values[i])
	}
	return l
}

// FromSeq returns a list holding the values yielded by seq in the same order.
func FromSeq[T any](seq iter.Seq[T]) *LinkedList[T] {
	return NewLinkedList(slices.Collect(seq)...)
}

func identity[T any](v T) (T, error) {
	return v, nil
}

// Clone returns an independent list with equal values in equal order.
func (l *LinkedList[T]) Clone() *LinkedList[T] {
	c, _ := l.CloneFunc(identity[T])
	return c
}

// CloneFunc is Clone with a fallible element copy. On failure no list is returned and l is untouched.
func (l *LinkedList[T]) CloneFunc(copyValue CopyFunc[T]) (*LinkedList[T], error) {
	tmp := &LinkedList[T]{}
	tail := &tmp.head
	for n := l.head.next; n != nil; n = n.next {
		val, err := copyValue(n.val)
		if err != nil {
			tmp.Clear()
			return nil, errors.NewValueConstructionError(err)
		}
		tail.next = &node[T]{val: val}
		tail = tail.next
		tmp.count++
	}
	return tmp, nil
}

// Assign replaces the contents of l with a copy of other.
func (l *LinkedList[T]) Assign(other *LinkedList[T]) {
	_ = l.AssignFunc(other, identity[T])
}

// AssignFunc copies other into a temporary list and swaps it in, so l is unchanged when a copy fails.
func (l *LinkedList[T]) AssignFunc(other *LinkedList[T], copyValue CopyFunc[T]) error {
	if other == nil {
		violate("Assign from a nil list")
	}
	if l == other {
		return nil
	}
	tmp, err := other.CloneFunc(copyValue)
	if err != nil {
		return err
	}
	l.Swap(tmp)
	tmp.Clear()
	return nil
}

// Swap exchanges the contents of l and other without touching any element.
func (l *LinkedList[T]) Swap(other *LinkedList[T]) {
	if other == nil {
		violate("Swap with a nil list")
	}
	l.head.next, other.head.next = other.head.next, l.head.next
	l.count, other.count = other.count, l.count
}

func Swap[T any](a, b *LinkedList[T]) {
	a.Swap(b)
}

// BeforeBegin returns an anchor for InsertAfter and EraseAfter. It cannot be dereferenced.
func (l *LinkedList[T]) BeforeBegin() Iterator[T] {
	return Iterator[T]{cursor[T]{n: &l.head, anchor: true}}
}

func (l *LinkedList[T]) Begin() Iterator[T] {
	return Iterator[T]{cursor[T]{n: l.head.next}}
}

func (l *LinkedList[T]) End() Iterator[T] {
	return Iterator[T]{}
}

func (l *LinkedList[T]) CBeforeBegin() ConstIterator[T] {
	return l.BeforeBegin().Const()
}

func (l *LinkedList[T]) CBegin() ConstIterator[T] {
	return l.Begin().Const()
}

func (l *LinkedList[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{}
}

// InsertAfter links value right after pos and returns an iterator to it.
func (l *LinkedList[T]) InsertAfter(pos Position[T], value T) Iterator[T] {
	it, _ := l.InsertAfterFunc(pos, func() (T, error) { return value, nil })
	return it
}

// InsertAfterFunc builds the element first and links it only if construct succeeds.
func (l *LinkedList[T]) InsertAfterFunc(pos Position[T], construct MakeFunc[T]) (Iterator[T], error) {
	at := anchorOf(pos, "InsertAfter")
	val, err := construct()
	if err != nil {
		return Iterator[T]{}, errors.NewValueConstructionError(err)
	}
	n := &node[T]{val: val, next: at.next}
	at.next = n
	l.count++
	return Iterator[T]{cursor[T]{n: n}}, nil
}

// EraseAfter removes the element following pos and returns an iterator to the element
// that now follows pos. pos must have a successor.
func (l *LinkedList[T]) EraseAfter(pos Position[T]) Iterator[T] {
	at := anchorOf(pos, "EraseAfter")
	victim := at.next
	if victim == nil {
		violate("EraseAfter on a position without successor")
	}
	at.next = victim.next
	*victim = node[T]{}
	l.count--
	return Iterator[T]{cursor[T]{n: at.next}}
}

func (l *LinkedList[T]) PushFront(value T) {
	l.head.next = &node[T]{val: value, next: l.head.next}
	l.count++
}

func (l *LinkedList[T]) PushFrontFunc(construct MakeFunc[T]) error {
	_, err := l.InsertAfterFunc(l.BeforeBegin(), construct)
	return err
}

// PopFront removes the first element. It does nothing on an empty list.
func (l *LinkedList[T]) PopFront() {
	if l.head.next != nil {
		l.EraseAfter(l.BeforeBegin())
	}
}

func (l *LinkedList[T]) Front() (T, bool) {
	if l.head.next == nil {
		var zero T
		return zero, false
	}
	return l.head.next.val, true
}

func (l *LinkedList[T]) GetSize() int {
	return l.count
}

func (l *LinkedList[T]) IsEmpty() bool {
	return l.GetSize() == 0
}

// Clear drops every element. Dropped nodes are zeroed so stale iterators do not pin the chain.
func (l *LinkedList[T]) Clear() {
	for n := l.head.next; n != nil; {
		next := n.next
		*n = node[T]{}
		n = next
	}
	l.head.next = nil
	l.count = 0
}

func (l *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(n.val) {
				return
			}
		}
	}
}

func (l *LinkedList[T]) Values() []T {
	values := make([]T, 0, l.count)
	for n := l.head.next; n != nil; n = n.next {
		values = append(values, n.val)
	}
	return values
}

func (l *LinkedList[T]) String() string {
	return fmt.Sprint(l.Values())
}

func anchorOf[T any](pos Position[T], op string) *node[T] {
	if pos == nil {
		violate("%s with a nil position", op)
	}
	at := pos.position().n
	if at == nil {
		violate("%s at end", op)
	}
	return at
}

func violate(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	helper.Log.Errorf("Contract violation: %s", msg)
	panic(errors.NewContractViolationError(msg))
}
