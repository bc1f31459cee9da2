package platform

// Position is implemented by Iterator and ConstIterator. Either kind may be passed where a
// position is expected and either kind may be compared with the other.
type Position[T any] interface {
	position() cursor[T]
}

// cursor references a node, or nothing for end. anchor marks the sentinel handed out by BeforeBegin.
type cursor[T any] struct {
	n      *node[T]
	anchor bool
}

func (c cursor[T]) position() cursor[T] {
	return c
}

// Equal reports whether both positions reference the same node.
func (c cursor[T]) Equal(other Position[T]) bool {
	if other == nil {
		return c.n == nil
	}
	return c.n == other.position().n
}

func (c cursor[T]) advance(op string) cursor[T] {
	if c.n == nil {
		violate("%s past end", op)
	}
	return cursor[T]{n: c.n.next}
}

func (c cursor[T]) deref(op string) *node[T] {
	if c.n == nil {
		violate("%s of end", op)
	}
	if c.anchor {
		violate("%s of before-begin", op)
	}
	return c.n
}

// Iterator is a forward cursor that may modify the element it references. The zero value
// references nothing and equals End.
type Iterator[T any] struct {
	cursor[T]
}

// Next advances it and returns the advanced iterator.
func (it *Iterator[T]) Next() Iterator[T] {
	it.cursor = it.advance("Next")
	return *it
}

// PostNext advances it and returns the position it held before.
func (it *Iterator[T]) PostNext() Iterator[T] {
	prev := *it
	it.cursor = it.advance("PostNext")
	return prev
}

func (it Iterator[T]) Value() T {
	return it.deref("Value").val
}

func (it Iterator[T]) Ptr() *T {
	return &it.deref("Ptr").val
}

func (it Iterator[T]) Set(value T) {
	it.deref("Set").val = value
}

func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it.cursor}
}

// ConstIterator is the read-only counterpart of Iterator.
type ConstIterator[T any] struct {
	cursor[T]
}

func (it *ConstIterator[T]) Next() ConstIterator[T] {
	it.cursor = it.advance("Next")
	return *it
}

func (it *ConstIterator[T]) PostNext() ConstIterator[T] {
	prev := *it
	it.cursor = it.advance("PostNext")
	return prev
}

func (it ConstIterator[T]) Value() T {
	return it.deref("Value").val
}
