package platform

import "cmp"

// EqualFunc reports whether a and b have the same length and pairwise equal elements.
func EqualFunc[T any](a, b *LinkedList[T], eq EqFunc[T]) bool {
	if a.count != b.count {
		return false
	}
	for x, y := a.head.next, b.head.next; x != nil; x, y = x.next, y.next {
		if !eq(x.val, y.val) {
			return false
		}
	}
	return true
}

func Equal[T comparable](a, b *LinkedList[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

func NotEqual[T comparable](a, b *LinkedList[T]) bool {
	return !Equal(a, b)
}

// CompareFunc compares a and b lexicographically. When one list is a prefix of the other
// the shorter one is less.
func CompareFunc[T any](a, b *LinkedList[T], compare CmpFunc[T]) int {
	x, y := a.head.next, b.head.next
	for ; x != nil && y != nil; x, y = x.next, y.next {
		if c := compare(x.val, y.val); c != 0 {
			return c
		}
	}
	switch {
	case x == nil && y == nil:
		return 0
	case x == nil:
		return -1
	default:
		return 1
	}
}

func Compare[T cmp.Ordered](a, b *LinkedList[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

func LessFunc[T any](a, b *LinkedList[T], compare CmpFunc[T]) bool {
	return CompareFunc(a, b, compare) < 0
}

func Less[T cmp.Ordered](a, b *LinkedList[T]) bool {
	return Compare(a, b) < 0
}

func LessOrEqual[T cmp.Ordered](a, b *LinkedList[T]) bool {
	return !Less(b, a)
}

func Greater[T cmp.Ordered](a, b *LinkedList[T]) bool {
	return Less(b, a)
}

func GreaterOrEqual[T cmp.Ordered](a, b *LinkedList[T]) bool {
	return !Less(a, b)
}
