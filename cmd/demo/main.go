package main

import (
	"log"
	"slices"

	"single-linked-list/internal/platform"
	"single-linked-list/internal/platform/helper"
)

func expect(l *platform.LinkedList[int], want ...int) {
	if got := l.Values(); !slices.Equal(got, want) || l.GetSize() != len(want) {
		log.Fatalf("expected %v (size %d), got %v (size %d)", want, len(want), got, l.GetSize())
	}
	helper.Log.Infof("list %s, size %d", l, l.GetSize())
}

func main() {
	l := platform.NewLinkedList(1, 2, 3)
	expect(l, 1, 2, 3)

	helper.Log.Debugf("PushFront 0")
	l.PushFront(0)
	expect(l, 0, 1, 2, 3)

	helper.Log.Debugf("PopFront")
	l.PopFront()
	expect(l, 1, 2, 3)

	helper.Log.Debugf("EraseAfter begin")
	l.EraseAfter(l.Begin())
	expect(l, 1, 3)

	a := platform.NewLinkedList(1, 2, 3)
	b := platform.NewLinkedList(1, 2, 4)
	c := platform.NewLinkedList(1, 2)
	if !platform.Less(a, b) || !platform.Less(c, a) {
		log.Fatal("lexicographic order broken")
	}
	helper.Log.Infof("%s < %s < %s", c, a, b)

	copied := a.Clone()
	platform.Swap(copied, b)
	expect(copied, 1, 2, 4)
	expect(b, 1, 2, 3)
	if !platform.Equal(a, b) {
		log.Fatal("swapped copy differs from its source")
	}
	helper.Log.Infof("done")
}
