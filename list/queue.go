package list

type Stack[T comparable] struct {
	elements *List[T]
}

func NewStack[T comparable]() *Stack[T] {
	return &Stack[T]{
		elements: New[T](),
	}
}

func (s *Stack[T]) Push(x T) {
	s.elements.Prepend(x)
}

// Pop returns the most recently pushed element. The boolean indicates success,
// which is false if the stack was empty.
func (s *Stack[T]) Pop() (T, bool) {
	return s.elements.PopFront()
}

func (s *Stack[T]) Len() uint64 {
	return s.elements.Len()
}

// Queue pushes at the tail and pops at the head, so both ends are constant
// time.
type Queue[T comparable] struct {
	elements *List[T]
}

func NewQueue[T comparable]() Queue[T] {
	return Queue[T]{
		elements: New[T](),
	}
}

func (q Queue[T]) Push(x T) {
	q.elements.Append(x)
}

func (q Queue[T]) Pop() (T, bool) {
	return q.elements.PopFront()
}

func (q Queue[T]) Len() uint64 {
	return q.elements.Len()
}
