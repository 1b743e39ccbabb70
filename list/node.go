package list

// Node представляет собой узел односвязного списка.
// Значение узла задается при создании и больше не меняется,
// ссылки next и list изменяются только методами List.
type Node[T any] struct {
	value T        // Значение узла
	next  *Node[T] // Указатель на следующий узел
	list  *List[T] // Список, которому принадлежит узел (только для проверки принадлежности)
}

// NewNode создает свободный узел, который еще не принадлежит ни одному списку.
// Такой узел можно добавить в список методами AddFirstNode, AddLastNode, AddAfterNode и AddBeforeNode.
func NewNode[T any](value T) *Node[T] {
	return &Node[T]{value: value}
}

// Value возвращает значение узла
func (n *Node[T]) Value() T {
	return n.value
}

// Next возвращает следующий узел или nil, если узел последний либо отсоединен
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// List возвращает список, которому принадлежит узел, или nil для свободного узла
func (n *Node[T]) List() *List[T] {
	return n.list
}

// invalidate отсоединяет узел: сбрасывает владельца и ссылку на следующий узел
func (n *Node[T]) invalidate() {
	n.list = nil
	n.next = nil
}
