package list

import (
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/emirpasic/gods/v2/containers"
)

// EqualFunc сравнивает значение узла (a) с искомым значением (b)
type EqualFunc[T any] func(a, b T) bool

var _ containers.Container[int] = (*List[int])(nil)

// List представляет собой обобщенный односвязный список.
// Нулевое значение List является пустым списком, готовым к использованию;
// значения в нем сравниваются через reflect.DeepEqual.
// List не потокобезопасен.
type List[T any] struct {
	firstNode *Node[T]     // Указатель на первый узел
	lastNode  *Node[T]     // Указатель на последний узел (для ускорения вставки элемента в конец)
	length    int          // Текущая длина списка (количество узлов)
	equal     EqualFunc[T] // Сравнение значений для Find, FindLast, Contains и Remove
}

// NewList создает новый пустой односвязный список, значения которого сравниваются оператором ==
func NewList[T comparable]() *List[T] {
	return &List[T]{equal: func(a, b T) bool { return a == b }}
}

// NewListFunc создает новый пустой односвязный список с заданной функцией сравнения значений
func NewListFunc[T any](equal EqualFunc[T]) (*List[T], error) {
	if equal == nil {
		return nil, wrap("NewListFunc()", ErrInvalidArgument, "equal function is nil")
	}
	return &List[T]{equal: equal}, nil
}

// NewListFrom создает список из значений последовательности seq в том же порядке
func NewListFrom[T comparable](seq iter.Seq[T]) (*List[T], error) {
	l := NewList[T]()
	if err := l.fill("NewListFrom()", seq); err != nil {
		return nil, err
	}
	return l, nil
}

// NewListFromFunc аналогична NewListFrom, но с заданной функцией сравнения значений
func NewListFromFunc[T any](seq iter.Seq[T], equal EqualFunc[T]) (*List[T], error) {
	l, err := NewListFunc(equal)
	if err != nil {
		return nil, err
	}
	if err = l.fill("NewListFromFunc()", seq); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *List[T]) fill(funcName string, seq iter.Seq[T]) error {
	if seq == nil {
		return wrap(funcName, ErrInvalidArgument, "source sequence is nil")
	}
	for value := range seq {
		l.AddLast(value)
	}
	return nil
}

// Len возвращает количество элементов в списке
func (l *List[T]) Len() int {
	return l.length
}

// First возвращает первый узел или nil для пустого списка
func (l *List[T]) First() *Node[T] {
	return l.firstNode
}

// Last возвращает последний узел или nil для пустого списка
func (l *List[T]) Last() *Node[T] {
	return l.lastNode
}

// Empty сообщает, пуст ли список
func (l *List[T]) Empty() bool {
	return l.length == 0
}

// Size то же самое, что Len
func (l *List[T]) Size() int {
	return l.length
}

// AddFirst добавляет значение в начало списка и возвращает созданный узел
func (l *List[T]) AddFirst(value T) *Node[T] {
	return l.addFirstNode(&Node[T]{value: value})
}

// AddFirstNode добавляет свободный узел в начало списка
func (l *List[T]) AddFirstNode(newNode *Node[T]) (*Node[T], error) {
	if err := validateNewNode("(l *List[T]) AddFirstNode()", newNode); err != nil {
		return nil, err
	}
	return l.addFirstNode(newNode), nil
}

// AddLast добавляет значение в конец списка и возвращает созданный узел
func (l *List[T]) AddLast(value T) *Node[T] {
	return l.addLastNode(&Node[T]{value: value})
}

// AddLastNode добавляет свободный узел в конец списка
func (l *List[T]) AddLastNode(newNode *Node[T]) (*Node[T], error) {
	if err := validateNewNode("(l *List[T]) AddLastNode()", newNode); err != nil {
		return nil, err
	}
	return l.addLastNode(newNode), nil
}

// AddAfter добавляет значение сразу после узла anchor, который должен принадлежать этому списку
func (l *List[T]) AddAfter(anchor *Node[T], value T) (*Node[T], error) {
	if err := l.validateNode("(l *List[T]) AddAfter()", anchor); err != nil {
		return nil, err
	}
	return l.addAfterNode(anchor, &Node[T]{value: value}), nil
}

// AddAfterNode добавляет свободный узел сразу после узла anchor
func (l *List[T]) AddAfterNode(anchor, newNode *Node[T]) (*Node[T], error) {
	const funcName = "(l *List[T]) AddAfterNode()"
	if err := l.validateNode(funcName, anchor); err != nil {
		return nil, err
	}
	if err := validateNewNode(funcName, newNode); err != nil {
		return nil, err
	}
	return l.addAfterNode(anchor, newNode), nil
}

// AddBefore добавляет значение непосредственно перед узлом anchor.
// Предшествующий узел ищется проходом от начала списка, поэтому сложность O(n).
func (l *List[T]) AddBefore(anchor *Node[T], value T) (*Node[T], error) {
	if err := l.validateNode("(l *List[T]) AddBefore()", anchor); err != nil {
		return nil, err
	}
	return l.addBeforeNode(anchor, &Node[T]{value: value}), nil
}

// AddBeforeNode добавляет свободный узел непосредственно перед узлом anchor
func (l *List[T]) AddBeforeNode(anchor, newNode *Node[T]) (*Node[T], error) {
	const funcName = "(l *List[T]) AddBeforeNode()"
	if err := l.validateNode(funcName, anchor); err != nil {
		return nil, err
	}
	if err := validateNewNode(funcName, newNode); err != nil {
		return nil, err
	}
	return l.addBeforeNode(anchor, newNode), nil
}

// Remove удаляет первый узел со значением value. Возвращает false, если такого узла нет.
func (l *List[T]) Remove(value T) bool {
	node := l.Find(value)
	if node == nil {
		return false
	}
	l.removeNode(node)
	return true
}

// RemoveNode удаляет узел, принадлежащий этому списку
func (l *List[T]) RemoveNode(node *Node[T]) error {
	if err := l.validateNode("(l *List[T]) RemoveNode()", node); err != nil {
		return err
	}
	l.removeNode(node)
	return nil
}

// RemoveFirst удаляет первый узел и возвращает его значение
func (l *List[T]) RemoveFirst() (T, error) {
	if l.firstNode == nil {
		var zero T
		return zero, wrap("(l *List[T]) RemoveFirst()", ErrInvalidOperation, "the list is empty")
	}
	value := l.firstNode.value
	l.removeNode(l.firstNode)
	return value, nil
}

// RemoveLast удаляет последний узел и возвращает его значение.
// Поиск предпоследнего узла требует прохода по списку.
func (l *List[T]) RemoveLast() (T, error) {
	if l.firstNode == nil {
		var zero T
		return zero, wrap("(l *List[T]) RemoveLast()", ErrInvalidOperation, "the list is empty")
	}
	value := l.lastNode.value
	l.removeNode(l.lastNode)
	return value, nil
}

// Clear удаляет все элементы из списка, отсоединяя каждый узел
func (l *List[T]) Clear() {
	for currentNode := l.firstNode; currentNode != nil; {
		nextNode := currentNode.next
		currentNode.invalidate()
		currentNode = nextNode
	}
	l.firstNode = nil
	l.lastNode = nil
	l.length = 0
}

// Contains сообщает, есть ли в списке узел со значением value
func (l *List[T]) Contains(value T) bool {
	return l.Find(value) != nil
}

// Find возвращает первый узел со значением value или nil, если такого узла нет
func (l *List[T]) Find(value T) *Node[T] {
	match := l.matcher(value)
	for currentNode := l.firstNode; currentNode != nil; currentNode = currentNode.next {
		if match(currentNode.value) {
			return currentNode
		}
	}
	return nil
}

// FindLast возвращает последний узел со значением value или nil, если такого узла нет
func (l *List[T]) FindLast(value T) *Node[T] {
	var resultNode *Node[T]
	match := l.matcher(value)
	for currentNode := l.firstNode; currentNode != nil; currentNode = currentNode.next {
		if match(currentNode.value) {
			resultNode = currentNode
		}
	}
	return resultNode
}

// FindBefore возвращает узел, предшествующий node.
// Для первого узла и для списка короче двух элементов возвращает nil.
func (l *List[T]) FindBefore(node *Node[T]) (*Node[T], error) {
	if err := l.validateNode("(l *List[T]) FindBefore()", node); err != nil {
		return nil, err
	}
	if l.length < 2 {
		return nil, nil
	}
	return l.findBefore(node), nil
}

// Iterator возвращает итератор, привязанный к текущим первому и последнему узлам списка
func (l *List[T]) Iterator() *Iterator[T] {
	it := &Iterator[T]{list: l}
	it.Reset()
	return it
}

// All возвращает последовательность значений списка для использования в range
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := l.Iterator(); it.Next(); {
			if !yield(it.current) {
				return
			}
		}
	}
}

// Values возвращает значения списка в виде слайса
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.length)
	for value := range l.All() {
		values = append(values, value)
	}
	return values
}

// String возвращает список в виде [v1, v2, ...]
func (l *List[T]) String() string {
	vals := make([]string, 0, l.length)
	for value := range l.All() {
		vals = append(vals, fmt.Sprintf("%v", value))
	}
	return "[" + strings.Join(vals, ", ") + "]"
}

func (l *List[T]) addFirstNode(newNode *Node[T]) *Node[T] {
	newNode.list = l
	// Случай вставки в пустой список
	if l.firstNode == nil {
		l.firstNode = newNode
		l.lastNode = newNode
	} else {
		newNode.next = l.firstNode
		l.firstNode = newNode
	}
	l.length++
	return newNode
}

func (l *List[T]) addLastNode(newNode *Node[T]) *Node[T] {
	newNode.list = l
	// Случай вставки в пустой список
	if l.firstNode == nil {
		l.firstNode = newNode
		l.lastNode = newNode
	} else {
		l.lastNode.next = newNode
		l.lastNode = newNode
	}
	l.length++
	return newNode
}

func (l *List[T]) addAfterNode(anchor, newNode *Node[T]) *Node[T] {
	newNode.list = l
	newNode.next = anchor.next
	anchor.next = newNode
	if anchor == l.lastNode {
		l.lastNode = newNode
	}
	l.length++
	return newNode
}

func (l *List[T]) addBeforeNode(anchor, newNode *Node[T]) *Node[T] {
	prevNode := l.findBefore(anchor)
	newNode.list = l
	newNode.next = anchor
	// Случай вставки перед первым узлом
	if prevNode == nil {
		l.firstNode = newNode
	} else {
		prevNode.next = newNode
	}
	l.length++
	return newNode
}

func (l *List[T]) removeNode(node *Node[T]) {
	prevNode := l.findBefore(node)
	if prevNode == nil {
		// Случай удаления первого узла, в том числе единственного
		l.firstNode = node.next
		if l.firstNode == nil {
			l.lastNode = nil
		}
	} else {
		prevNode.next = node.next
		if node == l.lastNode {
			l.lastNode = prevNode
		}
	}
	node.invalidate()
	l.length--
}

// findBefore проходит список от начала и возвращает предшественника node, для первого узла возвращает nil
func (l *List[T]) findBefore(node *Node[T]) *Node[T] {
	if node == l.firstNode {
		return nil
	}
	for prevNode := l.firstNode; prevNode != nil; prevNode = prevNode.next {
		if prevNode.next == node {
			return prevNode
		}
	}
	return nil
}

// matcher возвращает предикат поиска значения value.
// Nil-значение (указатель, интерфейс, слайс, мапа, функция, канал) совпадает только с nil
// без вызова функции сравнения.
func (l *List[T]) matcher(value T) func(T) bool {
	if isNil(value) {
		return isNil[T]
	}
	equal := l.equal
	if equal == nil {
		equal = func(a, b T) bool { return reflect.DeepEqual(a, b) }
	}
	return func(nodeValue T) bool {
		return equal(nodeValue, value)
	}
}

func (l *List[T]) validateNode(funcName string, node *Node[T]) error {
	if node == nil {
		return wrap(funcName, ErrInvalidArgument, "node is nil")
	}
	if node.list != l {
		return wrap(funcName, ErrInvalidState, "the node does not belong to the current list")
	}
	return nil
}

func validateNewNode[T any](funcName string, node *Node[T]) error {
	if node == nil {
		return wrap(funcName, ErrInvalidArgument, "new node is nil")
	}
	if node.list != nil {
		return wrap(funcName, ErrInvalidState, "the node is already part of a list")
	}
	return nil
}

func isNil[T any](value T) bool {
	v := reflect.ValueOf(&value).Elem()
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
