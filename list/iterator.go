package list

// Iterator обходит значения списка от начала к концу.
// Итератор запоминает первый и последний узлы списка в момент создания (или Reset)
// и не отслеживает последующие изменения списка. Изменение списка во время обхода
// дает неопределенный, но безопасный результат.
type Iterator[T any] struct {
	list     *List[T]
	node     *Node[T] // Следующий узел для выдачи
	tail     *Node[T] // Последний узел списка на момент Reset
	current  T        // Последнее выданное значение
	index    int      // Количество выданных значений, 0 - обход не начат
	finished bool
}

// Next переходит к следующему значению. Возвращает false, когда значения закончились.
func (it *Iterator[T]) Next() bool {
	if it.node == nil {
		if !it.finished {
			var zero T
			it.current = zero
			it.finished = true
		}
		return false
	}

	it.index++
	it.current = it.node.value
	// На запомненном последнем узле обход заканчивается независимо от ссылки next
	if it.node == it.tail {
		it.node = nil
	} else {
		it.node = it.node.next
	}
	return true
}

// Value возвращает текущее значение.
// До первого вызова Next и после окончания обхода возвращает ErrInvalidOperation.
func (it *Iterator[T]) Value() (T, error) {
	if it.index == 0 || it.finished {
		var zero T
		return zero, wrap("(it *Iterator[T]) Value()", ErrInvalidOperation,
			"enumeration has either not started or has already finished")
	}
	return it.current, nil
}

// Index возвращает порядковый номер текущего значения, начиная с 1; 0 до начала обхода
func (it *Iterator[T]) Index() int {
	return it.index
}

// Reset возвращает итератор в начальное состояние, привязывая его к текущим первому и последнему узлам списка
func (it *Iterator[T]) Reset() {
	var zero T
	it.node = it.list.firstNode
	it.tail = it.list.lastNode
	it.current = zero
	it.index = 0
	it.finished = false
}
