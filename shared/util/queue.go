package util

import "sync"

// UniqueQueue é uma fila FIFO que guarda cada chave no máximo uma vez.
// Usada pelo mapa para acumular patches sujos entre rebuilds.
type UniqueQueue[K comparable, V any] struct {
	mu    sync.Mutex
	items []entry[K, V]
	index map[K]int
}

type entry[K comparable, V any] struct {
	Key   K
	Value V
}

// NewUniqueQueue cria uma nova UniqueQueue.
func NewUniqueQueue[K comparable, V any]() *UniqueQueue[K, V] {
	return &UniqueQueue[K, V]{
		items: make([]entry[K, V], 0, 16),
		index: make(map[K]int),
	}
}

// Enqueue adiciona um item se a chave ainda não existir na fila.
// Se a chave já existir, o valor é atualizado e a posição é mantida.
// Retorna true se foi adicionado (novo), false se foi atualizado.
func (q *UniqueQueue[K, V]) Enqueue(key K, value V) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if i, ok := q.index[key]; ok {
		q.items[i].Value = value
		return false
	}

	q.index[key] = len(q.items)
	q.items = append(q.items, entry[K, V]{Key: key, Value: value})
	return true
}

// Dequeue remove e retorna o primeiro item da fila.
func (q *UniqueQueue[K, V]) Dequeue() (K, V, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}

	e := q.items[0]
	q.items = q.items[1:]
	delete(q.index, e.Key)
	for k, i := range q.index {
		q.index[k] = i - 1
	}
	return e.Key, e.Value, true
}

// Drain esvazia a fila e devolve os valores na ordem de inserção.
func (q *UniqueQueue[K, V]) Drain() []V {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]V, len(q.items))
	for i, e := range q.items {
		out[i] = e.Value
	}
	q.items = q.items[:0]
	clear(q.index)
	return out
}

// Len retorna o número de items na fila.
func (q *UniqueQueue[K, V]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Clear limpa a fila.
func (q *UniqueQueue[K, V]) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = q.items[:0]
	clear(q.index)
}

// Contains verifica se uma chave está na fila.
func (q *UniqueQueue[K, V]) Contains(key K) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	_, ok := q.index[key]
	return ok
}
