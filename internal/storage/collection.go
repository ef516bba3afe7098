package storage

import (
	"context"
	"encoding/json"
	"log"
)

// Collection persiste a lista de uma entidade sob uma chave fixa do KV.
// Política de erro: leitura corrompida vira lista vazia, elemento com forma
// inválida é descartado em silêncio e falha de escrita é logada sem propagar.
// Nada daqui sobe erro para o chamador.
type Collection[T any] struct {
	kv    KV
	key   string
	check func(T) error
	id    func(T) string
}

func NewCollection[T any](kv KV, key string, check func(T) error, id func(T) string) *Collection[T] {
	return &Collection[T]{kv: kv, key: key, check: check, id: id}
}

// GetAll lê a coleção inteira. Chave ausente, JSON quebrado ou valor que não
// é array devolvem lista vazia.
func (c *Collection[T]) GetAll(ctx context.Context) []T {
	raw, ok, err := c.kv.Get(ctx, c.key)
	if err != nil {
		log.Printf("❌ Erro ao ler coleção %s: %v", c.key, err)
		return []T{}
	}
	if !ok || raw == "" {
		return []T{}
	}

	// Decodifica elemento a elemento: um registro podre não derruba o resto.
	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elements); err != nil {
		log.Printf("❌ Coleção %s com JSON inválido, tratando como vazia: %v", c.key, err)
		return []T{}
	}

	items := make([]T, 0, len(elements))
	for _, el := range elements {
		var item T
		if err := json.Unmarshal(el, &item); err != nil {
			log.Printf("⚠️ Registro ilegível em %s descartado: %v", c.key, err)
			continue
		}
		if err := c.check(item); err != nil {
			log.Printf("⚠️ Registro inválido em %s descartado: %v", c.key, err)
			continue
		}
		items = append(items, item)
	}
	return items
}

// Save sobrescreve a coleção inteira. Falha de escrita é logada e engolida.
func (c *Collection[T]) Save(ctx context.Context, items []T) {
	data, err := json.Marshal(items)
	if err != nil {
		log.Printf("❌ Erro ao serializar coleção %s: %v", c.key, err)
		return
	}
	if err := c.kv.Set(ctx, c.key, string(data)); err != nil {
		log.Printf("❌ Erro ao gravar coleção %s: %v", c.key, err)
	}
}

func (c *Collection[T]) Add(ctx context.Context, item T) {
	items := c.GetAll(ctx)
	items = append(items, item)
	c.Save(ctx, items)
}

// Update aplica mutate no registro com o id dado. Id desconhecido é no-op.
func (c *Collection[T]) Update(ctx context.Context, id string, mutate func(*T)) bool {
	items := c.GetAll(ctx)
	for i := range items {
		if c.id(items[i]) == id {
			mutate(&items[i])
			c.Save(ctx, items)
			return true
		}
	}
	return false
}

func (c *Collection[T]) Remove(ctx context.Context, id string) {
	items := c.GetAll(ctx)
	filtered := items[:0]
	for _, item := range items {
		if c.id(item) != id {
			filtered = append(filtered, item)
		}
	}
	c.Save(ctx, filtered)
}
