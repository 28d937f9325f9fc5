// Package cache implementa o acelerador cache-aside usado nas consultas de
// agregação. O cache é um componente injetado com tempo de vida do processo;
// nada sobrevive a um restart.
package cache

import (
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// entry guarda o resultado serializado e o instante absoluto de expiração.
// O valor é opaco: nenhum outro componente inspeciona o conteúdo do cache.
type entry struct {
	value     []byte
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// Cache é um mapa em memória protegido por RWMutex. Misses concorrentes na
// mesma chave podem recomputar em duplicidade (leituras idempotentes); a
// última escrita vence. O mutex garante que nenhum leitor enxerga uma
// entrada parcialmente escrita.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
}

func New() *Cache {
	return &Cache{
		entries: make(map[string]entry),
	}
}

// GetOrCompute devolve em dest o valor da chave. Em hit (entrada existente e
// não expirada) desserializa o valor armazenado sem invocar compute. Em miss
// invoca compute uma vez, armazena o resultado com expiração now + ttl e
// devolve o valor computado. Se compute falhar nenhuma entrada é criada e a
// próxima chamada tenta de novo.
func (c *Cache) GetOrCompute(key string, ttl time.Duration, dest interface{}, compute func() (interface{}, error)) error {
	c.mu.RLock()
	cached, found := c.entries[key]
	c.mu.RUnlock()

	if found && !cached.expired(time.Now()) {
		return json.Unmarshal(cached.value, dest)
	}

	value, err := compute()
	if err != nil {
		return err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.entries[key] = entry{
		value:     data,
		expiresAt: time.Now().Add(ttl),
	}
	c.mu.Unlock()

	return json.Unmarshal(data, dest)
}

// Invalidate remove imediatamente as entradas que casam com o padrão.
// Um padrão terminado em "*" remove por prefixo; qualquer outro valor é
// tratado como chave exata. Retorna a quantidade de entradas removidas.
func (c *Cache) Invalidate(pattern string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		removed := 0
		for key := range c.entries {
			if strings.HasPrefix(key, prefix) {
				delete(c.entries, key)
				removed++
			}
		}
		return removed
	}

	if _, found := c.entries[pattern]; found {
		delete(c.entries, pattern)
		return 1
	}

	return 0
}

// Len retorna a quantidade de entradas armazenadas, incluindo expiradas
// ainda não removidas
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// RemoveExpired descarta as entradas já expiradas e retorna quantas foram
// removidas. Entradas expiradas nunca são servidas mesmo antes da limpeza.
func (c *Cache) RemoveExpired() int {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, cached := range c.entries {
		if cached.expired(now) {
			delete(c.entries, key)
			removed++
		}
	}

	return removed
}
