package storage

import "context"

// KV é o contrato de persistência do núcleo de lembretes: chave string ->
// valor string, get/set síncronos. Cada coleção de registros ocupa uma chave
// fixa com um array JSON serializado.
type KV interface {
	// Get devolve o valor e ok=false quando a chave não existe.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Pinger é implementado pelos backends que conseguem testar a própria
// conexão (Redis, Postgres). O health check usa quando disponível.
type Pinger interface {
	Ping(ctx context.Context) error
}
