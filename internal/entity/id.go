package entity

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// NewID gera um identificador único para registros novos. Se a fonte de
// aleatoriedade segura falhar, cai no esquema timestamp + sufixo aleatório.
func NewID() string {
	if id, err := uuid.NewRandom(); err == nil {
		return id.String()
	}
	return fmt.Sprintf("%d-%09d", time.Now().UnixMilli(), rand.Intn(1_000_000_000))
}
