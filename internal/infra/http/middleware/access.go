package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type principalKey struct{}

// AccessChecker é o pedaço do client do gate que o middleware usa.
type AccessChecker interface {
	AccessState(ctx context.Context, principal string) (approved, paywallActive bool, err error)
}

// Access gateia as rotas de dados: extrai o principal do bearer JWT e
// consulta aprovação/paywall no serviço remoto. O resultado fica em cache
// por alguns minutos para não bater no gate a cada requisição.
type Access struct {
	checker   AccessChecker
	jwtSecret []byte

	mu    sync.Mutex
	cache map[string]accessEntry
	ttl   time.Duration
}

type accessEntry struct {
	allowed   bool
	expiresAt time.Time
}

func NewAccess(checker AccessChecker, jwtSecret string) *Access {
	return &Access{
		checker:   checker,
		jwtSecret: []byte(jwtSecret),
		cache:     make(map[string]accessEntry),
		ttl:       2 * time.Minute,
	}
}

func (a *Access) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := a.principalFromRequest(r)
		if !ok {
			deny(w, http.StatusUnauthorized, "Credenciais ausentes ou inválidas")
			return
		}

		allowed, err := a.allowed(r.Context(), principal)
		if err != nil {
			log.Printf("❌ Erro ao consultar gate para %s: %v", principal, err)
			deny(w, http.StatusServiceUnavailable, "Não foi possível validar o acesso")
			return
		}
		if !allowed {
			deny(w, http.StatusPaymentRequired, "Conta aguardando aprovação de pagamento")
			return
		}

		ctx := context.WithValue(r.Context(), principalKey{}, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Principal devolve a identidade autenticada guardada no contexto.
func Principal(ctx context.Context) string {
	principal, _ := ctx.Value(principalKey{}).(string)
	return principal
}

func (a *Access) principalFromRequest(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}

	token, err := jwt.Parse(strings.TrimPrefix(auth, "Bearer "), func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return a.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", false
	}
	return subject, true
}

func (a *Access) allowed(ctx context.Context, principal string) (bool, error) {
	a.mu.Lock()
	if entry, ok := a.cache[principal]; ok && time.Now().Before(entry.expiresAt) {
		a.mu.Unlock()
		return entry.allowed, nil
	}
	a.mu.Unlock()

	approved, paywallActive, err := a.checker.AccessState(ctx, principal)
	if err != nil {
		return false, err
	}

	// Com o paywall desligado todo mundo entra; ligado, só conta aprovada.
	allowed := !paywallActive || approved

	a.mu.Lock()
	a.cache[principal] = accessEntry{allowed: allowed, expiresAt: time.Now().Add(a.ttl)}
	a.mu.Unlock()

	return allowed, nil
}

func deny(w http.ResponseWriter, status int, message string) {
	RecordAccessDenied()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
