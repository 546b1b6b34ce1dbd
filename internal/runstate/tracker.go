package runstate

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// State é o estado corrente de uma execução do pipeline.
type State string

const (
	Pending      State = "pending"
	Extracting   State = "extracting"
	Cleaning     State = "cleaning"
	Transforming State = "transforming"
	Loading      State = "loading"
	Validating   State = "validating"
	Succeeded    State = "succeeded"
	Failed       State = "failed"
)

// Tracker registra as transições de estado de cada execução. Falha no
// registro não derruba o pipeline; quem chama decide o que logar.
type Tracker interface {
	SetState(runID string, state State, cause error) error
}

// MemoryTracker guarda o histórico em memória. É o tracker padrão quando
// não há Redis configurado e o dublê usado nos testes.
type MemoryTracker struct {
	mu      sync.Mutex
	history map[string][]State
}

func NewMemoryTracker() *MemoryTracker {
	return &MemoryTracker{history: make(map[string][]State)}
}

func (t *MemoryTracker) SetState(runID string, state State, _ error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.history[runID] = append(t.history[runID], state)
	return nil
}

func (t *MemoryTracker) History(runID string) []State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]State(nil), t.history[runID]...)
}

// RedisTracker mantém um hash por execução (etl:run:<id>) com o estado
// corrente, o timestamp de cada transição e o erro terminal, se houver.
type RedisTracker struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisTracker(redisURL string) (*RedisTracker, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &RedisTracker{
		Client: redis.NewClient(opts),
		TTL:    7 * 24 * time.Hour,
	}, nil
}

func (t *RedisTracker) SetState(runID string, state State, cause error) error {
	ctx := context.Background()
	key := "etl:run:" + runID

	fields := map[string]interface{}{
		"state":               string(state),
		string(state) + "_at": time.Now().UTC().Format(time.RFC3339),
	}
	if cause != nil {
		fields["error"] = cause.Error()
	}

	if err := t.Client.HSet(ctx, key, fields).Err(); err != nil {
		return err
	}
	return t.Client.Expire(ctx, key, t.TTL).Err()
}
