package token_bucket

import (
	"sync"
	"time"
)

type Limiter interface {
	Allow() bool
}

// TokenBucket пропускает запрос, если в ведре остался хотя бы один
// токен. Пополнение ленивое: токены доначисляются при очередном Allow
// пропорционально прошедшему времени, отдельной горутины нет.
type TokenBucket struct {
	mu         sync.Mutex
	capacity   int
	tokens     int
	refillRate float64 // токенов в секунду
	lastRefill time.Time
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		tokens:     capacity,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens <= 0 {
		return false
	}
	t.tokens--
	return true
}

// refill двигает lastRefill только при целом приросте токенов, иначе
// частые вызовы с дробным приростом никогда не накопят ни одного.
func (t *TokenBucket) refill() {
	now := time.Now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	added := int(elapsed * t.refillRate)
	if added == 0 {
		return
	}

	t.tokens = min(t.tokens+added, t.capacity)
	t.lastRefill = now
}
