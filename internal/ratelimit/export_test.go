package ratelimit

// EvictExpiredForTest runs one sweep pass synchronously.
func (l *Limiter) EvictExpiredForTest() {
	l.evictExpired()
}
