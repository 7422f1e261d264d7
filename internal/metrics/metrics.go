package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type codecStats struct {
	encodes      int
	decodes      int
	decodeErrors int
}

type pickStats struct {
	applied int
	cleared int
}

// Recorder captures lightweight, in-memory metrics about provider calls,
// token codec traffic, and pick activity. It is intentionally simple so it
// can be swapped for a real backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*providerStats
	codec codecStats
	picks pickStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordEncode counts a bracket state being packed into a share token.
func (r *Recorder) RecordEncode() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.codec.encodes++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordCodec(codecOpEncode, nil)
	}
}

// RecordDecode counts a token decode attempt and whether it failed.
func (r *Recorder) RecordDecode(err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.codec.decodes++
	if err != nil {
		r.codec.decodeErrors++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordCodec(codecOpDecode, err)
	}
}

// RecordPick counts a winner being applied to a bracket.
func (r *Recorder) RecordPick() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.picks.applied++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordPick(pickOpApply)
	}
}

// RecordClear counts a pick being removed from a bracket.
func (r *Recorder) RecordClear() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.picks.cleared++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordPick(pickOpClear)
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a provider.
func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot returns a copy of the current stats for the provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(provider)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// CodecSnapshot is a copy of the current token codec counters.
type CodecSnapshot struct {
	Encodes      int
	Decodes      int
	DecodeErrors int
}

func (r *Recorder) Codec() CodecSnapshot {
	if r == nil {
		return CodecSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return CodecSnapshot{
		Encodes:      r.codec.encodes,
		Decodes:      r.codec.decodes,
		DecodeErrors: r.codec.decodeErrors,
	}
}

// PickSnapshot is a copy of the current pick counters.
type PickSnapshot struct {
	Applied int
	Cleared int
}

func (r *Recorder) Picks() PickSnapshot {
	if r == nil {
		return PickSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return PickSnapshot{
		Applied: r.picks.applied,
		Cleared: r.picks.cleared,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordRefreshCycle tracks results refresh cycles and errors.
func (r *Recorder) RecordRefreshCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordRefresh(duration, err)
}

func (r *Recorder) ensureStats(provider string) *providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}

func (r *Recorder) snapshot(provider string) providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[provider]; ok && stats != nil {
		return *stats
	}
	return providerStats{}
}
