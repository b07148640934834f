// Package txtracker drives the bridge transaction state machine from the
// engine's lifecycle event stream. It is the single subscriber of the stream
// and demultiplexes events by transaction id against a small in-process
// registry of tracked ids.
//
// Tracking registrations are transient and do not survive a restart; the
// orchestration layer re-establishes them from the store's in-flight query.
// The store remains the source of truth for every record: each event triggers
// a fresh read, one mapped mutation, and a single write.
package txtracker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/crosslane/bridgewatch/internal/bridgetx"
	"github.com/crosslane/bridgewatch/internal/pkg/logger"
	"github.com/crosslane/bridgewatch/internal/pkg/x/chflow"
)

var ErrServiceAlreadyStarted = errors.New("service already started")

// OnUpdateFunc receives the freshly persisted record after an event advanced
// it. It is never invoked for ids that were untracked or after Close, and
// never after a failed write.
type OnUpdateFunc func(tx bridgetx.Transaction)

// Service consumes engine lifecycle events and applies them to tracked
// transactions.
type Service interface {
	// Start subscribes to the event stream and begins processing. It returns
	// ErrServiceAlreadyStarted on a second call before Close.
	Start(ctx context.Context) error

	// Track registers a transaction id and its update callback. Multiple ids
	// may be tracked concurrently and independently.
	Track(id string, onUpdate OnUpdateFunc)

	// Untrack removes the registration. Events for the id arriving afterward
	// are dropped without a storage write or callback.
	Untrack(id string)

	// Close stops processing and clears all tracked state. Work already in
	// flight re-checks the disposed state before persisting or calling back.
	Close()
}

type service struct {
	source EventSource
	store  TransactionStore
	now    func() time.Time

	mu        sync.Mutex
	isStarted bool
	disposed  bool
	closeFunc func()
	tracked   map[string]OnUpdateFunc

	// txLocks serializes read-modify-write cycles per transaction id so two
	// events for the same id cannot interleave and lose an update. Events for
	// different ids still process independently.
	txLocks map[string]*sync.Mutex
}

var _ Service = (*service)(nil)

// New creates a tracker over the given event source and store.
func New(source EventSource, store TransactionStore) *service {
	return &service{
		source:  source,
		store:   store,
		now:     func() time.Time { return time.Now().UTC() },
		tracked: make(map[string]OnUpdateFunc),
		txLocks: make(map[string]*sync.Mutex),
	}
}

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	eventCh, err := s.source.Subscribe(ctx)
	if err != nil {
		cancel()
		return err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)

		for {
			event, ok := chflow.Receive(ctx, eventCh)
			if !ok {
				return
			}

			s.handleEvent(ctx, event)
		}
	}()

	s.closeFunc = func() {
		cancel()
		<-done
	}
	s.disposed = false
	s.isStarted = true
	return nil
}

func (s *service) Track(id string, onUpdate OnUpdateFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return
	}
	s.tracked[id] = onUpdate
}

func (s *service) Untrack(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tracked, id)
	delete(s.txLocks, id)
}

func (s *service) Close() {
	s.mu.Lock()
	s.disposed = true
	s.tracked = make(map[string]OnUpdateFunc)
	s.txLocks = make(map[string]*sync.Mutex)
	closeFunc := s.closeFunc
	s.isStarted = false
	s.closeFunc = nil
	s.mu.Unlock()

	if closeFunc != nil {
		closeFunc()
	}
}

// lookupTracked returns the callback and per-id lock for an id still tracked
// on a live tracker, or ok=false when the event must be dropped.
func (s *service) lookupTracked(id string) (OnUpdateFunc, *sync.Mutex, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return nil, nil, false
	}

	onUpdate, ok := s.tracked[id]
	if !ok {
		return nil, nil, false
	}

	txLock, ok := s.txLocks[id]
	if !ok {
		txLock = new(sync.Mutex)
		s.txLocks[id] = txLock
	}

	return onUpdate, txLock, true
}

// stillTracked re-checks the registration after I/O so callbacks never fire
// for ids untracked or disposed mid-flight.
func (s *service) stillTracked(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return false
	}

	_, ok := s.tracked[id]
	return ok
}

func (s *service) handleEvent(ctx context.Context, event Event) {
	onUpdate, txLock, ok := s.lookupTracked(event.TransactionID)
	if !ok {
		return
	}

	txLock.Lock()
	defer txLock.Unlock()

	tx, err := s.store.GetTransaction(ctx, event.TransactionID)
	if err != nil {
		logger.Debug(ctx, "dropping event for unknown transaction",
			"event.method", event.Method,
			"transaction.id", event.TransactionID,
			"error", err,
		)
		return
	}

	if !s.applyEvent(&tx, event) {
		return
	}

	if !s.stillTracked(event.TransactionID) {
		return
	}

	if err := s.store.SaveTransaction(ctx, tx); err != nil {
		logger.Error(ctx, "failed to persist event-driven step transition",
			"event.method", event.Method,
			"transaction.id", event.TransactionID,
			"error", err,
		)
		return
	}

	if !s.stillTracked(event.TransactionID) {
		return
	}

	onUpdate(tx)
}

// applyEvent maps one engine event onto the record and reports whether the
// record changed. Step completion and the advancement of the following step
// happen in the same mutation so the caller persists them as one write.
func (s *service) applyEvent(tx *bridgetx.Transaction, event Event) bool {
	now := s.now()

	switch event.Method {
	case methodApprove:
		return tx.CompleteStep(bridgetx.StepApprove, event.TxHash(), now)

	case methodBurn:
		changed := tx.CompleteStep(bridgetx.StepBurn, event.TxHash(), now)
		if changed && event.TxHash() != "" {
			tx.SourceTxHash = event.TxHash()
		}
		return changed

	case methodFetchAttestation:
		data := event.AttestationData()
		if data == "" {
			return false
		}

		// The attestation payload arrives before the step is done: record it
		// and make sure the step shows progress, but leave completion to the
		// mint event.
		tx.AttestationHash = data
		tx.StartStep(bridgetx.StepAttestation, now)
		tx.Touch(now)
		return true

	case methodMint:
		// No explicit attestation-completed event exists; the mint event is
		// the signal that attestation resolved.
		if step := tx.Step(bridgetx.StepAttestation); step != nil && step.Status != bridgetx.StepCompleted {
			tx.CompleteStep(bridgetx.StepAttestation, "", now)
		}

		changed := tx.CompleteStep(bridgetx.StepMint, event.TxHash(), now)
		if changed && event.TxHash() != "" {
			tx.DestinationTxHash = event.TxHash()
		}
		return changed

	default:
		return false
	}
}
