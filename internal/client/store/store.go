package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophtodo/internal/client/models"
	"github.com/dmitrijs2005/gophtodo/internal/logging"
	"github.com/dmitrijs2005/gophtodo/internal/todo"
)

const defaultCommitTimeout = 5 * time.Second

var _ todo.Committer = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithCommitTimeout bounds how long Commit waits for the journal.
func WithCommitTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.commitTimeout = d
		}
	}
}

// WithClock sets the source of CommittedAt timestamps.
func WithClock(fn func() time.Time) Option {
	return func(s *Store) { s.now = fn }
}

type Store struct {
	journal       Journal
	logger        logging.Logger
	commitTimeout time.Duration
	now           func() time.Time

	// deliverMu orders commits and their subscriber callbacks. It is
	// always taken before mu.
	deliverMu sync.Mutex

	mu     sync.Mutex
	state  *state
	subs   []*subscription
	nextID int
}

// Open replays the journal and returns a store positioned after its last record.
// Records with an unknown event name are skipped with a warning.
func Open(ctx context.Context, journal Journal, logger logging.Logger, opts ...Option) (*Store, error) {
	s := &Store{
		journal:       journal,
		logger:        logger.With("module", "store"),
		commitTimeout: defaultCommitTimeout,
		now:           time.Now,
		state:         newState(),
	}
	for _, opt := range opts {
		opt(s)
	}

	records, err := journal.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load journal: %w", err)
	}

	for _, rec := range records {
		ev, err := todo.DecodeEvent(rec.Name, rec.Payload)
		if errors.Is(err, todo.ErrUnknownEvent) {
			s.logger.Warn(ctx, "skipping unknown event", "seq", rec.Seq, "name", rec.Name)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("replay event %d: %w", rec.Seq, err)
		}
		s.state.apply(ev)
	}

	s.logger.Info(ctx, "store opened", "events", len(records), "todos", len(s.state.todos))
	return s, nil
}

// Commit journals events as one batch and applies them. Failures are logged
// and leave the state untouched.
func (s *Store) Commit(events ...todo.Event) {
	if len(events) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.commitTimeout)
	defer cancel()

	if err := s.commit(ctx, events); err != nil {
		s.logger.Error(ctx, "commit failed", "events", eventNames(events), "error", err)
	}
}

func (s *Store) commit(ctx context.Context, events []todo.Event) error {
	at := s.now().UTC()
	records := make([]*models.EventRecord, 0, len(events))
	for _, ev := range events {
		name, payload, err := todo.EncodeEvent(ev)
		if err != nil {
			return err
		}
		records = append(records, &models.EventRecord{Name: name, Payload: payload, CommittedAt: at})
	}

	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	s.mu.Lock()
	if err := s.journal.Append(ctx, records); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("append to journal: %w", err)
	}
	for _, ev := range events {
		s.state.apply(ev)
	}
	notify := s.refreshLocked()
	s.mu.Unlock()

	s.logger.Debug(ctx, "committed", "events", eventNames(events), "last_seq", records[len(records)-1].Seq)

	for _, fn := range notify {
		fn()
	}
	return nil
}

// Query evaluates q against the current state. Todos come back in creation order.
func (s *Store) Query(q todo.Query) []todo.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.query(q)
}

// UIState returns the current UI state.
func (s *Store) UIState() todo.UIState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ui
}

// Subscribe calls fn with the result of q now and again after every commit
// that changes it. The returned func cancels the subscription.
func (s *Store) Subscribe(q todo.Query, fn func([]todo.Todo)) (cancel func()) {
	var last []todo.Todo
	return s.subscribe(func(st *state) func() {
		res := st.query(q)
		if last != nil && slices.EqualFunc(last, res, sameTodo) {
			return nil
		}
		last = res
		delivered := slices.Clone(res)
		return func() { fn(delivered) }
	})
}

// SubscribeUIState is Subscribe for the UI state record.
func (s *Store) SubscribeUIState(fn func(todo.UIState)) (cancel func()) {
	var (
		last  todo.UIState
		fired bool
	)
	return s.subscribe(func(st *state) func() {
		ui := st.ui
		if fired && ui == last {
			return nil
		}
		last, fired = ui, true
		return func() { fn(ui) }
	})
}

type subscription struct {
	id      int
	refresh func(*state) func()
}

func (s *Store) subscribe(refresh func(*state) func()) func() {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	s.mu.Lock()
	s.nextID++
	sub := &subscription{id: s.nextID, refresh: refresh}
	s.subs = append(s.subs, sub)
	first := refresh(s.state)
	s.mu.Unlock()

	if first != nil {
		first()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.subs = slices.DeleteFunc(s.subs, func(x *subscription) bool { return x.id == sub.id })
		})
	}
}

func (s *Store) refreshLocked() []func() {
	var notify []func()
	for _, sub := range s.subs {
		if fn := sub.refresh(s.state); fn != nil {
			notify = append(notify, fn)
		}
	}
	return notify
}

func sameTodo(a, b todo.Todo) bool {
	if a.ID != b.ID || a.Text != b.Text || a.Completed != b.Completed {
		return false
	}
	if a.DeletedAt == nil || b.DeletedAt == nil {
		return a.DeletedAt == b.DeletedAt
	}
	return a.DeletedAt.Equal(*b.DeletedAt)
}

func eventNames(events []todo.Event) []string {
	names := make([]string, len(events))
	for i, ev := range events {
		names[i] = ev.EventName()
	}
	return names
}
