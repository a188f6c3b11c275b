package editor

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MrSnakeDoc/tapbook/internal/domain"
	"github.com/MrSnakeDoc/tapbook/internal/logger"
	"github.com/MrSnakeDoc/tapbook/internal/style"
)

// Saver persists an edited business. It is satisfied by store.Businesses.
type Saver interface {
	Update(ctx context.Context, slug, token string, b *domain.Business) (*domain.Business, error)
}

// PatternState remembers which generator produced the stored pattern.
type PatternState struct {
	ID      string               `json:"id,omitempty"`
	Options style.PatternOptions `json:"options"`
}

// CSSState is the editor's custom CSS text and its last check.
// Draft may differ from the persisted CSS when it does not validate.
type CSSState struct {
	Draft  string             `json:"draft"`
	Status style.CSSValidation `json:"status"`
}

// Snapshot is what the edit UI renders from.
type Snapshot struct {
	Business     *domain.Business    `json:"business"`
	Shadows      []style.ShadowLayer `json:"shadows"`
	Pattern      PatternState        `json:"pattern"`
	CSS          CSSState            `json:"css"`
	Dirty        bool                `json:"dirty"`
	SavedVersion int64               `json:"savedVersion"`
	Presentation style.Presentation  `json:"presentation"`
}

var ErrSessionClosed = errors.New("edit session closed")

const flushTimeout = 10 * time.Second

// Session is one authorized editing context for a business. Edits apply to
// an in-memory draft and are saved after the autosave delay with no further
// edits.
type Session struct {
	mu     sync.Mutex
	saveMu sync.Mutex

	slug  string
	token string

	business *domain.Business
	shadow   *style.ShadowStack
	pattern  PatternState
	css      CSSState

	savedVersion int64
	timer        *time.Timer
	delay        time.Duration
	closed       bool
	lastTouched  time.Time

	saver Saver
	log   logger.Logger
	now   func() time.Time
}

func newSession(b *domain.Business, token string, saver Saver, delay time.Duration, log logger.Logger, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	return &Session{
		slug:         b.Slug,
		token:        token,
		business:     b.Clone(),
		shadow:       shadowStackFor(b.Theme.CustomShadow),
		pattern:      PatternState{Options: style.DefaultPatternOptions()},
		css:          CSSState{Draft: b.Theme.CustomCSS, Status: style.ValidateCustomCSS(b.Theme.CustomCSS)},
		savedVersion: b.Version,
		delay:        delay,
		saver:        saver,
		log:          log.With(logger.String("slug", b.Slug)),
		now:          now,
		lastTouched:  now(),
	}
}

// shadowStackFor rebuilds the layer list behind a stored shadow when it is
// one of the shipped presets. Anything else starts from the default stack.
func shadowStackFor(css string) *style.ShadowStack {
	if css != "" {
		for _, p := range style.ShadowPresets() {
			if p.CSS() == css {
				return style.NewShadowStack(p.Layers...)
			}
		}
	}
	return style.NewShadowStack()
}

func (s *Session) Slug() string { return s.slug }

// Snapshot returns a copy of the current draft.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	b := s.business.Public()
	return Snapshot{
		Business:     b,
		Shadows:      s.shadow.Layers(),
		Pattern:      s.pattern,
		CSS:          CSSState{Draft: s.css.Draft, Status: s.css.Status},
		Dirty:        s.business.Version != s.savedVersion,
		SavedVersion: s.savedVersion,
		Presentation: style.Resolve(b.Theme, b.Layout),
	}
}

// Apply runs ops in order against a copy of the draft. Either every op
// applies or none does. A successful batch bumps the version and restarts
// the autosave timer.
func (s *Session) Apply(ops []Operation) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return Snapshot{}, ErrSessionClosed
	}

	d := &draft{
		business: s.business.Clone(),
		shadow:   s.shadow.Clone(),
		pattern:  s.pattern,
		css:      s.css,
	}
	for _, op := range ops {
		if err := d.apply(op); err != nil {
			return Snapshot{}, err
		}
	}

	s.business, s.shadow, s.pattern, s.css = d.business, d.shadow, d.pattern, d.css
	if len(ops) > 0 {
		s.business.Version++
		s.lastTouched = s.now()
		s.armLocked()
	}
	return s.snapshotLocked(), nil
}

func (s *Session) armLocked() {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, func() {
		ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
		defer cancel()
		_ = s.Flush(ctx)
	})
}

// Flush saves pending edits now. A stale version means another session
// saved a newer copy; the pending edits are dropped with a warning.
func (s *Session) Flush(ctx context.Context) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.business.Version == s.savedVersion {
		s.mu.Unlock()
		return nil
	}
	pending := s.business.Clone()
	s.mu.Unlock()

	saved, err := s.saver.Update(ctx, s.slug, s.token, pending)

	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case err == nil:
		s.savedVersion = saved.Version
		s.log.Debug("autosaved", logger.Int64("version", saved.Version))
		return nil
	case errors.Is(err, domain.ErrStaleVersion):
		s.savedVersion = pending.Version
		s.log.Warn("💾 dropped stale autosave", logger.Int64("version", pending.Version))
		return err
	default:
		s.log.Error("💾 autosave failed", logger.Error(err))
		if !s.closed {
			s.armLocked()
		}
		return err
	}
}

// Close saves pending edits and stops the timer. The session rejects
// further edits.
func (s *Session) Close(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return s.Flush(ctx)
}

func (s *Session) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Session) idleSince(t time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.lastTouched.After(t)
}

// reopen undoes Close after a failed save so edits keep flowing.
func (s *Session) reopen() {
	s.mu.Lock()
	s.closed = false
	s.armLocked()
	s.mu.Unlock()
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastTouched = s.now()
	s.mu.Unlock()
}
