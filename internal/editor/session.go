// Package editor keeps the editable entries of one résumé session and
// re-derives the document from them after every mutation.
package editor

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/xkiven/ResumeBuilder/internal/domain"
	"github.com/xkiven/ResumeBuilder/internal/model"
)

var (
	ErrUnknownSection = errors.New("unknown section")
	ErrUnknownField   = errors.New("unknown field")
	ErrEntryNotFound  = errors.New("entry not found")
	ErrEntryRemoving  = errors.New("entry is being removed")
)

// DefaultRemoveDelay is how long a leaving entry stays collected before the
// removal completes by itself.
const DefaultRemoveDelay = 300 * time.Millisecond

// EntryID is a session-scoped handle. It is never persisted and never
// reused, even across sections.
type EntryID uint64

// Entry is a snapshot of one editable entry.
type Entry struct {
	ID      EntryID `json:"id"`
	Section Section `json:"section"`
	Fields  Fields  `json:"fields"`
	Leaving bool    `json:"leaving,omitempty"`
}

type entry struct {
	section Section
	fields  Fields
	leaving bool
}

// Listener receives the freshly collected document after a mutation. It runs
// with the session locked and must not call back into the session.
type Listener func(doc model.Resume)

// Session owns the entries of one editing session. All mutations are
// serialized and each one is followed by a full re-collection.
type Session struct {
	mu        sync.Mutex
	userID    string
	nextID    EntryID
	entries   map[EntryID]*entry
	order     map[Section][]EntryID
	basic     Fields
	listeners []Listener
	inflight  map[string]struct{}

	removeDelay time.Duration
}

func NewSession(userID string) *Session {
	return &Session{
		userID:   strings.TrimSpace(userID),
		entries:  map[EntryID]*entry{},
		order:    map[Section][]EntryID{},
		basic:    Fields{},
		inflight: map[string]struct{}{},

		removeDelay: DefaultRemoveDelay,
	}
}

// SetRemoveDelay changes the delay used by later BeginRemove calls.
func (s *Session) SetRemoveDelay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeDelay = d
}

func (s *Session) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

func (s *Session) SetUserID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = strings.TrimSpace(id)
	s.notify()
}

// OnChange registers a listener for every subsequent mutation.
func (s *Session) OnChange(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// AddEntry appends an entry to section, pre-populated from initial.
func (s *Session) AddEntry(section Section, initial Fields) (EntryID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := s.add(section, initial)
	if err != nil {
		return 0, err
	}
	s.notify()
	return id, nil
}

func (s *Session) add(section Section, initial Fields) (EntryID, error) {
	names, ok := sectionFields[section]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}
	fields := Fields{}
	for k, v := range initial {
		if !knownField(names, k) {
			return 0, fmt.Errorf("%w: %s.%s", ErrUnknownField, section, k)
		}
		fields[k] = v
	}
	s.nextID++
	id := s.nextID
	s.entries[id] = &entry{section: section, fields: fields}
	s.order[section] = append(s.order[section], id)
	return id, nil
}

// SetField updates one field of an entry.
func (s *Session) SetField(id EntryID, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrEntryNotFound, id)
	}
	if e.leaving {
		return fmt.Errorf("%w: %d", ErrEntryRemoving, id)
	}
	if !knownField(sectionFields[e.section], field) {
		return fmt.Errorf("%w: %s.%s", ErrUnknownField, e.section, field)
	}
	e.fields[field] = value
	s.notify()
	return nil
}

// SetFields updates several fields of an entry at once. Either every field
// is applied or none is, and listeners run once.
func (s *Session) SetFields(id EntryID, f Fields) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrEntryNotFound, id)
	}
	if e.leaving {
		return fmt.Errorf("%w: %d", ErrEntryRemoving, id)
	}
	names := sectionFields[e.section]
	for k := range f {
		if !knownField(names, k) {
			return fmt.Errorf("%w: %s.%s", ErrUnknownField, e.section, k)
		}
	}
	if len(f) == 0 {
		return nil
	}
	for k, v := range f {
		e.fields[k] = v
	}
	s.notify()
	return nil
}

// SetBasic updates one of the singleton basic-info fields.
func (s *Session) SetBasic(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !knownField(basicFields, field) {
		return fmt.Errorf("%w: basic_info.%s", ErrUnknownField, field)
	}
	s.basic[field] = value
	s.notify()
	return nil
}

// RemoveEntry detaches an entry immediately.
func (s *Session) RemoveEntry(id EntryID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.detach(id); err != nil {
		return err
	}
	s.notify()
	return nil
}

// BeginRemove marks an entry as leaving. It stays in the collected document
// during the exit transition but no longer accepts edits. The removal
// completes after the session's remove delay unless FinishRemove gets there
// first.
func (s *Session) BeginRemove(id EntryID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrEntryNotFound, id)
	}
	if e.leaving {
		return nil
	}
	e.leaving = true
	time.AfterFunc(s.removeDelay, func() {
		if err := s.RemoveEntry(id); err != nil && !errors.Is(err, ErrEntryNotFound) {
			slog.Warn("editor: deferred removal failed", "entry_id", id, "error", err)
		}
	})
	return nil
}

// FinishRemove completes a removal started with BeginRemove.
func (s *Session) FinishRemove(id EntryID) error {
	return s.RemoveEntry(id)
}

func (s *Session) detach(id EntryID) error {
	e, ok := s.entries[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrEntryNotFound, id)
	}
	delete(s.entries, id)
	ids := s.order[e.section]
	for i, v := range ids {
		if v == id {
			s.order[e.section] = append(ids[:i:i], ids[i+1:]...)
			break
		}
	}
	return nil
}

// Seed replaces all entries with one entry per record of doc.
func (s *Session) Seed(doc model.Resume) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = map[EntryID]*entry{}
	s.order = map[Section][]EntryID{}
	s.basic = BasicFields(doc.Basic())
	if doc.UserID != "" {
		s.userID = doc.UserID
	}
	for _, e := range doc.Education {
		s.mustAdd(Education, EducationFields(e))
	}
	for _, c := range doc.CampusExperience {
		s.mustAdd(Campus, CampusFields(c))
	}
	for _, e := range doc.Experience {
		s.mustAdd(Experience, ExperienceFields(e))
	}
	for _, p := range doc.Projects {
		s.mustAdd(Projects, ProjectFields(p))
	}
	for _, sk := range doc.Skills {
		s.mustAdd(Skills, SkillFields(sk))
	}
	s.notify()
}

// mustAdd is only called with fields produced by the *Fields helpers.
func (s *Session) mustAdd(section Section, f Fields) {
	if _, err := s.add(section, f); err != nil {
		panic(err)
	}
}

// AppendProject adds a project record as a new entry after any existing ones.
func (s *Session) AppendProject(p model.Project) (EntryID, error) {
	return s.AddEntry(Projects, ProjectFields(p))
}

// Entries returns the entries of a section in display order.
func (s *Session) Entries(section Section) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.order[section]
	out := make([]Entry, 0, len(ids))
	for _, id := range ids {
		e := s.entries[id]
		out = append(out, Entry{ID: id, Section: section, Fields: e.fields.clone(), Leaving: e.leaving})
	}
	return out
}

// Entry returns a snapshot of a single entry.
func (s *Session) Entry(id EntryID) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		return Entry{}, false
	}
	return Entry{ID: id, Section: e.section, Fields: e.fields.clone(), Leaving: e.leaving}, true
}

func (s *Session) Basic() Fields {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.basic.clone()
}

// Begin marks action as in flight. It fails with domain.ErrBusy while the
// same action is outstanding; call done when the request resolves.
func (s *Session) Begin(action string) (done func(), err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.inflight[action]; ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrBusy, action)
	}
	s.inflight[action] = struct{}{}
	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.inflight, action)
			s.mu.Unlock()
		})
	}, nil
}

func (s *Session) notify() {
	if len(s.listeners) == 0 {
		return
	}
	doc := s.collectDocument()
	for _, l := range s.listeners {
		l(doc)
	}
}
