// Package session holds the office's working state: school profile, fee
// categories, receipt history and the A4 print queue. One Session instance
// backs the whole app; every mutation is written through to the store.
package session

import (
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/models"
	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/printing"
	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/store"
)

// Session owns the receipt records; the print queue only holds receipt ids
// and is re-resolved against history on every read, so a queued id whose
// receipt was deleted resolves to nothing instead of crashing a print run.
type Session struct {
	mu    sync.Mutex
	store store.Store

	profile    models.SchoolProfile
	categories []models.FeeCategory
	history    []models.Receipt
	queue      []string
}

// Load restores all four slots from the store, falling back to built-in
// defaults for slots that have never been written.
func Load(st store.Store) (*Session, error) {
	s := &Session{store: st}

	found, err := st.Load(store.SlotProfile, &s.profile)
	if err != nil {
		return nil, err
	}
	if !found {
		s.profile = models.DefaultSchoolProfile()
	}

	found, err = st.Load(store.SlotCategories, &s.categories)
	if err != nil {
		return nil, err
	}
	if !found {
		s.categories = models.DefaultFeeCategories()
	}

	if _, err := st.Load(store.SlotHistory, &s.history); err != nil {
		return nil, err
	}
	if _, err := st.Load(store.SlotQueue, &s.queue); err != nil {
		return nil, err
	}
	return s, nil
}

// persist writes one slot through to the store. Persistence is best-effort:
// the in-memory state is already mutated, so a failed write is logged and
// the session keeps going.
func (s *Session) persist(slot string, v any) {
	if err := s.store.Save(slot, v); err != nil {
		log.Printf("Failed to persist %s: %v", slot, err)
	}
}

// --- Profile ---

func (s *Session) Profile() models.SchoolProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

func (s *Session) UpdateProfile(p models.SchoolProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// The logo is managed by its own endpoints; keep it across profile saves.
	p.Logo = s.profile.Logo
	s.profile = p
	s.persist(store.SlotProfile, s.profile)
}

func (s *Session) SetLogo(logo *string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Logo = logo
	s.persist(store.SlotProfile, s.profile)
}

// --- Fee categories ---

func (s *Session) Categories() []models.FeeCategory {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.FeeCategory, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *Session) Category(id string) (models.FeeCategory, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return models.FeeCategory{}, false
}

// AddCategory appends a custom category. Categories are never deleted, only
// toggled off, so ids stay stable for old receipts.
func (s *Session) AddCategory(name string, defaultAmount decimal.Decimal) models.FeeCategory {
	s.mu.Lock()
	defer s.mu.Unlock()
	cat := models.FeeCategory{
		ID:            uuid.NewString(),
		Name:          name,
		DefaultAmount: defaultAmount,
		IsEnabled:     true,
		IsCustom:      true,
	}
	s.categories = append(s.categories, cat)
	s.persist(store.SlotCategories, s.categories)
	return cat
}

func (s *Session) UpdateCategory(id, name string, defaultAmount decimal.Decimal) (models.FeeCategory, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories[i].Name = name
			s.categories[i].DefaultAmount = defaultAmount
			s.persist(store.SlotCategories, s.categories)
			return s.categories[i], true
		}
	}
	return models.FeeCategory{}, false
}

func (s *Session) ToggleCategory(id string) (models.FeeCategory, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories[i].IsEnabled = !s.categories[i].IsEnabled
			s.persist(store.SlotCategories, s.categories)
			return s.categories[i], true
		}
	}
	return models.FeeCategory{}, false
}

// --- History ---

// History returns receipts newest-first.
func (s *Session) History() []models.Receipt {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Receipt, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Session) Receipt(id string) (models.Receipt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.history {
		if r.ID == id {
			return r, true
		}
	}
	return models.Receipt{}, false
}

// AddReceipt prepends a receipt so history displays newest-first.
func (s *Session) AddReceipt(r models.Receipt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append([]models.Receipt{r}, s.history...)
	s.persist(store.SlotHistory, s.history)
}

// AddReceipts prepends a bulk batch ahead of existing history, keeping the
// batch's own order intact.
func (s *Session) AddReceipts(rs []models.Receipt) {
	if len(rs) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	merged := make([]models.Receipt, 0, len(rs)+len(s.history))
	merged = append(merged, rs...)
	merged = append(merged, s.history...)
	s.history = merged
	s.persist(store.SlotHistory, s.history)
}

// DeleteReceipt removes the receipt from history and scrubs its id from the
// print queue, so the queue never points at a record that is known gone.
func (s *Session) DeleteReceipt(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i, r := range s.history {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	s.history = append(s.history[:idx], s.history[idx+1:]...)
	s.persist(store.SlotHistory, s.history)

	for i, qid := range s.queue {
		if qid == id {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			s.persist(store.SlotQueue, s.queue)
			break
		}
	}
	return true
}

// --- Print queue ---

func (s *Session) QueueIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.queue))
	copy(out, s.queue)
	return out
}

func (s *Session) QueueLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Enqueue adds an id with set semantics: already-queued ids keep their
// position, new ids go to the back.
func (s *Session) Enqueue(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.enqueueLocked(id) {
		s.persist(store.SlotQueue, s.queue)
	}
}

func (s *Session) EnqueueMany(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := false
	for _, id := range ids {
		if s.enqueueLocked(id) {
			changed = true
		}
	}
	if changed {
		s.persist(store.SlotQueue, s.queue)
	}
}

func (s *Session) enqueueLocked(id string) bool {
	for _, qid := range s.queue {
		if qid == id {
			return false
		}
	}
	s.queue = append(s.queue, id)
	return true
}

// ToggleQueue adds the id if absent, removes it if present, and reports
// whether the id is queued afterwards.
func (s *Session) ToggleQueue(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, qid := range s.queue {
		if qid == id {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			s.persist(store.SlotQueue, s.queue)
			return false
		}
	}
	s.queue = append(s.queue, id)
	s.persist(store.SlotQueue, s.queue)
	return true
}

func (s *Session) ClearQueue() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = nil
	s.persist(store.SlotQueue, s.queue)
}

// SelectAllHistory replaces the queue with every receipt id, in history's
// current (newest-first) order.
func (s *Session) SelectAllHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = make([]string, 0, len(s.history))
	for _, r := range s.history {
		s.queue = append(s.queue, r.ID)
	}
	s.persist(store.SlotQueue, s.queue)
}

// ResolveQueue maps the queued ids to receipts in queue order. Ids that no
// longer exist in history are silently skipped; the deletion path already
// scrubs the queue, so this filter is a backstop, not the primary guard.
func (s *Session) ResolveQueue() []models.Receipt {
	s.mu.Lock()
	defer s.mu.Unlock()
	byID := make(map[string]models.Receipt, len(s.history))
	for _, r := range s.history {
		byID[r.ID] = r
	}
	out := make([]models.Receipt, 0, len(s.queue))
	for _, id := range s.queue {
		if r, ok := byID[id]; ok {
			out = append(out, r)
		}
	}
	return out
}

// PageEstimate is the A4 sheet count advertised next to the queue, derived
// from the raw queue length.
func (s *Session) PageEstimate() int {
	return printing.PageEstimate(s.QueueLen())
}
