package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-ranker/internal/types"
)

// StoredResume is one uploaded resume held in memory.
type StoredResume struct {
	ID         string
	Filename   string
	Text       string
	UploadedAt time.Time
}

// ResumeInfo is the listing view of a stored resume.
type ResumeInfo struct {
	ResumeID   string    `json:"resume_id"`
	Filename   string    `json:"filename"`
	TextLength int       `json:"text_length"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type storedResult struct {
	result  *types.AnalysisResult
	addedAt time.Time
}

// Store holds uploaded resume texts and finished analysis results in
// process memory, both maps behind one RWMutex. A background janitor
// sweeps out entries older than the TTL. A restart empties the store.
type Store struct {
	mu      sync.RWMutex
	resumes map[string]*StoredResume
	order   []string // resume ids in upload order
	results map[string]*storedResult

	maxResumes int
	ttl        time.Duration

	sweepTicker *time.Ticker
	sweepStop   chan struct{}
}

// NewStore creates a store capped at maxResumes uploads whose entries
// expire after ttl. A non-positive ttl disables expiry.
func NewStore(maxResumes int, ttl time.Duration) *Store {
	s := &Store{
		resumes:    make(map[string]*StoredResume),
		results:    make(map[string]*storedResult),
		maxResumes: maxResumes,
		ttl:        ttl,
	}

	if ttl > 0 {
		s.sweepTicker = time.NewTicker(min(ttl, time.Minute))
		s.sweepStop = make(chan struct{})
		go s.sweepLoop()
	}

	return s
}

// AddResume stores uploaded resume text under a fresh id. Re-uploading a
// filename replaces the previous text in place, so filenames stay unique
// and usable as engine ids.
func (s *Store) AddResume(filename, text string) (*StoredResume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.order {
		if r := s.resumes[id]; r != nil && r.Filename == filename {
			r.Text = text
			r.UploadedAt = time.Now()
			return r, nil
		}
	}

	if s.maxResumes > 0 && len(s.resumes) >= s.maxResumes {
		return nil, &ErrStoreFull{Limit: s.maxResumes}
	}

	r := &StoredResume{
		ID:         uuid.New().String(),
		Filename:   filename,
		Text:       text,
		UploadedAt: time.Now(),
	}
	s.resumes[r.ID] = r
	s.order = append(s.order, r.ID)
	return r, nil
}

// Resume looks up one stored resume by id.
func (s *Store) Resume(id string) (*StoredResume, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.resumes[id]
	return r, ok
}

// ListResumes returns listing views in upload order.
func (s *Store) ListResumes() []ResumeInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	infos := make([]ResumeInfo, 0, len(s.order))
	for _, id := range s.order {
		r := s.resumes[id]
		infos = append(infos, ResumeInfo{
			ResumeID:   r.ID,
			Filename:   r.Filename,
			TextLength: len(r.Text),
			UploadedAt: r.UploadedAt,
		})
	}
	return infos
}

// ResumeInputs returns every stored resume as engine input, in upload
// order, identified by filename.
func (s *Store) ResumeInputs() []types.ResumeInput {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inputs := make([]types.ResumeInput, 0, len(s.order))
	for _, id := range s.order {
		r := s.resumes[id]
		inputs = append(inputs, types.ResumeInput{ID: r.Filename, Text: r.Text})
	}
	return inputs
}

// ClearResumes empties the upload store and reports how many entries it
// removed.
func (s *Store) ClearResumes() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := len(s.resumes)
	s.resumes = make(map[string]*StoredResume)
	s.order = nil
	return removed
}

// AddResult stores a finished analysis under a fresh id.
func (s *Store) AddResult(result *types.AnalysisResult) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	s.results[id] = &storedResult{result: result, addedAt: time.Now()}
	return id
}

// Result looks up a stored analysis by id.
func (s *Store) Result(id string) (*types.AnalysisResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sr, ok := s.results[id]
	if !ok {
		return nil, false
	}
	return sr.result, true
}

func (s *Store) sweepLoop() {
	for {
		select {
		case <-s.sweepTicker.C:
			s.removeExpired(time.Now())
		case <-s.sweepStop:
			return
		}
	}
}

// removeExpired drops resumes and results older than the TTL.
func (s *Store) removeExpired(now time.Time) {
	cutoff := now.Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.order[:0]
	for _, id := range s.order {
		if r := s.resumes[id]; r != nil && r.UploadedAt.Before(cutoff) {
			delete(s.resumes, id)
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept

	for id, sr := range s.results {
		if sr.addedAt.Before(cutoff) {
			delete(s.results, id)
		}
	}
}

// Stop halts the janitor goroutine.
func (s *Store) Stop() {
	if s.sweepTicker != nil {
		s.sweepTicker.Stop()
	}
	if s.sweepStop != nil {
		close(s.sweepStop)
	}
}
