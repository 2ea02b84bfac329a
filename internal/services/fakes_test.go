package services

import (
	"context"
	"sort"
	"sync"

	"github.com/voiceguard/voice-api/internal/models"
	"github.com/voiceguard/voice-api/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes mirroring the Mongo implementations' contracts,
// including the uniqueness errors the indexes would produce.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User // email -> user
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return repository.ErrDuplicateUsername
		}
	}
	u.ID = primitive.NewObjectID()
	cp := *u
	r.users[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID.Hex() == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) UpdateUsername(ctx context.Context, id, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID.Hex() != id && u.Username == username {
			return nil, repository.ErrDuplicateUsername
		}
	}
	for _, u := range r.users {
		if u.ID.Hex() == id {
			u.Username = username
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for email, u := range r.users {
		if u.ID.Hex() == id {
			delete(r.users, email)
			return nil
		}
	}
	return repository.ErrUserNotFound
}

type fakeAnalyticsRepo struct {
	mu      sync.Mutex
	records map[string]*models.AnalyticsRecord // email -> record
}

func newFakeAnalyticsRepo() *fakeAnalyticsRepo {
	return &fakeAnalyticsRepo{records: make(map[string]*models.AnalyticsRecord)}
}

func (r *fakeAnalyticsRepo) Create(ctx context.Context, rec *models.AnalyticsRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[rec.Email]; ok {
		return nil
	}
	cp := *rec
	r.records[rec.Email] = &cp
	return nil
}

func (r *fakeAnalyticsRepo) Upsert(ctx context.Context, rec *models.AnalyticsRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *rec
	r.records[rec.Email] = &cp
	return nil
}

func (r *fakeAnalyticsRepo) DeleteByEmail(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, email)
	return nil
}

func (r *fakeAnalyticsRepo) get(email string) *models.AnalyticsRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.records[email]
}

type fakeSampleRepo struct {
	mu      sync.Mutex
	samples []models.AudioSample
}

func (r *fakeSampleRepo) Create(ctx context.Context, s *models.AudioSample) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = primitive.NewObjectID()
	r.samples = append(r.samples, *s)
	return nil
}

func (r *fakeSampleRepo) CountByEmail(ctx context.Context, email string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, s := range r.samples {
		if s.Email == email {
			n++
		}
	}
	return n, nil
}

func (r *fakeSampleRepo) CountByEmailAndClassification(ctx context.Context, email, classification string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, s := range r.samples {
		if s.Email == email && s.Classification == classification {
			n++
		}
	}
	return n, nil
}

type fakeFeedbackRepo struct {
	mu        sync.Mutex
	entries   []models.FeedbackEntry
	lastLimit int64
}

func (r *fakeFeedbackRepo) Create(ctx context.Context, f *models.FeedbackEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f.ID = primitive.NewObjectID()
	r.entries = append(r.entries, *f)
	return nil
}

func (r *fakeFeedbackRepo) FindByEmail(ctx context.Context, email string, limit int64) ([]models.FeedbackEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastLimit = limit
	out := []models.FeedbackEntry{}
	for _, e := range r.entries {
		if e.Email == email {
			out = append(out, e)
		}
	}
	sortByTimestampDesc(out)
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeFeedbackRepo) FindAll(ctx context.Context) ([]models.FeedbackEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]models.FeedbackEntry{}, r.entries...)
	sortByTimestampDesc(out)
	return out, nil
}

func (r *fakeFeedbackRepo) AggregateByClassification(ctx context.Context) ([]models.ClassificationStat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	buckets := map[string]*models.ClassificationStat{}
	for _, e := range r.entries {
		b, ok := buckets[e.OriginalClassification]
		if !ok {
			b = &models.ClassificationStat{Classification: e.OriginalClassification}
			buckets[e.OriginalClassification] = b
		}
		b.Total++
		if e.UserFeedback == models.FeedbackCorrect {
			b.Correct++
		} else {
			b.Incorrect++
		}
	}
	out := []models.ClassificationStat{}
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Classification < out[j].Classification })
	return out, nil
}

func sortByTimestampDesc(entries []models.FeedbackEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
}
