package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"genfy-be/internal/dto"
	"genfy-be/internal/entity"
	"genfy-be/internal/repository/contract"
	"genfy-be/internal/repository/memory"
	"genfy-be/internal/repository/specification"
	"genfy-be/internal/repository/unitofwork"
	"genfy-be/pkg/llm"
)

// fakeStore backs every repository in a test with plain maps.
type fakeStore struct {
	mu             sync.Mutex
	users          map[uuid.UUID]*entity.User
	sessions       map[string]*entity.SessionRecord
	history        map[uuid.UUID]*entity.PromptHistory
	sessionUpserts int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    make(map[uuid.UUID]*entity.User),
		sessions: make(map[string]*entity.SessionRecord),
		history:  make(map[uuid.UUID]*entity.PromptHistory),
	}
}

type fakeUow struct {
	store *fakeStore
}

func (f *fakeUow) Begin(ctx context.Context) error { return nil }
func (f *fakeUow) Commit() error                   { return nil }
func (f *fakeUow) Rollback() error                 { return nil }

func (f *fakeUow) UserRepository() contract.UserRepository {
	return &fakeUserRepo{store: f.store}
}

func (f *fakeUow) SessionRecordRepository() contract.SessionRecordRepository {
	return &fakeSessionRepo{store: f.store}
}

func (f *fakeUow) PromptHistoryRepository() contract.PromptHistoryRepository {
	return &fakeHistoryRepo{store: f.store}
}

type fakeFactory struct {
	store *fakeStore
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.users[user.Id] = user
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, spec := range specs {
		if byId, ok := spec.(specification.ByID); ok {
			return r.store.users[byId.ID], nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.users, id)
	return nil
}

type fakeSessionRepo struct {
	store *fakeStore
}

func (r *fakeSessionRepo) Upsert(ctx context.Context, record *entity.SessionRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.sessions[record.Id] = record
	r.store.sessionUpserts++
	return nil
}

func (r *fakeSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SessionRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, spec := range specs {
		if byKey, ok := spec.(specification.ByKey); ok {
			return r.store.sessions[byKey.Key], nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) FindAllByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.SessionRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.SessionRecord
	for _, s := range r.store.sessions {
		if s.UserId == userId {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.sessions, id)
	return nil
}

func (r *fakeSessionRepo) DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for id, s := range r.store.sessions {
		if s.UserId == userId {
			delete(r.store.sessions, id)
		}
	}
	return nil
}

type fakeHistoryRepo struct {
	store *fakeStore
}

func (r *fakeHistoryRepo) Create(ctx context.Context, history *entity.PromptHistory) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.history[history.Id] = history
	return nil
}

func (r *fakeHistoryRepo) Update(ctx context.Context, history *entity.PromptHistory) error {
	return r.Create(ctx, history)
}

func (r *fakeHistoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.history, id)
	return nil
}

func (r *fakeHistoryRepo) DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for id, h := range r.store.history {
		if h.UserId == userId {
			delete(r.store.history, id)
		}
	}
	return nil
}

func (r *fakeHistoryRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PromptHistory, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, spec := range specs {
		if byId, ok := spec.(specification.ByID); ok {
			return r.store.history[byId.ID], nil
		}
	}
	return nil, nil
}

func (r *fakeHistoryRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PromptHistory, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.PromptHistory
	for _, h := range r.store.history {
		matched := true
		for _, spec := range specs {
			if byUser, ok := spec.(specification.ByUserId); ok && h.UserId != byUser.UserId {
				matched = false
			}
			if byCat, ok := spec.(specification.ByCategory); ok && h.Category != byCat.Category {
				matched = false
			}
		}
		if matched {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeHistoryRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	items, err := r.FindAll(ctx, specs...)
	return int64(len(items)), err
}

// stubProvider answers every call with a fixed response.
type stubProvider struct {
	response string
	err      error
	calls    int
}

func (p *stubProvider) Chat(ctx context.Context, messages []llm.Message, opts ...llm.Option) (string, error) {
	p.calls++
	return p.response, p.err
}

func (p *stubProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, nil, opts...)
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type stubPublisher struct {
	mu        sync.Mutex
	generated []dto.PromptGeneratedEvent
	deleted   []dto.SessionDeletedEvent
}

func (p *stubPublisher) PublishPromptGenerated(ctx context.Context, event dto.PromptGeneratedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.generated = append(p.generated, event)
	return nil
}

func (p *stubPublisher) PublishSessionDeleted(ctx context.Context, event dto.SessionDeletedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.deleted = append(p.deleted, event)
	return nil
}

func newTestRegistry(provider llm.LLMProvider) *llm.Registry {
	return llm.NewRegistry("stub", func(name string) (llm.LLMProvider, error) {
		return provider, nil
	})
}

func newTestSessionService(store *fakeStore, provider llm.LLMProvider, pub IPublisherService) ISessionService {
	return NewSessionService(
		&fakeFactory{store: store},
		memory.NewSessionRepository(),
		newTestRegistry(provider),
		pub,
		nopLogger{},
	)
}
