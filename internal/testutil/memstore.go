// Package testutil provides in-memory stand-ins for the MongoDB repositories so
// handler and router tests run without a database.
package testutil

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"toyland-backend/internal/models"
)

// ErrStoreDown is returned by every call while a store's Fail flag is set.
var ErrStoreDown = errors.New("store unavailable")

// Clock returns strictly increasing timestamps so newest-first ordering is deterministic.
type Clock struct {
	mu   sync.Mutex
	last time.Time
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now().UTC()
	if !now.After(c.last) {
		now = c.last.Add(time.Millisecond)
	}
	c.last = now
	return now
}

type CategoryStore struct {
	mu         sync.Mutex
	Categories []models.Category
	Fail       bool
}

func (s *CategoryStore) List(ctx context.Context) ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return nil, ErrStoreDown
	}
	return append([]models.Category{}, s.Categories...), nil
}

func (s *CategoryStore) FindByID(ctx context.Context, id bson.ObjectID) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return nil, ErrStoreDown
	}
	for _, c := range s.Categories {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, nil
}

// ToyStore mirrors the ToyRepo query semantics over a slice.
type ToyStore struct {
	mu    sync.Mutex
	clock Clock
	toys  []models.Toy
	Fail  bool
}

func (s *ToyStore) List(ctx context.Context, page models.ToyPage) ([]models.Toy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return nil, ErrStoreDown
	}

	out := []models.Toy{}
	for _, t := range s.newestFirst() {
		if page.Category == "" || t.Category == page.Category {
			out = append(out, t)
		}
	}
	skip := page.Skip()
	if skip >= int64(len(out)) {
		return []models.Toy{}, nil
	}
	out = out[skip:]
	if page.Limit > 0 && page.Limit < int64(len(out)) {
		out = out[:page.Limit]
	}
	return out, nil
}

func (s *ToyStore) SearchByName(ctx context.Context, text string) ([]models.Toy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return nil, ErrStoreDown
	}
	needle := strings.ToLower(text)
	out := []models.Toy{}
	for _, t := range s.toys {
		if strings.Contains(strings.ToLower(t.Name), needle) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *ToyStore) FindByOwner(ctx context.Context, email string) ([]models.Toy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return nil, ErrStoreDown
	}
	out := []models.Toy{}
	for _, t := range s.toys {
		if t.PostedBy == email {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *ToyStore) FindByID(ctx context.Context, id bson.ObjectID) (*models.Toy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return nil, ErrStoreDown
	}
	if i := s.indexOf(id); i >= 0 {
		found := s.toys[i]
		return &found, nil
	}
	return nil, nil
}

func (s *ToyStore) EstimatedCount(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return 0, ErrStoreDown
	}
	return int64(len(s.toys)), nil
}

func (s *ToyStore) Create(ctx context.Context, toy *models.Toy) (*models.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return nil, ErrStoreDown
	}
	toy.ID = bson.NewObjectID()
	toy.CreatedAt = s.clock.Now()
	s.toys = append(s.toys, *toy)
	return &models.InsertResult{Acknowledged: true, InsertedID: toy.ID}, nil
}

func (s *ToyStore) Upsert(ctx context.Context, id bson.ObjectID, update models.ToyUpdate) (*models.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return nil, ErrStoreDown
	}

	result := &models.UpdateResult{Acknowledged: true}
	i := s.indexOf(id)
	if i < 0 {
		s.toys = append(s.toys, models.Toy{
			ID:          id,
			Name:        update.Name,
			Description: update.Description,
			Price:       update.Price,
			Quantity:    update.Quantity,
			URL:         update.URL,
		})
		upserted := id
		result.UpsertedCount = 1
		result.UpsertedID = &upserted
		return result, nil
	}

	t := &s.toys[i]
	result.MatchedCount = 1
	if t.Name != update.Name || t.Description != update.Description ||
		t.Price != update.Price || t.Quantity != update.Quantity || t.URL != update.URL {
		result.ModifiedCount = 1
	}
	t.Name, t.Description, t.Price, t.Quantity, t.URL = update.Name, update.Description, update.Price, update.Quantity, update.URL
	return result, nil
}

func (s *ToyStore) Delete(ctx context.Context, id bson.ObjectID) (*models.DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return nil, ErrStoreDown
	}
	i := s.indexOf(id)
	if i < 0 {
		return &models.DeleteResult{Acknowledged: true}, nil
	}
	s.toys = append(s.toys[:i], s.toys[i+1:]...)
	return &models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func (s *ToyStore) indexOf(id bson.ObjectID) int {
	for i, t := range s.toys {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *ToyStore) newestFirst() []models.Toy {
	out := append([]models.Toy{}, s.toys...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

type FeedbackStore struct {
	mu       sync.Mutex
	clock    Clock
	feedback []models.Feedback
	Fail     bool
}

func (s *FeedbackStore) Create(ctx context.Context, feedback *models.Feedback) (*models.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return nil, ErrStoreDown
	}
	feedback.ID = bson.NewObjectID()
	feedback.CreatedAt = s.clock.Now()
	s.feedback = append(s.feedback, *feedback)
	return &models.InsertResult{Acknowledged: true, InsertedID: feedback.ID}, nil
}

func (s *FeedbackStore) List(ctx context.Context) ([]models.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return nil, ErrStoreDown
	}
	out := append([]models.Feedback{}, s.feedback...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Pinger reports Err from every Ping.
type Pinger struct {
	Err error
}

func (p Pinger) Ping(ctx context.Context) error {
	return p.Err
}

// Notifier forwards every published message to Messages.
type Notifier struct {
	Messages chan string
	Err      error
}

func NewNotifier() *Notifier {
	return &Notifier{Messages: make(chan string, 16)}
}

func (n *Notifier) Publish(ctx context.Context, message string) error {
	n.Messages <- message
	return n.Err
}
