package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	dmn "github.com/maxfahl/Labyrinths/domain"
	"github.com/maxfahl/Labyrinths/maze"
)

type fakeLogger struct {
	mu       sync.Mutex
	infos    []string
	warnings []string
	errors   []string
}

func (l *fakeLogger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *fakeLogger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, msg)
}

func (l *fakeLogger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, msg)
}

type fakeCache struct {
	items map[string]*maze.MazeData
	gets  int
	err   error
}

func newFakeCache() *fakeCache {
	return &fakeCache{items: map[string]*maze.MazeData{}}
}

func (c *fakeCache) Get(_ context.Context, key string) (*maze.MazeData, bool, error) {
	c.gets++
	if c.err != nil {
		return nil, false, c.err
	}
	m, ok := c.items[key]
	return m, ok, nil
}

func (c *fakeCache) Set(_ context.Context, key string, m *maze.MazeData) error {
	if c.err != nil {
		return c.err
	}
	c.items[key] = m
	return nil
}

type fakeQueue struct {
	sets map[string]map[string]float64
}

func newFakeQueue() *fakeQueue {
	return &fakeQueue{sets: map[string]map[string]float64{}}
}

func (q *fakeQueue) Enqueue(_ context.Context, key string, score float64, member string) error {
	if q.sets[key] == nil {
		q.sets[key] = map[string]float64{}
	}
	q.sets[key][member] = score
	return nil
}

func (q *fakeQueue) ranked(key string) []string {
	var members []string
	for m := range q.sets[key] {
		members = append(members, m)
	}
	sort.Slice(members, func(a, b int) bool {
		return q.sets[key][members[a]] > q.sets[key][members[b]]
	})
	return members
}

func (q *fakeQueue) Tops(_ context.Context, key string, amount int64) ([]string, error) {
	members := q.ranked(key)
	if int64(len(members)) > amount {
		members = members[:amount]
	}
	return members, nil
}

func (q *fakeQueue) Trim(_ context.Context, key string, keep int64) error {
	members := q.ranked(key)
	for idx := keep; idx < int64(len(members)); idx++ {
		delete(q.sets[key], members[idx])
	}
	return nil
}

func (q *fakeQueue) Count(_ context.Context, key string) int64 {
	return int64(len(q.sets[key]))
}

type fakeHistoryRepo struct {
	items map[uuid.UUID]*dmn.SavedMaze
}

func newFakeHistoryRepo() *fakeHistoryRepo {
	return &fakeHistoryRepo{items: map[uuid.UUID]*dmn.SavedMaze{}}
}

func (r *fakeHistoryRepo) Save(_ context.Context, saved *dmn.SavedMaze) error {
	copied := *saved
	r.items[saved.ID] = &copied
	return nil
}

func (r *fakeHistoryRepo) ByID(_ context.Context, userID, id uuid.UUID) (*dmn.SavedMaze, error) {
	saved, ok := r.items[id]
	if !ok || saved.UserID != userID {
		return nil, dmn.ErrSavedMazeNotFound
	}
	copied := *saved
	return &copied, nil
}

func (r *fakeHistoryRepo) ByUser(_ context.Context, userID uuid.UUID) ([]*dmn.SavedMaze, error) {
	result := []*dmn.SavedMaze{}
	for _, saved := range r.items {
		if saved.UserID == userID {
			copied := *saved
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(a, b int) bool {
		return result[a].Timestamp.After(result[b].Timestamp)
	})
	return result, nil
}

func (r *fakeHistoryRepo) Delete(_ context.Context, userID, id uuid.UUID) error {
	saved, ok := r.items[id]
	if !ok || saved.UserID != userID {
		return dmn.ErrSavedMazeNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeHistoryRepo) Clear(_ context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for id, saved := range r.items {
		if saved.UserID == userID {
			delete(r.items, id)
			n++
		}
	}
	return n, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*dmn.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*dmn.User{}}
}

func (r *fakeUserRepo) Save(user *dmn.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) ByID(id uuid.UUID) (*dmn.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, dmn.ErrUserNotFound
}

func (r *fakeUserRepo) ByUsername(username string) (*dmn.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, dmn.ErrUserNotFound
}

type fakeTokenizer struct {
	claims map[string]interface{}
	exp    time.Duration
}

func (f *fakeTokenizer) Generate(claims map[string]interface{}, exp time.Duration) (string, error) {
	f.claims = claims
	f.exp = exp
	return "token", nil
}

func (f *fakeTokenizer) Decode(token string) (map[string]interface{}, error) {
	if token != "token" {
		return nil, errors.New("invalid token")
	}
	return f.claims, nil
}
