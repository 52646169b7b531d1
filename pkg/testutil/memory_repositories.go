// Package testutil holds in-memory repositories for service and handler tests.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"taskboard/domain/models"
	"taskboard/domain/repositories"
)

// MemoryUserRepository satisfies repositories.UserRepository. Set Err to make
// every call fail.
type MemoryUserRepository struct {
	mu     sync.Mutex
	users  map[uint]*models.User
	nextID uint
	Err    error
}

var _ repositories.UserRepository = (*MemoryUserRepository)(nil)

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: map[uint]*models.User{}, nextID: 1}
}

func (r *MemoryUserRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if user.ID == 0 {
		user.ID = r.nextID
	}
	if user.ID >= r.nextID {
		r.nextID = user.ID + 1
	}
	now := time.Now()
	user.CreatedAt, user.UpdatedAt = now, now
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *MemoryUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	out := *u
	return &out, nil
}

func (r *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var found *models.User
	for _, u := range r.users {
		if u.Email == email && (found == nil || u.ID < found.ID) {
			found = u
		}
	}
	if found == nil {
		return nil, nil
	}
	out := *found
	return &out, nil
}

// Len returns the number of stored users.
func (r *MemoryUserRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

// MemoryTaskRepository satisfies repositories.TaskRepository. Users, when set,
// is used to fill Task.User the way a preload would.
type MemoryTaskRepository struct {
	mu     sync.Mutex
	tasks  map[uint]*models.Task
	nextID uint
	Users  *MemoryUserRepository
	Err    error
}

var _ repositories.TaskRepository = (*MemoryTaskRepository)(nil)

func NewMemoryTaskRepository(users *MemoryUserRepository) *MemoryTaskRepository {
	return &MemoryTaskRepository{tasks: map[uint]*models.Task{}, nextID: 1, Users: users}
}

func (r *MemoryTaskRepository) Create(ctx context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if task.ID == 0 {
		task.ID = r.nextID
	}
	if task.ID >= r.nextID {
		r.nextID = task.ID + 1
	}
	now := time.Now()
	task.CreatedAt, task.UpdatedAt = now, now
	stored := *task
	stored.User = nil
	r.tasks[task.ID] = &stored
	return nil
}

func (r *MemoryTaskRepository) GetByID(ctx context.Context, id uint) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	t, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	out := *t
	return &out, nil
}

func (r *MemoryTaskRepository) All(ctx context.Context) ([]*models.Task, error) {
	return r.List(ctx, 0, -1)
}

func (r *MemoryTaskRepository) List(ctx context.Context, offset, limit int) ([]*models.Task, error) {
	r.mu.Lock()
	if r.Err != nil {
		r.mu.Unlock()
		return nil, r.Err
	}
	ids := make([]uint, 0, len(r.tasks))
	for id := range r.tasks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var tasks []*models.Task
	for i, id := range ids {
		if i < offset {
			continue
		}
		if limit >= 0 && len(tasks) >= limit {
			break
		}
		out := *r.tasks[id]
		tasks = append(tasks, &out)
	}
	r.mu.Unlock()

	if r.Users != nil {
		for _, t := range tasks {
			t.User, _ = r.Users.GetByID(ctx, t.UserID)
		}
	}
	return tasks, nil
}

func (r *MemoryTaskRepository) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	return int64(len(r.tasks)), nil
}

func (r *MemoryTaskRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	delete(r.tasks, id)
	return nil
}
