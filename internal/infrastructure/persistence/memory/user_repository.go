package memory

import (
	"context"
	"sort"

	"github.com/roadwatch/backend/internal/domain/monitoring"
	"github.com/roadwatch/backend/internal/domain/shared"
)

var _ monitoring.UserRepository = (*UserRepository)(nil)

// UserRepository is an in-memory UserRepository
type UserRepository struct {
	store *Store
}

// NewUserRepository creates a new in-memory UserRepository
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// FindByID finds a user by its ID
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*monitoring.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &user, nil
}

// FindByUsername finds a user by username
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*monitoring.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, user := range r.store.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, shared.ErrNotFound
}

// FindAll returns every user ordered by ID
func (r *UserRepository) FindAll(ctx context.Context) ([]*monitoring.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	users := make([]*monitoring.User, 0, len(r.store.users))
	for id := range r.store.users {
		user := r.store.users[id]
		users = append(users, &user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// Save persists a user, assigning the next serial ID on first insert
func (r *UserRepository) Save(ctx context.Context, user *monitoring.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if user.ID == 0 {
		r.store.nextUserID++
		user.ID = r.store.nextUserID
	}
	r.store.users[user.ID] = *user
	return nil
}
