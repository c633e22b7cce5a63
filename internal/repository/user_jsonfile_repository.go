package repository

import (
	"context"
	"sync"
	"time"

	"github.com/pazarlabs/pazar/internal/domain"
	"github.com/pazarlabs/pazar/internal/infrastructure/database/jsonfile"
)

const usersCollection = "users"

// UserJSONFileRepository keeps the whole user collection in one JSON file.
// The mutex serializes read-modify-write cycles so concurrent registrations
// cannot lose an update.
type UserJSONFileRepository struct {
	store *jsonfile.Store
	mu    sync.Mutex
}

func CreateNewUserJSONFileRepository(store *jsonfile.Store) UserRepository {
	return &UserJSONFileRepository{store: store}
}

func (r *UserJSONFileRepository) load() (users []domain.User, err error) {
	err = r.store.Load(usersCollection, &users)
	return
}

func (r *UserJSONFileRepository) GetUserByEmail(ctx context.Context, email string) (res domain.User, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return
	}

	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}

	return
}

func (r *UserJSONFileRepository) GetUserByUsername(ctx context.Context, username string) (res domain.User, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return
	}

	for _, u := range users {
		if u.Username == username {
			return u, nil
		}
	}

	return
}

func (r *UserJSONFileRepository) GetUserByID(ctx context.Context, id int64) (res domain.User, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return
	}

	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}

	return
}

func (r *UserJSONFileRepository) AddUser(ctx context.Context, data domain.User) (id int64, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return
	}

	// Ids grow from the current maximum so a new user can never collide
	// with an existing record.
	for _, u := range users {
		if u.ID > id {
			id = u.ID
		}
	}
	id++

	data.ID = id
	data.CreatedAt = time.Now().UnixMilli()

	users = append(users, data)

	if err = r.store.Save(usersCollection, users); err != nil {
		return 0, err
	}

	return id, nil
}
