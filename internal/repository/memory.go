package repository

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spec-kit/toy-store/internal/domain"
	"github.com/spec-kit/toy-store/internal/query"
)

// In-memory implementations of the repositories. They back tests and
// MONGO_URI-less development runs, interpreting the same descriptor
// predicates the Mongo implementations hand to the store.

// MemoryToyRepository is a map-backed ToyRepository.
type MemoryToyRepository struct {
	mu   sync.RWMutex
	toys map[string]domain.Toy
}

// NewMemoryToyRepository constructs an empty repository.
func NewMemoryToyRepository() *MemoryToyRepository {
	return &MemoryToyRepository{toys: make(map[string]domain.Toy)}
}

func (r *MemoryToyRepository) Find(_ context.Context, d query.Descriptor) ([]domain.Toy, error) {
	// The real store rejects negative skip at query time; mirror that.
	if d.Skip < 0 {
		return nil, errors.New("skip must be non-negative")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]domain.Toy, 0)
	for _, toy := range r.toys {
		ok, err := matchToy(toy, d.Filter)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, toy)
		}
	}

	if d.Sort != "" {
		sortToys(matched, d.Sort, d.Dir)
	} else {
		sortToys(matched, "_id", 1)
	}

	if d.Skip >= int64(len(matched)) {
		return []domain.Toy{}, nil
	}
	matched = matched[d.Skip:]
	if d.Limit > 0 && int64(len(matched)) > d.Limit {
		matched = matched[:d.Limit]
	}
	return matched, nil
}

func (r *MemoryToyRepository) GetByID(_ context.Context, id string) (*domain.Toy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	toy, ok := r.toys[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &toy, nil
}

func (r *MemoryToyRepository) Insert(_ context.Context, toy *domain.Toy) error {
	stampNewToy(toy)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toys[toy.ID] = *toy
	return nil
}

func (r *MemoryToyRepository) Update(_ context.Context, id, ownerID string, toy *domain.Toy) (UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.toys[id]
	if !ok || existing.OwnerID != ownerID {
		return UpdateResult{}, nil
	}
	existing.Name = toy.Name
	existing.Info = toy.Info
	existing.Category = toy.Category
	existing.ImgURL = toy.ImgURL
	existing.Price = toy.Price
	existing.OwnerID = toy.OwnerID
	existing.UpdatedAt = time.Now().UTC()
	r.toys[id] = existing
	return UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *MemoryToyRepository) Delete(_ context.Context, id, ownerID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.toys[id]
	if !ok || existing.OwnerID != ownerID {
		return 0, nil
	}
	delete(r.toys, id)
	return 1, nil
}

func (r *MemoryToyRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.toys)), nil
}

// matchToy evaluates the descriptor predicate subset the query package
// emits: field equality, $or, case-insensitive regex and $gte/$lte ranges.
func matchToy(toy domain.Toy, filter bson.M) (bool, error) {
	for key, cond := range filter {
		if key == "$or" {
			branches, ok := cond.(bson.A)
			if !ok {
				return false, errors.New("malformed $or predicate")
			}
			anyMatch := false
			for _, branch := range branches {
				sub, ok := branch.(bson.M)
				if !ok {
					return false, errors.New("malformed $or branch")
				}
				matched, err := matchToy(toy, sub)
				if err != nil {
					return false, err
				}
				if matched {
					anyMatch = true
					break
				}
			}
			if !anyMatch {
				return false, nil
			}
			continue
		}

		val := toyField(toy, key)
		switch cond := cond.(type) {
		case primitive.Regex:
			str, ok := val.(string)
			if !ok {
				return false, nil
			}
			matched, err := matchRegex(cond, str)
			if err != nil {
				return false, err
			}
			if !matched {
				return false, nil
			}
		case bson.M:
			num, ok := val.(float64)
			if !ok {
				return false, nil
			}
			if !matchRange(cond, num) {
				return false, nil
			}
		default:
			if val != cond {
				return false, nil
			}
		}
	}
	return true, nil
}

func matchRegex(expr primitive.Regex, val string) (bool, error) {
	pattern := expr.Pattern
	if expr.Options == "i" {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(val), nil
}

func matchRange(cond bson.M, val float64) bool {
	if min, ok := cond["$gte"].(float64); ok && val < min {
		return false
	}
	if max, ok := cond["$lte"].(float64); ok && val > max {
		return false
	}
	return true
}

func toyField(toy domain.Toy, field string) any {
	switch field {
	case "_id":
		return toy.ID
	case "name":
		return toy.Name
	case "info":
		return toy.Info
	case "category":
		return toy.Category
	case "img_url":
		return toy.ImgURL
	case "price":
		return toy.Price
	case "user_id":
		return toy.OwnerID
	case "createdAt":
		return toy.CreatedAt
	case "updatedAt":
		return toy.UpdatedAt
	default:
		return nil
	}
}

func sortToys(toys []domain.Toy, field string, dir int) {
	sort.SliceStable(toys, func(i, j int) bool {
		a, b := toyField(toys[i], field), toyField(toys[j], field)
		if dir < 0 {
			a, b = b, a
		}
		return lessField(a, b)
	})
}

func lessField(a, b any) bool {
	switch a := a.(type) {
	case string:
		b, _ := b.(string)
		return a < b
	case float64:
		b, _ := b.(float64)
		return a < b
	case time.Time:
		b, _ := b.(time.Time)
		return a.Before(b)
	default:
		return false
	}
}

// MemoryUserRepository is a map-backed UserRepository enforcing email
// uniqueness the way the store's unique index does.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

// NewMemoryUserRepository constructs an empty repository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]domain.User)}
}

func (r *MemoryUserRepository) Insert(_ context.Context, user *domain.User) error {
	stampNewUser(user)
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return ErrDuplicateEmail
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (r *MemoryUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, ErrNotFound
}
