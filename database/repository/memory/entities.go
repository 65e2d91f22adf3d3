package memoryRepo

import (
	"context"

	"resourcebooking/models"
)

type ResourceStore struct {
	s *Store
}

func (r *ResourceStore) GetByID(_ context.Context, id string) (*models.Resource, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return getRow(r.s.resources, id), nil
}

func (r *ResourceStore) ListByInstitution(_ context.Context, institutionID string) ([]models.Resource, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return filterRows(r.s.resources, func(res models.Resource) bool {
		return res.InstitutionID == institutionID
	}, nil), nil
}

func (r *ResourceStore) Create(_ context.Context, resource *models.Resource) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	resource.ID = ""
	id := insertRow(r.s.resources, *resource)
	resource.ID = id
	r.s.resources[id] = *resource
	return nil
}

func (r *ResourceStore) Replace(_ context.Context, id string, resource models.Resource) (models.Outcome, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	resource.ID = id
	return replaceRow(r.s.resources, id, resource), nil
}

func (r *ResourceStore) Delete(_ context.Context, id string) (models.Outcome, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return deleteRow(r.s.resources, id), nil
}

type InstitutionStore struct {
	s *Store
}

func (r *InstitutionStore) GetByID(_ context.Context, id string) (*models.Institution, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return getRow(r.s.institutions, id), nil
}

func (r *InstitutionStore) List(_ context.Context) ([]models.Institution, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return filterRows(r.s.institutions, func(models.Institution) bool { return true },
		func(a, b models.Institution) bool { return a.Name < b.Name }), nil
}

func (r *InstitutionStore) Create(_ context.Context, institution *models.Institution) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	institution.ID = ""
	id := insertRow(r.s.institutions, *institution)
	institution.ID = id
	r.s.institutions[id] = *institution
	return nil
}

func (r *InstitutionStore) Replace(_ context.Context, id string, institution models.Institution) (models.Outcome, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	institution.ID = id
	return replaceRow(r.s.institutions, id, institution), nil
}

func (r *InstitutionStore) Delete(_ context.Context, id string) (models.Outcome, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return deleteRow(r.s.institutions, id), nil
}

type UserStore struct {
	s *Store
}

func (r *UserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return getRow(r.s.users, id), nil
}

func (r *UserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *UserStore) ListByInstitution(_ context.Context, institutionID string) ([]models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return filterRows(r.s.users, func(u models.User) bool {
		return u.InstitutionID == institutionID
	}, nil), nil
}

func (r *UserStore) Create(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user.ID = ""
	id := insertRow(r.s.users, *user)
	user.ID = id
	r.s.users[id] = *user
	return nil
}

func (r *UserStore) Replace(_ context.Context, id string, user models.User) (models.Outcome, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user.ID = id
	return replaceRow(r.s.users, id, user), nil
}

func (r *UserStore) Delete(_ context.Context, id string) (models.Outcome, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return deleteRow(r.s.users, id), nil
}
