package service

import (
	"context"
	"sync"

	"github.com/Disu2004/CineSense/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// -------- fakes en memoria del Record Store --------

type memUserStore struct {
	mu    sync.Mutex
	users []models.UserDoc
}

func (m *memUserStore) FindByEmail(_ context.Context, email string) (*models.UserDoc, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (m *memUserStore) FindByEmailOrPhone(_ context.Context, email, mobileno string) (*models.UserDoc, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email || u.MobileNo == mobileno {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (m *memUserStore) FindByID(_ context.Context, userID int) (*models.UserDoc, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.UserID == userID {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (m *memUserStore) Insert(_ context.Context, u *models.UserDoc) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = append(m.users, *u)
	return nil
}

func (m *memUserStore) UpdateByID(_ context.Context, userID int, update bson.M) (*models.UserDoc, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].UserID != userID {
			continue
		}
		u := &m.users[i]
		for k, v := range update {
			switch k {
			case "firstname":
				u.FirstName = v.(string)
			case "lastname":
				u.LastName = v.(string)
			case "email":
				u.Email = v.(string)
			case "password":
				u.Password = v.(string)
			case "mobileno":
				u.MobileNo = v.(string)
			case "location":
				u.Location = v.(string)
			}
		}
		out := *u
		return &out, nil
	}
	return nil, nil
}

type memPrefStore struct {
	mu    sync.Mutex
	prefs []models.PreferenceDoc
}

func (m *memPrefStore) Insert(_ context.Context, p *models.PreferenceDoc) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs = append(m.prefs, *p)
	return nil
}

func (m *memPrefStore) FindByUserID(_ context.Context, userID int) (*models.PreferenceDoc, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.prefs {
		if p.UserID == userID {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func (m *memPrefStore) UpdateByUserID(_ context.Context, userID int, update bson.M) (*models.PreferenceDoc, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.prefs {
		if m.prefs[i].UserID != userID {
			continue
		}
		p := &m.prefs[i]
		for k, v := range update {
			switch k {
			case "industry":
				p.Industry = v.(string)
			case "genres":
				p.Genres = v.([]string)
			case "lastMovie":
				p.LastMovie = v.(string)
			}
		}
		out := *p
		return &out, nil
	}
	return nil, nil
}

func prefDoc(userID int, industry string, genres ...string) *models.PreferenceDoc {
	return &models.PreferenceDoc{UserID: userID, Industry: industry, Genres: genres}
}

// memCounter cumple el contrato de UserIDSource: valores únicos y crecientes.
type memCounter struct {
	mu sync.Mutex
	n  int
}

func (m *memCounter) Next(_ context.Context, _ string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.n++
	return m.n, nil
}
