package handler

// fakes_test.go provides in-memory store fakes shared by the handler tests.
// Each fake implements just enough of the corresponding store interface and
// records the writes it receives so tests can assert on them.

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/medical-camp-registration/internal/repository"
)

type fakeUserStore struct {
	users   map[string]repository.User // keyed by email
	nextID  uint64
	failAll bool
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]repository.User{}, nextID: 1}
}

func (f *fakeUserStore) Create(_ context.Context, email, name, photoURL, role string) (uint64, error) {
	if f.failAll {
		return 0, sql.ErrConnDone
	}
	email = strings.ToLower(email)
	if _, ok := f.users[email]; ok {
		return 0, repository.ErrEmailExists
	}
	id := f.nextID
	f.nextID++
	f.users[email] = repository.User{ID: id, Email: email, Name: name, PhotoURL: photoURL, Role: role}
	return id, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (repository.User, error) {
	u, ok := f.users[strings.ToLower(email)]
	if !ok {
		return repository.User{}, sql.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserStore) RoleByEmail(_ context.Context, email string) (string, error) {
	u, ok := f.users[strings.ToLower(email)]
	if !ok {
		return "", sql.ErrNoRows
	}
	return u.Role, nil
}

func (f *fakeUserStore) Update(_ context.Context, id uint64, upd repository.UserUpdate) (int64, error) {
	for email, u := range f.users {
		if u.ID != id {
			continue
		}
		if upd.Name != nil {
			u.Name = *upd.Name
		}
		if upd.PhotoURL != nil {
			u.PhotoURL = *upd.PhotoURL
		}
		if upd.Role != nil {
			u.Role = *upd.Role
		}
		f.users[email] = u
		return 1, nil
	}
	return 0, nil
}

type fakeCampStore struct {
	camps  map[uint64]repository.Camp
	nextID uint64
	incErr error
}

func newFakeCampStore() *fakeCampStore {
	return &fakeCampStore{camps: map[uint64]repository.Camp{}, nextID: 1}
}

func (f *fakeCampStore) Create(_ context.Context, c repository.Camp) (uint64, error) {
	id := f.nextID
	f.nextID++
	c.ID = id
	f.camps[id] = c
	return id, nil
}

func (f *fakeCampStore) List(_ context.Context) ([]repository.Camp, error) {
	out := []repository.Camp{}
	for _, c := range f.camps {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCampStore) GetByID(_ context.Context, id uint64) (repository.Camp, error) {
	c, ok := f.camps[id]
	if !ok {
		return repository.Camp{}, sql.ErrNoRows
	}
	return c, nil
}

func (f *fakeCampStore) Update(_ context.Context, id uint64, upd repository.CampUpdate) (int64, error) {
	c, ok := f.camps[id]
	if !ok {
		return 0, nil
	}
	if upd.Title != nil {
		c.Title = *upd.Title
	}
	if upd.Fees != nil {
		c.Fees = *upd.Fees
	}
	f.camps[id] = c
	return 1, nil
}

func (f *fakeCampStore) Delete(_ context.Context, id uint64) (int64, error) {
	if _, ok := f.camps[id]; !ok {
		return 0, nil
	}
	delete(f.camps, id)
	return 1, nil
}

func (f *fakeCampStore) IncrementParticipantCount(_ context.Context, id uint64) (int64, error) {
	if f.incErr != nil {
		return 0, f.incErr
	}
	c, ok := f.camps[id]
	if !ok {
		return 0, nil // missing camp is accepted
	}
	c.ParticipantCount++
	f.camps[id] = c
	return 1, nil
}

type regKey struct {
	email  string
	campID uint64
}

type fakeRegStore struct {
	regs      map[uint64]repository.Registration
	byPair    map[regKey]uint64
	nextID    uint64
	createErr error // forced Create error, simulating the index race
}

func newFakeRegStore() *fakeRegStore {
	return &fakeRegStore{
		regs:   map[uint64]repository.Registration{},
		byPair: map[regKey]uint64{},
		nextID: 1,
	}
}

func (f *fakeRegStore) Exists(_ context.Context, email string, campID uint64) (bool, error) {
	_, ok := f.byPair[regKey{strings.ToLower(email), campID}]
	return ok, nil
}

func (f *fakeRegStore) Create(_ context.Context, g repository.Registration) (uint64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	key := regKey{strings.ToLower(g.ParticipantEmail), g.CampID}
	if _, ok := f.byPair[key]; ok {
		return 0, repository.ErrAlreadyJoined
	}
	id := f.nextID
	f.nextID++
	g.ID = id
	g.ParticipantEmail = key.email
	g.PaymentStatus = "Unpaid"
	g.ConfirmStatus = "Pending"
	f.regs[id] = g
	f.byPair[key] = id
	return id, nil
}

func (f *fakeRegStore) ListAll(_ context.Context) ([]repository.Registration, error) {
	out := []repository.Registration{}
	for _, g := range f.regs {
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeRegStore) ListByEmail(_ context.Context, email string) ([]repository.Registration, error) {
	out := []repository.Registration{}
	for _, g := range f.regs {
		if g.ParticipantEmail == strings.ToLower(email) {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeRegStore) GetByID(_ context.Context, id uint64) (repository.Registration, error) {
	g, ok := f.regs[id]
	if !ok {
		return repository.Registration{}, sql.ErrNoRows
	}
	return g, nil
}

func (f *fakeRegStore) MarkPaid(_ context.Context, id uint64) (int64, error) {
	g, ok := f.regs[id]
	if !ok {
		return 0, nil
	}
	g.PaymentStatus = "Paid"
	f.regs[id] = g
	return 1, nil
}

func (f *fakeRegStore) MarkPaidByParticipant(_ context.Context, email string, campID uint64) (int64, error) {
	id, ok := f.byPair[regKey{strings.ToLower(email), campID}]
	if !ok {
		return 0, nil
	}
	g := f.regs[id]
	g.PaymentStatus = "Paid"
	f.regs[id] = g
	return 1, nil
}

func (f *fakeRegStore) Confirm(_ context.Context, id uint64) (int64, error) {
	g, ok := f.regs[id]
	if !ok {
		return 0, nil
	}
	g.ConfirmStatus = "Confirmed"
	f.regs[id] = g
	return 1, nil
}

func (f *fakeRegStore) Delete(_ context.Context, id uint64) (int64, error) {
	g, ok := f.regs[id]
	if !ok {
		return 0, nil
	}
	delete(f.byPair, regKey{g.ParticipantEmail, g.CampID})
	delete(f.regs, id)
	return 1, nil
}

type fakePaymentStore struct {
	payments []repository.Payment
	nextID   uint64
}

func newFakePaymentStore() *fakePaymentStore { return &fakePaymentStore{nextID: 1} }

func (f *fakePaymentStore) Create(_ context.Context, p repository.Payment) (uint64, error) {
	p.ID = f.nextID
	f.nextID++
	p.Email = strings.ToLower(p.Email)
	f.payments = append(f.payments, p)
	return p.ID, nil
}

func (f *fakePaymentStore) ListByEmail(_ context.Context, email string) ([]repository.Payment, error) {
	out := []repository.Payment{}
	for _, p := range f.payments {
		if p.Email == strings.ToLower(email) {
			out = append(out, p)
		}
	}
	return out, nil
}
