package usecase_test

import (
	"context"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. Suficientes para ejercitar
// los casos de uso sin PostgreSQL.

func key(userID, companyID string) string { return userID + "|" + companyID }

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

// ── memberships ──────────────────────────────────────────────────────────────

type fakeMembershipRepo struct {
	members     map[string]*entity.Membership // (user, company)
	specialties map[string][]string           // (user, company) → ids
}

var _ repository.MembershipRepository = (*fakeMembershipRepo)(nil)

func newFakeMembershipRepo() *fakeMembershipRepo {
	return &fakeMembershipRepo{
		members:     map[string]*entity.Membership{},
		specialties: map[string][]string{},
	}
}

func (f *fakeMembershipRepo) Create(_ context.Context, m *entity.Membership) error {
	cp := *m
	f.members[key(m.UserID, m.CompanyID)] = &cp
	return nil
}

func (f *fakeMembershipRepo) GetByUserAndCompany(_ context.Context, userID, companyID string) (*entity.Membership, error) {
	m, ok := f.members[key(userID, companyID)]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (f *fakeMembershipRepo) ListByCompany(_ context.Context, companyID string, limit, offset int) ([]*entity.Membership, error) {
	var out []*entity.Membership
	for _, m := range f.members {
		if m.CompanyID == companyID {
			cp := *m
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func (f *fakeMembershipRepo) ListByUser(_ context.Context, userID string) ([]*entity.Membership, error) {
	var out []*entity.Membership
	for _, m := range f.members {
		if m.UserID == userID {
			cp := *m
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CompanyID < out[j].CompanyID })
	return out, nil
}

func (f *fakeMembershipRepo) Update(_ context.Context, m *entity.Membership) error {
	cp := *m
	f.members[key(m.UserID, m.CompanyID)] = &cp
	return nil
}

func (f *fakeMembershipRepo) ListAssignedSpecialtyIDs(_ context.Context, userID, companyID string) ([]string, error) {
	return append([]string(nil), f.specialties[key(userID, companyID)]...), nil
}

func (f *fakeMembershipRepo) ReplaceSpecialtyAssignments(_ context.Context, userID, companyID string, specialtyIDs []string) error {
	f.specialties[key(userID, companyID)] = append([]string(nil), specialtyIDs...)
	return nil
}

// ── companies ────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

var _ repository.CompanyRepository = (*fakeCompanyRepo)(nil)

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[string]*entity.Company{}}
}

func (f *fakeCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	cp := *c
	f.companies[c.ID] = &cp
	return nil
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCompanyRepo) Update(_ context.Context, c *entity.Company) error {
	cp := *c
	f.companies[c.ID] = &cp
	return nil
}

// ── trades ───────────────────────────────────────────────────────────────────

type fakeTradeRepo struct {
	trades      map[string]*entity.Trade
	specialties map[string][]*entity.Specialty // trade → specialties
}

var _ repository.TradeRepository = (*fakeTradeRepo)(nil)

func newFakeTradeRepo() *fakeTradeRepo {
	return &fakeTradeRepo{
		trades:      map[string]*entity.Trade{},
		specialties: map[string][]*entity.Specialty{},
	}
}

func (f *fakeTradeRepo) ListTrades(_ context.Context) ([]*entity.Trade, error) {
	var out []*entity.Trade
	for _, t := range f.trades {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeTradeRepo) GetTradeByID(_ context.Context, id string) (*entity.Trade, error) {
	return f.trades[id], nil
}

func (f *fakeTradeRepo) ListSpecialtiesByTrade(_ context.Context, tradeID string) ([]*entity.Specialty, error) {
	return f.specialties[tradeID], nil
}

func (f *fakeTradeRepo) GetSpecialtyByID(_ context.Context, id string) (*entity.Specialty, error) {
	for _, list := range f.specialties {
		for _, s := range list {
			if s.ID == id {
				return s, nil
			}
		}
	}
	return nil, nil
}

// ── users ────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

// ── services ─────────────────────────────────────────────────────────────────

type fakeServiceRepo struct {
	services map[string]*entity.Service
}

var _ repository.ServiceRepository = (*fakeServiceRepo)(nil)

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: map[string]*entity.Service{}}
}

func (f *fakeServiceRepo) Create(_ context.Context, s *entity.Service) error {
	cp := *s
	f.services[s.ID] = &cp
	return nil
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id string) (*entity.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeServiceRepo) Update(_ context.Context, s *entity.Service) error {
	cp := *s
	f.services[s.ID] = &cp
	return nil
}

func (f *fakeServiceRepo) Delete(_ context.Context, id string) error {
	delete(f.services, id)
	return nil
}

func (f *fakeServiceRepo) ListByCompanyAndSpecialties(_ context.Context, companyID string, specialtyIDs []string, limit, offset int) ([]*entity.Service, error) {
	if len(specialtyIDs) == 0 {
		return nil, nil
	}
	allowed := map[string]bool{}
	for _, id := range specialtyIDs {
		allowed[id] = true
	}
	var out []*entity.Service
	for _, s := range f.services {
		if s.CompanyID == companyID && allowed[s.SpecialtyID] {
			cp := *s
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ── jobs ─────────────────────────────────────────────────────────────────────

type fakeJobRepo struct {
	jobs  map[string]*entity.Job
	order []string
}

var _ repository.JobRepository = (*fakeJobRepo)(nil)

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[string]*entity.Job{}}
}

func (f *fakeJobRepo) Create(_ context.Context, j *entity.Job) error {
	cp := *j
	f.jobs[j.ID] = &cp
	f.order = append(f.order, j.ID)
	return nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id string) (*entity.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return nil, nil
	}
	cp := *j
	return &cp, nil
}

func (f *fakeJobRepo) Update(_ context.Context, j *entity.Job) error {
	cp := *j
	f.jobs[j.ID] = &cp
	return nil
}

func (f *fakeJobRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.Job, error) {
	var out []*entity.Job
	for _, id := range f.order {
		j := f.jobs[id]
		if j.CompanyID == companyID {
			cp := *j
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ── job items ────────────────────────────────────────────────────────────────

type fakeJobItemRepo struct {
	items map[string]*entity.JobItem
	order []string
}

var _ repository.JobItemRepository = (*fakeJobItemRepo)(nil)

func newFakeJobItemRepo() *fakeJobItemRepo {
	return &fakeJobItemRepo{items: map[string]*entity.JobItem{}}
}

func (f *fakeJobItemRepo) Create(_ context.Context, it *entity.JobItem) error {
	cp := *it
	f.items[it.ID] = &cp
	f.order = append(f.order, it.ID)
	return nil
}

func (f *fakeJobItemRepo) GetByID(_ context.Context, id string) (*entity.JobItem, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (f *fakeJobItemRepo) Update(_ context.Context, it *entity.JobItem) error {
	cp := *it
	f.items[it.ID] = &cp
	return nil
}

func (f *fakeJobItemRepo) Delete(_ context.Context, id string) error {
	delete(f.items, id)
	return nil
}

func (f *fakeJobItemRepo) ListByJob(_ context.Context, jobID string) ([]*entity.JobItem, error) {
	var out []*entity.JobItem
	for _, id := range f.order {
		it, ok := f.items[id]
		if ok && it.JobID == jobID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ── job assignments ──────────────────────────────────────────────────────────

type fakeJobAssignmentRepo struct {
	assignments map[string]*entity.JobAssignment // (job, user)
	jobs        *fakeJobRepo                     // para resolver company en ListAssignedJobIDs
}

var _ repository.JobAssignmentRepository = (*fakeJobAssignmentRepo)(nil)

func newFakeJobAssignmentRepo(jobs *fakeJobRepo) *fakeJobAssignmentRepo {
	return &fakeJobAssignmentRepo{assignments: map[string]*entity.JobAssignment{}, jobs: jobs}
}

func (f *fakeJobAssignmentRepo) Upsert(_ context.Context, a *entity.JobAssignment) error {
	cp := *a
	f.assignments[key(a.JobID, a.UserID)] = &cp
	return nil
}

func (f *fakeJobAssignmentRepo) Get(_ context.Context, jobID, userID string) (*entity.JobAssignment, error) {
	a, ok := f.assignments[key(jobID, userID)]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeJobAssignmentRepo) ListByJob(_ context.Context, jobID string) ([]*entity.JobAssignment, error) {
	var out []*entity.JobAssignment
	for _, a := range f.assignments {
		if a.JobID == jobID {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func (f *fakeJobAssignmentRepo) ListAssignedJobIDs(_ context.Context, userID, companyID string) ([]string, error) {
	var ids []string
	for _, a := range f.assignments {
		if a.UserID != userID {
			continue
		}
		if j, ok := f.jobs.jobs[a.JobID]; ok && j.CompanyID == companyID {
			ids = append(ids, a.JobID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// ── invites ──────────────────────────────────────────────────────────────────

type fakeInviteRepo struct {
	invites map[string]*entity.InviteToken // por token
}

var _ repository.InviteRepository = (*fakeInviteRepo)(nil)

func newFakeInviteRepo() *fakeInviteRepo {
	return &fakeInviteRepo{invites: map[string]*entity.InviteToken{}}
}

func (f *fakeInviteRepo) Create(_ context.Context, inv *entity.InviteToken) error {
	cp := *inv
	f.invites[inv.Token] = &cp
	return nil
}

func (f *fakeInviteRepo) GetByToken(_ context.Context, token string) (*entity.InviteToken, error) {
	inv, ok := f.invites[token]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeInviteRepo) MarkUsed(_ context.Context, id string) error {
	for _, inv := range f.invites {
		if inv.ID == id {
			inv.Used = true
		}
	}
	return nil
}

// ── audit ────────────────────────────────────────────────────────────────────

type fakeAuditRepo struct {
	entries []*entity.AuditLog
}

var _ repository.AuditRepository = (*fakeAuditRepo)(nil)

func newFakeAuditRepo() *fakeAuditRepo { return &fakeAuditRepo{} }

func (f *fakeAuditRepo) Create(_ context.Context, a *entity.AuditLog) error {
	cp := *a
	f.entries = append(f.entries, &cp)
	return nil
}

func (f *fakeAuditRepo) ListByCompany(_ context.Context, companyID string, limit, offset int) ([]*entity.AuditLog, error) {
	var out []*entity.AuditLog
	for i := len(f.entries) - 1; i >= 0; i-- {
		if f.entries[i].CompanyID == companyID {
			out = append(out, f.entries[i])
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}
