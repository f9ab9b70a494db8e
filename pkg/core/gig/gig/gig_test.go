package gig

import (
	// 外部依赖
	"context"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	gin "github.com/gin-gonic/gin"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
	gorm "gorm.io/gorm"

	// 内部引用
	common "github.com/srinivas-tce/labgigs/pkg/common"
	code "github.com/srinivas-tce/labgigs/pkg/common/code"
	uuid "github.com/srinivas-tce/labgigs/pkg/common/uuid"
	core "github.com/srinivas-tce/labgigs/pkg/core/gig"
	auth "github.com/srinivas-tce/labgigs/pkg/middleware/auth"
	model "github.com/srinivas-tce/labgigs/pkg/model"
	repo "github.com/srinivas-tce/labgigs/pkg/repo"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testCtx(user *model.UserData) *gin.Context {
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	if user != nil {
		ctx.Set(auth.USERKEY, user)
	}
	return ctx
}

type baseFake struct{}

func (baseFake) ExecTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (baseFake) UUID2ID(context.Context, any, ...uuid.UUID) map[uuid.UUID]int64 {
	return map[uuid.UUID]int64{}
}

type fakeAccountRepo struct {
	users       map[int64]*model.User
	labs        map[int64]*model.Lab
	assignments []*model.FacilitatorLab
}

func (f *fakeAccountRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAccountRepo) GetUserByUUID(_ context.Context, id uuid.UUID) (*model.User, error) {
	for _, u := range f.users {
		if u.UUID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAccountRepo) GetUserByID(_ context.Context, id int64) (*model.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAccountRepo) BatchGetUsers(_ context.Context, ids []int64) (map[int64]*model.User, error) {
	out := map[int64]*model.User{}
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

func (f *fakeAccountRepo) GetLabByID(_ context.Context, id int64) (*model.Lab, error) {
	if l, ok := f.labs[id]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAccountRepo) GetLabByUUID(_ context.Context, id uuid.UUID) (*model.Lab, error) {
	for _, l := range f.labs {
		if l.UUID == id {
			return l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAccountRepo) BatchGetLabs(_ context.Context, ids []int64) (map[int64]*model.Lab, error) {
	out := map[int64]*model.Lab{}
	for _, id := range ids {
		if l, ok := f.labs[id]; ok {
			out[id] = l
		}
	}
	return out, nil
}

func (f *fakeAccountRepo) LabIDsForFacilitator(_ context.Context, facilitatorID int64) ([]int64, error) {
	out := []int64{}
	for _, a := range f.assignments {
		if a.FacilitatorID == facilitatorID {
			out = append(out, a.LabID)
		}
	}
	return out, nil
}

func (f *fakeAccountRepo) FacilitatorsForLab(_ context.Context, labID int64) ([]*model.FacilitatorLab, error) {
	out := []*model.FacilitatorLab{}
	for _, a := range f.assignments {
		if a.LabID == labID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AssignedAt.Before(out[j].AssignedAt) })
	return out, nil
}

type fakeGigRepo struct {
	baseFake

	seq        int64
	gigs       map[int64]*model.Gig
	histograms map[int64]*repo.ProposalHistogram
	updates    map[int64]map[string]any
}

func newFakeGigRepo() *fakeGigRepo {
	return &fakeGigRepo{
		gigs:       map[int64]*model.Gig{},
		histograms: map[int64]*repo.ProposalHistogram{},
		updates:    map[int64]map[string]any{},
	}
}

func (f *fakeGigRepo) CreateGig(_ context.Context, data *model.Gig) error {
	f.seq++
	data.ID = f.seq
	data.UUID = uuid.NewV4()
	data.CreatedAt = time.Now()
	f.gigs[data.ID] = data
	return nil
}

func (f *fakeGigRepo) GetGigByUUID(_ context.Context, id uuid.UUID) (*model.Gig, error) {
	for _, g := range f.gigs {
		if g.UUID == id {
			return g, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeGigRepo) GetGigByID(_ context.Context, id int64) (*model.Gig, error) {
	if g, ok := f.gigs[id]; ok {
		return g, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeGigRepo) UpdateGig(_ context.Context, id int64, data map[string]any) error {
	f.updates[id] = data
	if g, ok := f.gigs[id]; ok {
		if s, ok := data["status"]; ok {
			g.Status = s.(model.GigStatus)
		}
	}
	return nil
}

func (f *fakeGigRepo) ListGigs(_ context.Context, q repo.GigQuery) ([]*model.Gig, int64, error) {
	out := []*model.Gig{}
	for _, g := range f.gigs {
		inScope := false
		for _, labID := range q.LabIDs {
			if g.LabID == labID {
				inScope = true
			}
		}
		if !inScope {
			continue
		}
		if q.Status != nil && g.Status != *q.Status {
			continue
		}
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

func (f *fakeGigRepo) ProposalHistograms(_ context.Context, gigIDs []int64) (map[int64]*repo.ProposalHistogram, error) {
	out := map[int64]*repo.ProposalHistogram{}
	for _, id := range gigIDs {
		if h, ok := f.histograms[id]; ok {
			out[id] = h
		}
	}
	return out, nil
}

type fakeProposalRepo struct {
	baseFake

	seq       int64
	proposals map[int64]*model.Proposal
	updates   map[int64]map[string]any
}

func newFakeProposalRepo() *fakeProposalRepo {
	return &fakeProposalRepo{
		proposals: map[int64]*model.Proposal{},
		updates:   map[int64]map[string]any{},
	}
}

func (f *fakeProposalRepo) CreateProposal(_ context.Context, data *model.Proposal) error {
	f.seq++
	data.ID = f.seq
	data.UUID = uuid.NewV4()
	f.proposals[data.ID] = data
	return nil
}

func (f *fakeProposalRepo) GetProposalByUUID(_ context.Context, id uuid.UUID) (*model.Proposal, error) {
	for _, p := range f.proposals {
		if p.UUID == id {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProposalRepo) UpdateProposal(_ context.Context, id int64, data map[string]any) error {
	f.updates[id] = data
	if p, ok := f.proposals[id]; ok {
		if s, ok := data["status"]; ok {
			p.Status = s.(model.ProposalStatus)
		}
	}
	return nil
}

func (f *fakeProposalRepo) ListByGig(_ context.Context, gigID int64) ([]*model.Proposal, error) {
	out := []*model.Proposal{}
	for _, p := range f.proposals {
		if p.GigID == gigID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeProposalRepo) ListByStudent(_ context.Context, studentID int64, _, _ int) ([]*model.Proposal, int64, error) {
	out := []*model.Proposal{}
	for _, p := range f.proposals {
		if p.StudentID == studentID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

func (f *fakeProposalRepo) CountForGig(_ context.Context, gigID int64) (int64, error) {
	var n int64
	for _, p := range f.proposals {
		if p.GigID == gigID {
			n++
		}
	}
	return n, nil
}

func newFixture() (*fakeGigRepo, *fakeProposalRepo, *fakeAccountRepo, core.Service) {
	gigs := newFakeGigRepo()
	proposals := newFakeProposalRepo()
	accounts := &fakeAccountRepo{
		users: map[int64]*model.User{
			1: {BaseModel: model.BaseModel{ID: 1, UUID: uuid.NewV4()}, Name: "Meera", Email: "meera@example.com", Role: common.Facilitator},
			2: {BaseModel: model.BaseModel{ID: 2, UUID: uuid.NewV4()}, Name: "Arun", Email: "arun@example.com", Role: common.Student},
		},
		labs: map[int64]*model.Lab{
			10: {BaseModel: model.BaseModel{ID: 10, UUID: uuid.NewV4()}, Name: "Robotics Lab", Category: "robotics"},
			11: {BaseModel: model.BaseModel{ID: 11, UUID: uuid.NewV4()}, Name: "Bio Lab", Category: "biology"},
		},
		assignments: []*model.FacilitatorLab{
			{ID: 1, FacilitatorID: 1, LabID: 10, AssignedAt: time.Now()},
		},
	}
	svc := NewWithStores(gigs, proposals, accounts)
	return gigs, proposals, accounts, svc
}

func facilitatorData(accounts *fakeAccountRepo) *model.UserData {
	u := accounts.users[1]
	return &model.UserData{ID: u.ID, UUID: u.UUID, Name: u.Name, Email: u.Email, Role: u.Role}
}

func TestCreateGig(t *testing.T) {
	gigs, _, accounts, svc := newFixture()
	ctx := testCtx(facilitatorData(accounts))

	resp, err := svc.Create(ctx, &core.CreateReq{
		LabUUID:     accounts.labs[10].UUID,
		Title:       "Line follower",
		Description: "Build a line following robot",
		EligibilityCriteria: []*core.Criterion{
			{Name: "CGPA", DataType: core.DataPercentage, Type: core.CriterionManual},
			{Name: "Year", DataType: core.DataText, Type: core.CriterionMultipleChoice, Options: []string{"2nd", "3rd"}},
		},
	})
	require.NoError(t, err)
	require.False(t, resp.UUID.IsNil())

	stored := gigs.gigs[1]
	assert.Equal(t, model.GigOpen, stored.Status)
	assert.Equal(t, int64(1), stored.CreatedBy)
	assert.Equal(t, int64(10), stored.LabID)
	assert.Equal(t, 10, stored.MaxApplications)
	assert.NotEmpty(t, stored.EligibilityCriteria)
}

func TestCreateGigRejectsStudent(t *testing.T) {
	_, _, accounts, svc := newFixture()
	u := accounts.users[2]
	ctx := testCtx(&model.UserData{ID: u.ID, UUID: u.UUID, Role: u.Role})

	_, err := svc.Create(ctx, &core.CreateReq{LabUUID: accounts.labs[10].UUID, Title: "t", Description: "d"})
	assert.ErrorIs(t, err, code.RoleDenied)
}

func TestCreateGigUnknownLab(t *testing.T) {
	_, _, accounts, svc := newFixture()
	ctx := testCtx(facilitatorData(accounts))

	_, err := svc.Create(ctx, &core.CreateReq{LabUUID: uuid.NewV4(), Title: "t", Description: "d"})
	assert.ErrorIs(t, err, code.LabNotFound)
}

func TestCreateGigBadCriteria(t *testing.T) {
	_, _, accounts, svc := newFixture()
	ctx := testCtx(facilitatorData(accounts))

	_, err := svc.Create(ctx, &core.CreateReq{
		LabUUID:     accounts.labs[10].UUID,
		Title:       "t",
		Description: "d",
		EligibilityCriteria: []*core.Criterion{
			{Name: "Year", DataType: core.DataText, Type: core.CriterionMultipleChoice},
		},
	})
	assert.ErrorIs(t, err, code.CriteriaErr)
}

func TestListGigsScoping(t *testing.T) {
	gigs, _, accounts, svc := newFixture()
	ctx := testCtx(facilitatorData(accounts))

	inScope := &model.Gig{LabID: 10, Title: "visible", Description: "d", CreatedBy: 1}
	outOfScope := &model.Gig{LabID: 11, Title: "hidden", Description: "d", CreatedBy: 9}
	require.NoError(t, gigs.CreateGig(ctx, inScope))
	require.NoError(t, gigs.CreateGig(ctx, outOfScope))
	inScope.Status = model.GigOpen
	outOfScope.Status = model.GigOpen
	gigs.histograms[inScope.ID] = &repo.ProposalHistogram{Total: 3, Submitted: 2, Approved: 1}

	resp, err := svc.List(ctx, &core.ListReq{})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, int64(1), resp.Total)
	assert.Equal(t, "visible", resp.Data[0].Title)
	assert.Equal(t, "Robotics Lab", resp.Data[0].Lab.Name)
	assert.Equal(t, int64(3), resp.Data[0].Proposals.Total)
}

func TestListGigsEmptyScope(t *testing.T) {
	_, _, _, svc := newFixture()
	// 未指派任何实验室的设施管理员
	stranger := &model.UserData{ID: 99, UUID: uuid.NewV4(), Role: common.Facilitator}

	resp, err := svc.List(testCtx(stranger), &core.ListReq{})
	require.NoError(t, err)
	assert.Empty(t, resp.Data)
	assert.Equal(t, int64(0), resp.Total)
}

func TestGigInfo(t *testing.T) {
	gigs, proposals, accounts, svc := newFixture()
	ctx := testCtx(facilitatorData(accounts))

	g := &model.Gig{LabID: 10, Title: "t", Description: "d", Status: model.GigOpen, CreatedBy: 1}
	require.NoError(t, gigs.CreateGig(ctx, g))
	p := &model.Proposal{GigID: g.ID, LabID: 10, StudentID: 2, Title: "mine", Status: model.ProposalSubmitted, SubmittedAt: time.Now()}
	require.NoError(t, proposals.CreateProposal(ctx, p))

	resp, err := svc.Info(ctx, &core.InfoReq{GigUUID: g.UUID})
	require.NoError(t, err)
	require.Len(t, resp.ProposalList, 1)
	assert.Equal(t, "mine", resp.ProposalList[0].Title)
	assert.Equal(t, "Arun", resp.ProposalList[0].Student.Name)
}

func TestGigInfoOutOfScope(t *testing.T) {
	gigs, _, accounts, svc := newFixture()
	ctx := testCtx(facilitatorData(accounts))

	g := &model.Gig{LabID: 11, Title: "t", Description: "d", Status: model.GigOpen, CreatedBy: 9}
	require.NoError(t, gigs.CreateGig(ctx, g))

	_, err := svc.Info(ctx, &core.InfoReq{GigUUID: g.UUID})
	assert.ErrorIs(t, err, code.GigNotFound)
}

func TestUpdateGigOnlyCreator(t *testing.T) {
	gigs, _, accounts, svc := newFixture()
	ctx := testCtx(facilitatorData(accounts))

	g := &model.Gig{LabID: 10, Title: "t", Description: "d", Status: model.GigOpen, CreatedBy: 42}
	require.NoError(t, gigs.CreateGig(ctx, g))

	status := model.GigClosed
	err := svc.Update(ctx, &core.UpdateReq{GigUUID: g.UUID, Status: &status})
	assert.ErrorIs(t, err, code.GigNotFound)
}

func TestUpdateGigStatus(t *testing.T) {
	gigs, _, accounts, svc := newFixture()
	ctx := testCtx(facilitatorData(accounts))

	g := &model.Gig{LabID: 10, Title: "t", Description: "d", Status: model.GigOpen, CreatedBy: 1}
	require.NoError(t, gigs.CreateGig(ctx, g))

	status := model.GigClosed
	require.NoError(t, svc.Update(ctx, &core.UpdateReq{GigUUID: g.UUID, Status: &status}))
	assert.Equal(t, model.GigClosed, gigs.gigs[g.ID].Status)
	assert.Contains(t, gigs.updates[g.ID], "updated_at")

	bad := model.GigStatus("frozen")
	err := svc.Update(ctx, &core.UpdateReq{GigUUID: g.UUID, Status: &bad})
	assert.ErrorIs(t, err, code.ParamErr)
}
