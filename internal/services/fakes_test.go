package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"campaignadmin/internal/interfaces"
	"campaignadmin/internal/models"
)

type fakeCampaigns struct {
	mu        sync.Mutex
	campaigns map[string]*models.Campaign
	lastLive  interfaces.LiveCampaignFilter
}

func newFakeCampaigns(cs ...*models.Campaign) *fakeCampaigns {
	f := &fakeCampaigns{campaigns: map[string]*models.Campaign{}}
	for _, c := range cs {
		f.campaigns[c.ID] = c
	}
	return f
}

func (f *fakeCampaigns) Create(_ context.Context, c *models.Campaign) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.campaigns[c.ID] = c
	return nil
}

func (f *fakeCampaigns) GetByID(_ context.Context, id string) (*models.Campaign, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.campaigns[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCampaigns) GetRewards(ctx context.Context, id string) (*models.CampaignRewards, error) {
	c, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.CampaignRewards{ID: c.ID, Rewards: c.Rewards}, nil
}

func (f *fakeCampaigns) Update(_ context.Context, id string, p models.CampaignPatch) (*models.Campaign, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.campaigns[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.StartDate != nil {
		c.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		c.EndDate = *p.EndDate
	}
	if p.Rewards != nil {
		c.Rewards = *p.Rewards
	}
	if p.LocationIDs != nil {
		c.LocationIDs = *p.LocationIDs
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCampaigns) SoftDelete(_ context.Context, id string) (*models.Campaign, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.campaigns[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	c.Status = models.CampaignStatusDeleted
	cp := *c
	return &cp, nil
}

func (f *fakeCampaigns) ListLive(_ context.Context, filter interfaces.LiveCampaignFilter) (*models.LiveCampaigns, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastLive = filter
	out := &models.LiveCampaigns{Campaigns: []models.CampaignSummary{}}
	for _, c := range f.campaigns {
		if c.StartDate.After(filter.Now) {
			continue
		}
		if filter.Live && (c.EndDate.Before(filter.Now) || c.Status == models.CampaignStatusDeleted) {
			continue
		}
		out.Campaigns = append(out.Campaigns, models.CampaignSummary{ID: c.ID, Name: c.Name, NoOfEntries: c.NoOfEntries})
		out.TotalEntries += c.NoOfEntries
	}
	return out, nil
}

func (f *fakeCampaigns) AddEntries(_ context.Context, id string, delta int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.campaigns[id]
	if !ok {
		return interfaces.ErrNotFound
	}
	c.NoOfEntries += delta
	return nil
}

func (f *fakeSubmissions) status(id string) models.SubmissionStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submissions[id].Status
}

func (f *fakeCampaigns) entries(id string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.campaigns[id].NoOfEntries
}

type fakeSubmissions struct {
	mu          sync.Mutex
	campaigns   *fakeCampaigns
	submissions map[string]*models.Submission
	entries     []models.Entry
	lastPage    interfaces.EntryPage
}

func (f *fakeSubmissions) ListEntries(_ context.Context, page interfaces.EntryPage) ([]models.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastPage = page
	out := make([]models.Entry, len(f.entries))
	copy(out, f.entries)
	return out, nil
}

func (f *fakeSubmissions) Review(_ context.Context, id string, r models.TaskReview) (*models.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.submissions[id]
	if !ok || s.Status != models.SubmissionStatusSubmitted {
		return nil, interfaces.ErrNotFound
	}
	if r.CountEntry && r.Status == models.SubmissionStatusApproved {
		// same transaction: nothing changes unless the campaign exists
		if err := f.campaigns.AddEntries(context.Background(), s.CampaignID, 1); err != nil {
			return nil, err
		}
	}
	s.Status = r.Status
	if r.Remarks != nil {
		s.Remarks = *r.Remarks
	}
	reviewer := r.ReviewedBy
	s.ReviewedBy = &reviewer
	cp := *s
	return &cp, nil
}

type fakeReports struct {
	rows       []models.ReportEntry
	err        error
	lastFilter models.ReportFilter
	lastNow    time.Time
}

func (f *fakeReports) Find(_ context.Context, filter models.ReportFilter, now time.Time) ([]models.ReportEntry, error) {
	f.lastFilter = filter
	f.lastNow = now
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

type fakeRewards struct {
	created *models.Reward
	merged  json.RawMessage
}

func (f *fakeRewards) Create(_ context.Context, r *models.Reward) error {
	f.created = r
	return nil
}

func (f *fakeRewards) Merge(_ context.Context, id, updatedBy string, payload json.RawMessage) (*models.Reward, error) {
	f.merged = payload
	return &models.Reward{ID: id, Payload: payload, UpdatedBy: updatedBy}, nil
}

type fakeAdmins struct {
	ids map[string]bool
}

func (f *fakeAdmins) GetID(_ context.Context, id string) (string, error) {
	if !f.ids[id] {
		return "", interfaces.ErrNotFound
	}
	return id, nil
}

type fakeSigner struct {
	calls []string
}

func (f *fakeSigner) PhotoURL(_ context.Context, photoID string) (string, error) {
	f.calls = append(f.calls, photoID)
	return "https://photos.example.com/" + photoID + "?sig=1", nil
}

type fakeExporter struct {
	got []models.ReportEntry
}

func (f *fakeExporter) Export(_ context.Context, entries []models.ReportEntry) (*models.ReportExport, error) {
	f.got = entries
	return &models.ReportExport{Key: "reports/x.csv", Rows: len(entries)}, nil
}
