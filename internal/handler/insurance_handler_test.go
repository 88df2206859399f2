package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hitoshi/coverdesk/internal/model"
)

// --- モック定義 ---

type mockInsuranceService struct {
	generalCoversFn func() []model.GeneralCover
	lifeFn          func() model.LifeInsurance
	assetsFn        func() model.AssetsInsurance
	dashboardFn     func() model.DashboardSummary
}

func (m *mockInsuranceService) GeneralCovers() []model.GeneralCover {
	if m.generalCoversFn != nil {
		return m.generalCoversFn()
	}
	return nil
}

func (m *mockInsuranceService) Life() model.LifeInsurance {
	if m.lifeFn != nil {
		return m.lifeFn()
	}
	return model.LifeInsurance{}
}

func (m *mockInsuranceService) Assets() model.AssetsInsurance {
	if m.assetsFn != nil {
		return m.assetsFn()
	}
	return model.AssetsInsurance{}
}

func (m *mockInsuranceService) Dashboard() model.DashboardSummary {
	if m.dashboardFn != nil {
		return m.dashboardFn()
	}
	return model.DashboardSummary{}
}

var _ InsuranceServiceInterface = (*mockInsuranceService)(nil)

// --- テスト ---

func TestDashboard_ReturnsSummary(t *testing.T) {
	svc := &mockInsuranceService{
		dashboardFn: func() model.DashboardSummary {
			return model.DashboardSummary{
				TotalPolicies:  4,
				ActivePolicies: 3,
				PortfolioValue: 1850000,
			}
		},
	}
	h := NewInsuranceHandler(svc)

	rec := httptest.NewRecorder()
	h.Dashboard(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body model.DashboardSummary
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body.TotalPolicies != 4 {
		t.Errorf("totalPolicies = %d, want 4", body.TotalPolicies)
	}
	if body.PortfolioValue != 1850000 {
		t.Errorf("portfolioValue = %d, want 1850000", body.PortfolioValue)
	}
}

func TestGeneral_WrapsCoversInObject(t *testing.T) {
	svc := &mockInsuranceService{
		generalCoversFn: func() []model.GeneralCover {
			return []model.GeneralCover{
				{ID: "GI001", Type: "Motor Vehicle", Status: model.PolicyStatusActive},
			}
		},
	}
	h := NewInsuranceHandler(svc)

	rec := httptest.NewRecorder()
	h.General(rec, httptest.NewRequest(http.MethodGet, "/api/insurance/general", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Covers []model.GeneralCover `json:"covers"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if len(body.Covers) != 1 || body.Covers[0].ID != "GI001" {
		t.Errorf("covers = %+v, want single GI001", body.Covers)
	}
}

func TestLife_ReturnsFullPayload(t *testing.T) {
	svc := &mockInsuranceService{
		lifeFn: func() model.LifeInsurance {
			return model.LifeInsurance{
				Policies: []model.LifePolicy{{ID: "LI001"}},
				Deposits: []model.Deposit{{ID: "DEP001"}},
			}
		},
	}
	h := NewInsuranceHandler(svc)

	rec := httptest.NewRecorder()
	h.Life(rec, httptest.NewRequest(http.MethodGet, "/api/insurance/life", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body model.LifeInsurance
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if len(body.Policies) != 1 || body.Policies[0].ID != "LI001" {
		t.Errorf("policies = %+v, want single LI001", body.Policies)
	}
}

func TestAssets_ReturnsFullPayload(t *testing.T) {
	svc := &mockInsuranceService{
		assetsFn: func() model.AssetsInsurance {
			return model.AssetsInsurance{
				Portfolio: model.Portfolio{TotalValue: 1850000},
			}
		},
	}
	h := NewInsuranceHandler(svc)

	rec := httptest.NewRecorder()
	h.Assets(rec, httptest.NewRequest(http.MethodGet, "/api/insurance/assets", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body model.AssetsInsurance
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body.Portfolio.TotalValue != 1850000 {
		t.Errorf("totalValue = %d, want 1850000", body.Portfolio.TotalValue)
	}
}
