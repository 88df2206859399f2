package handler

import (
	"net/http"

	"github.com/hitoshi/coverdesk/internal/model"
)

// InsuranceServiceInterface は契約データハンドラーが必要とするサービスインターフェース。
type InsuranceServiceInterface interface {
	GeneralCovers() []model.GeneralCover
	Life() model.LifeInsurance
	Assets() model.AssetsInsurance
	Dashboard() model.DashboardSummary
}

// InsuranceHandler は契約データ関連のHTTPハンドラー。
// セッションミドルウェアの内側に配置され、認証済みアクセスのみを想定する。
type InsuranceHandler struct {
	service InsuranceServiceInterface
}

// NewInsuranceHandler はInsuranceHandlerを生成する。
func NewInsuranceHandler(service InsuranceServiceInterface) *InsuranceHandler {
	return &InsuranceHandler{service: service}
}

// Dashboard は契約全体のサマリーを返す。
// GET /api/dashboard
func (h *InsuranceHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Dashboard())
}

// General は損害保険の契約一覧を返す。
// GET /api/insurance/general
func (h *InsuranceHandler) General(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"covers": h.service.GeneralCovers(),
	})
}

// Life は生命保険の契約・入金履歴・満期予測を返す。
// GET /api/insurance/life
func (h *InsuranceHandler) Life(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Life())
}

// Assets は資産運用のポートフォリオ・保有商品・取引履歴を返す。
// GET /api/insurance/assets
func (h *InsuranceHandler) Assets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Assets())
}
