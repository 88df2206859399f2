package insurance

import (
	"fmt"

	"github.com/hitoshi/coverdesk/internal/model"
)

// Service は契約データの読み取りとダッシュボード集計を提供する。
// 台帳は静的なので状態を持たない。
type Service struct{}

// NewService はServiceを生成する。
func NewService() *Service {
	return &Service{}
}

// GeneralCovers は損害保険の契約一覧を返す。
func (s *Service) GeneralCovers() []model.GeneralCover {
	covers := make([]model.GeneralCover, len(generalCovers))
	copy(covers, generalCovers)
	return covers
}

// Life は生命保険の契約・入金履歴・満期予測の一式を返す。
func (s *Service) Life() model.LifeInsurance {
	return lifeInsurance
}

// Assets は資産運用のポートフォリオ・保有商品・取引履歴の一式を返す。
func (s *Service) Assets() model.AssetsInsurance {
	return assetsInsurance
}

// Dashboard は全カテゴリを横断した契約サマリーを集計して返す。
func (s *Service) Dashboard() model.DashboardSummary {
	summary := model.DashboardSummary{
		PortfolioValue: assetsInsurance.Portfolio.TotalValue,
		PortfolioGains: assetsInsurance.Portfolio.TotalGains,
	}

	for _, c := range generalCovers {
		summary.TotalPolicies++
		if c.Status == model.PolicyStatusActive {
			summary.ActivePolicies++
			summary.GeneralAnnualPremium += c.Premium
		}
	}

	for _, p := range lifeInsurance.Policies {
		summary.TotalPolicies++
		if p.Status == model.PolicyStatusActive {
			summary.ActivePolicies++
			summary.LifeMonthlyPremium += p.PremiumAmount
		}
	}

	return summary
}

// FormatKES は金額をKES表記に整形する（例: "KES 85,000"）。
func FormatKES(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	digits := fmt.Sprintf("%d", amount)
	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, d)
	}

	if neg {
		return "KES -" + string(grouped)
	}
	return "KES " + string(grouped)
}
