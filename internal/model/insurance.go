package model

// PolicyStatus は保険契約の状態を表す。
type PolicyStatus string

const (
	// PolicyStatusActive は有効な契約を示す。
	PolicyStatusActive PolicyStatus = "Active"
	// PolicyStatusExpired は満期・失効した契約を示す。
	PolicyStatusExpired PolicyStatus = "Expired"
)

// GeneralCover は損害保険（自動車・住宅・旅行等）の契約を表す。
// 金額の単位はKES。
type GeneralCover struct {
	ID           string            `json:"id"`
	Type         string            `json:"type"`
	Details      map[string]string `json:"details,omitempty"`
	Coverage     string            `json:"coverage"`
	Premium      int64             `json:"premium"`
	Deductible   int64             `json:"deductible"`
	PolicyNumber string            `json:"policyNumber"`
	StartDate    string            `json:"startDate"`
	EndDate      string            `json:"endDate"`
	Status       PolicyStatus      `json:"status"`
	Benefits     []string          `json:"benefits"`
}

// Beneficiary は生命保険の受取人を表す。
type Beneficiary struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Percentage   int    `json:"percentage"`
}

// LifePolicy は生命保険契約を表す。
type LifePolicy struct {
	ID               string        `json:"id"`
	PolicyType       string        `json:"policyType"`
	PolicyNumber     string        `json:"policyNumber"`
	SumAssured       int64         `json:"sumAssured"`
	PremiumAmount    int64         `json:"premiumAmount"`
	PremiumFrequency string        `json:"premiumFrequency"`
	StartDate        string        `json:"policyStartDate"`
	MaturityDate     string        `json:"maturityDate"`
	Status           PolicyStatus  `json:"status"`
	Beneficiaries    []Beneficiary `json:"beneficiaries"`
}

// Deposit は生命保険の保険料入金履歴を表す。
type Deposit struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Amount int64  `json:"amount"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

// MaturityBenefits は満期給付金の予測を表す。
type MaturityBenefits struct {
	ProjectedMaturityValue int64 `json:"projectedMaturityValue"`
	YearsToMaturity        int   `json:"yearsToMaturity"`
	MonthsToMaturity       int   `json:"monthsToMaturity"`
	GuaranteedAmount       int64 `json:"guaranteedAmount"`
	BonusProjection        int64 `json:"bonusProjection"`
	SurrenderValue         int64 `json:"surrenderValue"`
}

// LifeSummary は生命保険の契約サマリーを表す。
type LifeSummary struct {
	TotalPremiumsPaid int64  `json:"totalPremiumsPaid"`
	PolicyDuration    string `json:"policyDuration"`
	LastPaymentDate   string `json:"lastPaymentDate"`
	NextPaymentDue    string `json:"nextPaymentDue"`
	CashValue         int64  `json:"cashValue"`
}

// LifeInsurance は生命保険画面が表示する一式を表す。
type LifeInsurance struct {
	Policies         []LifePolicy     `json:"policies"`
	Deposits         []Deposit        `json:"deposits"`
	MaturityBenefits MaturityBenefits `json:"maturityBenefits"`
	Summary          LifeSummary      `json:"summary"`
}

// Portfolio は投資ポートフォリオの集計を表す。
type Portfolio struct {
	TotalValue      int64  `json:"totalValue"`
	TotalInvested   int64  `json:"totalInvested"`
	TotalGains      int64  `json:"totalGains"`
	PortfolioReturn string `json:"portfolioReturn"`
	LastUpdated     string `json:"lastUpdated"`
}

// Investment は投資商品（ファンド）の保有状況を表す。
type Investment struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Type              string  `json:"type"`
	Units             int64   `json:"units"`
	PricePerUnit      float64 `json:"pricePerUnit"`
	CurrentValue      int64   `json:"currentValue"`
	InitialInvestment int64   `json:"initialInvestment"`
	Gain              int64   `json:"gain"`
	GainPercentage    string  `json:"gainPercentage"`
	InvestmentDate    string  `json:"investmentDate"`
	RiskLevel         string  `json:"riskLevel"`
}

// Transaction はファンドの取引履歴を表す。
// 解約（Redemption）の場合はAmountとUnitsが負になる。
type Transaction struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"`
	Type         string  `json:"type"`
	Fund         string  `json:"fund"`
	Amount       int64   `json:"amount"`
	Units        int64   `json:"units"`
	PricePerUnit float64 `json:"pricePerUnit"`
	Status       string  `json:"status"`
}

// Performance は期間別のポートフォリオ収益率を表す。
type Performance struct {
	OneMonth    string `json:"oneMonth"`
	ThreeMonths string `json:"threeMonths"`
	SixMonths   string `json:"sixMonths"`
	OneYear     string `json:"oneYear"`
	ThreeYears  string `json:"threeYears"`
}

// AssetsInsurance は資産運用画面が表示する一式を表す。
type AssetsInsurance struct {
	Portfolio    Portfolio     `json:"portfolio"`
	Investments  []Investment  `json:"investments"`
	Transactions []Transaction `json:"transactions"`
	Performance  Performance   `json:"performance"`
}

// DashboardSummary はダッシュボードに表示する契約全体の集計を表す。
type DashboardSummary struct {
	TotalPolicies        int   `json:"totalPolicies"`
	ActivePolicies       int   `json:"activePolicies"`
	GeneralAnnualPremium int64 `json:"generalAnnualPremium"`
	LifeMonthlyPremium   int64 `json:"lifeMonthlyPremium"`
	PortfolioValue       int64 `json:"portfolioValue"`
	PortfolioGains       int64 `json:"portfolioGains"`
}
