// Package insurance は契約データの提供と集計を行う。
//
// データは静的なモック台帳であり、実際の契約管理システムとの連携は行わない。
// サービス層はこの台帳の読み取りと単純な集計だけを提供する。
package insurance

import "github.com/hitoshi/coverdesk/internal/model"

// generalCovers は損害保険のモック台帳。金額はKES。
var generalCovers = []model.GeneralCover{
	{
		ID:   "GI001",
		Type: "Motor Vehicle",
		Details: map[string]string{
			"make":               "Toyota",
			"model":              "Camry",
			"year":               "2020",
			"registrationNumber": "KCA 123A",
		},
		Coverage:     "Comprehensive",
		Premium:      85000,
		Deductible:   25000,
		PolicyNumber: "CIC-MV-2024-001",
		StartDate:    "2024-01-15",
		EndDate:      "2025-01-14",
		Status:       model.PolicyStatusActive,
		Benefits: []string{
			"Third Party Liability",
			"Collision Coverage",
			"Theft Protection",
			"Fire & Natural Disasters",
			"Personal Accident Cover",
			"Windscreen Coverage",
		},
	},
	{
		ID:   "GI002",
		Type: "Home Insurance",
		Details: map[string]string{
			"address":      "Kilimani, Nairobi",
			"propertyType": "Apartment",
			"bedrooms":     "3",
			"squareMeters": "150",
		},
		Coverage:     "Buildings & Contents",
		Premium:      45000,
		Deductible:   15000,
		PolicyNumber: "CIC-HI-2024-002",
		StartDate:    "2024-03-01",
		EndDate:      "2025-02-28",
		Status:       model.PolicyStatusActive,
		Benefits: []string{
			"Fire & Lightning",
			"Theft & Burglary",
			"Water Damage",
			"Personal Belongings",
			"Alternative Accommodation",
			"Public Liability",
		},
	},
	{
		ID:   "GI003",
		Type: "Travel Insurance",
		Details: map[string]string{
			"destination":  "Europe",
			"tripDuration": "14 days",
			"travelType":   "Leisure",
		},
		Coverage:     "Comprehensive Travel",
		Premium:      12000,
		Deductible:   5000,
		PolicyNumber: "CIC-TI-2024-003",
		StartDate:    "2024-06-01",
		EndDate:      "2024-06-15",
		Status:       model.PolicyStatusExpired,
		Benefits: []string{
			"Medical Emergencies",
			"Trip Cancellation",
			"Lost Luggage",
			"Flight Delays",
			"Emergency Evacuation",
			"Personal Liability",
		},
	},
}

// lifeInsurance は生命保険のモック台帳。
var lifeInsurance = model.LifeInsurance{
	Policies: []model.LifePolicy{
		{
			ID:               "LI001",
			PolicyType:       "Whole Life",
			PolicyNumber:     "CIC-WL-2020-001",
			SumAssured:       2500000,
			PremiumAmount:    18000,
			PremiumFrequency: "Monthly",
			StartDate:        "2020-05-15",
			MaturityDate:     "2055-05-15",
			Status:           model.PolicyStatusActive,
			Beneficiaries: []model.Beneficiary{
				{Name: "Jane Doe", Relationship: "Spouse", Percentage: 60},
				{Name: "John Doe Jr.", Relationship: "Child", Percentage: 40},
			},
		},
	},
	Deposits: []model.Deposit{
		{ID: "DEP001", Date: "2024-05-15", Amount: 18000, Type: "Premium Payment", Status: "Processed"},
		{ID: "DEP002", Date: "2024-04-15", Amount: 18000, Type: "Premium Payment", Status: "Processed"},
		{ID: "DEP003", Date: "2024-03-15", Amount: 18000, Type: "Premium Payment", Status: "Processed"},
		{ID: "DEP004", Date: "2024-02-15", Amount: 25000, Type: "Additional Premium", Status: "Processed"},
		{ID: "DEP005", Date: "2024-01-15", Amount: 18000, Type: "Premium Payment", Status: "Processed"},
	},
	MaturityBenefits: model.MaturityBenefits{
		ProjectedMaturityValue: 8500000,
		YearsToMaturity:        31,
		MonthsToMaturity:       8,
		GuaranteedAmount:       2500000,
		BonusProjection:        6000000,
		SurrenderValue:         450000,
	},
	Summary: model.LifeSummary{
		TotalPremiumsPaid: 792000,
		PolicyDuration:    "4 years 1 month",
		LastPaymentDate:   "2024-05-15",
		NextPaymentDue:    "2024-06-15",
		CashValue:         450000,
	},
}

// assetsInsurance は資産運用のモック台帳。
var assetsInsurance = model.AssetsInsurance{
	Portfolio: model.Portfolio{
		TotalValue:      1850000,
		TotalInvested:   1200000,
		TotalGains:      650000,
		PortfolioReturn: "54.17%",
		LastUpdated:     "2024-05-20",
	},
	Investments: []model.Investment{
		{
			ID: "INV001", Name: "CIC Money Market Fund", Type: "Money Market",
			Units: 45000, PricePerUnit: 12.45, CurrentValue: 560250,
			InitialInvestment: 400000, Gain: 160250, GainPercentage: "40.06%",
			InvestmentDate: "2022-08-15", RiskLevel: "Low",
		},
		{
			ID: "INV002", Name: "CIC Equity Fund", Type: "Equity Fund",
			Units: 28000, PricePerUnit: 18.75, CurrentValue: 525000,
			InitialInvestment: 350000, Gain: 175000, GainPercentage: "50.00%",
			InvestmentDate: "2021-11-20", RiskLevel: "High",
		},
		{
			ID: "INV003", Name: "CIC Bond Fund", Type: "Bond Fund",
			Units: 35000, PricePerUnit: 15.30, CurrentValue: 535500,
			InitialInvestment: 300000, Gain: 235500, GainPercentage: "78.50%",
			InvestmentDate: "2020-03-10", RiskLevel: "Medium",
		},
		{
			ID: "INV004", Name: "CIC Balanced Fund", Type: "Balanced Fund",
			Units: 15000, PricePerUnit: 15.50, CurrentValue: 232500,
			InitialInvestment: 150000, Gain: 82500, GainPercentage: "55.00%",
			InvestmentDate: "2023-01-25", RiskLevel: "Medium",
		},
	},
	Transactions: []model.Transaction{
		{ID: "TXN001", Date: "2024-05-15", Type: "Purchase", Fund: "CIC Money Market Fund", Amount: 50000, Units: 4016, PricePerUnit: 12.45, Status: "Completed"},
		{ID: "TXN002", Date: "2024-04-20", Type: "Dividend", Fund: "CIC Equity Fund", Amount: 25000, Units: 0, PricePerUnit: 0, Status: "Completed"},
		{ID: "TXN003", Date: "2024-04-01", Type: "Purchase", Fund: "CIC Bond Fund", Amount: 75000, Units: 4902, PricePerUnit: 15.30, Status: "Completed"},
		{ID: "TXN004", Date: "2024-03-15", Type: "Redemption", Fund: "CIC Money Market Fund", Amount: -30000, Units: -2410, PricePerUnit: 12.45, Status: "Completed"},
		{ID: "TXN005", Date: "2024-02-28", Type: "Purchase", Fund: "CIC Balanced Fund", Amount: 100000, Units: 6452, PricePerUnit: 15.50, Status: "Completed"},
		{ID: "TXN006", Date: "2024-01-30", Type: "Dividend", Fund: "CIC Bond Fund", Amount: 18500, Units: 0, PricePerUnit: 0, Status: "Completed"},
	},
	Performance: model.Performance{
		OneMonth:    "+3.2%",
		ThreeMonths: "+8.7%",
		SixMonths:   "+15.4%",
		OneYear:     "+28.9%",
		ThreeYears:  "+54.17%",
	},
}
