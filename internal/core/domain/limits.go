package domain

// TierLimits holds the withdrawal ceilings for one verification tier.
// All values are in currency display units.
type TierLimits struct {
	MinAmount    int64 `json:"min_amount"`
	MaxAmount    int64 `json:"max_amount"`
	DailyLimit   int64 `json:"daily_limit"`
	MonthlyLimit int64 `json:"monthly_limit"`
}

var tierLimits = map[VerificationTier]TierLimits{
	TierBasic:    {MinAmount: 10, MaxAmount: 1000, DailyLimit: 2000, MonthlyLimit: 5000},
	TierVerified: {MinAmount: 10, MaxAmount: 5000, DailyLimit: 10000, MonthlyLimit: 25000},
	TierPremium:  {MinAmount: 10, MaxAmount: 10000, DailyLimit: 20000, MonthlyLimit: 50000},
}

// LimitsForTier returns the fixed ceiling table for a tier.
func LimitsForTier(t VerificationTier) (TierLimits, bool) {
	l, ok := tierLimits[t]
	return l, ok
}
