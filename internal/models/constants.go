package models

// Classification methods, recorded per row for auditability
const (
	MethodMerchantMatch  = "merchant_match"
	MethodLearnedMapping = "learned_mapping"
	MethodKeywordMatch   = "keyword_match"
	MethodFuzzyMatch     = "fuzzy_match"
	MethodHeuristic      = "heuristic_match"
	MethodNone           = "none"
)

// Categories
const (
	CategoryUncategorized  = "Uncategorized"
	CategoryIncome         = "Income"
	CategoryFoodDining     = "Food & Dining"
	CategoryShopping       = "Shopping"
	CategoryTransportation = "Transportation"
	CategoryBillsUtilities = "Bills & Utilities"
	CategoryHealthcare     = "Healthcare"
	CategoryEntertainment  = "Entertainment"
	CategoryBanking        = "Banking"
)

// Validation error kinds
const (
	KindMissingDate                = "missing_date"
	KindMissingDescription         = "missing_description"
	KindMissingAmount              = "missing_amount"
	KindInvalidAmount              = "invalid_amount"
	KindZeroAmount                 = "zero_amount"
	KindMerchantRangeViolation     = "merchant_range_violation"
	KindCategoryThresholdViolation = "category_threshold_violation"
	KindGlobalLimitViolation       = "global_limit_violation"
	KindMonthlyAnomaly             = "monthly_anomaly"
	KindYearlyAnomaly              = "yearly_anomaly"
	KindSuspiciousAmount           = "suspicious_amount"
	KindInvalidDate                = "invalid_date"
	KindFutureDate                 = "future_date"
	KindAncientDate                = "ancient_date"
)

// Billing cycles declared on merchant rules
const (
	BillingMonthly = "monthly"
	BillingYearly  = "yearly"
)

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)
