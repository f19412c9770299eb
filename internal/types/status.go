package types

// UserTier is the two-valued discount tier. VIP requires an active subscription.
type UserTier string

const (
	UserTierNormal UserTier = "normal"
	UserTierVIP    UserTier = "vip"
)

func (t UserTier) Validate() bool {
	switch t {
	case UserTierNormal, UserTierVIP:
		return true
	}
	return false
}

// PlanPeriod identifies a purchasable subscription duration.
type PlanPeriod string

const (
	PlanPeriodMonthly   PlanPeriod = "monthly"
	PlanPeriodQuarterly PlanPeriod = "quarterly"
	PlanPeriodYearly    PlanPeriod = "yearly"
)

func (p PlanPeriod) Validate() bool {
	switch p {
	case PlanPeriodMonthly, PlanPeriodQuarterly, PlanPeriodYearly:
		return true
	}
	return false
}

// BookingStatus tracks the request/order lifecycle. A pending booking moves to
// completed via confirm or to cancelled via cancel. Confirmed submissions never
// fail; there is no partial-failure state.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// MerchantCategory groups merchants into the marketplace's service categories.
type MerchantCategory string

const (
	MerchantCategoryDineOut    MerchantCategory = "dine_out"
	MerchantCategoryShopping   MerchantCategory = "shopping"
	MerchantCategoryHealthcare MerchantCategory = "healthcare"
	MerchantCategoryAutomobile MerchantCategory = "automobile"
	MerchantCategoryFinancial  MerchantCategory = "financial"
)
