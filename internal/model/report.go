package model

// OrderSubset labels a slice of orders inspected by the health report.
// An empty Source means every source.
type OrderSubset struct {
	Label    string `json:"label"`
	Source   string `json:"source,omitempty"`
	PaidOnly bool   `json:"paidOnly"`
}

type SubsetReport struct {
	Subset        OrderSubset `json:"subset"`
	Dispatched    int         `json:"dispatched"`
	NotDispatched int         `json:"notDispatched"`
	Recent        []Order     `json:"recent"`
}

type HealthReport struct {
	Provider   string         `json:"provider"`
	Configured bool           `json:"configured"`
	Subsets    []SubsetReport `json:"subsets"`
}

type ConnectionReport struct {
	Provider   string `json:"provider"`
	OK         bool   `json:"ok"`
	OrderID    string `json:"orderId"`
	ShopID     string `json:"shopId"`
	DispatchID string `json:"dispatchId,omitempty"`
	Status     string `json:"status,omitempty"`
	StatusCode int    `json:"statusCode,omitempty"`
	Error      string `json:"error,omitempty"`
	Diagnosis  string `json:"diagnosis,omitempty"`
}
