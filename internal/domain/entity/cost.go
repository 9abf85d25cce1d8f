package entity

// CostMetric is the only Cost Explorer metric the report reads.
const CostMetric = "UnblendedCost"

// CostAmount represents a metric value as returned by the API: a decimal string plus unit.
// Amount is empty when the API omitted it.
type CostAmount struct {
	Amount string `json:"amount"`
	Unit   string `json:"unit,omitempty"`
}

// CostGroup represents the cost of a single group key (account id or service name).
type CostGroup struct {
	Key    string     `json:"key"`
	Amount CostAmount `json:"amount"`
}

// CostBucket is one time bucket of a Cost Explorer result.
type CostBucket struct {
	Start  string      `json:"start"`
	End    string      `json:"end"`
	Groups []CostGroup `json:"groups,omitempty"`
	Total  *CostAmount `json:"total,omitempty"`
}

// CostQueryResult contém todos os buckets retornados por uma consulta GetCostAndUsage.
type CostQueryResult struct {
	GroupBy GroupBy      `json:"group_by"`
	Window  TimeWindow   `json:"window"`
	Buckets []CostBucket `json:"buckets"`
}
