package entity

// DateInterval is the [Start, End) period of a Cost Explorer result.
type DateInterval struct {
	Start string `json:"Start"`
	End   string `json:"End"`
}

// MetricValue represents an amount of a metric (ex.: UnblendedCost) and its unit.
type MetricValue struct {
	Amount string `json:"Amount"`
	Unit   string `json:"Unit"`
}

// Group é o custo de uma chave de agrupamento (aqui, um serviço AWS) em um dia.
type Group struct {
	Keys    []string               `json:"Keys"`
	Metrics map[string]MetricValue `json:"Metrics"`
}

// ResultByTime mirrors one entry of Cost Explorer's ResultsByTime. The JSON
// field names are the API field names so the stored report matches what the
// API returned.
type ResultByTime struct {
	TimePeriod DateInterval           `json:"TimePeriod"`
	Total      map[string]MetricValue `json:"Total"`
	Groups     []Group                `json:"Groups"`
	Estimated  bool                   `json:"Estimated"`
}

// CostReport é a lista diária de custos agrupados, repassada sem modificação.
type CostReport []ResultByTime
