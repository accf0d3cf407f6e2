package api

// SalesRecord is one observation as served over the API. Dates are formatted
// as 2006-01-02 since the data is day-granular.
type SalesRecord struct {
	Date    string `json:"date"`
	Product string `json:"product"`
	Region  string `json:"region"`
	Sales   int    `json:"sales"`
	Profit  int    `json:"profit"`
}

// KPIs carries the scalar metrics. AvgSale is pre-formatted ("nan" on an
// empty view) so the payload stays valid JSON.
type KPIs struct {
	TotalSales  int    `json:"total_sales"`
	TotalProfit int    `json:"total_profit"`
	AvgSale     string `json:"avg_sale"`
}

type TrendPoint struct {
	Period string `json:"period"`
	Value  int    `json:"value"`
}

type GroupTotal struct {
	Key   string `json:"key"`
	Total int    `json:"total"`
}

type DashboardOptions struct {
	Frequency  string `json:"frequency"`
	Cumulative bool   `json:"cumulative"`
	Chart      string `json:"chart"`
}

type Dashboard struct {
	Options       DashboardOptions `json:"options"`
	KPIs          KPIs             `json:"kpis"`
	SalesTrend    []TrendPoint     `json:"sales_trend"`
	ProfitTrend   []TrendPoint     `json:"profit_trend"`
	TopProducts   []GroupTotal     `json:"top_products"`
	RegionRevenue []GroupTotal     `json:"region_revenue"`
	Records       []SalesRecord    `json:"records"`
}

type Catalog struct {
	Regions   []string `json:"regions"`
	Products  []string `json:"products"`
	FirstDate string   `json:"first_date"`
	LastDate  string   `json:"last_date"`
}

type Error struct {
	Error string `json:"error"`
}
