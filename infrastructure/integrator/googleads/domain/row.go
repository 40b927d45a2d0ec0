package adsdomain

// Valores int64 chegam como string no JSON da API REST; doubles chegam como número.

type GoogleAdsRow struct {
	Customer       *Customer       `json:"customer,omitempty"`
	CustomerClient *CustomerClient `json:"customerClient,omitempty"`
	Campaign       *Campaign       `json:"campaign,omitempty"`
	Metrics        *Metrics        `json:"metrics,omitempty"`
	Segments       *Segments       `json:"segments,omitempty"`
}

type Customer struct {
	ResourceName    string `json:"resourceName"`
	ID              string `json:"id"`
	DescriptiveName string `json:"descriptiveName"`
	CurrencyCode    string `json:"currencyCode"`
	TimeZone        string `json:"timeZone"`
	Manager         bool   `json:"manager"`
	TestAccount     bool   `json:"testAccount"`
	Status          string `json:"status"`
}

type CustomerClient struct {
	ResourceName    string `json:"resourceName"`
	ClientCustomer  string `json:"clientCustomer"`
	ID              string `json:"id"`
	DescriptiveName string `json:"descriptiveName"`
	CurrencyCode    string `json:"currencyCode"`
	TimeZone        string `json:"timeZone"`
	Manager         bool   `json:"manager"`
	TestAccount     bool   `json:"testAccount"`
	Level           string `json:"level"`
	Status          string `json:"status"`
}

type Campaign struct {
	ResourceName           string `json:"resourceName"`
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	Status                 string `json:"status"`
	AdvertisingChannelType string `json:"advertisingChannelType"`
}

type Metrics struct {
	Impressions      string  `json:"impressions"`
	Clicks           string  `json:"clicks"`
	CostMicros       string  `json:"costMicros"`
	Conversions      float64 `json:"conversions"`
	ConversionsValue float64 `json:"conversionsValue"`
}

type Segments struct {
	Date string `json:"date"`
}
