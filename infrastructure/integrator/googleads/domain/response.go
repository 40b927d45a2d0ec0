package adsdomain

// TokenResponse é a resposta do endpoint OAuth para grant_type=refresh_token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
	Scope       string `json:"scope"`
}

type ListAccessibleCustomersResponse struct {
	ResourceNames []string `json:"resourceNames"`
}

type SearchRequest struct {
	Query     string `json:"query"`
	PageToken string `json:"pageToken,omitempty"`
}

type SearchResponse struct {
	Results       []GoogleAdsRow `json:"results"`
	NextPageToken string         `json:"nextPageToken"`
	FieldMask     string         `json:"fieldMask"`
}

// SearchStreamBatch é um elemento do array devolvido por googleAds:searchStream
type SearchStreamBatch struct {
	Results   []GoogleAdsRow `json:"results"`
	FieldMask string         `json:"fieldMask"`
	RequestID string         `json:"requestId"`
}
