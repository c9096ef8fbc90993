package dto

// SampleResponse は系列サンプルのレスポンスDTOです。
type SampleResponse struct {
	Date  string  `json:"date"`  // 日付 (YYYY-MM-DD)
	Price float64 `json:"price"` // 価格
}

// RegenerateResponse は系列再生成のレスポンスDTOです。
type RegenerateResponse struct {
	Symbol  string `json:"symbol"`
	Samples int    `json:"samples"`
}
