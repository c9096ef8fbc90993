// Package api はHTTPレスポンスで共有される型を定義します。
package api

// ErrorResponse はエラー時のJSONレスポンスです。
type ErrorResponse struct {
	Error string `json:"error"`
}
