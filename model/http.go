package model

// NOTE: nil pointers and slices marshal to JSON null, which is how an
// absent query or an empty symbol search is reported.

type TransposeRequestBody struct {
	Note   *string `json:"note"`
	Delta  int     `json:"delta"`
	Symbol bool    `json:"symbol"`
}

type TransposeResponse struct {
	Note *string `json:"note"`
}

type SymbolsRequestBody struct {
	Query     *string `json:"query"`
	Octave    *int    `json:"octave"`
	Transpose int     `json:"transpose"`
}

type SymbolsResponse struct {
	Symbols []string `json:"symbols"`
	Keys    []int    `json:"keys,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
