package dto

import "github.com/maclaude/learning-node-js-graphql-api/internal/apperr"

// GraphQLRequest is the JSON body for POST /graphql.
type GraphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// GraphQLError is the wire shape of a formatted execution error.
type GraphQLError struct {
	Message string              `json:"message"`
	Status  int                 `json:"status,omitempty"`
	Data    []apperr.FieldError `json:"data,omitempty"`
}

// GraphQLResponse is the wire shape of an execution result.
type GraphQLResponse struct {
	Data   interface{}    `json:"data"`
	Errors []GraphQLError `json:"errors,omitempty"`
}
