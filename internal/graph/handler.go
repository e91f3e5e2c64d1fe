package graph

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"

	"github.com/maclaude/learning-node-js-graphql-api/internal/apperr"
	"github.com/maclaude/learning-node-js-graphql-api/internal/dto"
)

// Handler executes GraphQL requests against a schema and formats resolver
// failures into the {message, status, data} error shape.
type Handler struct {
	schema graphql.Schema
}

// NewHandler returns a Handler for the given schema.
func NewHandler(schema graphql.Schema) *Handler {
	return &Handler{schema: schema}
}

// Handle serves POST bodies ({query, variables, operationName}) and GET
// requests with a query parameter.
func (h *Handler) Handle(c *gin.Context) {
	var req dto.GraphQLRequest
	if c.Request.Method == http.MethodGet {
		req.Query = c.Query("query")
		req.OperationName = c.Query("operationName")
		if raw := c.Query("variables"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "variables must be a JSON object"})
				return
			}
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        c.Request.Context(),
	})

	resp := dto.GraphQLResponse{Data: result.Data}
	for _, fe := range result.Errors {
		resp.Errors = append(resp.Errors, formatError(fe))
	}
	c.JSON(http.StatusOK, resp)
}

// formatError maps an execution error onto the wire shape. Resolver failures
// carrying an apperr.Error keep their status and field data; other resolver
// failures collapse to 500; pure query errors (syntax, unknown field) pass
// through with no status.
func formatError(fe gqlerrors.FormattedError) dto.GraphQLError {
	orig := fe.OriginalError()
	if orig == nil {
		return dto.GraphQLError{Message: fe.Message}
	}
	if ae := asAppError(orig); ae != nil {
		return dto.GraphQLError{Message: ae.Message, Status: ae.Status, Data: ae.Data}
	}
	return dto.GraphQLError{Message: fe.Message, Status: http.StatusInternalServerError}
}

// asAppError digs the apperr.Error out of the gqlerrors wrapping, if any.
func asAppError(err error) *apperr.Error {
	for err != nil {
		var ae *apperr.Error
		if errors.As(err, &ae) {
			return ae
		}
		switch e := err.(type) {
		case *gqlerrors.Error:
			err = e.OriginalError
		case gqlerrors.FormattedError:
			err = e.OriginalError()
		default:
			return nil
		}
	}
	return nil
}
