package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RehahnC/shared-rexdb-fastapi-sql/internal/gateway"
)

const (
	paramSQLQuery  = "sqlquery"
	detailInternal = "internal server error"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

// fieldError is one entry of a request validation failure, laid out the
// way FastAPI clients already parse it.
type fieldError struct {
	Type  string   `json:"type"`
	Loc   []string `json:"loc"`
	Msg   string   `json:"msg"`
	Input any      `json:"input"`
}

type validationResponse struct {
	Detail []fieldError `json:"detail"`
}

func missingQueryParam(name string) validationResponse {
	return validationResponse{Detail: []fieldError{{
		Type: "missing",
		Loc:  []string{"query", name},
		Msg:  "Field required",
	}}}
}

// handleSQLQuery runs the statement in the sqlquery parameter. An empty
// value is still sent to the backend; only a missing parameter is rejected.
func (s *Server) handleSQLQuery(c *gin.Context) {
	statement, ok := c.GetQuery(paramSQLQuery)
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, missingQueryParam(paramSQLQuery))
		return
	}

	resp, err := s.executor.Execute(c.Request.Context(), statement)
	if err != nil {
		var failure *gateway.Failure
		if errors.As(err, &failure) {
			c.JSON(http.StatusInternalServerError, errorResponse{Detail: failure.Report.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse{Detail: detailInternal})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
