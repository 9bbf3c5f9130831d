package gateway

import "github.com/RehahnC/shared-rexdb-fastapi-sql/internal/db"

// StatusExecuted is the acknowledgement returned for statements that
// produced no result columns.
const StatusExecuted = "Query executed successfully"

// Response is either a RowsResponse or a StatusResponse.
type Response interface {
	response()
}

type RowsResponse struct {
	Headers []string     `json:"headers"`
	Results [][]db.Value `json:"results"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

func (RowsResponse) response()   {}
func (StatusResponse) response() {}

// Shape converts an executor result into its response without reordering,
// filtering or converting anything.
func Shape(result *db.Result) Response {
	if result.Kind == db.KindAck {
		return StatusResponse{Status: StatusExecuted}
	}

	headers := result.Columns
	if headers == nil {
		headers = []string{}
	}
	rows := result.Rows
	if rows == nil {
		rows = [][]db.Value{}
	}
	return RowsResponse{
		Headers: headers,
		Results: rows,
	}
}
