package gateway

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RehahnC/shared-rexdb-fastapi-sql/internal/db"
)

func TestShape(t *testing.T) {
	tests := []struct {
		name   string
		result *db.Result
		want   string
	}{
		{
			name:   "ack",
			result: &db.Result{Kind: db.KindAck},
			want:   `{"status":"Query executed successfully"}`,
		},
		{
			name: "rows keep order and duplicates",
			result: &db.Result{
				Kind:    db.KindRows,
				Columns: []string{"id", "name", "id"},
				Rows: [][]db.Value{
					{db.Int(2), db.Text("b"), db.Int(2)},
					{db.Int(1), db.Null(), db.Int(1)},
				},
			},
			want: `{"headers":["id","name","id"],"results":[[2,"b",2],[1,null,1]]}`,
		},
		{
			name:   "no rows is an empty list",
			result: &db.Result{Kind: db.KindRows, Columns: []string{"x"}},
			want:   `{"headers":["x"],"results":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := json.Marshal(Shape(tt.result))
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(body))
		})
	}
}
