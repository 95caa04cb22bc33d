package handlers

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanosig/arcano/backend/internal/models"
)

func TestHistoryHandler_List(t *testing.T) {
	e := newAPIEnv(t)
	staff := e.user("p4@pm.gov.br", operations)
	root := e.user("admin@pm.gov.br", admin)

	w := e.do(http.MethodPost, apiPath("/oper/vehicles"), staff, map[string]interface{}{"prefixo": "ABC1D23", "modelo": "duster", "em_condicao": true})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var v models.Vehicle
	decodeJSON(t, w, &v)
	w = e.do(http.MethodPut, apiPath("/oper/vehicles/%d", v.ID), staff, map[string]interface{}{"prefixo": "ABC1D23", "modelo": "duster", "km_atual": 10})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, http.StatusForbidden, e.do(http.MethodGet, apiPath("/history"), staff, nil).Code)
	assert.Equal(t, http.StatusBadRequest, e.do(http.MethodGet, apiPath("/history?limit=0"), root, nil).Code)

	w = e.do(http.MethodGet, apiPath("/history?table=vehicles&record_id=%s", strconv.FormatUint(uint64(v.ID), 10)), root, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var records []models.HistoryRecord
	decodeJSON(t, w, &records)
	require.Len(t, records, 2)
	assert.Equal(t, models.HistoryUpdate, records[0].Action)
	assert.Equal(t, models.HistoryCreate, records[1].Action)
	for _, r := range records {
		require.NotNil(t, r.ActorID)
		assert.Equal(t, staff.ID, *r.ActorID)
	}
	assert.Contains(t, string(records[0].Snapshot), `"km_atual":10`)

	decodeJSON(t, e.do(http.MethodGet, apiPath("/history?table=vehicles&limit=1"), root, nil), &records)
	assert.Len(t, records, 1)
}
