package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/plantoes/internal/dto"
	"github.com/BruksfildServices01/plantoes/internal/middleware"
	"github.com/BruksfildServices01/plantoes/internal/models"
	"github.com/BruksfildServices01/plantoes/internal/session"
	ucShift "github.com/BruksfildServices01/plantoes/internal/usecase/shift"
	"github.com/BruksfildServices01/plantoes/internal/usecase/usecasetest"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

type shiftAPI struct {
	router *gin.Engine
	repo   *usecasetest.ShiftRepo
	sess   session.Session
}

func newShiftAPI(t *testing.T) *shiftAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := usecasetest.NewShiftRepo()
	aud := &usecasetest.Audit{}
	sess := usecasetest.Authenticated()

	h := NewShiftHandler(
		ucShift.NewRecordShift(repo, aud),
		ucShift.NewUpdateShift(repo, aud),
		ucShift.NewDeleteShift(repo, aud),
		ucShift.NewForecastShift(repo, aud),
		ucShift.NewRecordReceipt(repo, aud),
		ucShift.NewConciliateShift(repo, aud),
		ucShift.NewListShifts(repo),
		ucShift.NewGetShift(repo),
		"America/Sao_Paulo",
	)

	r := gin.New()
	me := r.Group("/me", func(c *gin.Context) {
		c.Set(middleware.ContextSession, sess)
		c.Next()
	})
	me.GET("/shifts", h.List)
	me.POST("/shifts", h.Create)
	me.GET("/shifts/:id", h.Get)
	me.DELETE("/shifts/:id", h.Delete)
	me.POST("/shifts/:id/receipts", h.Receive)
	me.POST("/shifts/:id/conciliate", h.Conciliate)

	return &shiftAPI{router: r, repo: repo, sess: sess}
}

func (a *shiftAPI) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decodeShift(t *testing.T, w *httptest.ResponseRecorder) dto.ShiftListDTO {
	t.Helper()
	var out dto.ShiftListDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestShiftHandlerLifecycle(t *testing.T) {
	api := newShiftAPI(t)
	hospital := api.repo.AddHospital(api.sess.ProfessionalID, 30, 0)

	w := api.do(http.MethodPost, "/me/shifts", `{
		"hospital_id": "`+hospital.ID.String()+`",
		"date": "2023-08-05",
		"start_time": "08:00",
		"end_time": "20:00",
		"gross_value": "1200"
	}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := decodeShift(t, w)
	assert.Equal(t, "LANCADO", created.Status)
	assert.Equal(t, "R$ 1.200,00", created.GrossValueFmt)
	assert.True(t, created.Deletable)

	w = api.do(http.MethodPost, "/me/shifts/"+created.ID.String()+"/receipts", `{
		"received_value": "1150.50",
		"received_on": "2023-09-05"
	}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	received := decodeShift(t, w)
	assert.Equal(t, "RECEBIDO", received.Status)
	require.NotNil(t, received.Receipt)
	assert.Equal(t, "R$ 1.150,50", received.Receipt.ReceivedFmt)
	assert.False(t, received.Deletable)

	// a second receipt is a state conflict
	w = api.do(http.MethodPost, "/me/shifts/"+created.ID.String()+"/receipts", `{
		"received_value": "1150.50",
		"received_on": "2023-09-05"
	}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_transition")

	w = api.do(http.MethodPost, "/me/shifts/"+created.ID.String()+"/conciliate", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "CONCILIADO", decodeShift(t, w).Status)

	w = api.do(http.MethodDelete, "/me/shifts/"+created.ID.String(), "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "shift_not_deletable")
}

func TestShiftHandlerErrors(t *testing.T) {
	api := newShiftAPI(t)
	hospital := api.repo.AddHospital(api.sess.ProfessionalID, 30, 0)

	t.Run("bad date is 400", func(t *testing.T) {
		w := api.do(http.MethodPost, "/me/shifts", `{
			"hospital_id": "`+hospital.ID.String()+`",
			"date": "05/08/2023",
			"gross_value": "1200"
		}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_date")
	})

	t.Run("malformed hospital id is 400", func(t *testing.T) {
		w := api.do(http.MethodPost, "/me/shifts", `{"hospital_id": "x", "date": "2023-08-05"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_hospital")
	})

	t.Run("unknown shift is 404", func(t *testing.T) {
		w := api.do(http.MethodGet, "/me/shifts/not-a-uuid", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown status filter is 400", func(t *testing.T) {
		w := api.do(http.MethodGet, "/me/shifts?status=PAGO", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestShiftHandlerListLimit(t *testing.T) {
	api := newShiftAPI(t)
	h := api.repo.AddHospital(api.sess.ProfessionalID, 30, 0)

	start := date("2023-01-01")
	for i := 0; i < 60; i++ {
		api.repo.AddShift(models.Shift{
			ProfessionalID: api.sess.ProfessionalID,
			HospitalID:     h.ID,
			Date:           start.AddDate(0, 0, i),
			GrossValue:     decimal.NewFromInt(100),
			Status:         "LANCADO",
		})
	}

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"default cap", "", 50},
		{"explicit limit", "?limit=10", 10},
		{"above maximum falls back", "?limit=5000", 50},
		{"garbage falls back", "?limit=abc", 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := api.do(http.MethodGet, "/me/shifts"+tt.query, "")
			require.Equal(t, http.StatusOK, w.Code)

			var body struct {
				Data  []dto.ShiftListDTO `json:"data"`
				Total int                `json:"total"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.want, body.Total)
			// most recent first
			assert.Equal(t, "2023-03-01", body.Data[0].Date)
		})
	}
}

func TestShiftHandlerListFiltersByHospital(t *testing.T) {
	api := newShiftAPI(t)
	a := api.repo.AddHospital(api.sess.ProfessionalID, 30, 0)
	b := api.repo.AddHospital(api.sess.ProfessionalID, 15, 0)

	for _, id := range []string{a.ID.String(), a.ID.String(), b.ID.String()} {
		w := api.do(http.MethodPost, "/me/shifts", `{"hospital_id": "`+id+`", "date": "2023-08-05", "gross_value": "800"}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := api.do(http.MethodGet, "/me/shifts?hospital_id="+a.ID.String(), "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data  []dto.ShiftListDTO `json:"data"`
		Total int                `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Total)
	for _, s := range body.Data {
		assert.Equal(t, a.ID, s.HospitalID)
		assert.Equal(t, "Hospital São Lucas", s.HospitalName)
	}
}
