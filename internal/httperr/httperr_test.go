package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessError(t *testing.T) {
	err := fmt.Errorf("create: %w", ErrBusiness(CodeSlotTaken))

	assert.True(t, IsBusiness(err, CodeSlotTaken))
	assert.False(t, IsBusiness(err, CodeClosedDay))

	code, ok := BusinessCode(err)
	assert.True(t, ok)
	assert.Equal(t, CodeSlotTaken, code)

	_, ok = BusinessCode(errors.New("plain"))
	assert.False(t, ok)
}

func TestStoreError_HidesCause(t *testing.T) {
	cause := errors.New(`pq: relation "appointments" does not exist`)
	err := ErrStore("create_failed", cause)

	assert.Equal(t, "create_failed", err.Error())
	assert.NotContains(t, err.Error(), "relation")
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsStore(err))
	assert.False(t, IsStore(cause))
}

func TestWrite_Shape(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	BadRequest(c, CodeClosedDay, "fechado")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "fechado", body["error"])
	assert.Equal(t, CodeClosedDay, body["error_code"])
}
