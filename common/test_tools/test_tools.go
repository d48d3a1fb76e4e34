package testtools

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// GenerateCtxWithJSONAndParams creates a test gin context carrying the given
// JSON body and route params.
func GenerateCtxWithJSONAndParams(t *testing.T, data map[string]interface{}, params []gin.Param) *gin.Context {
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Params = params
	ctx.Request = httptest.NewRequest("POST", "http://localhost:8080", nil)

	jsonbytes, err := json.Marshal(data)
	if err != nil {
		t.Fatal(err)
	}

	ctx.Request.Body = io.NopCloser(bytes.NewReader(jsonbytes))

	return ctx
}
