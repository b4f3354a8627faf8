package serializer

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErr(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name     string
		mode     string
		resp     func() Response
		wantCode int
		wantMsg  string
		wantErr  string
	}{
		{name: "param default message", mode: gin.TestMode, resp: func() Response { return ParamErr("", cause) }, wantCode: http.StatusBadRequest, wantMsg: "parameter error", wantErr: "boom"},
		{name: "db custom message", mode: gin.TestMode, resp: func() Response { return DBErr("load failed", cause) }, wantCode: http.StatusInternalServerError, wantMsg: "load failed", wantErr: "boom"},
		{name: "release hides detail", mode: gin.ReleaseMode, resp: func() Response { return DBErr("", cause) }, wantCode: http.StatusInternalServerError, wantMsg: "database error"},
		{name: "forbidden", mode: gin.TestMode, resp: func() Response { return Forbidden("") }, wantCode: http.StatusForbidden, wantMsg: "permission denied"},
		{name: "not found", mode: gin.TestMode, resp: func() Response { return NotFound("", nil) }, wantCode: http.StatusNotFound, wantMsg: "not found"},
		{name: "unprocessable", mode: gin.TestMode, resp: func() Response { return Unprocessable("", cause) }, wantCode: http.StatusUnprocessableEntity, wantMsg: "unprocessable request", wantErr: "boom"},
		{name: "auth", mode: gin.TestMode, resp: func() Response { return AuthErr("") }, wantCode: http.StatusUnauthorized, wantMsg: "authentication error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(tt.mode)
			defer gin.SetMode(gin.TestMode)

			r := tt.resp()
			assert.Equal(t, tt.wantCode, r.Code)
			assert.Equal(t, tt.wantMsg, r.Msg)
			assert.Equal(t, tt.wantErr, r.Error)
		})
	}
}
