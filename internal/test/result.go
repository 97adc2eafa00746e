package test

import (
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/stretchr/testify/require"
)

// Result 和 ginx.Result 的结构一致，Data 换成了具体的类型
type Result[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}

// Response 带上了 HTTP 状态码
type Response[T any] struct {
	Status int
	Result[T]
}

func NewJSONRequest(t *testing.T, method, url string, body any) *http.Request {
	req, err := http.NewRequest(method, url, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	return req
}

// Do 执行请求，并且把响应体解析成 Result[T]
func Do[T any](t *testing.T, hdl http.Handler, req *http.Request) Response[T] {
	recorder := NewJSONResponseRecorder[T]()
	hdl.ServeHTTP(recorder, req)
	res, err := recorder.Scan()
	require.NoError(t, err)
	return Response[T]{Status: recorder.Code, Result: res}
}

func PostJSON[T any](t *testing.T, hdl http.Handler, url string, body any) Response[T] {
	return Do[T](t, hdl, NewJSONRequest(t, http.MethodPost, url, body))
}

func Get[T any](t *testing.T, hdl http.Handler, url string) Response[T] {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	return Do[T](t, hdl, req)
}
