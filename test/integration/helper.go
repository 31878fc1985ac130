//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 集成测试需要先启动服务:
//
//	go run ./cmd/api
//	go test -tags integration ./test/integration/...
//
// BOOKSHELF_BASE_URL 可覆盖默认地址

const (
	// DefaultBaseURL API基础URL
	DefaultBaseURL = "http://localhost:8080/api/v1"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// BaseURL 返回被测服务地址
func BaseURL() string {
	if u := os.Getenv("BOOKSHELF_BASE_URL"); u != "" {
		return u
	}
	return DefaultBaseURL
}

// Result HTTP响应(状态码 + 原始响应体)
type Result struct {
	Status int
	Body   []byte
}

// Decode 解析响应体
func (r *Result) Decode(t *testing.T, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Body, v), "解析JSON响应失败: %s", string(r.Body))
}

// MessageData 创建/更新确认消息
type MessageData struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

// ErrorData 错误响应
type ErrorData struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AuthorData 作者
type AuthorData struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

// BookData 图书
type BookData struct {
	ID      uint         `json:"id"`
	Title   string       `json:"title"`
	Authors []AuthorData `json:"authors"`
}

// BookPageData 图书分页
type BookPageData struct {
	Content       []BookData `json:"content"`
	TotalElements int64      `json:"totalElements"`
	TotalPages    int        `json:"totalPages"`
	Number        int        `json:"number"`
	Size          int        `json:"size"`
	Empty         bool       `json:"empty"`
}

// Do 发送请求,data不为nil时作为JSON请求体
func Do(t *testing.T, method, url string, data interface{}) *Result {
	t.Helper()

	var body io.Reader
	if data != nil {
		raw, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	return &Result{Status: resp.StatusCode, Body: raw}
}

// UniqueTitle 生成唯一书名,避免重复运行时冲突
func UniqueTitle(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// CreateTestBook 创建图书并返回ID
func CreateTestBook(t *testing.T, title string, authors ...AuthorData) uint {
	t.Helper()

	res := Do(t, http.MethodPost, BaseURL()+"/books", map[string]interface{}{
		"title":   title,
		"authors": authors,
	})
	require.Equal(t, http.StatusCreated, res.Status, string(res.Body))

	var msg MessageData
	res.Decode(t, &msg)
	require.NotZero(t, msg.ID)
	return msg.ID
}
