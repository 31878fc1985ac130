//go:build integration

package integration

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBookLifecycle 创建 → 重复创建 → 查询 → 更新 → 删除 → 查询
func TestBookLifecycle(t *testing.T) {
	title := UniqueTitle("Foo")
	id := CreateTestBook(t, title, AuthorData{Name: "A", Surname: "B"})
	bookURL := fmt.Sprintf("%s/books/%d", BaseURL(), id)

	t.Run("重复书名返回409", func(t *testing.T) {
		res := Do(t, http.MethodPost, BaseURL()+"/books", map[string]interface{}{"title": title})
		assert.Equal(t, http.StatusConflict, res.Status)

		var e ErrorData
		res.Decode(t, &e)
		assert.Equal(t, 40009, e.Code)
	})

	t.Run("查询图书", func(t *testing.T) {
		res := Do(t, http.MethodGet, bookURL, nil)
		require.Equal(t, http.StatusOK, res.Status)

		var b BookData
		res.Decode(t, &b)
		assert.Equal(t, title, b.Title)
		require.Len(t, b.Authors, 1)
		assert.Equal(t, "A", b.Authors[0].Name)
	})

	t.Run("更新图书返回201", func(t *testing.T) {
		res := Do(t, http.MethodPut, bookURL, map[string]interface{}{"title": title + "-Bar"})
		require.Equal(t, http.StatusCreated, res.Status)

		var msg MessageData
		res.Decode(t, &msg)
		assert.Equal(t, "图书已更新", msg.Message)
	})

	t.Run("删除后查询返回404", func(t *testing.T) {
		res := Do(t, http.MethodDelete, bookURL, nil)
		require.Equal(t, http.StatusNoContent, res.Status)

		res = Do(t, http.MethodGet, bookURL, nil)
		assert.Equal(t, http.StatusNotFound, res.Status)
	})
}

// TestListBooks 分页与排序
func TestListBooks(t *testing.T) {
	res := Do(t, http.MethodGet, BaseURL()+"/books?page=0&size=5&sortBy=title&direction=desc", nil)
	require.Equal(t, http.StatusOK, res.Status)

	var page BookPageData
	res.Decode(t, &page)
	assert.LessOrEqual(t, len(page.Content), 5)
	assert.Equal(t, 5, page.Size)
	assert.GreaterOrEqual(t, page.TotalElements, int64(len(page.Content)))

	res = Do(t, http.MethodGet, BaseURL()+"/books?sortBy=price", nil)
	assert.Equal(t, http.StatusBadRequest, res.Status)
}

// TestConcurrentCreateSameTitle 并发创建同名图书只有一个成功
func TestConcurrentCreateSameTitle(t *testing.T) {
	title := UniqueTitle("Race")

	const n = 10
	statuses := make(chan int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			statuses <- Do(t, http.MethodPost, BaseURL()+"/books", map[string]interface{}{"title": title}).Status
		}()
	}
	wg.Wait()
	close(statuses)

	counts := map[int]int{}
	for s := range statuses {
		counts[s]++
	}
	assert.Equal(t, 1, counts[http.StatusCreated])
	assert.Equal(t, n-1, counts[http.StatusConflict])
}
