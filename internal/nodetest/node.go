// Package nodetest provides an in-process rollup node for tests.
package nodetest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"

	"github.com/luma/rollcall/protocol"
)

// Node queues request bodies and hands them out one per finish call. Every
// call it receives is recorded.
type Node struct {
	server *httptest.Server

	mu       sync.Mutex
	pending  [][]byte
	failures int
	finishes []protocol.Status
	notices  []string
	reports  []string
}

func New() *Node {
	gin.SetMode(gin.TestMode)

	n := &Node{}

	r := gin.New()
	r.POST("/finish", n.finish)
	r.POST("/notice", n.output(&n.notices))
	r.POST("/report", n.output(&n.reports))

	n.server = httptest.NewServer(r)

	return n
}

func (n *Node) URL() string {
	return n.server.URL
}

func (n *Node) Close() {
	n.server.Close()
}

// Enqueue adds a request body to be returned by a later finish call.
func (n *Node) Enqueue(body string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.pending = append(n.pending, []byte(body))
}

// FailNext answers the next count finish calls with a 500.
func (n *Node) FailNext(count int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.failures = count
}

func (n *Node) Pending() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return len(n.pending)
}

// Finishes returns the status of every finish call received so far,
// including failed ones.
func (n *Node) Finishes() []protocol.Status {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]protocol.Status(nil), n.finishes...)
}

func (n *Node) Notices() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]string(nil), n.notices...)
}

func (n *Node) Reports() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]string(nil), n.reports...)
}

func (n *Node) finish(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.finishes = append(n.finishes, protocol.Status(gjson.GetBytes(body, "status").String()))

	if n.failures > 0 {
		n.failures--
		c.Status(http.StatusInternalServerError)
		return
	}

	if len(n.pending) == 0 {
		c.Status(http.StatusAccepted)
		return
	}

	next := n.pending[0]
	n.pending = n.pending[1:]

	c.Data(http.StatusOK, "application/json", next)
}

func (n *Node) output(into *[]string) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		n.mu.Lock()
		*into = append(*into, gjson.GetBytes(body, "payload").String())
		n.mu.Unlock()

		c.Status(http.StatusCreated)
	}
}
