package substrate

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

type rpcRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

// fakeNode is an in-memory Substrate JSON-RPC endpoint.
type fakeNode struct {
	mu        sync.Mutex
	storage   map[string][]byte
	blockHash string
	syncing   int
	seenAt    []string
	pages     int
}

func newFakeNode(t *testing.T) (*fakeNode, *httptest.Server) {
	t.Helper()
	n := &fakeNode{storage: make(map[string][]byte), blockHash: "0xfeed"}
	srv := httptest.NewServer(http.HandlerFunc(n.serve))
	t.Cleanup(srv.Close)
	return n, srv
}

func (n *fakeNode) put(key, value []byte) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.storage[hexutil.Encode(key)] = value
}

// method normalizes wire method names so both "state_getStorage" and
// namespaced forms resolve to the same handler.
func method(name string) string {
	name = strings.ToLower(name)
	name = strings.NewReplacer("_", "", ".", "").Replace(name)
	for _, m := range []string{"getstorage", "getkeyspaged", "getblockhash", "health"} {
		if strings.HasSuffix(name, m) {
			return m
		}
	}
	return name
}

func (n *fakeNode) serve(w http.ResponseWriter, r *http.Request) {
	var req rpcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, rpcErr := n.handle(req)

	resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
	if rpcErr != "" {
		resp["error"] = map[string]any{"code": -32000, "message": rpcErr}
	} else {
		resp["result"] = result
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func param[T any](req rpcRequest, i int) T {
	var v T
	if i < len(req.Params) {
		_ = json.Unmarshal(req.Params[i], &v)
	}
	return v
}

func (n *fakeNode) handle(req rpcRequest) (any, string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	switch method(req.Method) {
	case "health":
		if n.syncing > 0 {
			n.syncing--
			return map[string]any{"peers": 1, "isSyncing": true, "shouldHavePeers": true}, ""
		}
		return map[string]any{"peers": 3, "isSyncing": false, "shouldHavePeers": true}, ""

	case "getblockhash":
		return n.blockHash, ""

	case "getstorage":
		n.seenAt = append(n.seenAt, param[string](req, 1))
		value, ok := n.storage[param[string](req, 0)]
		if !ok {
			return nil, ""
		}
		return hexutil.Encode(value), ""

	case "getkeyspaged":
		n.pages++
		prefix := param[string](req, 0)
		count := param[int](req, 1)
		start := param[*string](req, 2)
		n.seenAt = append(n.seenAt, param[string](req, 3))

		var keys []string
		for k := range n.storage {
			if strings.HasPrefix(k, prefix) && (start == nil || k > *start) {
				keys = append(keys, k)
			}
		}
		slices.Sort(keys)
		if len(keys) > count {
			keys = keys[:count]
		}
		if keys == nil {
			keys = []string{}
		}
		return keys, ""
	}

	return nil, "method not found: " + req.Method
}
