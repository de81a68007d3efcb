package mocks

import "sync"

// callLog counts invocations per method and remembers their arguments.
type callLog struct {
	mu   sync.Mutex
	args map[string][][]any
}

func (c *callLog) record(method string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.args == nil {
		c.args = make(map[string][][]any)
	}
	c.args[method] = append(c.args[method], args)
}

// Calls returns how many times method was invoked.
func (c *callLog) Calls(method string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.args[method])
}

// TotalCalls returns the number of invocations across all methods.
func (c *callLog) TotalCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, calls := range c.args {
		n += len(calls)
	}
	return n
}

// CallArgs returns the arguments of every invocation of method, in call order.
func (c *callLog) CallArgs(method string) [][]any {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([][]any, len(c.args[method]))
	copy(out, c.args[method])
	return out
}
