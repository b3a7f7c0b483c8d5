package middleware

import "github.com/danielgtaylor/huma/v2"

// Container collects the middleware chain for the next handler to be
// wired. GetAllAndClear hands the chain over and resets the container
// so the same instance can serve every handler in turn.
type Container struct {
	chain huma.Middlewares
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Add(mw func(huma.Context, func(huma.Context))) {
	c.chain = append(c.chain, mw)
}

func (c *Container) GetAllAndClear() huma.Middlewares {
	chain := c.chain
	c.chain = nil
	return chain
}
