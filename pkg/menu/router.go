package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"movie-booking/pkg/utils"
)

// ExitKey ends the menu loop.
const ExitKey = "0"

// HandlerFunc serves one menu option.
type HandlerFunc func(ctx context.Context, c *Console) error

// Middleware wraps a HandlerFunc, applied in registration order.
type Middleware func(HandlerFunc) HandlerFunc

// Option is the menu entry being served. Middleware reads it from the context.
type Option struct {
	Key   string
	Title string
}

type optionContextKey struct{}

func WithOption(ctx context.Context, opt Option) context.Context {
	return context.WithValue(ctx, optionContextKey{}, opt)
}

func OptionFromContext(ctx context.Context) (Option, bool) {
	opt, ok := ctx.Value(optionContextKey{}).(Option)
	return opt, ok
}

type route struct {
	option  Option
	handler HandlerFunc
}

type Router struct {
	title       string
	middlewares []Middleware
	routes      map[string]route
}

func NewRouter(title string) *Router {
	return &Router{
		title:  title,
		routes: make(map[string]route),
	}
}

// Use appends middleware. It applies to every option, including ones
// registered before the call.
func (r *Router) Use(mw ...Middleware) {
	r.middlewares = append(r.middlewares, mw...)
}

// Handle registers h under key. Registering a key twice replaces the handler.
func (r *Router) Handle(key, title string, h HandlerFunc) {
	if key == ExitKey {
		panic("menu: key " + ExitKey + " is reserved for exit")
	}
	r.routes[key] = route{
		option:  Option{Key: key, Title: title},
		handler: h,
	}
}

// Options returns the registered options ordered by key.
func (r *Router) Options() []Option {
	options := make([]Option, 0, len(r.routes))
	for _, rt := range r.routes {
		options = append(options, rt.option)
	}
	sort.Slice(options, func(i, j int) bool {
		if len(options[i].Key) != len(options[j].Key) {
			return len(options[i].Key) < len(options[j].Key)
		}
		return options[i].Key < options[j].Key
	})
	return options
}

// Run shows the menu until the user picks ExitKey or input ends. Handler
// errors are printed and the loop continues.
func (r *Router) Run(ctx context.Context, c *Console) error {
	for {
		r.render(c)

		choice, err := c.Prompt("Choose an option: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				c.Println()
				c.Println("Goodbye!")
				return nil
			}
			return fmt.Errorf("read menu choice: %w", err)
		}

		if choice == ExitKey {
			c.Println("Goodbye!")
			return nil
		}

		rt, ok := r.routes[choice]
		if !ok {
			utils.ResponseWarning(c.Writer(), fmt.Sprintf("Invalid option %q. Please try again.", choice))
			continue
		}

		if err := r.dispatch(ctx, c, rt); err != nil {
			if errors.Is(err, io.EOF) {
				c.Println()
				c.Println("Goodbye!")
				return nil
			}
			utils.ResponseError(c.Writer(), err.Error())
		}
	}
}

func (r *Router) dispatch(ctx context.Context, c *Console, rt route) error {
	h := rt.handler
	for i := len(r.middlewares) - 1; i >= 0; i-- {
		h = r.middlewares[i](h)
	}
	return h(WithOption(ctx, rt.option), c)
}

func (r *Router) render(c *Console) {
	utils.ResponseHeading(c.Writer(), r.title)
	var b strings.Builder
	for _, opt := range r.Options() {
		fmt.Fprintf(&b, "%s. %s\n", opt.Key, opt.Title)
	}
	fmt.Fprintf(&b, "%s. Exit\n", ExitKey)
	fmt.Fprint(c.Writer(), b.String())
}
